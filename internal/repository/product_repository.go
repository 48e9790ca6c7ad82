package repository

import (
	"restaurant_menu/internal/models"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id string) (*models.Product, error)
	GetByRestaurant(restaurantID string) ([]models.Product, error)
	GetByCategory(categoryID string) ([]models.Product, error)
	Update(product *models.Product) error
	Delete(id string) error

	GetRecommendations(productID string) ([]models.Product, error)
	ReplaceRecommendations(productID string, recommendedIDs []string) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetByRestaurant(restaurantID string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("restaurant_id = ?", restaurantID).
		Order("sort_order asc").
		Find(&products).Error
	return products, err
}

func (r *productRepository) GetByCategory(categoryID string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("category_id = ?", categoryID).
		Order("sort_order asc").
		Find(&products).Error
	return products, err
}

func (r *productRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepository) Delete(id string) error {
	return r.db.Delete(&models.Product{}, "id = ?", id).Error
}

func (r *productRepository) GetRecommendations(productID string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.
		Joins("JOIN product_recommendations ON product_recommendations.recommended_product_id = products.id").
		Where("product_recommendations.product_id = ?", productID).
		Find(&products).Error
	return products, err
}

func (r *productRepository) ReplaceRecommendations(productID string, recommendedIDs []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).
			Delete(&models.ProductRecommendation{}).Error; err != nil {
			return err
		}
		for _, recommendedID := range recommendedIDs {
			rec := models.ProductRecommendation{
				ProductID:            productID,
				RecommendedProductID: recommendedID,
			}
			if err := tx.Create(&rec).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
