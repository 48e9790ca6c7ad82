package repository

import (
	"restaurant_menu/internal/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *models.Category) error
	GetByID(id string) (*models.Category, error)
	GetByRestaurant(restaurantID string) ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id string) error

	CreateKitchen(kitchen *models.Kitchen) error
	GetKitchensByRestaurant(restaurantID string) ([]models.Kitchen, error)
	DeleteKitchen(id string) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepository) GetByID(id string) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetByRestaurant(restaurantID string) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("restaurant_id = ?", restaurantID).
		Order("sort_order asc").
		Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepository) Delete(id string) error {
	return r.db.Delete(&models.Category{}, "id = ?", id).Error
}

func (r *categoryRepository) CreateKitchen(kitchen *models.Kitchen) error {
	return r.db.Create(kitchen).Error
}

func (r *categoryRepository) GetKitchensByRestaurant(restaurantID string) ([]models.Kitchen, error) {
	var kitchens []models.Kitchen
	err := r.db.Where("restaurant_id = ?", restaurantID).
		Order("sort_order asc").
		Find(&kitchens).Error
	return kitchens, err
}

func (r *categoryRepository) DeleteKitchen(id string) error {
	return r.db.Delete(&models.Kitchen{}, "id = ?", id).Error
}
