package repository

import (
	"restaurant_menu/internal/models"

	"gorm.io/gorm"
)

type RestaurantRepository interface {
	Create(restaurant *models.Restaurant) error
	GetByID(id string) (*models.Restaurant, error)
	GetBySlug(slug string) (*models.Restaurant, error)
	Update(restaurant *models.Restaurant) error
	UpdateSettings(id string, fields map[string]interface{}) error
	Delete(id string) error
	GetAll() ([]models.Restaurant, error)
}

type restaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) Create(restaurant *models.Restaurant) error {
	return r.db.Create(restaurant).Error
}

func (r *restaurantRepository) GetByID(id string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.db.First(&restaurant, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) GetBySlug(slug string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.db.First(&restaurant, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) Update(restaurant *models.Restaurant) error {
	return r.db.Save(restaurant).Error
}

func (r *restaurantRepository) UpdateSettings(id string, fields map[string]interface{}) error {
	return r.db.Model(&models.Restaurant{}).Where("id = ?", id).Updates(fields).Error
}

func (r *restaurantRepository) Delete(id string) error {
	return r.db.Delete(&models.Restaurant{}, "id = ?", id).Error
}

func (r *restaurantRepository) GetAll() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := r.db.Find(&restaurants).Error
	return restaurants, err
}
