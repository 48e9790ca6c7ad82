package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Product is a menu entry. Price is a whole amount in the display currency
// unit; the menu never deals in fractional prices. Options holds the raw
// stored JSON (legacy flat list or grouped shape) and is only interpreted
// through the options package normalizer.
type Product struct {
	ID            string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	RestaurantID  string          `json:"restaurant_id" gorm:"not null;index"`
	CategoryID    string          `json:"category_id" gorm:"index"`
	NameEn        string          `json:"name_en" gorm:"not null"`
	NameKz        string          `json:"name_kz"`
	NameRu        string          `json:"name_ru"`
	DescriptionEn string          `json:"description_en" gorm:"type:text"`
	DescriptionKz string          `json:"description_kz" gorm:"type:text"`
	DescriptionRu string          `json:"description_ru" gorm:"type:text"`
	Price         int64           `json:"price" gorm:"not null;default:0"`
	Options       json.RawMessage `json:"options" gorm:"type:jsonb"`
	ImageURL      string          `json:"image_url"`
	IsAvailable   bool            `json:"is_available" gorm:"default:true"`
	SortOrder     int             `json:"sort_order" gorm:"default:0"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `json:"deleted_at" gorm:"index"`
}

// ProductRecommendation links a product to another product pitched on its
// detail page.
type ProductRecommendation struct {
	ProductID            string `json:"product_id" gorm:"primaryKey"`
	RecommendedProductID string `json:"recommended_product_id" gorm:"primaryKey"`
}

func (p *Product) LocalizedName(locale string) string {
	return localizedName(p.NameEn, p.NameKz, p.NameRu, locale)
}

func (p *Product) LocalizedDescription(locale string) string {
	return localizedName(p.DescriptionEn, p.DescriptionKz, p.DescriptionRu, locale)
}
