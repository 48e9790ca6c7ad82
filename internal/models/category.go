package models

import (
	"time"

	"gorm.io/gorm"
)

// Kitchen groups categories inside one restaurant (e.g. "Bar", "Hot kitchen").
type Kitchen struct {
	ID           string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	RestaurantID string         `json:"restaurant_id" gorm:"not null;index"`
	NameEn       string         `json:"name_en" gorm:"not null"`
	NameKz       string         `json:"name_kz"`
	NameRu       string         `json:"name_ru"`
	SortOrder    int            `json:"sort_order" gorm:"default:0"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type Category struct {
	ID           string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	RestaurantID string         `json:"restaurant_id" gorm:"not null;index"`
	KitchenID    string         `json:"kitchen_id"`
	NameEn       string         `json:"name_en" gorm:"not null"`
	NameKz       string         `json:"name_kz"`
	NameRu       string         `json:"name_ru"`
	SortOrder    int            `json:"sort_order" gorm:"default:0"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

func (k *Kitchen) LocalizedName(locale string) string {
	return localizedName(k.NameEn, k.NameKz, k.NameRu, locale)
}

func (c *Category) LocalizedName(locale string) string {
	return localizedName(c.NameEn, c.NameKz, c.NameRu, locale)
}

// localizedName falls back to English when the requested locale has no value.
func localizedName(en, kz, ru, locale string) string {
	switch locale {
	case "kz":
		if kz != "" {
			return kz
		}
	case "ru":
		if ru != "" {
			return ru
		}
	}
	return en
}
