package models

import (
	"time"

	"gorm.io/gorm"
)

type Restaurant struct {
	ID                   string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Slug                 string         `json:"slug" gorm:"unique;not null"`
	Name                 string         `json:"name" gorm:"not null"`
	LogoURL              string         `json:"logo_url"`
	Theme                string         `json:"theme" gorm:"default:'one'"` // one, two
	PrimaryColor         string         `json:"primary_color"`
	BackgroundColor      string         `json:"background_color"`
	CommissionPercentage float64        `json:"commission_percentage" gorm:"default:0"`
	TelegramChatID       string         `json:"telegram_chat_id"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type RestaurantTheme string

const (
	ThemeOne RestaurantTheme = "one"
	ThemeTwo RestaurantTheme = "two"
)
