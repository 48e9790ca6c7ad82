package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email        string         `json:"email" gorm:"unique;not null"`
	PasswordHash string         `json:"-" gorm:"not null"`
	Role         string         `json:"role" gorm:"default:'restaurant_admin'"` // super_admin, restaurant_admin
	RestaurantID string         `json:"restaurant_id" gorm:"index"`
	IsActive     bool           `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type UserRole string

const (
	SuperAdmin      UserRole = "super_admin"
	RestaurantAdmin UserRole = "restaurant_admin"
)
