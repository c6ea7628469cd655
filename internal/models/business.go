package models

import (
	"time"

	"gorm.io/gorm"
)

type Business struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	Name             string         `json:"name" gorm:"not null"`
	Phone            string         `json:"phone"`
	Email            string         `json:"email"`
	OrderStartNumber int            `json:"order_start_number" gorm:"default:1"`
	LastOrderNumber  int            `json:"last_order_number" gorm:"default:0"`
	IsActive         bool           `json:"is_active" gorm:"default:true"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type Category struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	BusinessID uint           `json:"business_id" gorm:"not null;index"`
	Name       string         `json:"name" gorm:"not null"`
	SortOrder  int            `json:"sort_order" gorm:"default:0"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
