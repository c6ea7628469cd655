package models

import (
	"time"
)

// Customer is identified by phone number within a business. Rows are
// upserted during order placement, never managed on their own.
type Customer struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	BusinessID uint      `json:"business_id" gorm:"not null;uniqueIndex:idx_customers_business_phone"`
	Name       string    `json:"name" gorm:"not null"`
	Phone      string    `json:"phone" gorm:"not null;uniqueIndex:idx_customers_business_phone"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
