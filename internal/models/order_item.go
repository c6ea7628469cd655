package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderLineItem struct {
	ID              uint             `json:"id" gorm:"primaryKey"`
	OrderID         uint             `json:"order_id" gorm:"not null;index"`
	ProductID       uint             `json:"product_id" gorm:"not null"`
	ProductName     string           `json:"product_name" gorm:"not null"`
	Quantity        int              `json:"quantity" gorm:"not null"`
	UnitPrice       decimal.Decimal  `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	LineTotal       decimal.Decimal  `json:"line_total" gorm:"type:decimal(10,2);not null"`
	Notes           string           `json:"notes" gorm:"type:text"`
	SelectedOptions []SelectedOption `json:"selected_options" gorm:"foreignKey:OrderLineItemID"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// SelectedOption snapshots a chosen option value at order time. Name and
// price are copied from the catalog so later catalog edits never change
// what a committed order says it charged.
type SelectedOption struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	OrderLineItemID uint            `json:"order_line_item_id" gorm:"index"`
	OptionGroupID   uint            `json:"option_group_id" gorm:"not null"`
	GroupName       string          `json:"group_name" gorm:"not null"`
	GroupType       OptionGroupType `json:"group_type" gorm:"not null"`
	OptionValueID   *uint           `json:"option_value_id,omitempty"`
	ValueName       string          `json:"value_name"`
	AdditionalPrice decimal.Decimal `json:"additional_price" gorm:"type:decimal(10,2);default:0"`
	HalfPosition    HalfPosition    `json:"half_position,omitempty"`
	Count           int             `json:"count" gorm:"default:1"`
	TextValue       string          `json:"text_value"`
	CreatedAt       time.Time       `json:"created_at"`
}
