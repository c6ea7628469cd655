package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	BusinessID   uint            `json:"business_id" gorm:"not null;index"`
	CategoryID   uint            `json:"category_id" gorm:"not null;index"`
	Name         string          `json:"name" gorm:"not null"`
	Description  string          `json:"description" gorm:"type:text"`
	BasePrice    decimal.Decimal `json:"base_price" gorm:"type:decimal(10,2);not null"`
	IsAvailable  bool            `json:"is_available" gorm:"default:true"`
	SortOrder    int             `json:"sort_order" gorm:"default:0"`
	OptionGroups []OptionGroup   `json:"option_groups" gorm:"foreignKey:ProductID"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `json:"deleted_at" gorm:"index"`
}

type OptionGroup struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	ProductID  uint            `json:"product_id" gorm:"not null;index"`
	Name       string          `json:"name" gorm:"not null"`
	Type       OptionGroupType `json:"type" gorm:"not null"`
	IsRequired bool            `json:"is_required" gorm:"default:false"`
	SortOrder  int             `json:"sort_order" gorm:"default:0"`
	Values     []OptionValue   `json:"values" gorm:"foreignKey:OptionGroupID"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `json:"deleted_at" gorm:"index"`
}

type OptionValue struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	OptionGroupID   uint            `json:"option_group_id" gorm:"not null;index"`
	Name            string          `json:"name" gorm:"not null"`
	AdditionalPrice decimal.Decimal `json:"additional_price" gorm:"type:decimal(10,2);default:0"`
	IsDefault       bool            `json:"is_default" gorm:"default:false"`
	SortOrder       int             `json:"sort_order" gorm:"default:0"`
	HalfPosition    HalfPosition    `json:"half_position,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `json:"deleted_at" gorm:"index"`
}

type OptionGroupType string

const (
	SingleChoice   OptionGroupType = "single_choice"
	MultipleChoice OptionGroupType = "multiple_choice"
	HalfAndHalf    OptionGroupType = "half_and_half"
	Quantity       OptionGroupType = "quantity"
)

// HalfPosition tags an option value inside a half_and_half group.
// A "full" value satisfies both halves at once.
type HalfPosition string

const (
	HalfLeft  HalfPosition = "left"
	HalfRight HalfPosition = "right"
	HalfFull  HalfPosition = "full"
)

func (t OptionGroupType) IsValid() bool {
	switch t {
	case SingleChoice, MultipleChoice, HalfAndHalf, Quantity:
		return true
	}
	return false
}

// ValueByID returns the value with the given id if it belongs to this group.
func (g *OptionGroup) ValueByID(id uint) *OptionValue {
	for i := range g.Values {
		if g.Values[i].ID == id {
			return &g.Values[i]
		}
	}
	return nil
}

// GroupByID returns the option group with the given id if it belongs to this product.
func (p *Product) GroupByID(id uint) *OptionGroup {
	for i := range p.OptionGroups {
		if p.OptionGroups[i].ID == id {
			return &p.OptionGroups[i]
		}
	}
	return nil
}
