package repository

import (
	"order_kiosk/internal/models"

	"gorm.io/gorm"
)

type ProductRepository interface {
	GetWithOptions(businessID, productID uint) (*models.Product, error)
	ListByBusiness(businessID uint) ([]models.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) GetWithOptions(businessID, productID uint) (*models.Product, error) {
	var product models.Product
	err := r.db.
		Preload("OptionGroups", func(db *gorm.DB) *gorm.DB {
			return db.Order("option_groups.sort_order ASC")
		}).
		Preload("OptionGroups.Values", func(db *gorm.DB) *gorm.DB {
			return db.Order("option_values.sort_order ASC")
		}).
		Where("business_id = ?", businessID).
		First(&product, productID).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) ListByBusiness(businessID uint) ([]models.Product, error) {
	var products []models.Product
	err := r.db.
		Preload("OptionGroups", func(db *gorm.DB) *gorm.DB {
			return db.Order("option_groups.sort_order ASC")
		}).
		Preload("OptionGroups.Values", func(db *gorm.DB) *gorm.DB {
			return db.Order("option_values.sort_order ASC")
		}).
		Where("business_id = ? AND is_available = ?", businessID, true).
		Order("sort_order ASC").
		Find(&products).Error
	return products, err
}
