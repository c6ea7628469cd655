package repository

import (
	"errors"

	"order_kiosk/internal/models"

	"gorm.io/gorm"
)

type CustomerRepository interface {
	GetByPhone(businessID uint, phone string) (*models.Customer, error)
	Upsert(tx *gorm.DB, customer *models.Customer) error
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) GetByPhone(businessID uint, phone string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.Where("business_id = ? AND phone = ?", businessID, phone).First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// Upsert locates the tenant's customer by phone or creates one, inside
// the caller's transaction. A concurrent create for the same phone trips
// the composite unique index; the order transaction retries as a whole.
func (r *customerRepository) Upsert(tx *gorm.DB, customer *models.Customer) error {
	var existing models.Customer
	err := tx.Where("business_id = ? AND phone = ?", customer.BusinessID, customer.Phone).
		First(&existing).Error
	if err == nil {
		existing.Name = customer.Name
		if customer.Email != "" {
			existing.Email = customer.Email
		}
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		*customer = existing
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return tx.Create(customer).Error
}
