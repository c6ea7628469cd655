package repository

import (
	"order_kiosk/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BusinessRepository interface {
	GetByID(id uint) (*models.Business, error)
	NextOrderNumber(tx *gorm.DB, businessID uint) (int, error)
}

type businessRepository struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) BusinessRepository {
	return &businessRepository{db: db}
}

func (r *businessRepository) GetByID(id uint) (*models.Business, error) {
	var business models.Business
	err := r.db.First(&business, id).Error
	if err != nil {
		return nil, err
	}
	return &business, nil
}

// NextOrderNumber assigns the next per-tenant order number. The business
// row is locked FOR UPDATE so two concurrent submissions for the same
// tenant serialize here; the caller must run this inside the same
// transaction that inserts the order, otherwise a rollback leaks the
// number without the lock ever having helped.
func (r *businessRepository) NextOrderNumber(tx *gorm.DB, businessID uint) (int, error) {
	var business models.Business
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&business, businessID).Error; err != nil {
		return 0, err
	}

	next := business.LastOrderNumber + 1
	if next < business.OrderStartNumber {
		next = business.OrderStartNumber
	}

	err := tx.Model(&models.Business{}).Where("id = ?", businessID).
		Update("last_order_number", next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}
