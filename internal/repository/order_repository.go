package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"order_kiosk/internal/apperrors"
	"order_kiosk/internal/models"

	"gorm.io/gorm"
)

// maxCommitAttempts bounds retries when the commit transaction loses a
// race on the order-number lock or the customer phone index.
const maxCommitAttempts = 3

type OrderRepository interface {
	CreateWithSequence(ctx context.Context, order *models.Order, customer *models.Customer) error
	GetByID(id uint) (*models.Order, error)
	GetByBusiness(businessID uint) ([]models.Order, error)
	UpdateStatus(order *models.Order) error
}

type orderRepository struct {
	db         *gorm.DB
	businesses BusinessRepository
	customers  CustomerRepository
}

func NewOrderRepository(db *gorm.DB, businesses BusinessRepository, customers CustomerRepository) OrderRepository {
	return &orderRepository{db: db, businesses: businesses, customers: customers}
}

// CreateWithSequence commits customer upsert, order-number assignment and
// the order with all its line items and selected options as one
// transaction. Nothing from a failed attempt stays visible; the assigned
// number is consumed only if the whole order lands.
func (r *orderRepository) CreateWithSequence(ctx context.Context, order *models.Order, customer *models.Customer) error {
	var lastErr error
	for attempt := 0; attempt < maxCommitAttempts; attempt++ {
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := r.customers.Upsert(tx, customer); err != nil {
				return err
			}
			order.CustomerID = customer.ID

			number, err := r.businesses.NextOrderNumber(tx, order.BusinessID)
			if err != nil {
				return err
			}
			order.OrderNumber = number

			// Creates line items and selected options through the
			// associations in the same statement batch.
			return tx.Create(order).Error
		})
		if err == nil {
			order.Customer = *customer
			return nil
		}
		if !isRetryableConflict(err) {
			return &apperrors.PersistenceError{Op: "order commit", Err: err}
		}
		lastErr = err
		resetForRetry(order, customer)
	}
	return &apperrors.ConflictError{
		Message: fmt.Sprintf("order commit failed after %d attempts: %v", maxCommitAttempts, lastErr),
	}
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.
		Preload("Customer").
		Preload("LineItems").
		Preload("LineItems.SelectedOptions").
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByBusiness(businessID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.
		Preload("Customer").
		Where("business_id = ?", businessID).
		Order("order_number DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) UpdateStatus(order *models.Order) error {
	return r.db.Model(&models.Order{}).Where("id = ?", order.ID).
		Update("status", order.Status).Error
}

func isRetryableConflict(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "deadlock detected") ||
		strings.Contains(msg, "could not serialize access")
}

// resetForRetry clears primary keys a failed attempt may have filled in,
// so gorm inserts fresh rows instead of updating ghosts.
func resetForRetry(order *models.Order, customer *models.Customer) {
	// The upsert re-resolves the customer by phone on the next attempt.
	customer.ID = 0
	order.ID = 0
	order.CustomerID = 0
	order.OrderNumber = 0
	for i := range order.LineItems {
		order.LineItems[i].ID = 0
		order.LineItems[i].OrderID = 0
		for j := range order.LineItems[i].SelectedOptions {
			order.LineItems[i].SelectedOptions[j].ID = 0
			order.LineItems[i].SelectedOptions[j].OrderLineItemID = 0
		}
	}
}
