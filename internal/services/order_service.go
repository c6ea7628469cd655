package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"order_kiosk/internal/apperrors"
	"order_kiosk/internal/models"
	"order_kiosk/internal/pricing"
	"order_kiosk/internal/repository"
	"order_kiosk/internal/validation"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, businessID uint, req *models.PlaceOrderRequest) (*models.Order, error)
	GetOrder(businessID, orderID uint) (*models.Order, error)
	ListOrders(businessID uint) ([]models.Order, error)
	UpdateStatus(orderID uint, next models.OrderStatus) (*models.Order, error)
}

type orderService struct {
	orders     repository.OrderRepository
	businesses repository.BusinessRepository
	catalog    CatalogService
	notifier   NotificationService
}

func NewOrderService(orders repository.OrderRepository, businesses repository.BusinessRepository, catalog CatalogService, notifier NotificationService) OrderService {
	return &orderService{orders: orders, businesses: businesses, catalog: catalog, notifier: notifier}
}

// PlaceOrder is the single order-creation entry point: validate the
// submission against the catalog, recompute every amount server-side,
// commit atomically with a fresh order number, then hand the committed
// order to the notifier. The client-computed total is never stored.
func (s *orderService) PlaceOrder(ctx context.Context, businessID uint, req *models.PlaceOrderRequest) (*models.Order, error) {
	business, err := s.businesses.GetByID(businessID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("business", businessID)
		}
		return nil, &apperrors.PersistenceError{Op: "business lookup", Err: err}
	}

	if verr := validateShape(req); verr.HasErrors() {
		return nil, verr
	}

	lineItems, total, err := s.buildLineItems(businessID, req)
	if err != nil {
		return nil, err
	}

	if req.ClientTotal != nil && !req.ClientTotal.Equal(total) {
		log.Printf("Order total mismatch for business %d: client sent %s, server computed %s",
			businessID, req.ClientTotal, total)
	}

	order := &models.Order{
		BusinessID:  business.ID,
		OrderType:   req.OrderType,
		Status:      models.OrderPending,
		TotalAmount: total,
		Notes:       req.Notes,
		LineItems:   lineItems,
	}
	customer := &models.Customer{
		BusinessID: business.ID,
		Name:       req.Customer.Name,
		Phone:      req.Customer.Phone,
		Email:      req.Customer.Email,
	}

	if err := s.orders.CreateWithSequence(ctx, order, customer); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.Enqueue(order)
	}
	return order, nil
}

func validateShape(req *models.PlaceOrderRequest) *apperrors.ValidationError {
	verr := apperrors.NewValidationError()
	if !req.OrderType.IsValid() {
		verr.Add("order_type", "must be dine_in or takeaway, got %q", req.OrderType)
	}
	if req.Customer.Name == "" {
		verr.Add("customer.name", "is required")
	}
	if req.Customer.Phone == "" {
		verr.Add("customer.phone", "is required")
	}
	if len(req.Items) == 0 {
		verr.Add("items", "order needs at least one item")
	}
	return verr
}

func (s *orderService) buildLineItems(businessID uint, req *models.PlaceOrderRequest) ([]models.OrderLineItem, decimal.Decimal, error) {
	verr := apperrors.NewValidationError()
	lineItems := make([]models.OrderLineItem, 0, len(req.Items))
	lineTotals := make([]decimal.Decimal, 0, len(req.Items))

	for i := range req.Items {
		item := &req.Items[i]
		field := fmt.Sprintf("items[%d]", i)

		product, err := s.catalog.GetProduct(businessID, item.ProductID)
		if err != nil {
			return nil, decimal.Zero, err
		}

		selections, itemErr := validation.ResolveSelections(product, item, field)
		if itemErr != nil {
			verr.Fields = append(verr.Fields, itemErr.Fields...)
			continue
		}

		lineTotal, err := pricing.LineTotal(product.BasePrice, item.Quantity, selections)
		if err != nil {
			verr.Add(field, "%v", err)
			continue
		}

		lineItems = append(lineItems, models.OrderLineItem{
			ProductID:       product.ID,
			ProductName:     product.Name,
			Quantity:        item.Quantity,
			UnitPrice:       product.BasePrice,
			LineTotal:       lineTotal,
			Notes:           item.Notes,
			SelectedOptions: selections,
		})
		lineTotals = append(lineTotals, lineTotal)
	}

	if verr.HasErrors() {
		return nil, decimal.Zero, verr
	}
	return lineItems, pricing.OrderTotal(lineTotals), nil
}

func (s *orderService) GetOrder(businessID, orderID uint) (*models.Order, error) {
	order, err := s.orders.GetByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("order", orderID)
		}
		return nil, &apperrors.PersistenceError{Op: "order lookup", Err: err}
	}
	// Tenant isolation: an order id from another business is a 404, not
	// someone else's data.
	if order.BusinessID != businessID {
		return nil, apperrors.NewNotFoundError("order", orderID)
	}
	return order, nil
}

func (s *orderService) ListOrders(businessID uint) ([]models.Order, error) {
	orders, err := s.orders.GetByBusiness(businessID)
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "order listing", Err: err}
	}
	return orders, nil
}

func (s *orderService) UpdateStatus(orderID uint, next models.OrderStatus) (*models.Order, error) {
	order, err := s.orders.GetByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("order", orderID)
		}
		return nil, &apperrors.PersistenceError{Op: "order lookup", Err: err}
	}

	if !next.IsValid() {
		verr := apperrors.NewValidationError()
		verr.Add("status", "unknown status %q", next)
		return nil, verr
	}
	if !order.Status.CanTransitionTo(next) {
		verr := apperrors.NewValidationError()
		verr.Add("status", "cannot transition from %s to %s", order.Status, next)
		return nil, verr
	}

	order.Status = next
	if err := s.orders.UpdateStatus(order); err != nil {
		return nil, &apperrors.PersistenceError{Op: "status update", Err: err}
	}
	return order, nil
}
