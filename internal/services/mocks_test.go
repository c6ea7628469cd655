package services

import (
	"context"

	"gorm.io/gorm"

	"order_kiosk/internal/models"
)

// MockOrderRepository is a function-field fake of repository.OrderRepository.
type MockOrderRepository struct {
	CreateWithSequenceFunc func(ctx context.Context, order *models.Order, customer *models.Customer) error
	GetByIDFunc            func(id uint) (*models.Order, error)
	GetByBusinessFunc      func(businessID uint) ([]models.Order, error)
	UpdateStatusFunc       func(order *models.Order) error
}

func (m *MockOrderRepository) CreateWithSequence(ctx context.Context, order *models.Order, customer *models.Customer) error {
	if m.CreateWithSequenceFunc != nil {
		return m.CreateWithSequenceFunc(ctx, order, customer)
	}
	return nil
}

func (m *MockOrderRepository) GetByID(id uint) (*models.Order, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockOrderRepository) GetByBusiness(businessID uint) ([]models.Order, error) {
	if m.GetByBusinessFunc != nil {
		return m.GetByBusinessFunc(businessID)
	}
	return nil, nil
}

func (m *MockOrderRepository) UpdateStatus(order *models.Order) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(order)
	}
	return nil
}

// MockBusinessRepository is a function-field fake of repository.BusinessRepository.
type MockBusinessRepository struct {
	GetByIDFunc         func(id uint) (*models.Business, error)
	NextOrderNumberFunc func(tx *gorm.DB, businessID uint) (int, error)
}

func (m *MockBusinessRepository) GetByID(id uint) (*models.Business, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockBusinessRepository) NextOrderNumber(tx *gorm.DB, businessID uint) (int, error) {
	if m.NextOrderNumberFunc != nil {
		return m.NextOrderNumberFunc(tx, businessID)
	}
	return 1, nil
}

// MockCatalogService is a function-field fake of CatalogService.
type MockCatalogService struct {
	GetProductFunc   func(businessID, productID uint) (*models.Product, error)
	ListProductsFunc func(businessID uint) ([]models.Product, error)
}

func (m *MockCatalogService) GetProduct(businessID, productID uint) (*models.Product, error) {
	if m.GetProductFunc != nil {
		return m.GetProductFunc(businessID, productID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockCatalogService) ListProducts(businessID uint) ([]models.Product, error) {
	if m.ListProductsFunc != nil {
		return m.ListProductsFunc(businessID)
	}
	return nil, nil
}

// MockNotificationService records enqueued orders.
type MockNotificationService struct {
	Enqueued []*models.Order
}

func (m *MockNotificationService) Start() {}
func (m *MockNotificationService) Stop()  {}

func (m *MockNotificationService) Enqueue(order *models.Order) {
	m.Enqueued = append(m.Enqueued, order)
}
