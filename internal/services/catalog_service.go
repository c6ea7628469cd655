package services

import (
	"errors"
	"log"
	"time"

	"order_kiosk/internal/apperrors"
	"order_kiosk/internal/models"
	"order_kiosk/internal/redis"
	"order_kiosk/internal/repository"

	"gorm.io/gorm"
)

// CatalogService is the read side of the product catalog. Order intake
// sees it as a consistent snapshot provider; cache misses and cache
// failures both fall through to the database.
type CatalogService interface {
	GetProduct(businessID, productID uint) (*models.Product, error)
	ListProducts(businessID uint) ([]models.Product, error)
}

type catalogService struct {
	products repository.ProductRepository
	cache    *redis.Client
	cacheTTL time.Duration
}

func NewCatalogService(products repository.ProductRepository, cache *redis.Client, cacheTTL time.Duration) CatalogService {
	return &catalogService{products: products, cache: cache, cacheTTL: cacheTTL}
}

func (s *catalogService) GetProduct(businessID, productID uint) (*models.Product, error) {
	if s.cache != nil {
		if product, err := s.cache.GetProduct(businessID, productID); err == nil {
			return product, nil
		}
	}

	product, err := s.products.GetWithOptions(businessID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("product", productID)
		}
		return nil, &apperrors.PersistenceError{Op: "product lookup", Err: err}
	}

	if s.cache != nil {
		if err := s.cache.SetProduct(businessID, product, s.cacheTTL); err != nil {
			log.Printf("Warning: failed to cache product %d: %v", productID, err)
		}
	}
	return product, nil
}

func (s *catalogService) ListProducts(businessID uint) ([]models.Product, error) {
	if s.cache != nil {
		if products, err := s.cache.GetProductList(businessID); err == nil {
			return products, nil
		}
	}

	products, err := s.products.ListByBusiness(businessID)
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "catalog listing", Err: err}
	}

	if s.cache != nil {
		if err := s.cache.SetProductList(businessID, products, s.cacheTTL); err != nil {
			log.Printf("Warning: failed to cache catalog for business %d: %v", businessID, err)
		}
	}
	return products, nil
}
