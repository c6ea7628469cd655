package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"order_kiosk/internal/models"
)

// Client caches catalog snapshots. Order validation reads one snapshot
// per pass, which is what locks prices against concurrent catalog edits.
type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

func productKey(businessID, productID uint) string {
	return fmt.Sprintf("catalog:%d:product:%d", businessID, productID)
}

func catalogKey(businessID uint) string {
	return fmt.Sprintf("catalog:%d:products", businessID)
}

func (c *Client) SetProduct(businessID uint, product *models.Product, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to marshal product: %w", err)
	}
	return c.rdb.Set(ctx, productKey(businessID, product.ID), jsonData, ttl).Err()
}

func (c *Client) GetProduct(businessID, productID uint) (*models.Product, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, productKey(businessID, productID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("product not cached")
		}
		return nil, fmt.Errorf("failed to get cached product: %w", err)
	}

	var product models.Product
	if err := json.Unmarshal([]byte(val), &product); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached product: %w", err)
	}
	return &product, nil
}

func (c *Client) InvalidateProduct(businessID, productID uint) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, productKey(businessID, productID), catalogKey(businessID)).Err()
}

func (c *Client) SetProductList(businessID uint, products []models.Product, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to marshal product list: %w", err)
	}
	return c.rdb.Set(ctx, catalogKey(businessID), jsonData, ttl).Err()
}

func (c *Client) GetProductList(businessID uint) ([]models.Product, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, catalogKey(businessID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("catalog not cached")
		}
		return nil, fmt.Errorf("failed to get cached catalog: %w", err)
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(val), &products); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached catalog: %w", err)
	}
	return products, nil
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
