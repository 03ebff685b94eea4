package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/merabazaar/ecommerce-api/pkg/models"
)

// Seller catalogs are the hottest read path, so listings are cached as one
// JSON blob per seller and invalidated whenever that seller's catalog
// changes.

const catalogTTL = 10 * time.Minute

func sellerCatalogKey(sellerID string) string {
	return fmt.Sprintf("seller:%s:products", sellerID)
}

func CacheSellerCatalog(ctx context.Context, sellerID string, products []*models.Product) error {
	client := RedisClient()
	defer client.Close()

	payload, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog for seller %s: %w", sellerID, err)
	}

	if err := client.Set(ctx, sellerCatalogKey(sellerID), payload, catalogTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache catalog for seller %s: %w", sellerID, err)
	}
	return nil
}

func GetSellerCatalogFromCache(ctx context.Context, sellerID string) ([]*models.Product, error) {
	client := RedisClient()
	defer client.Close()

	payload, err := client.Get(ctx, sellerCatalogKey(sellerID)).Result()
	if err != nil {
		return nil, err
	}

	var products []*models.Product
	if err := json.Unmarshal([]byte(payload), &products); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached catalog: %w", err)
	}
	return products, nil
}

func InvalidateSellerCatalog(ctx context.Context, sellerID string) error {
	client := RedisClient()
	defer client.Close()

	return client.Del(ctx, sellerCatalogKey(sellerID)).Err()
}
