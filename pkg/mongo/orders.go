package mongo

import (
	"context"

	"github.com/merabazaar/ecommerce-api/pkg/models"
)

func InsertOrder(ctx context.Context, order *models.Order) error {
	_, err := GetCollection("orders").InsertOne(ctx, order)
	return err
}
