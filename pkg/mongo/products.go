package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/merabazaar/ecommerce-api/pkg/models"
)

func CreateProduct(ctx context.Context, product *models.Product) error {
	_, err := GetCollection("products").InsertOne(ctx, product)
	return err
}

// DeleteProductByProductID removes the listing and returns it so callers can
// clean up derived state (the seller-catalog cache).
func DeleteProductByProductID(ctx context.Context, productID string) (*models.Product, error) {
	var product models.Product
	err := GetCollection("products").
		FindOneAndDelete(ctx, bson.D{{Key: "productId", Value: productID}}).
		Decode(&product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func FindProductsBySeller(ctx context.Context, sellerID string) ([]*models.Product, error) {
	cursor, err := GetCollection("products").Find(ctx, bson.D{{Key: "sellerId", Value: sellerID}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []*models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// FindProductsByIDs resolves the referenced products in one batch. IDs with
// no matching listing are simply absent from the result.
func FindProductsByIDs(ctx context.Context, productIDs []string) ([]*models.Product, error) {
	filter := bson.D{{Key: "productId", Value: bson.D{{Key: "$in", Value: productIDs}}}}
	cursor, err := GetCollection("products").Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []*models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
