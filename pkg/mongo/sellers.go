package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/merabazaar/ecommerce-api/pkg/models"
)

func FindSellerByEmail(ctx context.Context, email string) (*models.Seller, error) {
	var seller models.Seller
	err := GetCollection("sellers").FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&seller)
	if err != nil {
		return nil, err
	}
	return &seller, nil
}

func FindSellerBySellerID(ctx context.Context, sellerID string) (*models.Seller, error) {
	var seller models.Seller
	err := GetCollection("sellers").FindOne(ctx, bson.D{{Key: "sellerId", Value: sellerID}}).Decode(&seller)
	if err != nil {
		return nil, err
	}
	return &seller, nil
}

func CreateSeller(ctx context.Context, seller *models.Seller) error {
	_, err := GetCollection("sellers").InsertOne(ctx, seller)
	return err
}
