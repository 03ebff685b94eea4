package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/merabazaar/ecommerce-api/pkg/models"
)

func FindAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := GetCollection("admins").FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&admin)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func FindAdminByID(ctx context.Context, id string) (*models.Admin, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var admin models.Admin
	err = GetCollection("admins").FindOne(ctx, bson.D{{Key: "_id", Value: objectID}}).Decode(&admin)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
