package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/merabazaar/ecommerce-api/pkg/models"
)

func CreateCoupon(ctx context.Context, coupon *models.Coupon) error {
	_, err := GetCollection("coupons").InsertOne(ctx, coupon)
	return err
}

// FindCouponByCode expects an already-normalized (uppercase) code.
func FindCouponByCode(ctx context.Context, code string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := GetCollection("coupons").FindOne(ctx, bson.D{{Key: "code", Value: code}}).Decode(&coupon)
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

func DeleteCouponByCode(ctx context.Context, code string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := GetCollection("coupons").
		FindOneAndDelete(ctx, bson.D{{Key: "code", Value: code}}).
		Decode(&coupon)
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

// ListCoupons returns every coupon record, inactive and expired ones
// included. Display filtering is the caller's concern.
func ListCoupons(ctx context.Context) ([]*models.Coupon, error) {
	cursor, err := GetCollection("coupons").Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var coupons []*models.Coupon
	if err := cursor.All(ctx, &coupons); err != nil {
		return nil, err
	}
	return coupons, nil
}
