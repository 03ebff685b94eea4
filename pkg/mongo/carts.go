package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/merabazaar/ecommerce-api/pkg/models"
)

func FindCartByUserID(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := GetCollection("carts").FindOne(ctx, bson.D{{Key: "userId", Value: userID}}).Decode(&cart)
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func CreateCart(ctx context.Context, cart *models.Cart) error {
	_, err := GetCollection("carts").InsertOne(ctx, cart)
	return err
}

// PushCartItem appends a line item to an existing cart and reports whether a
// cart for the user was found at all.
func PushCartItem(ctx context.Context, userID string, item models.CartItem) (bool, error) {
	result, err := GetCollection("carts").UpdateOne(ctx,
		bson.D{{Key: "userId", Value: userID}},
		bson.D{{Key: "$push", Value: bson.D{{Key: "productsInCart", Value: item}}}},
	)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

// SaveCartItems overwrites the full line-item list of a user's cart.
func SaveCartItems(ctx context.Context, userID string, items []models.CartItem) error {
	_, err := GetCollection("carts").UpdateOne(ctx,
		bson.D{{Key: "userId", Value: userID}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "productsInCart", Value: items}}}},
	)
	return err
}

// PullCartItems removes every line item matching productID in one mutation
// and reports whether anything was actually removed.
func PullCartItems(ctx context.Context, userID, productID string) (bool, error) {
	result, err := GetCollection("carts").UpdateOne(ctx,
		bson.D{{Key: "userId", Value: userID}},
		bson.D{{Key: "$pull", Value: bson.D{
			{Key: "productsInCart", Value: bson.D{{Key: "productId", Value: productID}}},
		}}},
	)
	if err != nil {
		return false, err
	}
	return result.ModifiedCount > 0, nil
}
