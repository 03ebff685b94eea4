package router

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/merabazaar/ecommerce-api/pkg/models"
)

func TestAddCartItemPushesExistingCart(t *testing.T) {
	pushes := 0
	push := func(_ context.Context, _ string, _ models.CartItem) (bool, error) {
		pushes++
		return true, nil
	}
	createCart := func(_ context.Context, _ *models.Cart) error {
		t.Fatal("an existing cart must not be recreated")
		return nil
	}

	err := addCartItem(context.Background(), push, createCart, "user-1",
		models.CartItem{ProductID: "PROD100001", Quantity: 2})

	assert.NoError(t, err)
	assert.Equal(t, 1, pushes)
}

func TestAddCartItemCreatesCartOnFirstAdd(t *testing.T) {
	var created *models.Cart
	push := func(_ context.Context, _ string, _ models.CartItem) (bool, error) {
		return false, nil
	}
	createCart := func(_ context.Context, cart *models.Cart) error {
		created = cart
		return nil
	}

	err := addCartItem(context.Background(), push, createCart, "user-1",
		models.CartItem{ProductID: "PROD100002", Quantity: 1})

	assert.NoError(t, err)
	if assert.NotNil(t, created) {
		assert.Equal(t, "user-1", created.UserID)
		assert.Len(t, created.ProductsInCart, 1)
	}
}

func TestAddCartItemRetriesPushWhenCreateLosesRace(t *testing.T) {
	// Two simultaneous first adds: this caller's push misses, its create
	// collides with the winner's cart, and the retried push must land on
	// that cart instead of surfacing an error.
	pushes := 0
	push := func(_ context.Context, _ string, _ models.CartItem) (bool, error) {
		pushes++
		return pushes > 1, nil
	}
	createCart := func(_ context.Context, _ *models.Cart) error {
		return mongo.CommandError{Code: 11000}
	}

	err := addCartItem(context.Background(), push, createCart, "user-1",
		models.CartItem{ProductID: "PROD100003", Quantity: 3})

	assert.NoError(t, err)
	assert.Equal(t, 2, pushes)
}

func TestAddCartItemSurfacesCreateFailure(t *testing.T) {
	push := func(_ context.Context, _ string, _ models.CartItem) (bool, error) {
		return false, nil
	}
	createCart := func(_ context.Context, _ *models.Cart) error {
		return errors.New("write concern timeout")
	}

	err := addCartItem(context.Background(), push, createCart, "user-1",
		models.CartItem{ProductID: "PROD100004", Quantity: 1})

	assert.Error(t, err)
}
