package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// CartItem is one (product, quantity) line. The quantity field name is the
// same on the create and append paths.
type CartItem struct {
	ProductID string `json:"productId" bson:"productId"`
	Quantity  int    `json:"quantity" bson:"quantity"`
}

// Cart holds a user's line items. Exactly one cart exists per userId,
// enforced by a unique index on the collection.
type Cart struct {
	ID             bson.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID         string        `json:"userId" bson:"userId"`
	ProductsInCart []CartItem    `json:"productsInCart" bson:"productsInCart"`
}

func NewCart(userID string, item CartItem) *Cart {
	return &Cart{
		ID:             bson.NewObjectID(),
		UserID:         userID,
		ProductsInCart: []CartItem{item},
	}
}

// AddItem appends a line item. Repeated adds of the same product produce
// separate line entries; callers that want merging must dedupe themselves.
func (c *Cart) AddItem(productID string, quantity int) {
	c.ProductsInCart = append(c.ProductsInCart, CartItem{ProductID: productID, Quantity: quantity})
}

// SetQuantity overwrites the quantity on every line item matching productID
// and reports whether any line matched.
func (c *Cart) SetQuantity(productID string, quantity int) bool {
	found := false
	for i := range c.ProductsInCart {
		if c.ProductsInCart[i].ProductID == productID {
			c.ProductsInCart[i].Quantity = quantity
			found = true
		}
	}
	return found
}

// RemoveItems drops every line item matching productID and returns how many
// lines were removed.
func (c *Cart) RemoveItems(productID string) int {
	kept := c.ProductsInCart[:0]
	removed := 0
	for _, item := range c.ProductsInCart {
		if item.ProductID == productID {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	c.ProductsInCart = kept
	return removed
}
