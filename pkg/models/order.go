package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Order is immutable once written. Name and Email are snapshots of the user
// at placement time so later profile edits don't rewrite order history.
type Order struct {
	ID              bson.ObjectID `json:"id" bson:"_id,omitempty"`
	OrderID         string        `json:"orderId" bson:"orderId"`
	TrackingID      string        `json:"trackingId" bson:"trackingId"`
	UserID          string        `json:"userId" bson:"userId"`
	Date            string        `json:"date" bson:"date"`
	Time            string        `json:"time" bson:"time"`
	Address         string        `json:"address" bson:"address"`
	Email           string        `json:"email" bson:"email"`
	Name            string        `json:"name" bson:"name"`
	ProductIDs      []string      `json:"productIds" bson:"productIds"`
	Price           float64       `json:"price" bson:"price"`
	FreeDelivery    bool          `json:"freeDelivery" bson:"freeDelivery"`
	DiscountApplied float64       `json:"discountApplied" bson:"discountApplied"`
	CreatedAt       time.Time     `json:"createdAt" bson:"createdAt"`
}

// OrderLine is one requested (product, quantity) pair.
type OrderLine struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type PlaceOrderRequest struct {
	UserID          string      `json:"userId" binding:"required"`
	Date            string      `json:"date"`
	Time            string      `json:"time"`
	Address         string      `json:"address" binding:"required"`
	ProductsOrdered []OrderLine `json:"productsOrdered" binding:"required,min=1,dive"`
}

const (
	discountThreshold     = 500.0
	discountPercentage    = 10.0
	freeDeliveryThreshold = 1000.0
)

// OrderTotals is the pricing breakdown for an order.
type OrderTotals struct {
	Subtotal     float64
	Discount     float64
	Total        float64
	FreeDelivery bool
}

// ComputeOrderTotals applies the threshold discount and the free-delivery
// rule. Free delivery is decided on the post-discount total, not the
// subtotal, so a 1200 subtotal (1080 after discount) still qualifies while a
// 1050 subtotal (945 after discount) does not.
func ComputeOrderTotals(subtotal float64) OrderTotals {
	t := OrderTotals{Subtotal: subtotal, Total: subtotal}
	if subtotal >= discountThreshold {
		t.Discount = subtotal * discountPercentage / 100
		t.Total = subtotal - t.Discount
	}
	t.FreeDelivery = t.Total >= freeDeliveryThreshold
	return t
}

// OrderSubtotal accumulates unit price times quantity over the requested
// lines. Lines whose product is missing from priceByID are skipped.
func OrderSubtotal(lines []OrderLine, priceByID map[string]float64) float64 {
	var subtotal float64
	for _, line := range lines {
		if price, ok := priceByID[line.ProductID]; ok {
			subtotal += price * float64(line.Quantity)
		}
	}
	return subtotal
}
