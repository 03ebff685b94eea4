package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Product is a seller-scoped catalog listing. Images holds the stored upload
// paths in the order they were received.
type Product struct {
	ID             bson.ObjectID `json:"id" bson:"_id,omitempty"`
	ProductID      string        `json:"productId" bson:"productId"`
	Name           string        `json:"name" bson:"name"`
	Price          float64       `json:"price" bson:"price"`
	Images         []string      `json:"images" bson:"images"`
	Category       string        `json:"category" bson:"category"`
	Rating         float64       `json:"rating" bson:"rating"`
	InStockValue   int           `json:"inStockValue" bson:"inStockValue"`
	SoldStockValue int           `json:"soldStockValue" bson:"soldStockValue"`
	Visibility     string        `json:"visibility" bson:"visibility"`
	SellerID       string        `json:"sellerId" bson:"sellerId"`
	Description    string        `json:"description" bson:"description"`
}

const defaultVisibility = "on"

// NewProduct fills in the generated identifier and defaults.
func NewProduct(name string, price float64, category, description string, inStockValue int, sellerID string, images []string) *Product {
	return &Product{
		ID:           bson.NewObjectID(),
		ProductID:    NewProductID(),
		Name:         name,
		Price:        price,
		Images:       images,
		Category:     category,
		InStockValue: inStockValue,
		Visibility:   defaultVisibility,
		SellerID:     sellerID,
		Description:  description,
	}
}
