package models

import (
	"testing"
)

func TestCartAddItemKeepsInsertionOrder(t *testing.T) {
	cart := NewCart("user-1", CartItem{ProductID: "PROD100001", Quantity: 1})
	cart.AddItem("PROD100002", 3)

	if len(cart.ProductsInCart) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(cart.ProductsInCart))
	}
	if cart.ProductsInCart[0].ProductID != "PROD100001" || cart.ProductsInCart[1].ProductID != "PROD100002" {
		t.Fatalf("line items out of order: %+v", cart.ProductsInCart)
	}
}

func TestCartAddItemDoesNotMergeDuplicates(t *testing.T) {
	cart := NewCart("user-1", CartItem{ProductID: "PROD100001", Quantity: 1})
	cart.AddItem("PROD100001", 2)

	if len(cart.ProductsInCart) != 2 {
		t.Fatalf("repeated adds must create separate lines, got %d", len(cart.ProductsInCart))
	}
}

func TestCartSetQuantity(t *testing.T) {
	cart := NewCart("user-1", CartItem{ProductID: "PROD100001", Quantity: 1})
	cart.AddItem("PROD100002", 3)
	cart.AddItem("PROD100001", 2)

	if !cart.SetQuantity("PROD100001", 7) {
		t.Fatal("SetQuantity should find the product")
	}
	// every matching line is overwritten
	if cart.ProductsInCart[0].Quantity != 7 || cart.ProductsInCart[2].Quantity != 7 {
		t.Fatalf("quantities not overwritten: %+v", cart.ProductsInCart)
	}
	if cart.ProductsInCart[1].Quantity != 3 {
		t.Fatalf("unrelated line modified: %+v", cart.ProductsInCart[1])
	}
}

func TestCartSetQuantityMissingProductLeavesCartUnmodified(t *testing.T) {
	cart := NewCart("user-1", CartItem{ProductID: "PROD100001", Quantity: 1})

	if cart.SetQuantity("PROD999999", 5) {
		t.Fatal("SetQuantity should report a miss")
	}
	if cart.ProductsInCart[0].Quantity != 1 {
		t.Fatalf("cart was modified on a miss: %+v", cart.ProductsInCart)
	}
}

func TestCartRemoveItemsRemovesAllMatches(t *testing.T) {
	cart := NewCart("user-1", CartItem{ProductID: "PROD100001", Quantity: 1})
	cart.AddItem("PROD100002", 3)
	cart.AddItem("PROD100001", 2)

	removed := cart.RemoveItems("PROD100001")
	if removed != 2 {
		t.Fatalf("removed = %d, want 2", removed)
	}
	if len(cart.ProductsInCart) != 1 || cart.ProductsInCart[0].ProductID != "PROD100002" {
		t.Fatalf("unexpected remaining items: %+v", cart.ProductsInCart)
	}

	if removed := cart.RemoveItems("PROD100001"); removed != 0 {
		t.Fatalf("second removal should remove nothing, got %d", removed)
	}
}
