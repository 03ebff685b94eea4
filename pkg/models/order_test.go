package models

import (
	"math"
	"regexp"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeOrderTotals(t *testing.T) {
	cases := []struct {
		subtotal     float64
		discount     float64
		total        float64
		freeDelivery bool
	}{
		{0, 0, 0, false},
		{499, 0, 499, false},
		{500, 50, 450, false},
		{999, 99.9, 899.1, false},
		{1000, 100, 900, false},
		// free delivery is decided after the discount: 1050 drops below the
		// threshold once discounted, 1112 stays above it
		{1050, 105, 945, false},
		{1112, 111.2, 1000.8, true},
		{1200, 120, 1080, true},
	}

	for _, tc := range cases {
		got := ComputeOrderTotals(tc.subtotal)
		if !almostEqual(got.Discount, tc.discount) {
			t.Errorf("subtotal %v: discount = %v, want %v", tc.subtotal, got.Discount, tc.discount)
		}
		if !almostEqual(got.Total, tc.total) {
			t.Errorf("subtotal %v: total = %v, want %v", tc.subtotal, got.Total, tc.total)
		}
		if got.FreeDelivery != tc.freeDelivery {
			t.Errorf("subtotal %v: freeDelivery = %v, want %v", tc.subtotal, got.FreeDelivery, tc.freeDelivery)
		}
		if !almostEqual(got.Subtotal, tc.subtotal) {
			t.Errorf("subtotal %v: echoed subtotal = %v", tc.subtotal, got.Subtotal)
		}
	}
}

func TestOrderSubtotalSkipsUnresolvedProducts(t *testing.T) {
	lines := []OrderLine{
		{ProductID: "PROD100001", Quantity: 2},
		{ProductID: "PROD999999", Quantity: 5}, // not in the price map
		{ProductID: "PROD100002", Quantity: 1},
	}
	prices := map[string]float64{
		"PROD100001": 100,
		"PROD100002": 49.5,
	}

	got := OrderSubtotal(lines, prices)
	if !almostEqual(got, 249.5) {
		t.Fatalf("OrderSubtotal = %v, want 249.5", got)
	}
}

func TestOrderSubtotalEmpty(t *testing.T) {
	if got := OrderSubtotal(nil, nil); got != 0 {
		t.Fatalf("OrderSubtotal(nil, nil) = %v, want 0", got)
	}
}

func TestNewOrderIDFormat(t *testing.T) {
	re := regexp.MustCompile(`^[0-9]{6}$`)
	for i := 0; i < 100; i++ {
		id := NewOrderID()
		if !re.MatchString(id) {
			t.Fatalf("NewOrderID() = %q, want 6 digits", id)
		}
	}
}

func TestNewTrackingIDFormat(t *testing.T) {
	re := regexp.MustCompile(`^[A-Z0-9]{12}$`)
	for i := 0; i < 100; i++ {
		id := NewTrackingID()
		if !re.MatchString(id) {
			t.Fatalf("NewTrackingID() = %q, want 12 uppercase alphanumerics", id)
		}
	}
}
