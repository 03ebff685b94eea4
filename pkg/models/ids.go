package models

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
)

const trackingAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomInt(max int64) int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		panic(fmt.Sprintf("random source unavailable: %v", err))
	}
	return n.Int64()
}

// NewOrderID returns a 6-digit numeric order identifier.
func NewOrderID() string {
	return fmt.Sprintf("%d", 100000+randomInt(900000))
}

// NewTrackingID returns a 12-character uppercase alphanumeric tracking code.
func NewTrackingID() string {
	b := make([]byte, 12)
	for i := range b {
		b[i] = trackingAlphabet[randomInt(int64(len(trackingAlphabet)))]
	}
	return string(b)
}

// NewUserID returns a 16-character hex identifier (8 random bytes).
func NewUserID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("random source unavailable: %v", err))
	}
	return hex.EncodeToString(b)
}

// NewSellerID returns a seller identifier of the form MBSLR followed by 5 digits.
func NewSellerID() string {
	return fmt.Sprintf("MBSLR%d", 10000+randomInt(90000))
}

// NewProductID returns a product identifier of the form PROD followed by 6 digits.
func NewProductID() string {
	return fmt.Sprintf("PROD%d", 100000+randomInt(900000))
}
