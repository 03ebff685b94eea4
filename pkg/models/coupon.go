package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Coupon is a promotional code. Codes are stored uppercase and matched
// case-insensitively by normalizing lookups the same way.
type Coupon struct {
	ID                 bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Code               string        `json:"code" bson:"code"`
	DiscountPercentage float64       `json:"discountPercentage" bson:"discountPercentage"`
	ExpirationDate     *time.Time    `json:"expirationDate,omitempty" bson:"expirationDate,omitempty"`
	IsActive           bool          `json:"isActive" bson:"isActive"`
	CreatedAt          time.Time     `json:"createdAt" bson:"createdAt"`
}

type CreateCouponRequest struct {
	Code               string     `json:"code" binding:"required"`
	DiscountPercentage float64    `json:"discountPercentage"`
	ExpirationDate     *time.Time `json:"expirationDate"`
}

// NormalizeCouponCode uppercases and trims a coupon code so that creation and
// lookup agree on a single canonical form.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidateDiscountPercentage bounds the discount to [0, 100].
func ValidateDiscountPercentage(p float64) error {
	if p < 0 || p > 100 {
		return fmt.Errorf("discountPercentage must be between 0 and 100, got %v", p)
	}
	return nil
}

func (r *CreateCouponRequest) ToCoupon() (*Coupon, error) {
	if err := ValidateDiscountPercentage(r.DiscountPercentage); err != nil {
		return nil, err
	}
	return &Coupon{
		ID:                 bson.NewObjectID(),
		Code:               NormalizeCouponCode(r.Code),
		DiscountPercentage: r.DiscountPercentage,
		ExpirationDate:     r.ExpirationDate,
		IsActive:           true,
		CreatedAt:          time.Now(),
	}, nil
}

// IsValid reports whether the coupon can be redeemed at the given instant:
// it must be active and, when an expiration date is set, not yet expired.
func (c *Coupon) IsValid(now time.Time) bool {
	if !c.IsActive {
		return false
	}
	if c.ExpirationDate != nil && !c.ExpirationDate.After(now) {
		return false
	}
	return true
}
