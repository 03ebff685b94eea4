package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleUser   = "user"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// User is a shopper account. The password field holds a bcrypt hash and is
// never serialized into JSON responses.
type User struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    string        `json:"userId" bson:"userId"`
	Name      string        `json:"name" bson:"name"`
	Email     string        `json:"email" bson:"email"`
	Password  string        `json:"-" bson:"password"`
	Phone     string        `json:"phone" bson:"phone"`
	Role      string        `json:"role" bson:"role"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
}

type Seller struct {
	ID              bson.ObjectID `json:"id" bson:"_id,omitempty"`
	SellerID        string        `json:"sellerId" bson:"sellerId"`
	Name            string        `json:"name" bson:"name"`
	Email           string        `json:"email" bson:"email"`
	Password        string        `json:"-" bson:"password"`
	BusinessName    string        `json:"businessName" bson:"businessName"`
	BusinessAddress string        `json:"businessAddress" bson:"businessAddress"`
	Role            string        `json:"role" bson:"role"`
	CreatedAt       time.Time     `json:"createdAt" bson:"createdAt"`
}

// Admin accounts are provisioned out of band; there is no admin signup.
type Admin struct {
	ID       bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Name     string        `json:"name" bson:"name"`
	Email    string        `json:"email" bson:"email"`
	Password string        `json:"-" bson:"password"`
	Role     string        `json:"role" bson:"role"`
}

// Principal is the resolved identity behind a session: a tagged
// (kind, id) pair plus the profile fields handlers care about.
type Principal struct {
	Kind  string `json:"kind"`
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// HashPassword derives a bcrypt hash at the default cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
