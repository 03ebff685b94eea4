package models

import (
	"regexp"
	"testing"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pw")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "s3cret-pw" {
		t.Fatal("password stored in the clear")
	}
	if !CheckPassword(hash, "s3cret-pw") {
		t.Fatal("correct password rejected")
	}
	if CheckPassword(hash, "wrong-pw") {
		t.Fatal("wrong password accepted")
	}
}

func TestIdentityIDFormats(t *testing.T) {
	if id := NewUserID(); !regexp.MustCompile(`^[0-9a-f]{16}$`).MatchString(id) {
		t.Errorf("NewUserID() = %q, want 16 hex chars", id)
	}
	if id := NewSellerID(); !regexp.MustCompile(`^MBSLR[0-9]{5}$`).MatchString(id) {
		t.Errorf("NewSellerID() = %q, want MBSLR + 5 digits", id)
	}
	if id := NewProductID(); !regexp.MustCompile(`^PROD[0-9]{6}$`).MatchString(id) {
		t.Errorf("NewProductID() = %q, want PROD + 6 digits", id)
	}
}
