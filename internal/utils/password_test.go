package utils

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	// MinCost keeps the test fast; the cost only tunes work factor, not
	// the hash/verify contract the seeding path relies on.
	hash, err := HashPassword("florarie123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "florarie123" {
		t.Fatal("hash must not equal the plain password")
	}
	if !VerifyPassword(hash, "florarie123") {
		t.Error("correct password should verify")
	}
	if VerifyPassword(hash, "florarie124") {
		t.Error("wrong password must not verify")
	}
}

func TestHashPasswordRejectsBadCost(t *testing.T) {
	if _, err := HashPassword("florarie123", bcrypt.MaxCost+1); err == nil {
		t.Error("out-of-range cost should be rejected")
	}
}
