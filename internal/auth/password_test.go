package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("namaste108", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "namaste108" {
		t.Fatal("hash equals plaintext")
	}
	if err := ComparePassword(hash, "namaste108"); err != nil {
		t.Fatalf("compare: %v", err)
	}
	if err := ComparePassword(hash, "wrong"); err == nil {
		t.Fatal("wrong password accepted")
	}
}

func TestVerifyAdminPassword(t *testing.T) {
	if !VerifyAdminPassword("admin123", "admin123") {
		t.Fatal("matching secret rejected")
	}
	if VerifyAdminPassword("admin123", "admin124") {
		t.Fatal("mismatched secret accepted")
	}
	if VerifyAdminPassword("admin123", "") {
		t.Fatal("empty submission accepted")
	}
}
