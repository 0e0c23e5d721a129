package auth

import (
	"strings"
	"testing"

	"github.com/doantruongnsg/sobanhang/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	account := models.UserAccount{
		Username: "cashier1",
		Name:     "Till One",
		Role:     models.RoleCashier,
	}

	token, err := GenerateToken(account)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if claims.Username != "cashier1" || claims.Name != "Till One" || claims.Role != models.RoleCashier {
		t.Errorf("claims lost in round trip: %+v", claims)
	}
}

func TestValidateToken_RejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Error("garbage token must be rejected")
	}
}

func TestValidateToken_RejectsWrongKey(t *testing.T) {
	SetSecret("key-one")
	token, err := GenerateToken(models.UserAccount{Username: "admin"})
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	SetSecret("key-two")
	defer SetSecret("key-one")
	if _, err := ValidateToken(token); err == nil {
		t.Error("token signed with a different key must be rejected")
	}
}

func TestPasswordHashAndCheck(t *testing.T) {
	hashed, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !strings.HasPrefix(hashed, "$2") {
		t.Errorf("hash %q does not look like bcrypt", hashed)
	}
	if !CheckPassword(hashed, "admin123") {
		t.Error("correct password must verify")
	}
	if CheckPassword(hashed, "admin124") {
		t.Error("wrong password must not verify")
	}
}

func TestEnsureHashed(t *testing.T) {
	accounts := []models.UserAccount{
		{Username: "admin", Password: "admin123"},
		{Username: "cashier1", Password: "$2a$10$already.hashed.placeholder"},
	}

	out := EnsureHashed(accounts)

	if !strings.HasPrefix(out[0].Password, "$2") {
		t.Error("plaintext password must be upgraded to a hash")
	}
	if !CheckPassword(out[0].Password, "admin123") {
		t.Error("upgraded hash must still verify the original password")
	}
	if out[1].Password != "$2a$10$already.hashed.placeholder" {
		t.Error("already-hashed passwords must pass through untouched")
	}
	if accounts[0].Password != "admin123" {
		t.Error("input slice must not be mutated")
	}
}
