package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/doantruongnsg/sobanhang/internal/models"
)

// HashPassword bcrypt-hashes a plaintext password.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword compares a stored hash against a login attempt.
func CheckPassword(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

// EnsureHashed upgrades any plaintext passwords in the account list to
// bcrypt hashes. Seed data and documents imported from older installs store
// credentials in the clear; this runs on every load so they never stay that
// way.
func EnsureHashed(accounts []models.UserAccount) []models.UserAccount {
	out := make([]models.UserAccount, len(accounts))
	for i, acc := range accounts {
		if !strings.HasPrefix(acc.Password, "$2") {
			if hashed, err := HashPassword(acc.Password); err == nil {
				acc.Password = hashed
			}
		}
		out[i] = acc
	}
	return out
}
