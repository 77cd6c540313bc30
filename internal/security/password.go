package security

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Password hashing schemes accepted by NewPasswordHasher
const (
	SchemeSHA256 = "sha256"
	SchemeBcrypt = "bcrypt"
)

// PasswordHasher turns plain passwords into stored hashes and checks them
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// NewPasswordHasher returns the hasher for scheme
func NewPasswordHasher(scheme string) (PasswordHasher, error) {
	switch scheme {
	case SchemeSHA256, "":
		return SHA256Hasher{}, nil
	case SchemeBcrypt:
		return BcryptHasher{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("unknown password hash scheme: %s", scheme)
	}
}

// SHA256Hasher stores the lowercase hex SHA-256 of the password.
// It is unsalted and fast; kept so existing accounts can still log in.
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

func (h SHA256Hasher) Verify(password, hash string) bool {
	computed, _ := h.Hash(password)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}

// BcryptHasher stores salted bcrypt hashes
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
