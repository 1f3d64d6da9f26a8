// Package auth provides password hashing for stored credentials.
package auth

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/vaccinehub/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	// Hash produces a salted one-way digest of password. A password the
	// algorithm cannot accept is reported as a common.ErrInvalidInput FieldError.
	Hash(password string) (string, error)

	// Verify reports whether password matches digest. A malformed digest is
	// an error; a mismatch is (false, nil).
	Verify(password, digest string) (bool, error)
}

// BcryptHasher implements PasswordHasher with bcrypt at a fixed work factor.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using cost as the bcrypt work factor.
func NewBcryptHasher(cost int) (*BcryptHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt work factor %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &BcryptHasher{cost: cost}, nil
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: longer than 72 bytes", &common.FieldError{Kind: common.ErrInvalidInput, Field: "password"})
		}
		return "", err
	}
	return string(b), nil
}

func (h *BcryptHasher) Verify(password, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
