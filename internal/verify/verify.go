// Package verify checks entered codes against bcrypt hashes so a demo or
// host never has to keep the expected code in clear text.
package verify

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is returned when a code does not match the stored hash.
var ErrMismatch = errors.New("code does not match")

// HashCode hashes code with bcrypt. A cost of 0 selects bcrypt.DefaultCost.
func HashCode(code string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return "", fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash code: %w", err)
	}
	return string(hash), nil
}

// Verifier checks codes against one bcrypt hash.
type Verifier struct {
	hash []byte
}

// New returns a Verifier for hash. The hash must be a well-formed bcrypt hash.
func New(hash string) (*Verifier, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, fmt.Errorf("invalid bcrypt hash: %w", err)
	}
	return &Verifier{hash: []byte(hash)}, nil
}

// Check returns nil when code matches, ErrMismatch when it does not, and a
// wrapped error for anything else.
func (v *Verifier) Check(code string) error {
	err := bcrypt.CompareHashAndPassword(v.hash, []byte(code))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return fmt.Errorf("failed to verify code: %w", err)
	}
}

// Verify reports whether code matches.
func (v *Verifier) Verify(code string) bool {
	return v.Check(code) == nil
}
