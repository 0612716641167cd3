package encode

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrBadPassword = errors.New("password must be 1-72 bytes")

// HashPassword derives the stored representation of a raw password. The
// salt is generated per call, so two hashes of the same input differ while
// both verify.
func HashPassword(raw string) (string, error) {
	if len(raw) == 0 || len(raw) > 72 {
		return "", ErrBadPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether raw matches the stored representation.
// A malformed stored value is simply a mismatch, never an error.
func VerifyPassword(raw, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(raw)) == nil
}
