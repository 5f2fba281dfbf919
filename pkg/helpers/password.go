package helpers

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// passwordCost is a fixed internal constant; bcrypt embeds a fresh random
// salt per hash, so two hashes of the same plaintext always differ.
const passwordCost = 10

// HashPassword hashes the plain text password using bcrypt.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), passwordCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ComparePassword re-derives the hash from the embedded salt and compares.
// A wrong password returns (false, nil); a non-nil error means the stored
// hash itself is corrupt, which is a different failure than bad credentials.
func ComparePassword(hash, plain string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
