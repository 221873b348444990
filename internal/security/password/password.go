// Package password wraps bcrypt hashing for stored credentials. The digest
// embeds its own salt and cost, so Verify needs nothing beyond the digest.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// cost matches the work factor the original service used. Raising it only
// affects newly created digests; existing ones keep their embedded cost.
const cost = 10

// ErrEmptyPassword is returned when an empty plaintext reaches Hash.
var ErrEmptyPassword = errors.New("password must not be empty")

// Hash derives a salted one-way digest from the plaintext.
func Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the digest. A malformed digest is
// a mismatch, not an error: callers only ever branch on the boolean.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// DummyDigest is a digest of a throwaway value. Login flows compare against
// it when the account does not exist, so the miss costs the same as a real
// mismatch and response timing does not reveal which lookup failed.
var DummyDigest = func() string {
	d, err := bcrypt.GenerateFromPassword([]byte("cafe-marketplace-dummy"), cost)
	if err != nil {
		panic(err)
	}
	return string(d)
}()
