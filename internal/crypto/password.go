package crypto

import (
	"golang.org/x/crypto/bcrypt"
)

// hashCost is the current bcrypt work factor. Hashes produced at a
// lower cost still verify but are flagged for upgrade.
const hashCost = 12

// HashPassword derives a salted bcrypt hash of the password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks whether a password matches the given hash.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// NeedsRehash reports whether the hash was produced at a lower cost
// than the current work factor and should be regenerated.
func NeedsRehash(hash string) bool {
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return false
	}
	return cost < hashCost
}
