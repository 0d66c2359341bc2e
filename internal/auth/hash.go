package auth

import "golang.org/x/crypto/bcrypt"

// Hasher wraps the one-way password hashing primitive.
type Hasher struct {
	cost int
}

// NewHasher constructs a Hasher with the default bcrypt cost.
func NewHasher() Hasher {
	return Hasher{cost: bcrypt.DefaultCost}
}

// Hash derives a salted digest from the plaintext password.
func (h Hasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the stored digest. A malformed
// digest verifies false rather than erroring.
func (h Hasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
