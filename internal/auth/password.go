package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost is the work factor applied to every stored digest.
const bcryptCost = 10

// HashPassword derives a salted one-way digest of the plaintext.
// Two calls with the same input produce different digests.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword reports whether the plaintext matches the stored
// digest. A mismatch is a false result, not an error.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
