package crypto

import "golang.org/x/crypto/bcrypt"

// HashCost is the bcrypt work factor used for password digests.
const HashCost = 10

// HashPassword derives a salted bcrypt digest from the password. Each call
// produces a different digest for the same input.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword reports whether password matches the stored digest.
// bcrypt's comparison does not leak match information through timing.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
