package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt digest of plaintext. Two calls with
// the same input return different digests; both verify with CheckPassword.
func HashPassword(plaintext string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext produced the given bcrypt digest.
// The comparison is constant-time with respect to mismatches.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
