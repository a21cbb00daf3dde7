package auth

import "golang.org/x/crypto/bcrypt"

// bcrypt reads at most 72 bytes of input and rejects anything longer.
// Account policy allows passwords up to 128 characters, so longer passwords
// are truncated before hashing, the same way passlib's bcrypt does it.
const maxHashInput = 72

func hashInput(password string) []byte {
	b := []byte(password)
	if len(b) > maxHashInput {
		b = b[:maxHashInput]
	}
	return b
}

// HashPassword derives a salted bcrypt hash. Every call salts anew, so two
// hashes of the same password differ.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(hashInput(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash. A mismatch
// is not an error, just false.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), hashInput(password)) == nil
}
