package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost is fixed; bumping it only affects newly stored hashes.
const bcryptCost = 12

// HashPassword produces a salted one-way hash for storage.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether plain matches the stored hash.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
