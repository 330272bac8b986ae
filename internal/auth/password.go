package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the adaptive work factor used when the registry
// first went live; raising it only affects newly stored hashes.
const bcryptCost = 10

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
