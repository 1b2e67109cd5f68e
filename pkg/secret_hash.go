package pkg

import "golang.org/x/crypto/bcrypt"

const secretHashCost = 12

// HashSecret produces the bcrypt hash that is stored in the config/env,
// so the plain secret never has to be kept next to the service.
func HashSecret(secret string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), secretHashCost)
	return BytesToString(bytes), err
}

func CheckSecretHash(secret, hash string) bool {
	if secret == "" || hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
