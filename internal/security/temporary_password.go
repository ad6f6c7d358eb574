package security

import (
	"crypto/rand"
	"math/big"
)

// Alphabet skips 0/O/1/I/l so operators can read the password back over chat.
const passwordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

const minPasswordLength = 8

// TemporaryPassword returns a cryptographically random, unbiased password of
// at least minPasswordLength characters.
func TemporaryPassword(length int) (string, error) {
	if length < minPasswordLength {
		length = minPasswordLength
	}

	limit := big.NewInt(int64(len(passwordAlphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = passwordAlphabet[position.Int64()]
	}
	return string(value), nil
}
