package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	MinTokenLength = 16
)

var ErrTokenTooShort = errors.New("token length must be at least 16")

// RandomToken returns a random alphanumeric string drawn from crypto/rand,
// used for per-session CSRF tokens.
func RandomToken(length int) (string, error) {
	if length < MinTokenLength {
		return "", ErrTokenTooShort
	}

	result := make([]byte, length)
	for i := range result {
		ch, err := randChar(tokenAlphabet)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}
	return string(result), nil
}

// randChar picks a random character from charset using crypto/rand.
func randChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}
