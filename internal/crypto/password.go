package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const passwordChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// DefaultPasswordLength is the length of generated initial passwords.
const DefaultPasswordLength = 12

var ErrPasswordTooShort = errors.New("generated password length must be at least 8")

// GeneratePassword creates a cryptographically secure random alphanumeric
// password. Used for the initial password of admin-created accounts, which
// is emailed once and expected to be changed by the user.
func GeneratePassword(length int) (string, error) {
	if length < 8 {
		return "", ErrPasswordTooShort
	}

	result := make([]byte, length)
	for i := range result {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(passwordChars))))
		if err != nil {
			return "", err
		}
		result[i] = passwordChars[n.Int64()]
	}

	return string(result), nil
}
