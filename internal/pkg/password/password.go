package password

import (
	"crypto/rand"
	"errors"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const (
	lower   = "abcdefghijklmnopqrstuvwxyz"
	upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"
	symbols = "!@#$%^&*-_=+"

	// MinLength keeps generated one-time passwords usable in a welcome
	// email while still covering all four character classes.
	MinLength     = 8
	DefaultLength = 10
)

// Hash hashes a plain password string.
func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Check compares a plain password with a hash.
func Check(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// Generate produces a one-time password of the given length containing at
// least one lowercase, uppercase, digit and symbol character. The result
// is shuffled so the mandatory characters don't sit at fixed positions.
// This is a mailed starter credential, expected to be changed on first
// login, not a long-lived secret.
func Generate(length int) (string, error) {
	if length < MinLength {
		return "", errors.New("password length too short")
	}

	all := lower + upper + digits + symbols

	chars := make([]byte, 0, length)
	for _, class := range []string{lower, upper, digits, symbols} {
		c, err := pick(class)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}
	for len(chars) < length {
		c, err := pick(all)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}

	// Fisher-Yates with crypto/rand indexes.
	for i := len(chars) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", err
		}
		chars[i], chars[j.Int64()] = chars[j.Int64()], chars[i]
	}

	return string(chars), nil
}

func pick(set string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
	if err != nil {
		return 0, err
	}
	return set[n.Int64()], nil
}
