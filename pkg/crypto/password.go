package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/alexedwards/argon2id"
	"golang.org/x/crypto/bcrypt"
)

const (
	// CodeCost is the bcrypt cost used for verification codes at rest
	CodeCost = 10
)

var (
	hashParams = argon2id.DefaultParams

	argon2idCreateHash = argon2id.CreateHash
	bcryptGenerateHash = bcrypt.GenerateFromPassword
	randomInt          = rand.Int
)

// HashPassword hashes a password using argon2id with a per-call random salt
func HashPassword(password string) (string, error) {
	hash, err := argon2idCreateHash(password, hashParams)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}

// CheckPassword compares a password with a hash. A malformed hash
// reports false rather than an error.
func CheckPassword(password, hash string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, hash)
	if err != nil {
		return false
	}
	return match
}

// HashCode hashes a verification code for storage at rest
func HashCode(code string) (string, error) {
	bytes, err := bcryptGenerateHash([]byte(code), CodeCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash code: %w", err)
	}
	return string(bytes), nil
}

// CheckCode compares a submitted verification code with a stored hash
func CheckCode(code, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(code))
	return err == nil
}

// GenerateVerificationCode draws a uniform 4-digit code in [1000, 9999]
func GenerateVerificationCode() (string, error) {
	n, err := randomInt(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}
	return fmt.Sprintf("%04d", n.Int64()+1000), nil
}
