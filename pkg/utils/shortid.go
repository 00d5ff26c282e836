package utils

import (
	"crypto/rand"
)

const (
	shortIDAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// ShortIDLength is the length of opaque record identifiers
	ShortIDLength = 10
)

var randomRead = rand.Read

// GenerateShortID returns a 10-character opaque identifier used as the
// primary key for accounts and posts.
func GenerateShortID() (string, error) {
	buf := make([]byte, ShortIDLength)
	if _, err := randomRead(buf); err != nil {
		return "", err
	}
	id := make([]byte, ShortIDLength)
	for i, b := range buf {
		id[i] = shortIDAlphabet[int(b)%len(shortIDAlphabet)]
	}
	return string(id), nil
}
