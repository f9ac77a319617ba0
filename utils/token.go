package utils

import (
	"crypto/rand"
	"math/big"
)

const tokenCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRandomToken returns a reset code of the given length drawn from
// a crypto-grade source.
func GenerateRandomToken(length int) string {
	max := big.NewInt(int64(len(tokenCharset)))
	token := make([]byte, length)
	for i := range token {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// Entropy exhaustion is not survivable for a reset code.
			panic("utils: crypto/rand unavailable: " + err.Error())
		}
		token[i] = tokenCharset[n.Int64()]
	}
	return string(token)
}
