package strength

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

const (
	upper  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lower  = "abcdefghijklmnopqrstuvwxyz"
	number = "0123456789"

	Alphabet        = lower + upper + number + SpecialChars
	GeneratedLength = 12
)

// Generator produces a new password on each call.
type Generator func() string

var errLength = errors.New("password length must be at least 1")

// Generate returns GeneratedLength characters drawn uniformly from Alphabet.
// Class coverage is not enforced, so the result may score below MaxScore.
func Generate() string {
	for {
		p, err := GenerateN(GeneratedLength)
		if err != nil {
			continue
		}
		return p
	}
}

// GenerateN draws n characters uniformly from Alphabet.
func GenerateN(n int) (string, error) {
	if n < 1 {
		return "", errLength
	}

	var sb strings.Builder
	sb.Grow(n)

	size := big.NewInt(int64(len(Alphabet)))
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", err
		}
		sb.WriteByte(Alphabet[idx.Int64()])
	}
	return sb.String(), nil
}
