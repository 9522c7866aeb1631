package card

import (
	"crypto/rand"
	"fmt"
)

// DigitSource yields n independently drawn decimal digits as a string.
// Injecting it keeps card-number generation deterministic in tests.
type DigitSource func(n int) (string, error)

// CryptoDigits draws unbiased decimal digits from crypto/rand using rejection
// sampling: only bytes below 250 are accepted before taking mod 10, so every
// digit 0-9 is equally likely.
func CryptoDigits(n int) (string, error) {
	if n <= 0 {
		return "", nil
	}
	const threshold = 250 // 256 - (256 % 10)
	out := make([]byte, 0, n)
	buf := make([]byte, 64)
	for len(out) < n {
		read, err := rand.Read(buf)
		if err != nil {
			return "", fmt.Errorf("rand: %w", err)
		}
		for _, b := range buf[:read] {
			if b >= threshold {
				continue
			}
			out = append(out, '0'+b%10)
			if len(out) == n {
				break
			}
		}
	}
	return string(out), nil
}
