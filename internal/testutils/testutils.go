// Package testutils provides small helpers for generating test data.
package testutils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const letterBytes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RandomString returns a random string of length n.
func RandomString(n int) string {
	if n <= 0 {
		return ""
	}

	result := make([]byte, n)
	for i := range result {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(letterBytes))))
		if err != nil {
			panic(fmt.Sprintf("failed to generate random string: %v", err))
		}

		result[i] = letterBytes[num.Int64()]
	}

	return string(result)
}

// RandomEmail returns a realistic-looking unique email address.
func RandomEmail() string {
	return fmt.Sprintf("%s@example.com", strings.ToLower(RandomString(12)))
}

// StringPtr returns a pointer to the given string.
func StringPtr(s string) *string {
	return &s
}

// IntPtr returns a pointer to the given int.
func IntPtr(i int) *int {
	return &i
}

// BoolPtr returns a pointer to the given bool.
func BoolPtr(b bool) *bool {
	return &b
}
