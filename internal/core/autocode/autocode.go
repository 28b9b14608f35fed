// Package autocode generates short numeric codes for catalog records
// (stores, accounts) that do not carry a user-supplied code.
package autocode

import (
	"context"
	"fmt"
	"math/rand"
)

// maxAttempts bounds the number of uniqueness probes before giving up
// and returning the last candidate unchecked.
const maxAttempts = 10

// ExistsFunc reports whether a candidate code is already taken.
type ExistsFunc func(ctx context.Context, code string) (bool, error)

// Generate returns a random 6-digit code (100000..999999) that does not
// collide with existing codes according to exists. After maxAttempts
// collisions the last candidate is returned without a further check.
func Generate(ctx context.Context, exists ExistsFunc) (string, error) {
	var code string
	for i := 0; i < maxAttempts; i++ {
		code = random6()
		taken, err := exists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("check code %s: %w", code, err)
		}
		if !taken {
			return code, nil
		}
	}
	return code, nil
}

func random6() string {
	return fmt.Sprintf("%d", 100000+rand.Intn(900000))
}
