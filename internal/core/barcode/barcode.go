// Package barcode generates EAN-13 barcodes for products.
package barcode

import (
	"fmt"
	"math/rand"
)

// CountryPrefix is the GS1 prefix used for generated barcodes.
const CountryPrefix = "869"

// NewEAN13 generates a random EAN-13 barcode: the country prefix,
// nine random digits, and the checksum digit.
func NewEAN13() string {
	body := CountryPrefix
	for i := 0; i < 9; i++ {
		body += fmt.Sprintf("%d", rand.Intn(10))
	}
	return body + fmt.Sprintf("%d", Checksum(body))
}

// Checksum computes the EAN-13 check digit for a 12-digit body.
// Digits at even positions (0-based) weigh 1, odd positions weigh 3.
func Checksum(body string) int {
	sum := 0
	for i, r := range body {
		d := int(r - '0')
		if i%2 == 0 {
			sum += d
		} else {
			sum += d * 3
		}
	}
	return (10 - sum%10) % 10
}

// Valid reports whether s is a well-formed EAN-13 barcode.
func Valid(s string) bool {
	if len(s) != 13 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return Checksum(s[:12]) == int(s[12]-'0')
}
