package barcode

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		body string
		want int
	}{
		{"400638133393", 1},
		{"869000000000", 5},
		{"978020137962", 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Checksum(tt.body), "body %s", tt.body)
	}
}

func TestNewEAN13(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := NewEAN13()
		assert.Regexp(t, regexp.MustCompile(`^869\d{10}$`), code)
		assert.True(t, Valid(code), "generated %s must self-validate", code)
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("8690000000005"))
	assert.False(t, Valid("8690000000004"))
	assert.False(t, Valid("869000000000"))
	assert.False(t, Valid("86900000000ab"))
}
