package shipment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextNumber(t *testing.T) {
	tests := []struct {
		last string
		want string
	}{
		{"", "SH00000001"},
		{"SH00000001", "SH00000002"},
		{"SH00000099", "SH00000100"},
		{"SH99999999", "SH100000000"},
		{"garbage", "SH00000001"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NextNumber(tt.last), "last=%q", tt.last)
	}
}

func TestNumberPattern(t *testing.T) {
	assert.True(t, NumberPattern.MatchString("SH00000001"))
	assert.False(t, NumberPattern.MatchString("sh00000001"))
	assert.False(t, NumberPattern.MatchString("SHX1"))
}
