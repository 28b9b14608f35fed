package autocode

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Format(t *testing.T) {
	code, err := Generate(context.Background(), func(ctx context.Context, code string) (bool, error) {
		return false, nil
	})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[1-9]\d{5}$`), code)
}

func TestGenerate_RetriesOnCollision(t *testing.T) {
	calls := 0
	code, err := Generate(context.Background(), func(ctx context.Context, code string) (bool, error) {
		calls++
		return calls < 3, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Len(t, code, 6)
}

func TestGenerate_GivesUpAfterMaxAttempts(t *testing.T) {
	calls := 0
	code, err := Generate(context.Background(), func(ctx context.Context, code string) (bool, error) {
		calls++
		return true, nil
	})
	require.NoError(t, err)
	assert.Equal(t, maxAttempts, calls)
	// still returns a candidate even when every probe collided
	assert.Len(t, code, 6)
}

func TestGenerate_PropagatesError(t *testing.T) {
	boom := errors.New("db down")
	_, err := Generate(context.Background(), func(ctx context.Context, code string) (bool, error) {
		return false, boom
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
