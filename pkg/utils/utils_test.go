package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPaginationParams(t *testing.T) {
	p := GetPaginationParams(0, -5)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 0, p.Limit)

	p = GetPaginationParams(3, 20)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, 40, p.CalculateOffset())
}

func TestCalculateMeta(t *testing.T) {
	meta := CalculateMeta(45, 2, 20)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, int64(45), meta.TotalCount)

	// limit 0 means everything on one page
	meta = CalculateMeta(45, 1, 0)
	assert.Equal(t, 1, meta.TotalPages)
	assert.Equal(t, 45, meta.Limit)
}

func TestGenerateShortID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id, err := GenerateShortID()
		require.NoError(t, err)
		require.Len(t, id, ShortIDLength)
		require.False(t, seen[id], "short IDs must not collide in a small sample")
		seen[id] = true
	}
}

func TestGenerateShortID_RandError(t *testing.T) {
	orig := randomRead
	defer func() { randomRead = orig }()
	randomRead = func(b []byte) (int, error) { return 0, errors.New("entropy exhausted") }

	_, err := GenerateShortID()
	assert.Error(t, err)
}
