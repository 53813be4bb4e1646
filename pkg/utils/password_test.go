package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("recepcion2026")
	require.NoError(t, err)
	assert.NotEqual(t, "recepcion2026", hash)

	assert.True(t, CheckPasswordHash("recepcion2026", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
	assert.False(t, CheckPasswordHash("recepcion2026", "not-a-hash"))
}
