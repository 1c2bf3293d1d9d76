package utils_test

import (
	"testing"

	"github.com/settleline/bizledger/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, utils.CheckPasswordHash("s3cret-pass", hash))
}

func TestCheckPasswordHash_Mismatch(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-pass")
	require.NoError(t, err)

	assert.False(t, utils.CheckPasswordHash("wrong-pass", hash))
	assert.False(t, utils.CheckPasswordHash("s3cret-pass", "not-a-bcrypt-hash"))
}
