package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEqual(t, "correct horse", hash)

	require.True(t, CheckPassword(hash, "correct horse"))
	require.False(t, CheckPassword(hash, "wrong"))
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	first, err := HashPassword("correct horse")
	require.NoError(t, err)

	second, err := HashPassword("correct horse")
	require.NoError(t, err)

	// bcrypt salts per call, so equal inputs hash differently
	require.NotEqual(t, first, second)
}

func TestCheckPassword_BadHash(t *testing.T) {
	require.False(t, CheckPassword("not-a-bcrypt-hash", "anything"))
}
