package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword_Format(t *testing.T) {
	hashed, err := HashPassword("supersecret")
	require.NoError(t, err)
	require.Contains(t, hashed, ".")

	parts := strings.SplitN(hashed, ".", 2)
	require.Len(t, parts, 2)
	require.NotEmpty(t, parts[0])
	require.NotEmpty(t, parts[1])
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	first, err := HashPassword("supersecret")
	require.NoError(t, err)
	second, err := HashPassword("supersecret")
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestVerifyPassword(t *testing.T) {
	hashed, err := HashPassword("supersecret")
	require.NoError(t, err)

	require.True(t, VerifyPassword(hashed, "supersecret"))
	require.False(t, VerifyPassword(hashed, "wrongpassword"))
}

func TestVerifyPassword_MalformedStoredValueFailsClosed(t *testing.T) {
	// anything without the hash.salt shape must never verify
	require.False(t, VerifyPassword("", "supersecret"))
	require.False(t, VerifyPassword("nodothere", "supersecret"))
	require.False(t, VerifyPassword("not-hex.not-hex", "supersecret"))
	require.False(t, VerifyPassword("abcdef.", "supersecret"))
}
