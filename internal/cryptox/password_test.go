package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPasswordDeterministic(t *testing.T) {
	salt := []byte("0123456789abcdef0123456789abcdef")
	h1 := HashPassword([]byte("secret"), salt)
	h2 := HashPassword([]byte("secret"), salt)
	require.Equal(t, h1, h2)
	require.Len(t, h1, 64) // 32 bytes hex-encoded
}

func TestHashPasswordSaltMatters(t *testing.T) {
	h1 := HashPassword([]byte("secret"), []byte("salt-a-salt-a-salt-a-salt-a-salt"))
	h2 := HashPassword([]byte("secret"), []byte("salt-b-salt-b-salt-b-salt-b-salt"))
	require.NotEqual(t, h1, h2)
}

func TestVerifyPassword(t *testing.T) {
	salt := []byte("0123456789abcdef0123456789abcdef")
	stored := HashPassword([]byte("secret"), salt)

	require.True(t, VerifyPassword(stored, []byte("secret"), salt))
	require.False(t, VerifyPassword(stored, []byte("wrong"), salt))
	require.False(t, VerifyPassword(stored, []byte("secret"), []byte("other-salt-other-salt-other-salt")))
}
