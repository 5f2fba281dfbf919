package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_NonDeterministic(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("123abc!")
	require.NoError(t, err)
	h2, err := HashPassword("123abc!")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "two hashes of the same plaintext must differ")

	ok, err := ComparePassword(h1, "123abc!")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = ComparePassword(h2, "123abc!")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestComparePassword_WrongPassword(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("correct horse")
	require.NoError(t, err)

	ok, err := ComparePassword(h, "battery staple")
	require.NoError(t, err, "a wrong password is not an error")
	assert.False(t, ok)
}

func TestComparePassword_CorruptHash(t *testing.T) {
	t.Parallel()

	ok, err := ComparePassword("not-a-bcrypt-hash", "anything")
	assert.Error(t, err, "a corrupt stored hash is an error, not a mismatch")
	assert.False(t, ok)
}
