package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$2a$"))
	assert.True(t, Verify("correct horse battery staple", hash))
	assert.False(t, Verify("wrong password", hash))
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("johndoe")
	require.NoError(t, err)
	second, err := Hash("johndoe")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, Verify("johndoe", first))
	assert.True(t, Verify("johndoe", second))
}

func TestHashTooLong(t *testing.T) {
	// bcrypt rejects inputs over 72 bytes rather than silently truncating.
	_, err := Hash(strings.Repeat("a", 100))
	require.Error(t, err)
}
