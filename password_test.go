package rres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordStoreLifecycle(t *testing.T) {
	ClearPassword()
	assert.False(t, PasswordSet())

	_, err := currentKey()
	assert.ErrorIs(t, err, ErrNoPassword)

	SetPassword([]byte("correct horse battery staple"))
	assert.True(t, PasswordSet())
	key, err := currentKey()
	require.NoError(t, err)
	assert.Len(t, key, pbkdf2KeyLen)

	SetPassword([]byte("a different passphrase"))
	key2, err := currentKey()
	require.NoError(t, err)
	assert.NotEqual(t, key, key2)

	ClearPassword()
	assert.False(t, PasswordSet())
}

func TestSetPasswordIsDeterministic(t *testing.T) {
	SetPassword([]byte("same passphrase"))
	k1, _ := currentKey()
	SetPassword([]byte("same passphrase"))
	k2, _ := currentKey()
	ClearPassword()
	assert.Equal(t, k1, k2)
}
