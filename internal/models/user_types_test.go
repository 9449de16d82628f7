package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordSetAndMatches(t *testing.T) {
	var p Password
	require.NoError(t, p.Set("correcthorsebattery"))
	require.NotEmpty(t, p.Hash)
	assert.NotEqual(t, "correcthorsebattery", p.Hash)

	match, err := p.Matches("correcthorsebattery")
	require.NoError(t, err)
	assert.True(t, match)

	match, err = p.Matches("wrong-password")
	require.NoError(t, err)
	assert.False(t, match)
}

func TestPasswordMatchesGarbageHash(t *testing.T) {
	p := Password{Hash: "not-a-bcrypt-hash"}
	_, err := p.Matches("whatever")
	assert.Error(t, err)
}
