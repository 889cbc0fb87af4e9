package pam_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emersion/go-pam"
)

func TestPrepareCredentials(t *testing.T) {
	username, password, err := pam.PrepareCredentials("Alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "alice", username, "usernames are case-mapped")
	assert.Equal(t, "s3cret", password)

	_, _, err = pam.PrepareCredentials("foo bar", "s3cret")
	assert.Error(t, err, "usernames with spaces are disallowed")

	_, _, err = pam.PrepareCredentials("alice", "s3\x00cret")
	assert.Error(t, err, "passwords with control characters are disallowed")
}
