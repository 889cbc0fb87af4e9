package pam_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emersion/go-pam"
)

func TestNewSASLClient(t *testing.T) {
	conv := pam.NewConversationWithCredentials("alice", "s3cret")
	client := pam.NewSASLClient(conv)

	mech, ir, err := client.Start()
	require.NoError(t, err)
	assert.Equal(t, "PLAIN", mech)
	assert.Equal(t, []byte("\x00alice\x00s3cret"), ir)

	_, err = client.Next([]byte("challenge"))
	assert.Error(t, err)
}

func TestNewSASLClient_FailingHandler(t *testing.T) {
	conv := pam.NewConversationWithCredentials("al\x00ice", "s3cret")
	client := pam.NewSASLClient(conv)

	_, _, err := client.Start()
	assert.ErrorIs(t, err, pam.ConvErr)
}
