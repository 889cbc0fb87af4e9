package pam

import (
	"errors"

	"github.com/emersion/go-sasl"
)

type saslClient struct {
	h ConversationHandler
}

func (c *saslClient) Start() (mech string, ir []byte, err error) {
	username, err := c.h.PromptEchoOn("Username:")
	if err != nil {
		return "", nil, err
	}
	password, err := c.h.PromptEchoOff("Password:")
	if err != nil {
		return "", nil, err
	}
	return "PLAIN", []byte("\x00" + username + "\x00" + password), nil
}

func (c *saslClient) Next(challenge []byte) (response []byte, err error) {
	return nil, errors.New("unexpected server challenge")
}

// NewSASLClient returns a SASL PLAIN client that sources its credentials
// from a conversation handler, so the same handler can drive both PAM and
// SASL-based logins. The credentials are requested when the exchange
// starts; a failing prompt aborts the exchange with the handler's error.
func NewSASLClient(h ConversationHandler) sasl.Client {
	return &saslClient{h}
}
