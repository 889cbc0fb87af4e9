package pam

import (
	"fmt"

	"golang.org/x/text/secure/precis"
)

// PrepareCredentials enforces the PRECIS profiles of RFC 8265 on a
// credential pair: UsernameCaseMapped for the username and OpaqueString
// for the password.
//
// Backends compare credentials byte-wise, so callers dealing with
// user-entered Unicode should prepare credentials once before handing them
// to NewConversationWithCredentials. Enforcement fails on strings the
// profiles disallow, e.g. usernames with spaces or passwords containing
// control characters.
func PrepareCredentials(username, password string) (string, string, error) {
	u, err := precis.UsernameCaseMapped.String(username)
	if err != nil {
		return "", "", fmt.Errorf("pam: invalid username: %v", err)
	}
	p, err := precis.OpaqueString.String(password)
	if err != nil {
		return "", "", fmt.Errorf("pam: invalid password: %v", err)
	}
	return u, p, nil
}
