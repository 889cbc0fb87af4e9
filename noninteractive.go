package pam

import (
	"encoding/json"
	"fmt"
	"iter"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

// LogEntryKind tags a transcript entry as either an informational or an
// error message.
type LogEntryKind int

const (
	LogEntryInfo LogEntryKind = iota
	LogEntryError
)

func (kind LogEntryKind) String() string {
	switch kind {
	case LogEntryInfo:
		return "info"
	case LogEntryError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the kind as "info" or "error".
func (kind LogEntryKind) MarshalJSON() ([]byte, error) {
	switch kind {
	case LogEntryInfo, LogEntryError:
		return json.Marshal(kind.String())
	default:
		return nil, fmt.Errorf("pam: unknown log entry kind %d", int(kind))
	}
}

// UnmarshalJSON decodes "info" or "error".
func (kind *LogEntryKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "info":
		*kind = LogEntryInfo
	case "error":
		*kind = LogEntryError
	default:
		return fmt.Errorf("pam: unknown log entry kind %q", s)
	}
	return nil
}

// LogEntry is one recorded message in a Conversation transcript. Entries
// are immutable once recorded.
type LogEntry struct {
	Kind LogEntryKind `json:"kind"`
	Text string       `json:"text"`
}

// Conversation is a non-interactive ConversationHandler.
//
// When the backend asks for a non-secret string, Username is returned;
// when a secret is asked for, Password is returned. All info and error
// messages are recorded in Log.
//
// This is enough to drive many authentication flows without a terminal,
// but flows that need a human to react to intermediate messages (two-factor
// prompts, password change dialogs) cannot be satisfied: every answer is
// fixed at construction time.
type Conversation struct {
	// Username is the answer to echoed prompts. If empty, it is filled
	// with the backend's default user on Init.
	Username string `json:"username"`
	// Password is the answer to masked prompts.
	Password string `json:"password"`
	// Log records all received info and error messages in order.
	Log []LogEntry `json:"log"`
}

var _ ConversationHandler = (*Conversation)(nil)

// NewConversation creates a non-interactive conversation handler with empty
// credentials.
func NewConversation() *Conversation {
	return &Conversation{}
}

// NewConversationWithCredentials creates a non-interactive conversation
// handler with preset credentials.
func NewConversationWithCredentials(username, password string) *Conversation {
	return &Conversation{Username: username, Password: password}
}

// ClearLog discards the transcript. Credentials are unaffected.
func (c *Conversation) ClearLog() {
	c.Log = nil
}

// Errors returns the error messages from the transcript in recording
// order. The sequence is finite and can be ranged over multiple times.
func (c *Conversation) Errors() iter.Seq[string] {
	return c.logSeq(LogEntryError)
}

// Infos returns the informational messages from the transcript in
// recording order.
func (c *Conversation) Infos() iter.Seq[string] {
	return c.logSeq(LogEntryInfo)
}

func (c *Conversation) logSeq(kind LogEntryKind) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, entry := range c.Log {
			if entry.Kind != kind {
				continue
			}
			if !yield(entry.Text) {
				return
			}
		}
	}
}

// Init adopts defaultUser only if no username was preset.
func (c *Conversation) Init(defaultUser string) {
	if c.Username == "" && defaultUser != "" {
		c.Username = defaultUser
	}
}

// PromptEchoOn answers with the stored username. It fails with ConvErr
// only if the username contains an embedded NUL, which the backend's
// C-string representation cannot carry.
func (c *Conversation) PromptEchoOn(msg string) (string, error) {
	return cstringSafe(c.Username)
}

// PromptEchoOff answers with the stored password. The failure contract is
// the same as for PromptEchoOn.
func (c *Conversation) PromptEchoOff(msg string) (string, error) {
	return cstringSafe(c.Password)
}

// TextInfo records an informational message.
func (c *Conversation) TextInfo(msg string) {
	c.Log = append(c.Log, LogEntry{Kind: LogEntryInfo, Text: msg})
}

// ErrorMsg records an error message.
func (c *Conversation) ErrorMsg(msg string) {
	c.Log = append(c.Log, LogEntry{Kind: LogEntryError, Text: msg})
}

// RadioPrompt always answers no: an unknown yes/no question is never
// auto-confirmed.
func (c *Conversation) RadioPrompt(msg string) (bool, error) {
	return false, nil
}

// BinaryPrompt always fails: the handler has no protocol for out-of-band
// binary exchanges.
func (c *Conversation) BinaryPrompt(kind uint8, data []byte) ([]byte, error) {
	return nil, ConvErr
}

// cstringSafe rejects answers the backend's NUL-terminated text
// representation cannot carry.
func cstringSafe(s string) (string, error) {
	if strings.ContainsRune(s, 0) {
		return "", ConvErr
	}
	return s, nil
}

// MarshalBinary implements encoding.BinaryMarshaler using CBOR.
func (c *Conversation) MarshalBinary() ([]byte, error) {
	type conversation Conversation
	return cbor.Marshal((*conversation)(c))
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (c *Conversation) UnmarshalBinary(data []byte) error {
	type conversation Conversation
	return cbor.Unmarshal(data, (*conversation)(c))
}
