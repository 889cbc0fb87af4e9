package pam

// ConversationHandler answers the questions a backend asks during one
// authentication attempt.
//
// The backend invokes the handler reentrantly and sequentially; handlers
// don't need to be safe for concurrent use. Any implementation honoring
// these contracts is a drop-in replacement for another, so interactive
// terminal or GUI strategies can be swapped in behind the same interface.
type ConversationHandler interface {
	// Init is called once at the start of an attempt. If the handler has
	// no identity yet and defaultUser is non-empty, the handler adopts it.
	Init(defaultUser string)
	// PromptEchoOn asks a non-secret question, e.g. "login:". It returns
	// the answer, or ConvErr if the handler cannot answer.
	PromptEchoOn(msg string) (string, error)
	// PromptEchoOff asks for secret/masked input, e.g. a password.
	PromptEchoOff(msg string) (string, error)
	// TextInfo delivers an informational message. It must not fail.
	TextInfo(msg string)
	// ErrorMsg delivers an error message. It must not fail.
	ErrorMsg(msg string)
	// RadioPrompt asks a yes/no question.
	RadioPrompt(msg string) (bool, error)
	// BinaryPrompt performs an opaque binary exchange of the given kind.
	BinaryPrompt(kind uint8, data []byte) ([]byte, error)
}

// MessageStyle identifies the kind of message a backend sends. The values
// match the Linux-PAM message style constants.
type MessageStyle int

const (
	MessageStylePromptEchoOff MessageStyle = 1
	MessageStylePromptEchoOn  MessageStyle = 2
	MessageStyleErrorMsg      MessageStyle = 3
	MessageStyleTextInfo      MessageStyle = 4
	MessageStyleRadioType     MessageStyle = 5
	MessageStyleBinaryPrompt  MessageStyle = 7
)

// Message is a single question or notice from the backend.
type Message struct {
	Style MessageStyle
	Text  string

	// Kind and Data are only set for MessageStyleBinaryPrompt.
	Kind uint8
	Data []byte
}

// Response is the handler's answer to one Message. Info and error messages
// produce an empty Response to keep the slices index-aligned.
type Response struct {
	Text string
	Data []byte
}

// Respond routes a batch of backend messages to the matching handler
// operations and collects the answers.
//
// It stops at the first failing prompt and returns its error; answers to
// earlier messages in the batch are discarded, matching the all-or-nothing
// contract of the PAM conversation callback. An unknown style fails with
// ConvErr.
func Respond(h ConversationHandler, msgs []Message) ([]Response, error) {
	resps := make([]Response, 0, len(msgs))
	for _, msg := range msgs {
		switch msg.Style {
		case MessageStylePromptEchoOff:
			text, err := h.PromptEchoOff(msg.Text)
			if err != nil {
				return nil, err
			}
			resps = append(resps, Response{Text: text})
		case MessageStylePromptEchoOn:
			text, err := h.PromptEchoOn(msg.Text)
			if err != nil {
				return nil, err
			}
			resps = append(resps, Response{Text: text})
		case MessageStyleErrorMsg:
			h.ErrorMsg(msg.Text)
			resps = append(resps, Response{})
		case MessageStyleTextInfo:
			h.TextInfo(msg.Text)
			resps = append(resps, Response{})
		case MessageStyleRadioType:
			yes, err := h.RadioPrompt(msg.Text)
			if err != nil {
				return nil, err
			}
			text := "no"
			if yes {
				text = "yes"
			}
			resps = append(resps, Response{Text: text})
		case MessageStyleBinaryPrompt:
			data, err := h.BinaryPrompt(msg.Kind, msg.Data)
			if err != nil {
				return nil, err
			}
			resps = append(resps, Response{Data: data})
		default:
			return nil, ConvErr
		}
	}
	return resps, nil
}
