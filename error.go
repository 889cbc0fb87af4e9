package pam

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// ErrInterrupted is reported by errors.Is for errors whose code indicates a
// transient condition (Incomplete, TryAgain). It plays the role
// fs.ErrNotExist and fs.ErrPermission play for the other code categories.
var ErrInterrupted = errors.New("pam: operation interrupted")

// NoPayload is the payload type for errors that never carry a payload.
//
// No value of this type is ever created: the Error constructors leave the
// payload unset, so an ErrorWith[NoPayload] is guaranteed payload-free.
type NoPayload struct{}

// ErrorWith is a failed PAM operation, possibly carrying a payload.
//
// Errors originate from the backend or from conversation handlers. The
// payload is used by operations that consume a value to transfer ownership
// back to the caller on failure: the success path has already returned, so
// the error is the only remaining channel.
type ErrorWith[T any] struct {
	code    ReturnCode
	msg     string
	payload *T
}

// Error is a failed PAM operation without a payload.
type Error = ErrorWith[NoPayload]

// NewErrorWith creates a new error carrying an optional payload.
//
// The message is resolved from the backend via h.StrError; a nil h is
// accepted when no live handle is reachable at the failure site and leaves
// the message empty. Panics if code is Success.
func NewErrorWith[T any](h Handle, code ReturnCode, payload *T) *ErrorWith[T] {
	if code == Success {
		panic("pam: cannot construct an error from PAM_SUCCESS")
	}
	var msg string
	if h != nil {
		msg = h.StrError(code)
	}
	return &ErrorWith[T]{code: code, msg: msg, payload: payload}
}

// NewError creates a new payload-free error. Panics if code is Success.
func NewError(h Handle, code ReturnCode) *Error {
	return NewErrorWith[NoPayload](h, code, nil)
}

// ErrorFromCode wraps a bare return code in a payload-free error with an
// empty message. It reports ok == false exactly when code is Success.
func ErrorFromCode(code ReturnCode) (e *Error, ok bool) {
	if code == Success {
		return nil, false
	}
	return &Error{code: code}, true
}

// Code returns the status code classifying the failure. It is never
// Success.
func (e *ErrorWith[T]) Code() ReturnCode {
	return e.code
}

// Message returns the backend's text for the status code. An empty message
// is reported as absent, never as an empty string.
func (e *ErrorWith[T]) Message() (string, bool) {
	if e.msg == "" {
		return "", false
	}
	return e.msg, true
}

// Payload returns the payload, or nil if there is none or it has already
// been taken. The error retains ownership.
func (e *ErrorWith[T]) Payload() *T {
	return e.payload
}

// TakePayload moves the payload out of the error.
//
// If a payload is present it is returned and all further calls to Payload
// and TakePayload return nil.
func (e *ErrorWith[T]) TakePayload() *T {
	p := e.payload
	e.payload = nil
	return p
}

// DropPayload discards the payload, if any, and returns the payload-free
// error with the same code and message.
func (e *ErrorWith[T]) DropPayload() *Error {
	return &Error{code: e.code, msg: e.msg}
}

// MapPayload returns a new error with the same code and message and the
// payload transformed by f. f is applied exactly once, and only if a
// payload is present.
func MapPayload[T, U any](e *ErrorWith[T], f func(T) U) *ErrorWith[U] {
	mapped := &ErrorWith[U]{code: e.code, msg: e.msg}
	if e.payload != nil {
		u := f(*e.payload)
		mapped.payload = &u
	}
	return mapped
}

// AttachPayload attaches a payload to a payload-free error, keeping its
// code and message.
func AttachPayload[T any](e *Error, payload T) *ErrorWith[T] {
	return &ErrorWith[T]{code: e.code, msg: e.msg, payload: &payload}
}

// WithoutPayload converts a payload-free error into an ErrorWith[T]
// carrying no payload, e.g. to match the return type of a call chain.
func WithoutPayload[T any](e *Error) *ErrorWith[T] {
	return &ErrorWith[T]{code: e.code, msg: e.msg}
}

// Equal reports whether two errors have the same code and equal payloads.
// The message is advisory metadata and excluded, so errors differing only
// in locale-dependent text compare equal.
func Equal[T comparable](a, b *ErrorWith[T]) bool {
	if a.code != b.code {
		return false
	}
	if (a.payload == nil) != (b.payload == nil) {
		return false
	}
	return a.payload == nil || *a.payload == *b.payload
}

// Sum64 returns a stable hash over the code and payload, consistent with
// Equal.
func Sum64[T comparable](e *ErrorWith[T]) uint64 {
	d := xxhash.New()
	fmt.Fprintf(d, "%d\x00", int(e.code))
	if e.payload != nil {
		fmt.Fprintf(d, "%v", *e.payload)
	}
	return d.Sum64()
}

// Error returns the backend message, or "<code>" with the numeric code if
// the backend provided none. The result is safe to display to users.
func (e *ErrorWith[T]) Error() string {
	if e.msg == "" {
		return fmt.Sprintf("<%d>", int(e.code))
	}
	return e.msg
}

// Unwrap maps the status code onto a generic I/O error category, so that
// errors.Is interoperates with code outside this package:
//
//   - Incomplete, TryAgain: ErrInterrupted
//   - BadItem, UserUnknown: fs.ErrNotExist
//   - CredInsufficient, PermDenied: fs.ErrPermission
//
// All other codes have no generic category and unwrap to nil. The error
// value itself keeps the full code, message and payload.
func (e *ErrorWith[T]) Unwrap() error {
	switch e.code {
	case Incomplete, TryAgain:
		return ErrInterrupted
	case BadItem, UserUnknown:
		return fs.ErrNotExist
	case CredInsufficient, PermDenied:
		return fs.ErrPermission
	default:
		return nil
	}
}

// GoString implements fmt.GoStringer for %#v.
//
// The payload type has no guaranteed text representation: a present payload
// is printed as a type-name placeholder, never its contents. The
// payload-free Error prints only code and message.
func (e *ErrorWith[T]) GoString() string {
	t := reflect.TypeFor[T]()
	if t == reflect.TypeFor[NoPayload]() {
		return fmt.Sprintf("pam.Error{Code: %v, Message: %q}", e.code, e.msg)
	}
	payload := "nil"
	if e.payload != nil {
		payload = "<" + t.String() + ">"
	}
	return fmt.Sprintf("pam.ErrorWith[%s]{Code: %v, Message: %q, Payload: %s}", t, e.code, e.msg, payload)
}

type errorJSON struct {
	Code    ReturnCode `json:"code"`
	Message string     `json:"message,omitempty"`
}

// MarshalJSON encodes the code and message. Payloads exist only to hand
// ownership back to the caller and are never serialized.
func (e *ErrorWith[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(errorJSON{Code: e.code, Message: e.msg})
}

// UnmarshalJSON decodes the code and message. It rejects Success.
func (e *ErrorWith[T]) UnmarshalJSON(data []byte) error {
	var raw errorJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Code == Success {
		return fmt.Errorf("pam: cannot decode an error with code PAM_SUCCESS")
	}
	e.code = raw.Code
	e.msg = raw.Message
	e.payload = nil
	return nil
}
