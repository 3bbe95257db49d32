// Package apperr defines the error kinds shared by the provider adapters,
// the POI pipeline and the HTTP layer.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure independently of which provider or layer produced it.
type Kind int

const (
	// KindUnknown is reported for errors that carry no classification.
	KindUnknown Kind = iota
	// KindTransport is a network or connection level failure.
	KindTransport
	// KindNonSuccessStatus is a provider answering with a non-2xx HTTP status.
	KindNonSuccessStatus
	// KindDecode is a response body that did not match the expected shape.
	KindDecode
	// KindNoAssistantContent is a completion response without a usable assistant message.
	KindNoAssistantContent
	// KindInvalidInput is a request rejected before any provider call.
	KindInvalidInput
	// KindStorage is a file persistence or read failure.
	KindStorage
	// KindNotFound is a stored record that does not exist.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport failure"
	case KindNonSuccessStatus:
		return "non-successful response"
	case KindDecode:
		return "decode failure"
	case KindNoAssistantContent:
		return "no content from assistant"
	case KindInvalidInput:
		return "invalid input"
	case KindStorage:
		return "storage failure"
	case KindNotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// Sentinels usable with errors.Is.
var (
	ErrTransport          = &Error{Kind: KindTransport}
	ErrNonSuccessStatus   = &Error{Kind: KindNonSuccessStatus}
	ErrDecode             = &Error{Kind: KindDecode}
	ErrNoAssistantContent = &Error{Kind: KindNoAssistantContent}
	ErrInvalidInput       = &Error{Kind: KindInvalidInput}
	ErrStorage            = &Error{Kind: KindStorage}
	ErrNotFound           = &Error{Kind: KindNotFound}
)

// Error is a classified failure. Op names the operation that failed
// (e.g. "openai.completion"), Status holds the HTTP status for
// KindNonSuccessStatus.
type Error struct {
	Kind   Kind
	Op     string
	Status int
	Err    error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Kind == KindNonSuccessStatus && e.Status != 0 {
		msg = fmt.Sprintf("%s: %d", msg, e.Status)
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so callers can test against the sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Status != 0 && t.Status != e.Status {
		return false
	}
	return t.Kind == e.Kind
}

// Transport wraps a connection level failure.
func Transport(op string, err error) error {
	return &Error{Kind: KindTransport, Op: op, Err: err}
}

// NonSuccessStatus reports a non-2xx answer from a provider.
func NonSuccessStatus(op string, status int) error {
	return &Error{Kind: KindNonSuccessStatus, Op: op, Status: status}
}

// Decode wraps a body that could not be decoded into the expected shape.
func Decode(op string, err error) error {
	return &Error{Kind: KindDecode, Op: op, Err: err}
}

// NoAssistantContent reports a completion without a plain-text assistant turn.
func NoAssistantContent(op string) error {
	return &Error{Kind: KindNoAssistantContent, Op: op}
}

// InvalidInput reports a request rejected before any provider call.
func InvalidInput(op, msg string) error {
	return &Error{Kind: KindInvalidInput, Op: op, Err: errors.New(msg)}
}

// Storage wraps a file persistence or read failure.
func Storage(op string, err error) error {
	return &Error{Kind: KindStorage, Op: op, Err: err}
}

// NotFound reports a missing record.
func NotFound(op string) error {
	return &Error{Kind: KindNotFound, Op: op}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// StatusCode returns the provider HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}
