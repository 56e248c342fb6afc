package jwt

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Kind identifies the stage at which a token failed to decode
type Kind int

const (
	// KindEmptyInput is returned when the token is empty after trim and unquote
	KindEmptyInput Kind = iota + 1
	// KindSplit is returned when the token does not have exactly three non-empty segments
	KindSplit
	// KindBase64 is returned when a segment is not valid unpadded base64url
	KindBase64
	// KindJSON is returned when a decoded segment is not a single JSON value
	KindJSON
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case KindEmptyInput:
		return "empty_input"
	case KindSplit:
		return "split"
	case KindBase64:
		return "base64"
	case KindJSON:
		return "json"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Segment names
const (
	SegmentHeader  = "header"
	SegmentPayload = "payload"
)

// Error is returned by Split, Decode and DecodeToken.
// Use errors.As to inspect the context of the failure.
type Error struct {
	Kind Kind
	// Segment is the name of the segment that failed to decode,
	// empty when the error is returned by Decode directly.
	Segment string
	// Count is the number of non-empty dot-delimited parts, set for KindSplit
	Count int
	// Parts is the raw number of dot-delimited parts, set for KindSplit
	Parts int
	// Cause is the underlying codec error, set for KindBase64 and KindJSON
	Cause error
}

// Sentinel errors to match an Error by kind with errors.Is
var (
	ErrEmptyInput = &Error{Kind: KindEmptyInput}
	ErrMalformed  = &Error{Kind: KindSplit}
	ErrBase64     = &Error{Kind: KindBase64}
	ErrJSON       = &Error{Kind: KindJSON}
)

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindEmptyInput:
		return "empty token"
	case KindSplit:
		return fmt.Sprintf("malformed token: expected 3 non-empty segments, found %d in %d parts", e.Count, e.Parts)
	case KindBase64:
		msg = "invalid base64"
	case KindJSON:
		msg = "invalid JSON"
	default:
		msg = e.Kind.String()
	}
	if e.Segment != "" {
		msg = e.Segment + ": " + msg
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the Kind of err, or 0 if err is not an *Error
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func withSegment(err error, segment string) error {
	var e *Error
	if errors.As(err, &e) {
		c := *e
		c.Segment = segment
		return &c
	}
	return errors.WithMessage(err, segment)
}
