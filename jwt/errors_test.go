package jwt

import (
	"encoding/base64"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tcases := []struct {
		err *Error
		exp string
	}{
		{&Error{Kind: KindEmptyInput}, "empty token"},
		{&Error{Kind: KindSplit, Count: 2, Parts: 3}, "malformed token: expected 3 non-empty segments, found 2 in 3 parts"},
		{&Error{Kind: KindBase64, Cause: base64.CorruptInputError(4)}, "invalid base64: illegal base64 data at input byte 4"},
		{&Error{Kind: KindBase64, Segment: SegmentHeader, Cause: base64.CorruptInputError(0)}, "header: invalid base64: illegal base64 data at input byte 0"},
		{&Error{Kind: KindJSON, Segment: SegmentPayload, Cause: errors.New("bad")}, "payload: invalid JSON: bad"},
		{&Error{Kind: Kind(9)}, "kind(9)"},
	}
	for _, tc := range tcases {
		assert.EqualError(t, tc.err, tc.exp)
	}
}

func TestErrorIs(t *testing.T) {
	cause := errors.New("cause")
	err := &Error{Kind: KindJSON, Segment: SegmentPayload, Cause: cause}

	assert.True(t, errors.Is(err, ErrJSON))
	assert.False(t, errors.Is(err, ErrBase64))
	assert.False(t, errors.Is(err, ErrMalformed))
	assert.True(t, errors.Is(err, cause))

	wrapped := errors.Wrap(err, "decode")
	assert.True(t, errors.Is(wrapped, ErrJSON))
	assert.Equal(t, KindJSON, KindOf(wrapped))
	assert.Equal(t, Kind(0), KindOf(cause))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "empty_input", KindEmptyInput.String())
	assert.Equal(t, "split", KindSplit.String())
	assert.Equal(t, "base64", KindBase64.String())
	assert.Equal(t, "json", KindJSON.String())
}

func TestWithSegment(t *testing.T) {
	orig := &Error{Kind: KindBase64, Cause: base64.CorruptInputError(1)}
	err := withSegment(orig, SegmentHeader)

	var e *Error
	assert.True(t, errors.As(err, &e))
	assert.Equal(t, SegmentHeader, e.Segment)
	// the original is not modified
	assert.Empty(t, orig.Segment)

	err = withSegment(errors.New("other"), SegmentPayload)
	assert.EqualError(t, err, "payload: other")
}
