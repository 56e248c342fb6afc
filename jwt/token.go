package jwt

import (
	"encoding/base64"
	"strings"

	"github.com/effective-security/xlog"
	gojwt "github.com/golang-jwt/jwt/v5"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/jwtdecode", "jwt")

// segmentParser decodes base64url segments without padding,
// rejecting non-zero trailing bits
var segmentParser = gojwt.NewParser(gojwt.WithStrictDecoding())

// Token is a decoded, unverified JWT
type Token struct {
	Raw       string // The raw token, as supplied
	Header    any    // The first segment of the token
	Payload   any    // The second segment of the token
	Signature string // The third segment of the token, not decoded
}

// Split trims a trailing newline and one pair of surrounding double quotes
// from token, and returns its header, payload and signature segments.
// The returned segments are substrings of token.
func Split(token string) (header, payload, signature string, err error) {
	s := token
	if strings.HasSuffix(s, "\n") {
		s = strings.TrimSuffix(s[:len(s)-1], "\r")
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" {
		return "", "", "", &Error{Kind: KindEmptyInput}
	}

	parts := strings.Split(s, ".")
	count := 0
	for _, p := range parts {
		if p != "" {
			count++
		}
	}
	if count != 3 || len(parts) != 3 {
		return "", "", "", &Error{Kind: KindSplit, Count: count, Parts: len(parts)}
	}
	return parts[0], parts[1], parts[2], nil
}

// DecodeSegment decodes JWT specific base64url encoding with padding stripped.
// Line breaks are not part of the alphabet and are rejected.
func DecodeSegment(seg string) ([]byte, error) {
	if idx := strings.IndexAny(seg, "\r\n"); idx >= 0 {
		return nil, &Error{Kind: KindBase64, Cause: base64.CorruptInputError(idx)}
	}
	b, err := segmentParser.DecodeSegment(seg)
	if err != nil {
		return nil, &Error{Kind: KindBase64, Cause: err}
	}
	return b, nil
}

// Decode decodes a single header or payload segment and parses it as JSON.
// Any JSON value is accepted.
func Decode(segment string) (any, error) {
	b, err := DecodeSegment(segment)
	if err != nil {
		return nil, err
	}
	v, err := ParseValue(b)
	if err != nil {
		return nil, &Error{Kind: KindJSON, Cause: err}
	}
	return v, nil
}

// DecodeToken splits raw and decodes its header and payload.
// The payload is not decoded if the header fails.
// The signature is not verified.
func DecodeToken(raw string) (*Token, error) {
	h, p, sig, err := Split(raw)
	if err != nil {
		return nil, err
	}

	token := &Token{
		Raw:       raw,
		Signature: sig,
	}
	if token.Header, err = Decode(h); err != nil {
		return nil, withSegment(err, SegmentHeader)
	}
	logger.KV(xlog.DEBUG, "segment", SegmentHeader, "len", len(h))

	if token.Payload, err = Decode(p); err != nil {
		return nil, withSegment(err, SegmentPayload)
	}
	logger.KV(xlog.DEBUG, "segment", SegmentPayload, "len", len(p))

	return token, nil
}
