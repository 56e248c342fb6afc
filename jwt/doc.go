// Package jwt decodes JSON Web Tokens for inspection.
//
// A token is split into its header, payload and signature segments,
// and the header and payload are decoded from unpadded base64url and
// parsed as JSON. JSON objects keep their source member order.
//
// The package does not verify signatures or validate claims:
//   - Split validates that the token has exactly three non-empty segments
//   - Decode decodes a single segment into a JSON value
//   - DecodeToken combines both for the header and payload
//
// All failures are reported as *Error, with a Kind that identifies the
// failed stage.
package jwt
