// Package print provides helpers to print decoded JSON values
package print

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"
)

// Indent is used for nested JSON values
const Indent = "  "

// JSON prints value to w, indented, followed by a new line.
// Members of jwt.Object are printed in source order.
func JSON(w io.Writer, value any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	if err := enc.Encode(value); err != nil {
		return errors.WithMessage(err, "failed to encode")
	}
	_, err := w.Write(buf.Bytes())
	return errors.WithStack(err)
}
