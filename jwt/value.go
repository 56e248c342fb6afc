package jwt

import (
	"bytes"
	"encoding/json"
	"io"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// Field is a single member of a JSON object
type Field struct {
	Key   string
	Value any
}

// Object is a JSON object that keeps its members in source order.
// A duplicate key keeps the position of its first occurrence and the
// value of its last one.
type Object []Field

// Get returns the value of the first member with the given key
func (o Object) Get(key string) (any, bool) {
	for _, f := range o {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

func (o Object) set(key string, value any) Object {
	for i := range o {
		if o[i].Key == key {
			o[i].Value = value
			return o
		}
	}
	return append(o, Field{Key: key, Value: value})
}

// Keys returns member names in source order
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, f := range o {
		keys[i] = f.Key
	}
	return keys
}

// MarshalJSON encodes the object preserving member order
func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeRaw(&buf, f.Key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeRaw(&buf, f.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encodeRaw writes v without HTML escaping and without the trailing newline
// added by json.Encoder
func encodeRaw(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return errors.WithStack(err)
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}

// ParseValue parses data as a single JSON value.
// Objects are returned as Object, arrays as []any and numbers as json.Number.
// Anything but whitespace after the value is an error, as is invalid UTF-8.
func ParseValue(data []byte) (any, error) {
	if !utf8.Valid(data) {
		return nil, errors.New("invalid UTF-8 in JSON input")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := parseValue(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("unexpected end of JSON input")
		}
		return nil, err
	}

	if _, err = dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected trailing data after JSON value")
	}
	return v, nil
}

func parseValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := Object{}
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, _ := kt.(string)
				val, err := parseValue(dec)
				if err != nil {
					return nil, err
				}
				obj = obj.set(key, val)
			}
			// closing '}'
			if _, err = dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			arr := []any{}
			for dec.More() {
				val, err := parseValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, val)
			}
			if _, err = dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		}
		return nil, errors.Newf("unexpected delimiter %q", rune(t))
	default:
		// nil, bool, json.Number or string
		return t, nil
	}
}
