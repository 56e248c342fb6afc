package jwt_test

import (
	"encoding/json"
	"testing"

	"github.com/effective-security/jwtdecode/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValueOrder(t *testing.T) {
	v, err := jwt.ParseValue([]byte(`{"b":{"z":1,"a":[{"k":"v"}]},"a":"<&>","c":2}`))
	require.NoError(t, err)

	obj, ok := v.(jwt.Object)
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a", "c"}, obj.Keys())

	first, ok := obj.Get("b")
	require.True(t, ok)
	nested, ok := first.(jwt.Object)
	require.True(t, ok)
	assert.Equal(t, []string{"z", "a"}, nested.Keys())

	_, ok = obj.Get("missing")
	assert.False(t, ok)

	js, err := obj.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"b":{"z":1,"a":[{"k":"v"}]},"a":"<&>","c":2}`, string(js))
}

func TestParseValueDuplicateKeys(t *testing.T) {
	v, err := jwt.ParseValue([]byte(`{"a":1,"b":true,"a":{"x":"y"}}`))
	require.NoError(t, err)

	assert.Equal(t, jwt.Object{
		{Key: "a", Value: jwt.Object{{Key: "x", Value: "y"}}},
		{Key: "b", Value: true},
	}, v)
}

func TestParseValueScalars(t *testing.T) {
	tcases := []struct {
		in  string
		exp any
	}{
		{`null`, nil},
		{`true`, true},
		{` false `, false},
		{`-1.5e10`, json.Number("-1.5e10")},
		{`"a\"b"`, `a"b`},
		{`{}`, jwt.Object{}},
		{`[]`, []any{}},
		{"\t[ {} ]\n", []any{jwt.Object{}}},
	}
	for _, tc := range tcases {
		v, err := jwt.ParseValue([]byte(tc.in))
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.exp, v, tc.in)
	}
}

func TestParseValueErrors(t *testing.T) {
	tcases := []struct {
		in  string
		err string
	}{
		{``, "unexpected end of JSON input"},
		{`   `, "unexpected end of JSON input"},
		{`{"a":1} x`, "unexpected trailing data after JSON value"},
		{`{"a":1}{"b":2}`, "unexpected trailing data after JSON value"},
		{`1 2`, "unexpected trailing data after JSON value"},
		{`{"a" 1}`, ""},
		{`{"a":1`, ""},
		{`[1,]`, ""},
		{`{1:2}`, ""},
		{"\xff\xfe", "invalid UTF-8 in JSON input"},
		{"{\"a\":\"\xff\xfe\"}", "invalid UTF-8 in JSON input"},
		{"[\"ok\", \"\xc3\"]", "invalid UTF-8 in JSON input"},
	}
	for _, tc := range tcases {
		_, err := jwt.ParseValue([]byte(tc.in))
		require.Error(t, err, tc.in)
		if tc.err != "" {
			assert.EqualError(t, err, tc.err)
		}
	}
}

func TestObjectMarshalEmpty(t *testing.T) {
	js, err := json.Marshal(jwt.Object{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(js))

	js, err = json.Marshal([]any{jwt.Object{{Key: "a", Value: nil}}})
	require.NoError(t, err)
	assert.Equal(t, `[{"a":null}]`, string(js))
}
