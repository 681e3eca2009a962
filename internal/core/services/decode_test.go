package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-bridge/internal/core/domain"
)

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want any
	}{
		{name: "object", body: `{"a":1}`, want: map[string]any{"a": json.Number("1")}},
		{name: "array", body: `[]`, want: []any{}},
		{name: "string", body: `"x"`, want: "x"},
		{name: "false", body: `false`, want: false},
		{name: "null", body: `null`, want: nil},
		{name: "surrounding whitespace", body: " \n\t{}\r\n ", want: map[string]any{}},
		{name: "float keeps digits", body: `1.10`, want: json.Number("1.10")},
		{name: "byte order mark", body: "\xef\xbb\xbf{\"items\":[]}", want: map[string]any{"items": []any{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeJSON([]byte(tt.body))

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty", body: ""},
		{name: "whitespace only", body: "   "},
		{name: "truncated", body: `{"a":`},
		{name: "two values", body: `{}{}`},
		{name: "trailing garbage", body: `[] x`},
		{name: "not json", body: `Service Unavailable`},
		{name: "byte order mark only", body: "\xef\xbb\xbf"},
		{name: "two byte order marks", body: "\xef\xbb\xbf\xef\xbb\xbf{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeJSON([]byte(tt.body))

			assert.Nil(t, got)
			assert.ErrorIs(t, err, domain.ErrDecodeFailed)
		})
	}
}

func TestDecodeJSON_ReencodesUnchanged(t *testing.T) {
	body := `{"id":9007199254740993,"score":0.1000}`

	value, err := DecodeJSON([]byte(body))
	require.NoError(t, err)

	out, err := json.Marshal(value)
	require.NoError(t, err)
	assert.JSONEq(t, body, string(out))
	assert.Contains(t, string(out), "9007199254740993")
	assert.Contains(t, string(out), "0.1000")
}
