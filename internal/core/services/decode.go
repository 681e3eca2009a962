package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/custodia-labs/sercha-bridge/internal/core/domain"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// DecodeJSON parses body as exactly one JSON value.
// Surrounding whitespace is allowed; an empty body, malformed JSON or data
// after the first value are errors wrapping domain.ErrDecodeFailed.
// A leading UTF-8 byte order mark is ignored, as a UTF-8 text decode would.
// Numbers decode to json.Number so they re-encode unchanged.
func DecodeJSON(body []byte) (any, error) {
	body = bytes.TrimPrefix(body, utf8BOM)

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty body", domain.ErrDecodeFailed)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrDecodeFailed, err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON value", domain.ErrDecodeFailed)
	}

	return value, nil
}
