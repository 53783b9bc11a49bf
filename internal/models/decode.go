// internal/models/decode.go
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"catalog-viewer/internal/common/errors"
)

// Decode parses a single JSON document. Numbers are kept as json.Number.
// Anything malformed, including trailing data after the document, yields an
// INVALID_DATA_FORMAT error and no value.
func Decode(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return Missing(), errors.NewInvalidDataFormatError(err)
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = fmt.Errorf("unexpected data after document at offset %d", dec.InputOffset())
		}
		return Missing(), errors.NewInvalidDataFormatError(err)
	}

	return NewValue(raw), nil
}
