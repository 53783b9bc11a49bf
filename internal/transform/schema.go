// internal/transform/schema.go
package transform

import (
	_ "embed"
	"encoding/json"
	"strings"

	"catalog-viewer/internal/common/errors"
	"catalog-viewer/internal/models"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed display_schema.json
var displaySchema []byte

// DisplaySchema returns the JSON schema every display document satisfies.
func DisplaySchema() []byte {
	out := make([]byte, len(displaySchema))
	copy(out, displaySchema)
	return out
}

// ValidateDocument checks doc against DisplaySchema.
func ValidateDocument(doc *models.DisplayDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return errors.NewInternalError("display document is not serialisable", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(displaySchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return errors.NewInternalError("display schema validation error", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return errors.NewInternalError("display document validation failed: "+strings.Join(errs, "; "), nil)
	}

	return nil
}
