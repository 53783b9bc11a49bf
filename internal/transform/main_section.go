// internal/transform/main_section.go
package transform

import (
	"catalog-viewer/internal/common/errors"
	"catalog-viewer/internal/models"
)

// FieldSpec describes one entry of the "Основные" section: which source key
// to read, the label to show it under and an optional named transform.
type FieldSpec struct {
	Source    string `mapstructure:"source"`
	Label     string `mapstructure:"label"`
	Transform string `mapstructure:"transform"`
}

// DefaultMainFields is the built-in field table, in display order.
func DefaultMainFields() []FieldSpec {
	return []FieldSpec{
		{Source: "UpdateDate", Label: LabelUpdateDate, Transform: TransformDate},
		{Source: "Type", Label: LabelType},
		{Source: "GlobalCode_Value", Label: LabelGlobalCode},
	}
}

// mapMain builds the main section from the field table. A malformed entry is
// reported and skipped; falsy values are left out.
func (t *Transformer) mapMain(data models.Value, r Reporter) *models.Section {
	out := models.NewSection()
	if !data.IsObject() {
		return out
	}

	for _, spec := range t.mainFields {
		if spec.Label == "" {
			r.Report(errors.NewInvalidSettingsError(spec.Source, "label is missing"))
			continue
		}
		fn, ok := resolveTransform(spec.Transform, t.location)
		if !ok {
			r.Report(errors.NewInvalidSettingsError(spec.Source, "unknown transform "+spec.Transform))
			continue
		}

		value := GetField(spec.Source, data, fn)
		if value.Truthy() {
			out.Set(spec.Label, value.Raw())
		}
	}

	return out
}
