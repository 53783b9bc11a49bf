// internal/transform/accessor.go
package transform

import (
	"catalog-viewer/internal/models"

	"golang.org/x/text/unicode/norm"
)

// Transform rewrites a field value before it is displayed.
type Transform func(models.Value) models.Value

// GetField returns container[key], passed through transform when one is
// given. An absent key, or a container that is not an object (including a
// missing one), yields models.Missing(); it never fails.
func GetField(key string, container models.Value, transform ...Transform) models.Value {
	if !container.Has(key) {
		return models.Missing()
	}
	value := container.Field(key)
	for _, fn := range transform {
		if fn != nil {
			value = fn(value)
		}
	}
	return value
}

// nestedTitle is GetField("Title", container[key]).
func nestedTitle(container models.Value, key string) models.Value {
	return GetField("Title", GetField(key, container))
}

// displayKey turns a value into a section key. Titles are NFC-normalised so
// that composed and decomposed spellings of the same word share one key.
func displayKey(v models.Value) string {
	return norm.NFC.String(v.String())
}

// collectTitles gathers Title from every object in list. With truthyOnly,
// empty and zero titles are skipped as well as absent ones.
func collectTitles(list models.Value, truthyOnly bool) []interface{} {
	var out []interface{}
	for _, item := range list.Items() {
		title := GetField("Title", item)
		if !title.Present() || (truthyOnly && !title.Truthy()) {
			continue
		}
		out = append(out, title.Raw())
	}
	return out
}
