// internal/transform/lists.go
package transform

import (
	"catalog-viewer/internal/common/errors"
	"catalog-viewer/internal/models"
)

// mapModifiers lists the titles of the service modifiers.
func mapModifiers(data models.Value) []interface{} {
	return collectTitles(data, true)
}

// mapParameters renders each parameter as its own labelled object.
func mapParameters(data models.Value) []interface{} {
	var out []interface{}

	for _, item := range data.Items() {
		meta := models.NewSection()

		meta.Put(LabelMainParameter, nestedTitle(item, "BaseParameter"))
		if modifiers := collectTitles(item.Field("BaseParameterModifiers"), false); len(modifiers) > 0 {
			meta.Set(LabelModifiers, modifiers)
		}
		meta.Put(LabelGroup, nestedTitle(item, "Group"))
		meta.Put(LabelTitle, GetField("Title", item))
		meta.Put(LabelZone, nestedTitle(item, "Zone"))
		meta.Put(LabelValue, GetField("Value", item))

		if unit := item.Field("Unit"); unit.Exists() {
			meta.Put(LabelPeriodicity, GetField("QuotaPeriodicity", unit))
			meta.Put(LabelCurrency, GetField("Title", unit))
			meta.Put(LabelCurrencyDisplay, GetField("Display", unit))
		}

		if !meta.IsEmpty() {
			out = append(out, meta)
		}
	}

	return out
}

// mapTariffs renders the tariffs the service is available on. Entries
// without a Tariff or Parent object are reported and skipped.
func mapTariffs(data models.Value, r Reporter) []interface{} {
	var out []interface{}

	for i, item := range data.Items() {
		tariff := item.Field("Tariff")
		if !tariff.IsObject() {
			r.Report(errors.NewTariffIncompleteError(i, "Tariff"))
			continue
		}
		parent := item.Field("Parent")
		if !parent.IsObject() {
			r.Report(errors.NewTariffIncompleteError(i, "Parent"))
			continue
		}

		meta := models.NewSection()
		meta.Put(LabelName, nestedTitle(tariff, "MarketingProduct"))
		meta.Put(LabelDescription, GetField("Title", parent))
		if modifiers := collectTitles(parent.Field("Modifiers"), false); len(modifiers) > 0 {
			meta.Set(LabelModifiers, modifiers)
		}
		if params := collectTitles(parent.Field("Parameters"), false); len(params) > 0 {
			meta.Set(LabelParameters, params)
		}

		if !meta.IsEmpty() {
			out = append(out, meta)
		}
	}

	return out
}
