// internal/transform/regions.go
package transform

import (
	"catalog-viewer/internal/models"
)

// mapRegions keys every titled region by its title.
func mapRegions(data models.Value) *models.Section {
	out := models.NewSection()

	for _, region := range data.Items() {
		title := GetField("Title", region)
		if !title.Truthy() {
			continue
		}

		meta := models.NewSection()
		meta.Put(LabelType, GetField("RegionType", region, FormatRegion))
		meta.Put(LabelKladr, GetField("KladrCode", region))
		out.Set(displayKey(title), meta)
	}

	return out
}

// mapSite keys every site URL template by its segment alias.
func mapSite(data models.Value) *models.Section {
	out := models.NewSection()

	for _, site := range data.Items() {
		alias := GetField("Alias", site.Field("Segment"))
		if !alias.Truthy() {
			continue
		}

		meta := models.NewSection()
		meta.Put(LabelTitle, GetField("Title", site))
		meta.Put(LabelTemplate, GetField("Template", site))
		out.Set(displayKey(alias), meta)
	}

	return out
}
