// internal/transform/product.go
package transform

import (
	"strings"

	"catalog-viewer/internal/models"
)

// mapProduct renders the marketing product. Each field is gated on its own;
// list fields are only emitted when they end up non-empty.
func mapProduct(data models.Value) *models.Section {
	out := models.NewSection()
	if !data.IsObject() {
		return out
	}

	out.Put(LabelTitle, GetField("Title", data))
	out.Put(LabelDescription, GetField("Description", data))
	out.Put(LabelFullDescription, GetField("FullDescription", data))
	out.Put(LabelType, GetField("Type", data))
	out.Put(LabelServiceType, nestedTitle(data, "ServiceType"))
	out.Put(LabelZone, nestedTitle(data, "Zone"))
	out.Put(LabelLink, GetField("Link", data))

	if segments := collectTitles(data.Field("Segment"), false); len(segments) > 0 {
		out.Set(LabelSegment, segments)
	}
	if categories := productCategories(data.Field("Category")); !categories.IsEmpty() {
		out.Set(LabelCategories, categories)
	}
	if groups := productGroups(data.Field("Groups")); !groups.IsEmpty() {
		out.Set(LabelGroups, groups)
	}
	if modifiers := collectTitles(data.Field("Modifiers"), false); len(modifiers) > 0 {
		out.Set(LabelModifiers, modifiers)
	}
	if params := productParameters(data.Field("Parameters")); !params.IsEmpty() {
		out.Set(LabelParameters, params)
	}

	return out
}

func productCategories(list models.Value) *models.Section {
	out := models.NewSection()

	for _, item := range list.Items() {
		title := GetField("Title", item)
		if !title.Present() {
			continue
		}

		meta := models.NewSection()
		meta.Put(LabelCommunication, nestedTitle(item, "CommunicationType"))
		meta.Put(LabelSegment, nestedTitle(item, "Segment"))
		out.Set(displayKey(title), meta)
	}

	return out
}

func productGroups(list models.Value) *models.Section {
	out := models.NewSection()

	for _, item := range list.Items() {
		name := GetField("ScreenName", item)
		if !name.Present() {
			name = GetField("Title", item)
		}
		if !name.Present() {
			continue
		}

		meta := models.NewSection()
		meta.Put(LabelDescription, GetField("Description", item))
		meta.Put(LabelQuotaType, nestedTitle(item, "QuotaType"))
		if item.Has("Parent") {
			meta.Set(LabelParent, ParentPath(item.Field("Parent")))
		}
		out.Set(displayKey(name), meta)
	}

	return out
}

// ParentPath walks a Parent chain upwards starting at parent and joins the
// ancestor titles, nearest first: "/A/B/C/". A null or absent parent gives "/".
// Ancestors without a title are skipped but the walk continues.
func ParentPath(parent models.Value) string {
	var b strings.Builder
	b.WriteString("/")

	for p := parent; p.IsObject(); p = p.Field("Parent") {
		title := GetField("Title", p)
		if !title.Present() {
			continue
		}
		b.WriteString(title.String())
		b.WriteString("/")
	}

	return b.String()
}

func productParameters(list models.Value) *models.Section {
	out := models.NewSection()

	for _, item := range list.Items() {
		title := GetField("Title", item)
		if !title.Present() {
			continue
		}

		meta := models.NewSection()
		meta.Put(LabelBaseParameter, nestedTitle(item, "BaseParameter"))
		meta.Put(LabelGroup, nestedTitle(item, "Group"))
		meta.Put(LabelValue, GetField("Value", item))
		out.Set(displayKey(title), meta)
	}

	return out
}
