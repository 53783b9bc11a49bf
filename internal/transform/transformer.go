// Package transform re-projects a decoded catalog document into the
// labelled display document. Every mapper is a pure function of its own
// top-level key; the Transformer only orders and assembles their output.
package transform

import (
	"time"

	"catalog-viewer/internal/models"
)

// Reporter receives non-fatal problems found while mapping.
type Reporter interface {
	Report(err error)
}

type nopReporter struct{}

func (nopReporter) Report(error) {}

// Options configure a Transformer. Zero values fall back to UTC and the
// built-in main field table.
type Options struct {
	Location   *time.Location
	MainFields []FieldSpec
}

type Transformer struct {
	location   *time.Location
	mainFields []FieldSpec
}

func New(opts Options) *Transformer {
	t := &Transformer{
		location:   opts.Location,
		mainFields: opts.MainFields,
	}
	if t.location == nil {
		t.location = time.UTC
	}
	if len(t.mainFields) == 0 {
		t.mainFields = DefaultMainFields()
	}
	return t
}

type sectionMapper struct {
	title string
	key   string
	build func(models.Value, Reporter) interface{}
}

var sectionMappers = []sectionMapper{
	{SectionRegions, KeyRegions, func(v models.Value, _ Reporter) interface{} { return mapRegions(v) }},
	{SectionSite, KeySiteURLTemplate, func(v models.Value, _ Reporter) interface{} { return mapSite(v) }},
	{SectionProduct, KeyMarketingProduct, func(v models.Value, _ Reporter) interface{} { return mapProduct(v) }},
	{SectionModifiers, KeyModifiers, func(v models.Value, _ Reporter) interface{} { return mapModifiers(v) }},
	{SectionParameters, KeyParameters, func(v models.Value, _ Reporter) interface{} { return mapParameters(v) }},
	{SectionTariffs, KeyTariffsOnService, func(v models.Value, r Reporter) interface{} { return mapTariffs(v, r) }},
}

// Transform builds the display document. The main section is always
// present; every other section only when its key exists in doc and the
// mapped content is non-empty. doc is never modified.
func (t *Transformer) Transform(doc models.Value, r Reporter) *models.DisplayDocument {
	if r == nil {
		r = nopReporter{}
	}

	out := models.NewSection()
	out.Set(SectionMain, t.mapMain(doc, r))

	for _, m := range sectionMappers {
		if !doc.Has(m.key) {
			continue
		}
		content := m.build(doc.Field(m.key), r)
		if isEmptyContent(content) {
			continue
		}
		out.Set(m.title, content)
	}

	return out
}

// TransformText decodes text and transforms it. A decode failure returns
// the INVALID_DATA_FORMAT error and no document.
func (t *Transformer) TransformText(text []byte, r Reporter) (*models.DisplayDocument, error) {
	doc, err := models.Decode(text)
	if err != nil {
		return nil, err
	}
	return t.Transform(doc, r), nil
}

func isEmptyContent(content interface{}) bool {
	switch c := content.(type) {
	case *models.Section:
		return c.IsEmpty()
	case []interface{}:
		return len(c) == 0
	}
	return content == nil
}
