// internal/transform/format.go
package transform

import (
	"time"

	"catalog-viewer/internal/models"
)

// DisplayDateLayout mirrors the ru-RU locale rendering of a date and time.
const DisplayDateLayout = "02.01.2006, 15:04:05"

// Named transforms usable from the main field table.
const (
	TransformNone   = ""
	TransformDate   = "date"
	TransformRegion = "region"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FormatDate renders an ISO-like timestamp in loc. Values without an offset
// are read as loc time. Anything that does not parse is returned unchanged.
func FormatDate(loc *time.Location) Transform {
	if loc == nil {
		loc = time.UTC
	}
	return func(v models.Value) models.Value {
		if v.Kind() != models.KindString {
			return v
		}
		raw := v.String()
		for _, layout := range dateLayouts {
			ts, err := time.ParseInLocation(layout, raw, loc)
			if err == nil {
				return models.NewValue(ts.In(loc).Format(DisplayDateLayout))
			}
		}
		return v
	}
}

// FormatRegion translates known region types and passes everything else
// through untouched.
func FormatRegion(v models.Value) models.Value {
	switch v.String() {
	case RegionTypeRegion:
		return models.NewValue(RegionDisplayRegion)
	case RegionTypeCity:
		return models.NewValue(RegionDisplayCity)
	}
	return v
}

// RegionName is FormatRegion over plain strings.
func RegionName(regionType string) string {
	return FormatRegion(models.NewValue(regionType)).String()
}

// resolveTransform maps a configured transform name to its function.
func resolveTransform(name string, loc *time.Location) (Transform, bool) {
	switch name {
	case TransformNone:
		return nil, true
	case TransformDate:
		return FormatDate(loc), true
	case TransformRegion:
		return FormatRegion, true
	}
	return nil, false
}
