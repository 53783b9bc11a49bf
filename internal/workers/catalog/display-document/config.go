// internal/workers/catalog/display-document/config.go
package displaydocument

import (
	"time"

	"catalog-viewer/internal/common/config"
	"catalog-viewer/internal/transform"
)

type Config struct {
	Timeout        time.Duration
	Location       *time.Location
	MainFields     []transform.FieldSpec
	ValidateOutput bool
	Version        string
}

// LoadConfig derives the worker settings from the application config. An
// empty main field table keeps the built-in one.
func LoadConfig(cfg *config.Config) (*Config, error) {
	loc, err := cfg.Display.Location()
	if err != nil {
		return nil, err
	}

	var fields []transform.FieldSpec
	for _, f := range cfg.Display.MainFields {
		fields = append(fields, transform.FieldSpec{
			Source:    f.Source,
			Label:     f.Label,
			Transform: f.Transform,
		})
	}

	return &Config{
		Timeout:        config.GetDuration(cfg.Source.Timeout),
		Location:       loc,
		MainFields:     fields,
		ValidateOutput: cfg.Display.ValidateOutput,
		Version:        cfg.App.Version,
	}, nil
}
