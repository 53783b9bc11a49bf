// internal/workers/catalog/display-document/models.go
package displaydocument

import (
	"time"

	"catalog-viewer/internal/models"
)

type Input struct {
	URL string `json:"url"`
}

// Output is the result of one run.
type Output struct {
	RequestID string                  `json:"requestId"`
	URL       string                  `json:"url"`
	Document  *models.DisplayDocument `json:"document"`
	Metadata  ResponseMetadata        `json:"metadata"`
}

type ResponseMetadata struct {
	Timestamp time.Time `json:"timestamp"`
	Duration  string    `json:"duration"`
	Version   string    `json:"version,omitempty"`
	Sections  []string  `json:"sections"`
}
