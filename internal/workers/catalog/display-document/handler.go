// internal/workers/catalog/display-document/handler.go
package displaydocument

import (
	"context"
	"strings"
	"time"

	"catalog-viewer/internal/common/errors"
	"catalog-viewer/internal/common/logger"
	"catalog-viewer/internal/common/metrics"
	"catalog-viewer/internal/models"
	"catalog-viewer/internal/transform"

	"github.com/google/uuid"
)

const (
	TaskType = "display-document"
)

// Fetcher returns the raw bytes of a catalog document.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

type Handler struct {
	config      *Config
	fetcher     Fetcher
	transformer *transform.Transformer
	logger      logger.Logger
}

func NewHandler(config *Config, fetcher Fetcher, log logger.Logger) *Handler {
	return &Handler{
		config:  config,
		fetcher: fetcher,
		transformer: transform.New(transform.Options{
			Location:   config.Location,
			MainFields: config.MainFields,
		}),
		logger: log.With(map[string]interface{}{"taskType": TaskType}),
	}
}

// Start runs the whole pipeline for url and emits the document to the log.
// Every failure goes to the error reporter and yields nil; nothing is
// returned to the caller as an error.
func (h *Handler) Start(ctx context.Context, url string) *models.DisplayDocument {
	requestID := uuid.New().String()
	log := h.logger.With(map[string]interface{}{"requestId": requestID, "url": url})
	reporter := h.newReporter(log)

	output, err := h.run(ctx, requestID, &Input{URL: url}, reporter)
	if err != nil {
		reporter.Report(err)
		metrics.DocumentsFailed.WithLabelValues(TaskType, string(errors.CodeOf(err))).Inc()
		return nil
	}

	log.Info("display document", map[string]interface{}{
		"sections": output.Metadata.Sections,
		"duration": output.Metadata.Duration,
		"document": output.Document,
	})
	return output.Document
}

// Execute runs the pipeline and returns the result explicitly. Non-fatal
// mapping problems are still reported; fatal ones are returned.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	requestID := uuid.New().String()
	log := h.logger.With(map[string]interface{}{"requestId": requestID, "url": input.URL})
	return h.run(ctx, requestID, input, h.newReporter(log))
}

func (h *Handler) run(ctx context.Context, requestID string, input *Input, reporter transform.Reporter) (*Output, error) {
	if strings.TrimSpace(input.URL) == "" {
		return nil, errors.NewInvalidSettingsError("url", "is empty")
	}

	if h.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.config.Timeout)
		defer cancel()
	}

	metrics.RunsActive.WithLabelValues(TaskType).Inc()
	defer metrics.RunsActive.WithLabelValues(TaskType).Dec()
	start := time.Now()

	body, err := h.fetcher.Get(ctx, input.URL)
	if err != nil {
		return nil, err
	}

	doc, err := h.transformer.TransformText(body, reporter)
	if err != nil {
		return nil, err
	}

	if h.config.ValidateOutput {
		if err := transform.ValidateDocument(doc); err != nil {
			reporter.Report(err)
		}
	}

	elapsed := time.Since(start)
	metrics.RunDuration.WithLabelValues(TaskType).Observe(elapsed.Seconds())
	metrics.DocumentsRendered.WithLabelValues(TaskType).Inc()
	sections := doc.Keys()
	for _, title := range sections {
		metrics.SectionsEmitted.WithLabelValues(title).Inc()
	}

	return &Output{
		RequestID: requestID,
		URL:       input.URL,
		Document:  doc,
		Metadata: ResponseMetadata{
			Timestamp: time.Now().UTC(),
			Duration:  elapsed.String(),
			Version:   h.config.Version,
			Sections:  sections,
		},
	}, nil
}

func (h *Handler) newReporter(log logger.Logger) *errors.Reporter {
	return errors.NewReporter(log).WithObserver(func(code errors.ErrorCode) {
		metrics.ProblemsReported.WithLabelValues(string(code)).Inc()
	})
}
