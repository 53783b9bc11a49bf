// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DocumentsRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_documents_rendered_total",
			Help: "Total number of display documents produced",
		},
		[]string{"task_type"},
	)

	DocumentsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_documents_failed_total",
			Help: "Total number of runs that produced no document",
		},
		[]string{"task_type", "error_code"},
	)

	ProblemsReported = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_problems_reported_total",
			Help: "Total number of errors passed to the error reporter",
		},
		[]string{"error_code"},
	)

	RunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "catalog_run_duration_seconds",
			Help: "Duration of fetch, decode and transform in seconds",
		},
		[]string{"task_type"},
	)

	SectionsEmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_sections_emitted_total",
			Help: "Sections written to display documents, by title",
		},
		[]string{"section"},
	)

	RunsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_runs_active",
			Help: "Number of runs in progress",
		},
		[]string{"task_type"},
	)
)
