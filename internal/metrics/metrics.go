// Package metrics exposes Prometheus counters for the extraction
// pipeline and the HTTP surface. All metrics register with the default
// registry at package initialization.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestTotals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ExtractionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "extractions_total",
			Help: "Total extraction pipeline runs",
		},
	)

	ExternalStageFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "external_stage_failures_total",
			Help: "Extraction runs where the external model stage returned no result",
		},
	)

	ExtractionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "extraction_duration_seconds",
			Help:    "End-to-end extraction pipeline latency",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)

	MedicationsExtracted = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "medications_extracted",
			Help:    "Medications found per extraction run",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13},
		},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestTotals)
	prometheus.MustRegister(ExtractionsTotal)
	prometheus.MustRegister(ExternalStageFailures)
	prometheus.MustRegister(ExtractionDuration)
	prometheus.MustRegister(MedicationsExtracted)
}
