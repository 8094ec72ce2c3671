package metrics

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Render cycle outcomes.
const (
	OutcomeRendered     = "rendered"
	OutcomeFetchFailure = "fetch_failure"
)

var (
	renderCycles = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "srfibrowse_render_cycles_total",
			Help: "Total fetch-join-render cycles by outcome",
		},
		[]string{"outcome"},
	)

	fetchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "srfibrowse_fetch_duration_seconds",
			Help:    "Time spent retrieving and decoding a dataset",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source", "result"},
	)

	recordsRendered = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "srfibrowse_records_rendered",
			Help: "Number of SRFI records in the most recent render",
		},
	)

	sourceUp = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "srfibrowse_source_up",
			Help: "Whether the last reachability check of a data source succeeded",
		},
		[]string{"source"},
	)
)

var (
	initialized atomic.Bool
	initOnce    sync.Once
)

// Init registers the collectors with the default registry.
// Must be called once at startup; recording before Init is a no-op.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(renderCycles, fetchDuration, recordsRendered, sourceUp)
		initialized.Store(true)
	})
}

// RecordCycle counts one render cycle and, when rendered, its record count.
func RecordCycle(outcome string, records int) {
	if !initialized.Load() {
		return
	}
	renderCycles.WithLabelValues(outcome).Inc()
	if outcome == OutcomeRendered {
		recordsRendered.Set(float64(records))
	}
}

// ObserveFetch records how long a dataset retrieval took.
func ObserveFetch(source string, d time.Duration, err error) {
	if !initialized.Load() {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	fetchDuration.WithLabelValues(source, result).Observe(d.Seconds())
}

// SetSourceUp records the result of a reachability check.
func SetSourceUp(source string, up bool) {
	if !initialized.Load() {
		return
	}
	v := 0.0
	if up {
		v = 1
	}
	sourceUp.WithLabelValues(source).Set(v)
}
