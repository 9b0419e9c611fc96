package businessflow

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Clicks whose log append and counter increment both succeeded
	clicksRecordedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "clicks_recorded_total",
			Help: "Total number of click events fully recorded",
		},
	)

	// Failed store writes partitioned by the half that failed
	clickStoreFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "click_store_failures_total",
			Help: "Click store write failures by operation (log_append, counter_increment)",
		},
		[]string{"operation"},
	)

	// Preset checks performed before page links are persisted
	presetValidationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "preset_validation_total",
			Help: "Preset URL validations by preset and result",
		},
		[]string{"preset", "result"},
	)
)
