package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ConfigSavesTotal counts saved configurations, including overwrites
	ConfigSavesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "config_saves_total",
			Help: "Total number of configuration save operations",
		},
	)

	// ConfigDeletesTotal counts deleted configurations
	ConfigDeletesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "config_deletes_total",
			Help: "Total number of configuration delete operations",
		},
	)

	// ValidationFailuresTotal counts rejected TOML documents
	ValidationFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "toml_validation_failures_total",
			Help: "Total number of TOML documents rejected by syntax validation",
		},
	)

	// StoredConfigs records the number of configuration records on disk
	StoredConfigs = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "stored_configs",
			Help: "Number of configuration records currently in the store",
		},
	)

	storeMetricsOnce sync.Once
)

// RegisterStoreMetrics registers all store-related metrics
func RegisterStoreMetrics(registry *prometheus.Registry) {
	storeMetricsOnce.Do(func() {
		registry.MustRegister(
			ConfigSavesTotal,
			ConfigDeletesTotal,
			ValidationFailuresTotal,
			StoredConfigs,
		)
	})
}

// RecordConfigSaved records one successful save
func RecordConfigSaved() {
	ConfigSavesTotal.Inc()
}

// RecordConfigDeleted records one successful delete
func RecordConfigDeleted() {
	ConfigDeletesTotal.Inc()
}

// RecordValidationFailure records one rejected document
func RecordValidationFailure() {
	ValidationFailuresTotal.Inc()
}

// UpdateStoredConfigs sets the current record count
func UpdateStoredConfigs(count int) {
	StoredConfigs.Set(float64(count))
}
