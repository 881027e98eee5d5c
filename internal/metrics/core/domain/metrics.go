package domain

import "event-metrics-service/internal/metrics/core/engine"

// MetricsSeries is one aggregation run together with the request that produced it.
type MetricsSeries struct {
	Kind   engine.Kind
	Preset engine.Preset
	Filter engine.Filter

	engine.Series
}
