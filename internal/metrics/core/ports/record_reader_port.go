package ports

import (
	"context"

	"event-metrics-service/internal/metrics/core/engine"
)

type RecordQuery struct {
	Kind engine.Kind
}

// RecordReaderPort materialises raw records for the aggregation engine. Dates
// are returned exactly as stored; normalisation happens in the engine.
type RecordReaderPort interface {
	ListRecords(ctx context.Context, q RecordQuery) ([]engine.Record, error)
}
