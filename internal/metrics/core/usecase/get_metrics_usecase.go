package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"event-metrics-service/internal/metrics/core/domain"
	"event-metrics-service/internal/metrics/core/engine"
	"event-metrics-service/internal/metrics/core/ports"
)

var (
	ErrInvalidMetricsQuery = errors.New("invalid metrics query")
	ErrInvalidTimeRange    = errors.New("invalid time range")
	ErrInvalidProduct      = errors.New("invalid product filter")
)

type GetMetricsInput struct {
	Kind  string
	Range string // "1w" / "1m" / "1y" / "custom"
	Start string // custom only
	End   string // custom only

	Product string
	Type    string
	Source  string
}

// Clock returns the current time in the zone "today" is computed in.
type Clock func() time.Time

type GetMetricsUseCase struct {
	reader ports.RecordReaderPort
	now    Clock
}

func NewGetMetricsUseCase(reader ports.RecordReaderPort, now Clock) *GetMetricsUseCase {
	if now == nil {
		now = time.Now
	}
	return &GetMetricsUseCase{reader: reader, now: now}
}

// Execute validates the filter state, resolves the window, loads the records
// of the requested kind and aggregates them.
func (uc *GetMetricsUseCase) Execute(ctx context.Context, in GetMetricsInput) (*domain.MetricsSeries, error) {
	kind := engine.Kind(strings.ToLower(strings.TrimSpace(in.Kind)))
	if !kind.Valid() {
		return nil, ErrInvalidMetricsQuery
	}

	preset, err := engine.ParsePreset(in.Range)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTimeRange, err)
	}

	product, ok := engine.ParseProductFamily(in.Product)
	if !ok {
		return nil, ErrInvalidProduct
	}

	window, err := engine.Resolve(preset, in.Start, in.End, engine.DateOf(uc.now()))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTimeRange, err)
	}

	records, err := uc.reader.ListRecords(ctx, ports.RecordQuery{Kind: kind})
	if err != nil {
		return nil, err
	}

	filter := engine.Filter{Product: product, Type: in.Type, Source: in.Source}
	series := engine.Aggregate(records, window, engine.NewClassifierFor(kind, filter))

	if series.Dropped.Total() > 0 {
		slog.DebugContext(ctx, "records left out of metrics",
			"kind", kind,
			"unparseable", series.Dropped.Unparseable,
			"out_of_range", series.Dropped.OutOfRange,
		)
	}

	return &domain.MetricsSeries{
		Kind:   kind,
		Preset: preset,
		Filter: filter,
		Series: series,
	}, nil
}
