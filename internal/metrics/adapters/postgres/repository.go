package postgres

import (
	"context"
	"fmt"

	"event-metrics-service/internal/metrics/core/engine"
	"event-metrics-service/internal/metrics/core/ports"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type RecordRepository struct {
	db DB
}

func NewRecordRepository(db DB) *RecordRepository {
	return &RecordRepository{db: db}
}

var _ ports.RecordReaderPort = (*RecordRepository)(nil)

// record_date is stored as free text, so the window cannot be pushed down to
// SQL; every record of the kind is returned and the engine drops the rest.
const listRecordsSQL = `
SELECT
    kind,
    record_date,
    COALESCE(product, '')     AS product,
    COALESCE(record_type, '') AS record_type,
    COALESCE(source, '')      AS source
FROM records
WHERE kind = $1
ORDER BY created_at, id`

func (r *RecordRepository) ListRecords(ctx context.Context, q ports.RecordQuery) ([]engine.Record, error) {
	rows, err := r.db.QueryContext(ctx, listRecordsSQL, string(q.Kind))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []engine.Record
	for rows.Next() {
		var kind, date, product, recordType, source string
		if err := rows.Scan(&kind, &date, &product, &recordType, &source); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, engine.Record{
			Kind:    engine.Kind(kind),
			Date:    date,
			Product: product,
			Type:    recordType,
			Source:  source,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
