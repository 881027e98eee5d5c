package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"event-metrics-service/internal/records/core/domain"
	"event-metrics-service/internal/records/core/ports"

	"github.com/lib/pq"
)

type RecordRepository struct {
	db DB
}

func NewRecordRepository(db DB) *RecordRepository {
	return &RecordRepository{db: db}
}

var _ ports.RecordRepositoryPort = (*RecordRepository)(nil)

const insertRecordSQL = `
INSERT INTO records (
    id,
    external_id,
    kind,
    record_date,
    product,
    record_type,
    source,
    tags,
    metadata,
    dedupe_key,
    created_at
) VALUES (
    $1, $2, $3, $4, $5, $6,
    $7, $8, $9, $10, $11
)
ON CONFLICT (dedupe_key) DO NOTHING;
`

func (r *RecordRepository) InsertRecord(ctx context.Context, rec *domain.Record) (bool, error) {

	metadataJSON, err := json.Marshal(rec.Metadata)
	if err != nil {
		return false, fmt.Errorf("marshal metadata: %w", err)
	}

	res, err := r.db.ExecContext(ctx, insertRecordSQL,
		rec.ID,
		nullable(rec.ExternalID),
		rec.Kind,
		rec.RecordDate,
		nullable(rec.Product),
		nullable(rec.RecordType),
		nullable(rec.Source),
		pq.Array(rec.Tags),
		metadataJSON,
		rec.DedupeKey,
		rec.CreatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert record: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 0 -> dedupe_key zaten var
	return rows > 0, nil
}

// Boş string NULL olarak yazılır.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
