package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"event-metrics-service/internal/records/core/domain"
	"event-metrics-service/internal/records/core/ports"

	"github.com/google/uuid"
)

var (
	ErrInvalidRecord = errors.New("invalid record")
	ErrInvalidKind   = errors.New("kind must be lead or demo")
)

const (
	KindLead = "lead"
	KindDemo = "demo"
)

type StoreRecordUseCase struct {
	repo ports.RecordRepositoryPort
	now  func() time.Time
}

func NewStoreRecordUseCase(repo ports.RecordRepositoryPort) *StoreRecordUseCase {
	return &StoreRecordUseCase{repo: repo, now: time.Now}
}

type StoreRecordInput struct {
	ExternalID string
	Kind       string
	Date       string
	Product    string
	Type       string
	Source     string
	Tags       []string
	Metadata   map[string]any
}

// Execute stores a single record. The date string is not parsed here: rows
// with dates the dashboard cannot read are still kept and simply never show up
// in a chart.
func (uc *StoreRecordUseCase) Execute(ctx context.Context, in StoreRecordInput) (bool, error) {

	if err := uc.validateInput(in); err != nil {
		return false, err
	}

	if in.Tags == nil {
		in.Tags = []string{}
	}
	if in.Metadata == nil {
		in.Metadata = map[string]any{}
	}

	r := &domain.Record{
		ID:         uuid.New(),
		ExternalID: strings.TrimSpace(in.ExternalID),
		Kind:       strings.ToLower(strings.TrimSpace(in.Kind)),
		RecordDate: strings.TrimSpace(in.Date),
		Product:    strings.TrimSpace(in.Product),
		RecordType: strings.TrimSpace(in.Type),
		Source:     strings.TrimSpace(in.Source),
		Tags:       in.Tags,
		Metadata:   in.Metadata,
		CreatedAt:  uc.now().UTC(),
	}
	r.DedupeKey = buildDedupeKey(r)

	created, err := uc.repo.InsertRecord(ctx, r)
	if err != nil {
		return false, err
	}

	return created, nil
}

func buildDedupeKey(r *domain.Record) string {
	// kind + external_id + date + product + type + source
	return fmt.Sprintf("%s|%s|%s|%s|%s|%s",
		r.Kind,
		r.ExternalID,
		r.RecordDate,
		strings.ToLower(r.Product),
		strings.ToLower(r.RecordType),
		strings.ToLower(r.Source),
	)
}

type BulkCreateRecordsInput struct {
	Records []StoreRecordInput
}

type BulkCreateRecordsResult struct {
	Created    int
	Duplicates int
}

func (uc *StoreRecordUseCase) BulkCreateRecords(ctx context.Context, in BulkCreateRecordsInput) (BulkCreateRecordsResult, error) {
	var res BulkCreateRecordsResult

	for i, r := range in.Records {
		if err := uc.validateInput(r); err != nil {
			return res, fmt.Errorf("record %d: %w", i, err)
		}
	}

	for _, r := range in.Records {
		ok, err := uc.Execute(ctx, r)
		if err != nil {
			return res, err
		}

		if ok {
			res.Created++
		} else {
			res.Duplicates++
		}
	}

	return res, nil
}

func (uc *StoreRecordUseCase) validateInput(in StoreRecordInput) error {

	switch strings.ToLower(strings.TrimSpace(in.Kind)) {
	case KindLead, KindDemo:
	default:
		return ErrInvalidKind
	}

	if strings.TrimSpace(in.Date) == "" {
		return ErrInvalidRecord
	}

	return nil
}
