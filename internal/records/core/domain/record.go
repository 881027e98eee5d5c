package domain

import (
	"time"

	"github.com/google/uuid"
)

// Record is a lead or demo row as received from the CRM sheets. RecordDate is
// kept verbatim; it is only normalised when metrics are computed.
type Record struct {
	ID         uuid.UUID
	ExternalID string
	Kind       string
	RecordDate string
	Product    string
	RecordType string
	Source     string
	Tags       []string
	Metadata   map[string]any
	DedupeKey  string
	CreatedAt  time.Time
}
