package fiber

// CreateRecordRequest represents a single lead or demo row
// @Description Record creation DTO. date is kept as sent (DD/MM/YYYY, ISO, ...)
type CreateRecordRequest struct {
	ExternalID string         `json:"external_id" example:"crm-1042"`
	Kind       string         `json:"kind" example:"lead"`
	Date       string         `json:"date" example:"21/10/2026"`
	Product    string         `json:"product" example:"Dr.Ease"`
	Type       string         `json:"type" example:"Online"`
	Source     string         `json:"source" example:"website"`
	Tags       []string       `json:"tags"`
	Metadata   map[string]any `json:"metadata"`
}

type CreateRecordResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type BulkCreateRecordsRequest struct {
	Records []CreateRecordRequest `json:"records"`
}

type BulkCreateRecordsResponse struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_record"`
	Message string `json:"message" example:"kind must be lead or demo"`
}
