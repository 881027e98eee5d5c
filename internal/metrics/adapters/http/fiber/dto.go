package fiber

import "github.com/shopspring/decimal"

type MetricsBucketResponse struct {
	Label      string         `json:"label" example:"21 Tue"`
	ShortLabel string         `json:"short_label" example:"21"`
	Start      string         `json:"start" example:"2026-10-21"`
	End        string         `json:"end" example:"2026-10-21"`
	Counts     map[string]int `json:"counts"`
}

type DroppedResponse struct {
	Unparseable int `json:"unparseable"`
	OutOfRange  int `json:"out_of_range"`
}

type MetricsResponse struct {
	Kind        string                     `json:"kind" example:"lead"`
	Range       string                     `json:"range" example:"1w"`
	Start       string                     `json:"start" example:"2026-10-13"`
	End         string                     `json:"end" example:"2026-10-19"`
	Granularity string                     `json:"granularity" example:"day"`
	Product     string                     `json:"product,omitempty"`
	Type        string                     `json:"type,omitempty"`
	Source      string                     `json:"source,omitempty"`
	Categories  []string                   `json:"categories"`
	Buckets     []MetricsBucketResponse    `json:"buckets"`
	Totals      map[string]int             `json:"totals"`
	Shares      map[string]decimal.Decimal `json:"shares" swaggertype:"object,string"`
	Dropped     DroppedResponse            `json:"dropped"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"invalid time range"`
}
