package fiber

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"event-metrics-service/internal/metrics/core/domain"
	"event-metrics-service/internal/metrics/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type GetMetricsUseCase interface {
	Execute(ctx context.Context, in usecase.GetMetricsInput) (*domain.MetricsSeries, error)
}

type MetricsHandler struct {
	uc GetMetricsUseCase
}

func NewMetricsHandler(uc GetMetricsUseCase) *MetricsHandler {
	return &MetricsHandler{uc: uc}
}

// GetMetrics godoc
// @Summary Time-bucketed lead/demo metrics
// @Description Returns per-bucket category counts for the selected window; the bucket size is chosen from the window span
// @Tags Metrics
// @Produce json
// @Param kind query string true "Record kind: lead | demo"
// @Param range query string false "Range: 1w | 1m | 1y | custom (default 1m)"
// @Param start query string false "Custom range start (DD/MM/YYYY or YYYY-MM-DD)"
// @Param end query string false "Custom range end (DD/MM/YYYY or YYYY-MM-DD)"
// @Param product query string false "Product filter: dr_ease | ease_pos | other"
// @Param type query string false "Record type filter"
// @Param source query string false "Data source filter"
// @Success 200 {object} MetricsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /metrics [get]
func (h *MetricsHandler) GetMetrics(c *fiber.Ctx) error {
	kind := c.Query("kind", "")
	if kind == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "kind is required",
		})
	}

	in := usecase.GetMetricsInput{
		Kind:    kind,
		Range:   c.Query("range", ""),
		Start:   c.Query("start", ""),
		End:     c.Query("end", ""),
		Product: c.Query("product", ""),
		Type:    c.Query("type", ""),
		Source:  c.Query("source", ""),
	}

	res, err := h.uc.Execute(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidMetricsQuery),
			errors.Is(err, usecase.ErrInvalidTimeRange),
			errors.Is(err, usecase.ErrInvalidProduct):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_query",
				Message: err.Error(),
			})
		default:
			slog.ErrorContext(c.UserContext(), "metrics query failed", "kind", kind, "error", err)
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.Status(http.StatusOK).JSON(toResponse(res))
}

func toResponse(res *domain.MetricsSeries) MetricsResponse {
	resp := MetricsResponse{
		Kind:        string(res.Kind),
		Range:       string(res.Preset),
		Start:       res.Window.Start.String(),
		End:         res.Window.End.String(),
		Granularity: string(res.Granularity),
		Product:     string(res.Filter.Product),
		Type:        res.Filter.Type,
		Source:      res.Filter.Source,
		Categories:  make([]string, 0, len(res.Categories)),
		Buckets:     make([]MetricsBucketResponse, 0, len(res.Buckets)),
		Totals:      make(map[string]int, len(res.Totals)),
		Shares:      make(map[string]decimal.Decimal, len(res.Totals)),
		Dropped: DroppedResponse{
			Unparseable: res.Dropped.Unparseable,
			OutOfRange:  res.Dropped.OutOfRange,
		},
	}

	for _, cat := range res.Categories {
		resp.Categories = append(resp.Categories, string(cat))
	}

	for _, b := range res.Buckets {
		counts := make(map[string]int, len(b.Counts))
		for cat, n := range b.Counts {
			counts[string(cat)] = n
		}
		resp.Buckets = append(resp.Buckets, MetricsBucketResponse{
			Label:      b.Label,
			ShortLabel: b.ShortLabel,
			Start:      b.Start.String(),
			End:        b.End.String(),
			Counts:     counts,
		})
	}

	for cat, n := range res.Totals {
		resp.Totals[string(cat)] = n
	}
	for cat, share := range res.Shares() {
		resp.Shares[string(cat)] = share
	}

	return resp
}
