package adapters

import (
	"fmt"
	"net/http"

	"github.com/de-tools/order-atlas/pkg/models/api"
	"github.com/de-tools/order-atlas/pkg/models/domain"
)

func MapOrderToDomain(o api.Order) domain.Order {
	return domain.Order{
		RestaurantName: o.RestaurantName,
		Date:           o.Date,
		Time:           o.Time,
		Total:          o.Total,
		Canceled:       o.Canceled,
	}
}

func MapOrdersToDomain(orders []api.Order) []domain.Order {
	mapped := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		mapped = append(mapped, MapOrderToDomain(o))
	}
	return mapped
}

// SummarizeRecords folds per-record outcomes into batch counters.
func SummarizeRecords(results []api.RecordResult) api.BatchSummary {
	summary := api.BatchSummary{Processed: len(results)}
	for _, r := range results {
		switch r.Status {
		case api.RecordSent:
			summary.Sent++
		case api.RecordSkipped:
			summary.Skipped++
		case api.RecordFailed:
			summary.Failed++
		}
	}
	return summary
}

// MapSummaryToResponse renders the batch summary as the invocation result.
// Partial failures still produce a 200: retrying the whole event would
// re-send emails for the records that succeeded.
func MapSummaryToResponse(summary api.BatchSummary) api.Response {
	return api.Response{
		StatusCode: http.StatusOK,
		Body: fmt.Sprintf("order analysis completed: %d sent, %d skipped, %d failed",
			summary.Sent, summary.Skipped, summary.Failed),
	}
}
