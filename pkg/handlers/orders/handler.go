package orders

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"

	"github.com/de-tools/order-atlas/pkg/adapters"
	"github.com/de-tools/order-atlas/pkg/models/api"
	"github.com/de-tools/order-atlas/pkg/models/domain"
	"github.com/de-tools/order-atlas/pkg/services/analyzer"
	"github.com/de-tools/order-atlas/pkg/services/ingest"
	"github.com/de-tools/order-atlas/pkg/services/report"
)

// ObjectFetcher reads raw order payloads from the object store.
type ObjectFetcher interface {
	Fetch(ctx context.Context, bucket, key string) ([]byte, error)
}

// ReportBuilder turns raw orders into a deliverable report.
type ReportBuilder interface {
	Analyze(ctx context.Context, orders []domain.Order) (*analyzer.Result, error)
}

// Mailer delivers the report to its recipient.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}

// Handler processes S3 object-created notifications end to end.
type Handler struct {
	store   ObjectFetcher
	builder ReportBuilder
	mailer  Mailer
}

func NewHandler(store ObjectFetcher, builder ReportBuilder, mailer Mailer) *Handler {
	return &Handler{store: store, builder: builder, mailer: mailer}
}

// HandleS3Event processes each record independently so one bad payload cannot
// block the rest of the batch. The response always carries a status code:
// panics are converted into a 500-style result instead of reaching the
// runtime, where they would trigger redelivery and duplicate emails.
func (h *Handler) HandleS3Event(ctx context.Context, event events.S3Event) (resp api.Response, err error) {
	logger := zerolog.Ctx(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("unrecovered failure while processing event")
			resp = api.Response{
				StatusCode: http.StatusInternalServerError,
				Body:       fmt.Sprintf("Error: %v", r),
			}
			err = nil
		}
	}()

	results := make([]api.RecordResult, 0, len(event.Records))
	for _, record := range event.Records {
		if record.EventSource != "aws:s3" {
			continue
		}
		results = append(results, h.processRecord(ctx, record))
	}

	summary := adapters.SummarizeRecords(results)
	logger.Info().
		Int("processed", summary.Processed).
		Int("sent", summary.Sent).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Msg("event processed")

	return adapters.MapSummaryToResponse(summary), nil
}

func (h *Handler) processRecord(ctx context.Context, record events.S3EventRecord) api.RecordResult {
	bucket := record.S3.Bucket.Name
	key := objectKey(record)

	logger := zerolog.Ctx(ctx).With().Str("bucket", bucket).Str("key", key).Logger()
	ctx = logger.WithContext(ctx)

	result := api.RecordResult{Bucket: bucket, Key: key, Status: api.RecordReceived}

	if !strings.HasSuffix(strings.ToLower(key), ".json") {
		logger.Info().Msg("skipping non-JSON object")
		return skipped(result, "not a JSON object")
	}

	result.Status = api.RecordProcessing
	recipient := ExtractUserEmail(key)
	logger.Info().Str("user", recipient).Msg("processing order history")

	payload, err := h.store.Fetch(ctx, bucket, key)
	if err != nil {
		logger.Error().Err(err).Msg("failed to fetch payload")
		return failed(result, err)
	}

	parsed, err := ingest.ParseOrders(payload)
	if err != nil {
		logger.Error().Err(err).Msg("failed to parse payload")
		return failed(result, err)
	}
	if len(parsed) == 0 {
		logger.Warn().Msg("no orders in payload")
		return skipped(result, "no orders in payload")
	}
	logger.Info().Int("orders", len(parsed)).Msg("orders loaded")

	analyzed, err := h.builder.Analyze(ctx, adapters.MapOrdersToDomain(parsed))
	if err != nil {
		logger.Error().Err(err).Msg("analysis failed")
		return failed(result, err)
	}

	subject := report.Subject(len(parsed))
	if err := h.mailer.Send(ctx, recipient, subject, analyzed.HTML); err != nil {
		logger.Error().Err(err).Str("user", recipient).Msg("email delivery failed")
		return failed(result, err)
	}

	logger.Info().Str("user", recipient).Msg("analysis email sent")
	result.Status = api.RecordSent
	return result
}

// ExtractUserEmail pulls the recipient out of an object key shaped like
// orders/{email}/orders.json. When no path segment looks like an address,
// the parent segment serves as the identifier.
func ExtractUserEmail(key string) string {
	parts := strings.Split(key, "/")
	for _, part := range parts {
		if strings.Contains(part, "@") && strings.Contains(part, ".") {
			return part
		}
	}
	if len(parts) > 1 {
		return parts[len(parts)-2]
	}
	return "unknown"
}

// Notification keys arrive URL-encoded; prefer the runtime's decoded form and
// fall back to decoding the raw key ourselves.
func objectKey(record events.S3EventRecord) string {
	if record.S3.Object.URLDecodedKey != "" {
		return record.S3.Object.URLDecodedKey
	}
	key, err := url.QueryUnescape(record.S3.Object.Key)
	if err != nil {
		return record.S3.Object.Key
	}
	return key
}

func skipped(result api.RecordResult, reason string) api.RecordResult {
	result.Status = api.RecordSkipped
	result.Reason = reason
	return result
}

func failed(result api.RecordResult, err error) api.RecordResult {
	result.Status = api.RecordFailed
	result.Reason = err.Error()
	return result
}
