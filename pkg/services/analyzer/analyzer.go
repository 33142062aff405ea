package analyzer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/de-tools/order-atlas/pkg/models/domain"
	"github.com/de-tools/order-atlas/pkg/services/charts"
	"github.com/de-tools/order-atlas/pkg/services/comparison"
	"github.com/de-tools/order-atlas/pkg/services/report"
	"github.com/de-tools/order-atlas/pkg/services/stats"
	"github.com/de-tools/order-atlas/pkg/services/timeline"
)

// Service runs the analysis pipeline over a raw order list: year inference,
// aggregation, chart rendering, comparison selection and report composition.
type Service struct {
	renderer *charts.Renderer
	composer *report.Composer
	now      func() time.Time
}

func NewService(renderer *charts.Renderer, composer *report.Composer) *Service {
	return &Service{renderer: renderer, composer: composer, now: time.Now}
}

// Result carries the composed report plus the aggregates behind it. Stats is
// nil when the payload held no orders; HTML is still a deliverable page then.
type Result struct {
	HTML       string
	Stats      *domain.OrderStats
	Comparison domain.Comparison
	Artifacts  []domain.ChartArtifact
}

func (s *Service) Analyze(ctx context.Context, orders []domain.Order) (*Result, error) {
	normalized, err := timeline.Normalize(orders, s.now().Year())
	if err != nil {
		return nil, fmt.Errorf("normalize orders: %w", err)
	}

	aggregated, err := stats.Compute(normalized)
	if errors.Is(err, stats.ErrNoOrders) {
		return &Result{HTML: report.NoOrdersHTML()}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("aggregate orders: %w", err)
	}

	artifacts := s.renderer.RenderAll(ctx, aggregated)
	picked := comparison.Select(aggregated.TotalSpent)

	html, err := s.composer.Compose(aggregated, picked, artifacts)
	if err != nil {
		return nil, fmt.Errorf("compose report: %w", err)
	}

	zerolog.Ctx(ctx).Info().
		Int("orders", aggregated.TotalOrders).
		Str("total_spent", aggregated.TotalSpent.StringFixed(2)).
		Msg("order analysis complete")

	return &Result{
		HTML:       html,
		Stats:      aggregated,
		Comparison: picked,
		Artifacts:  artifacts,
	}, nil
}
