package charts

import (
	"context"
	"fmt"
	"time"

	"github.com/go-analyze/charts"
	"github.com/rs/zerolog"

	"github.com/de-tools/order-atlas/pkg/models/domain"
)

const (
	chartWidth  = 1200
	chartHeight = 600
)

// Publisher stores a rendered chart and returns its public URL.
type Publisher interface {
	Publish(ctx context.Context, key string, png []byte) (string, error)
}

// Renderer draws the report charts and hands them to a Publisher. Charts are
// decoration: a render or publish failure is logged and the artifact comes
// back unpublished, never as an error.
type Renderer struct {
	publisher Publisher
	now       func() time.Time
}

func NewRenderer(publisher Publisher) *Renderer {
	return &Renderer{publisher: publisher, now: time.Now}
}

// RenderAll produces the monthly spending bar chart and the cumulative spend
// line chart. Both keys share one timestamp so a report's files sort together.
func (r *Renderer) RenderAll(ctx context.Context, stats *domain.OrderStats) []domain.ChartArtifact {
	timestamp := r.now().Format("20060102_150405")
	return []domain.ChartArtifact{
		r.render(ctx, domain.ChartSpending, timestamp, func() ([]byte, error) {
			return renderSpending(stats)
		}),
		r.render(ctx, domain.ChartCumulative, timestamp, func() ([]byte, error) {
			return renderCumulative(stats)
		}),
	}
}

func (r *Renderer) render(ctx context.Context, kind domain.ChartKind, timestamp string, draw func() ([]byte, error)) domain.ChartArtifact {
	logger := zerolog.Ctx(ctx)
	artifact := domain.ChartArtifact{Kind: kind}

	png, err := draw()
	if err != nil {
		logger.Error().Err(err).Str("chart", string(kind)).Msg("chart render failed")
		return artifact
	}

	key := fmt.Sprintf("charts/%s_%s_chart.png", timestamp, kind)
	url, err := r.publisher.Publish(ctx, key, png)
	if err != nil {
		logger.Error().Err(err).Str("chart", string(kind)).Msg("chart upload failed")
		return artifact
	}

	logger.Info().Str("chart", string(kind)).Str("url", url).Msg("chart uploaded")
	artifact.URL = url
	return artifact
}

func renderSpending(stats *domain.OrderStats) ([]byte, error) {
	values := make([]float64, 0, len(stats.Monthly))
	labels := make([]string, 0, len(stats.Monthly))
	for _, bucket := range stats.Monthly {
		values = append(values, bucket.Total.InexactFloat64())
		labels = append(labels, bucket.Label())
	}

	p, err := charts.BarRender(
		[][]float64{values},
		charts.TitleOptionFunc(charts.TitleOption{Text: "Spending Over Time"}),
		charts.XAxisLabelsOptionFunc(labels),
		charts.DimensionsOptionFunc(chartWidth, chartHeight),
		currencyAxis(),
	)
	if err != nil {
		return nil, fmt.Errorf("render spending chart: %w", err)
	}
	return p.Bytes()
}

func renderCumulative(stats *domain.OrderStats) ([]byte, error) {
	values := make([]float64, 0, len(stats.Cumulative))
	labels := make([]string, 0, len(stats.Cumulative))
	for _, point := range stats.Cumulative {
		values = append(values, point.Total.InexactFloat64())
		labels = append(labels, point.At.Format("Jan 2"))
	}

	p, err := charts.LineRender(
		[][]float64{values},
		charts.TitleOptionFunc(charts.TitleOption{Text: "Cumulative Spending Over Time"}),
		charts.XAxisLabelsOptionFunc(labels),
		charts.DimensionsOptionFunc(chartWidth, chartHeight),
		currencyAxis(),
		fillUnderLine(),
	)
	if err != nil {
		return nil, fmt.Errorf("render cumulative chart: %w", err)
	}
	return p.Bytes()
}

// currencyAxis formats value labels as whole dollars.
func currencyAxis() charts.OptionFunc {
	return func(opt *charts.ChartOption) {
		opt.ValueFormatter = func(v float64) string {
			return fmt.Sprintf("$%.0f", v)
		}
	}
}

// fillUnderLine shades the area under the series so the running total reads
// as accumulation rather than a trend line.
func fillUnderLine() charts.OptionFunc {
	return func(opt *charts.ChartOption) {
		opt.FillArea = charts.Ptr(true)
	}
}
