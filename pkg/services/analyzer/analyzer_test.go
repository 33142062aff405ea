package analyzer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/order-atlas/pkg/models/domain"
	"github.com/de-tools/order-atlas/pkg/services/charts"
	"github.com/de-tools/order-atlas/pkg/services/report"
)

type stubPublisher struct {
	err error
}

func (s *stubPublisher) Publish(_ context.Context, key string, _ []byte) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "https://charts.example.com/" + key, nil
}

func newService(t *testing.T, publisher charts.Publisher) *Service {
	t.Helper()
	composer, err := report.NewComposer()
	require.NoError(t, err)

	svc := NewService(charts.NewRenderer(publisher), composer)
	svc.now = func() time.Time {
		return time.Date(2025, time.July, 15, 10, 0, 0, 0, time.UTC)
	}
	return svc
}

func twoOrders() []domain.Order {
	return []domain.Order{
		{RestaurantName: "A", Date: "Jun 1", Time: "6:00 PM", Total: "$20.00"},
		{RestaurantName: "B", Date: "May 1", Time: "1:00 PM", Total: "$10.00"},
	}
}

func TestAnalyze_EndToEnd(t *testing.T) {
	svc := newService(t, &stubPublisher{})

	result, err := svc.Analyze(context.Background(), twoOrders())
	require.NoError(t, err)
	require.NotNil(t, result.Stats)

	assert.Equal(t, 2, result.Stats.TotalOrders)
	assert.Equal(t, "30.00", result.Stats.TotalSpent.StringFixed(2))
	assert.Equal(t, "15.00", result.Stats.AverageOrder.StringFixed(2))
	assert.Equal(t, 0, result.Stats.CanceledOrders)

	// Restaurant counts tie; the lexicographically smaller name wins.
	assert.Equal(t, "A", result.Stats.TopRestaurant)

	// Cumulative series ends at the total.
	last := result.Stats.Cumulative[len(result.Stats.Cumulative)-1]
	assert.True(t, last.Total.Equal(result.Stats.TotalSpent))

	// $30 buys two movie tickets.
	assert.Equal(t, "2.0", result.Comparison.Quantity)
	assert.Equal(t, "movie tickets 🎬", result.Comparison.Description)

	require.Len(t, result.Artifacts, 2)
	assert.True(t, result.Artifacts[0].Published())
	assert.True(t, result.Artifacts[1].Published())

	assert.Contains(t, result.HTML, "$30.00")
	assert.Contains(t, result.HTML, "$15.00")
	assert.Contains(t, result.HTML, "https://charts.example.com/charts/")
	assert.Contains(t, result.HTML, "movie tickets 🎬")
	assert.Contains(t, result.HTML, "Jun 1 2025")
}

func TestAnalyze_EmptyOrders(t *testing.T) {
	svc := newService(t, &stubPublisher{})

	result, err := svc.Analyze(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, report.NoOrdersHTML(), result.HTML)
	assert.Nil(t, result.Stats)
	assert.Empty(t, result.Artifacts)
}

func TestAnalyze_MalformedOrder(t *testing.T) {
	svc := newService(t, &stubPublisher{})

	orders := []domain.Order{
		{RestaurantName: "A", Date: "Someday", Time: "6:00 PM", Total: "$20.00"},
	}
	_, err := svc.Analyze(context.Background(), orders)
	assert.Error(t, err)
}

func TestAnalyze_PublisherFailureStillDelivers(t *testing.T) {
	svc := newService(t, &stubPublisher{err: errors.New("bucket unreachable")})

	result, err := svc.Analyze(context.Background(), twoOrders())
	require.NoError(t, err)

	assert.False(t, result.Artifacts[0].Published())
	assert.False(t, result.Artifacts[1].Published())
	assert.Contains(t, result.HTML, "📊 Monthly Spending Summary")
	assert.Contains(t, result.HTML, "📈 See your order history table below for spending progression")
	assert.Contains(t, result.HTML, "$30.00")
}
