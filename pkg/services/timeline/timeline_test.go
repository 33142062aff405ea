package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/order-atlas/pkg/models/domain"
)

func TestResolveYears(t *testing.T) {
	tests := []struct {
		name          string
		dates         []string
		currentYear   int
		expectedYears []int
	}{
		{
			name:          "first month in Jan-Jun anchors to current year",
			dates:         []string{"Jan 5", "Dec 20", "Dec 1"},
			currentYear:   2025,
			expectedYears: []int{2025, 2024, 2024},
		},
		{
			name:          "first month in Jul-Dec anchors to previous year",
			dates:         []string{"Dec 20", "Nov 5"},
			currentYear:   2025,
			expectedYears: []int{2024, 2024},
		},
		{
			name:          "single wrap mid list decrements once",
			dates:         []string{"Feb 10", "Jan 3", "Dec 25", "Jul 4"},
			currentYear:   2025,
			expectedYears: []int{2025, 2025, 2024, 2024},
		},
		{
			name:          "repeated month stays in the same year",
			dates:         []string{"Mar 15", "Mar 1"},
			currentYear:   2025,
			expectedYears: []int{2025, 2025},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := ResolveYears(tt.dates, tt.currentYear)
			require.NoError(t, err)
			require.Len(t, resolved, len(tt.expectedYears))
			for i, want := range tt.expectedYears {
				assert.Equal(t, want, resolved[i].Year, "date %q", tt.dates[i])
			}
		})
	}
}

func TestResolveYears_TwoWraps(t *testing.T) {
	// Jan 2026 <- Dec 2025 <- Feb 2025 <- Dec 2024, read most recent first.
	dates := []string{"Jan 2", "Dec 30", "Feb 14", "Dec 1"}
	resolved, err := ResolveYears(dates, 2026)
	require.NoError(t, err)

	years := make([]int, 0, len(resolved))
	for _, d := range resolved {
		years = append(years, d.Year)
	}
	assert.Equal(t, []int{2026, 2025, 2025, 2024}, years)
}

func TestResolveYears_ReversedOutputIsChronological(t *testing.T) {
	dates := []string{"Feb 1", "Jan 20", "Dec 30", "Aug 15", "Mar 10", "Jan 1"}
	resolved, err := ResolveYears(dates, 2025)
	require.NoError(t, err)

	for i := 1; i < len(resolved); i++ {
		later := time.Date(resolved[i-1].Year, resolved[i-1].Month, resolved[i-1].Day, 0, 0, 0, 0, time.UTC)
		earlier := time.Date(resolved[i].Year, resolved[i].Month, resolved[i].Day, 0, 0, 0, 0, time.UTC)
		assert.False(t, earlier.After(later), "entry %d (%v) is newer than entry %d (%v)", i, earlier, i-1, later)
	}
}

func TestResolveYears_Edges(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		resolved, err := ResolveYears(nil, 2025)
		require.NoError(t, err)
		assert.Empty(t, resolved)
	})

	t.Run("lowercase month is normalized", func(t *testing.T) {
		resolved, err := ResolveYears([]string{"jun 1"}, 2025)
		require.NoError(t, err)
		assert.Equal(t, time.June, resolved[0].Month)
		assert.Equal(t, 2025, resolved[0].Year)
	})

	t.Run("unknown month", func(t *testing.T) {
		_, err := ResolveYears([]string{"Foo 5"}, 2025)
		assert.ErrorIs(t, err, ErrUnknownMonth)
	})

	t.Run("missing day token", func(t *testing.T) {
		_, err := ResolveYears([]string{"Jan"}, 2025)
		assert.Error(t, err)
	})
}

func TestNormalize(t *testing.T) {
	orders := []domain.Order{
		{RestaurantName: "Thai Basil", Date: "Jun 1", Time: "6:00 PM", Total: "$20.00"},
		{RestaurantName: "Pho Corner", Date: "May 1", Time: "9:15 AM", Total: "$10.00", Canceled: true},
	}

	normalized, err := Normalize(orders, 2025)
	require.NoError(t, err)
	require.Len(t, normalized, 2)

	assert.Equal(t, time.Date(2025, time.June, 1, 18, 0, 0, 0, time.UTC), normalized[0].PlacedAt)
	assert.Equal(t, "20", normalized[0].Total.String())
	assert.False(t, normalized[0].Canceled)

	assert.Equal(t, time.Date(2025, time.May, 1, 9, 15, 0, 0, time.UTC), normalized[1].PlacedAt)
	assert.Equal(t, "10", normalized[1].Total.String())
	assert.True(t, normalized[1].Canceled)
}

func TestNormalize_Errors(t *testing.T) {
	tests := []struct {
		name   string
		orders []domain.Order
	}{
		{
			name:   "malformed time",
			orders: []domain.Order{{Date: "Jun 1", Time: "sometime", Total: "$5.00"}},
		},
		{
			name:   "malformed total",
			orders: []domain.Order{{Date: "Jun 1", Time: "6:00 PM", Total: "twenty"}},
		},
		{
			name:   "malformed date",
			orders: []domain.Order{{Date: "June first", Time: "6:00 PM", Total: "$5.00"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.orders, 2025)
			assert.Error(t, err)
		})
	}
}

func TestNormalize_Empty(t *testing.T) {
	normalized, err := Normalize(nil, 2025)
	require.NoError(t, err)
	assert.Empty(t, normalized)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
		wantErr  bool
	}{
		{raw: "$23.45", expected: "23.45"},
		{raw: "$1,204.99", expected: "1204.99"},
		{raw: "7.5", expected: "7.5"},
		{raw: " $3.00 ", expected: "3"},
		{raw: "abc", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			amount, err := ParseAmount(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, amount.String())
		})
	}
}
