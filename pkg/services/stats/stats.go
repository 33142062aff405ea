package stats

import (
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/de-tools/order-atlas/pkg/models/domain"
)

// ErrNoOrders is returned when there is nothing to aggregate.
var ErrNoOrders = errors.New("no orders to analyze")

// Compute aggregates a normalized order history into KPIs, the cumulative
// spend series and per-month buckets. The input is re-sorted chronologically;
// canceled orders count toward spend totals, matching what the platform
// charges view shows. All mode-style statistics (peak hour, top weekday, top
// restaurant) break ties on the smallest key so results are stable across runs.
func Compute(orders []domain.NormalizedOrder) (*domain.OrderStats, error) {
	if len(orders) == 0 {
		return nil, ErrNoOrders
	}

	sorted := make([]domain.NormalizedOrder, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PlacedAt.Before(sorted[j].PlacedAt)
	})

	total := decimal.Zero
	largest := sorted[0]
	canceled := 0
	hourCounts := make(map[int]int)
	dayCounts := make(map[time.Weekday]int)
	restaurantCounts := make(map[string]int)
	monthTotals := make(map[monthKey]decimal.Decimal)
	cumulative := make([]domain.CumulativePoint, 0, len(sorted))

	for _, o := range sorted {
		total = total.Add(o.Total)
		cumulative = append(cumulative, domain.CumulativePoint{At: o.PlacedAt, Total: total})

		if o.Total.GreaterThan(largest.Total) {
			largest = o
		}
		if o.Canceled {
			canceled++
		}

		hourCounts[o.PlacedAt.Hour()]++
		dayCounts[o.PlacedAt.Weekday()]++
		restaurantCounts[o.RestaurantName]++

		key := monthKey{year: o.PlacedAt.Year(), month: o.PlacedAt.Month()}
		monthTotals[key] = monthTotals[key].Add(o.Total)
	}

	peak := peakHour(hourCounts)
	topName, topCount := topRestaurant(restaurantCounts)

	return &domain.OrderStats{
		TotalOrders:        len(sorted),
		TotalSpent:         total,
		AverageOrder:       total.Div(decimal.NewFromInt(int64(len(sorted)))),
		LargestOrder:       largest,
		PeakHour:           peak,
		PeakHourLabel:      HourLabel(peak),
		TopWeekday:         topWeekday(dayCounts),
		CanceledOrders:     canceled,
		TopRestaurant:      topName,
		TopRestaurantCount: topCount,
		Monthly:            monthlyBuckets(monthTotals),
		Cumulative:         cumulative,
		Orders:             sorted,
	}, nil
}

// HourLabel renders an hour of day the way people say it: 22 -> "10PM", 9 -> "9AM".
func HourLabel(hour int) string {
	return time.Date(0, time.January, 1, hour, 0, 0, 0, time.UTC).Format("3PM")
}

type monthKey struct {
	year  int
	month time.Month
}

func peakHour(counts map[int]int) int {
	best, bestCount := 0, -1
	for hour := 0; hour < 24; hour++ {
		if counts[hour] > bestCount {
			best, bestCount = hour, counts[hour]
		}
	}
	return best
}

func topWeekday(counts map[time.Weekday]int) time.Weekday {
	best, bestCount := time.Sunday, -1
	for day := time.Sunday; day <= time.Saturday; day++ {
		if counts[day] > bestCount {
			best, bestCount = day, counts[day]
		}
	}
	return best
}

func topRestaurant(counts map[string]int) (string, int) {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	best, bestCount := "", -1
	for _, name := range names {
		if counts[name] > bestCount {
			best, bestCount = name, counts[name]
		}
	}
	return best, bestCount
}

func monthlyBuckets(totals map[monthKey]decimal.Decimal) []domain.MonthlyBucket {
	keys := make([]monthKey, 0, len(totals))
	for key := range totals {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	buckets := make([]domain.MonthlyBucket, 0, len(keys))
	for _, key := range keys {
		buckets = append(buckets, domain.MonthlyBucket{
			Year:  key.year,
			Month: key.month,
			Total: totals[key],
		})
	}
	return buckets
}
