package timeline

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/de-tools/order-atlas/pkg/models/domain"
)

// ErrUnknownMonth marks a date fragment whose month token is not one of the
// twelve three-letter abbreviations.
var ErrUnknownMonth = errors.New("unknown month abbreviation")

var monthNum = map[string]time.Month{
	"Jan": time.January,
	"Feb": time.February,
	"Mar": time.March,
	"Apr": time.April,
	"May": time.May,
	"Jun": time.June,
	"Jul": time.July,
	"Aug": time.August,
	"Sep": time.September,
	"Oct": time.October,
	"Nov": time.November,
	"Dec": time.December,
}

// ResolvedDate is a year-less date fragment with its inferred year attached.
type ResolvedDate struct {
	Month time.Month
	Day   int
	Year  int
}

// ResolveYears infers the calendar year of each date fragment. The input is
// expected in reverse-chronological order (most recent first). The first
// fragment anchors the sequence: Jan-Jun is read as currentYear, Jul-Dec as
// the year before. Walking the rest of the list, a month that is numerically
// greater than its predecessor means the sequence stepped back across a year
// boundary, so the running year is decremented.
//
// A gap longer than eleven months between adjacent orders is indistinguishable
// from a shorter one and resolves to a single year step.
func ResolveYears(dates []string, currentYear int) ([]ResolvedDate, error) {
	if len(dates) == 0 {
		return nil, nil
	}

	resolved := make([]ResolvedDate, 0, len(dates))
	year := 0
	prev := time.Month(0)

	for i, raw := range dates {
		month, day, err := splitDate(raw)
		if err != nil {
			return nil, err
		}
		switch {
		case i == 0:
			year = currentYear
			if month > time.June {
				year = currentYear - 1
			}
		case month > prev:
			year--
		}
		resolved = append(resolved, ResolvedDate{Month: month, Day: day, Year: year})
		prev = month
	}
	return resolved, nil
}

// Normalize resolves years for a raw order list and parses each order's
// time-of-day and total, producing orders fit for aggregation. Any malformed
// field fails the whole list; the caller treats it as a per-payload failure.
func Normalize(orders []domain.Order, currentYear int) ([]domain.NormalizedOrder, error) {
	if len(orders) == 0 {
		return nil, nil
	}

	dates := make([]string, 0, len(orders))
	for _, o := range orders {
		dates = append(dates, o.Date)
	}
	resolved, err := ResolveYears(dates, currentYear)
	if err != nil {
		return nil, err
	}

	normalized := make([]domain.NormalizedOrder, 0, len(orders))
	for i, o := range orders {
		placedAt, err := placedAt(resolved[i], o.Time)
		if err != nil {
			return nil, fmt.Errorf("order %d: %w", i, err)
		}
		total, err := ParseAmount(o.Total)
		if err != nil {
			return nil, fmt.Errorf("order %d: %w", i, err)
		}
		normalized = append(normalized, domain.NormalizedOrder{
			RestaurantName: o.RestaurantName,
			PlacedAt:       placedAt,
			Total:          total,
			Canceled:       o.Canceled,
		})
	}
	return normalized, nil
}

// ParseAmount parses a currency-prefixed total such as "$23.45" or "$1,204.99".
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("malformed order total %q: %w", raw, err)
	}
	return amount, nil
}

func splitDate(raw string) (time.Month, int, error) {
	parts := strings.Fields(raw)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed order date %q", raw)
	}
	month, ok := monthNum[title(parts[0])]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownMonth, parts[0])
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed day in order date %q: %w", raw, err)
	}
	return month, day, nil
}

func placedAt(date ResolvedDate, clock string) (time.Time, error) {
	t, err := time.Parse("3:04 PM", strings.ToUpper(strings.TrimSpace(clock)))
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed order time %q: %w", clock, err)
	}
	return time.Date(date.Year, date.Month, date.Day, t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}

func title(token string) string {
	if token == "" {
		return token
	}
	return strings.ToUpper(token[:1]) + strings.ToLower(token[1:])
}
