package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyBucket holds the spend total of one calendar month.
type MonthlyBucket struct {
	Year  int
	Month time.Month
	Total decimal.Decimal
}

// Label returns the bucket name used on chart axes, e.g. "Jun 2025".
func (b MonthlyBucket) Label() string {
	return time.Date(b.Year, b.Month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
}

// CumulativePoint is one step of the running spend total, in order time.
type CumulativePoint struct {
	At    time.Time
	Total decimal.Decimal
}

// OrderStats is the aggregate view of a normalized order history.
type OrderStats struct {
	TotalOrders        int
	TotalSpent         decimal.Decimal
	AverageOrder       decimal.Decimal
	LargestOrder       NormalizedOrder
	PeakHour           int    // hour of day, 0-23
	PeakHourLabel      string // "6PM"
	TopWeekday         time.Weekday
	CanceledOrders     int
	TopRestaurant      string
	TopRestaurantCount int
	Monthly            []MonthlyBucket
	Cumulative         []CumulativePoint
	Orders             []NormalizedOrder // chronological, oldest first
}
