package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a raw order record as the extraction pipeline delivers it.
// Date carries no year ("Jun 1"), Time is a wall-clock label ("6:05 PM")
// and Total keeps its currency prefix ("$23.45").
type Order struct {
	RestaurantName string
	Date           string
	Time           string
	Total          string
	Canceled       bool
}

// NormalizedOrder is an order with the inferred year folded into a concrete
// timestamp and the total parsed into an exact decimal amount.
type NormalizedOrder struct {
	RestaurantName string
	PlacedAt       time.Time
	Total          decimal.Decimal
	Canceled       bool
}
