package comparison

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/de-tools/order-atlas/pkg/models/domain"
)

type category int

const (
	grocery category = iota
	experience
	tech
)

// categoryBonus nudges selection toward experiences over tech over groceries
// when quantities are equally relatable.
var categoryBonus = map[category]float64{
	experience: 0,
	tech:       0.5,
	grocery:    1,
}

type item struct {
	category category
	price    float64
	name     string
}

// The catalog order is part of the contract: on a score tie the earliest
// entry wins, so reordering entries changes selections.
var catalog = []item{
	{grocery, 6, "Starbucks lattes ☕"},
	{grocery, 200, "weeks of groceries 🛒"},
	{grocery, 800, "months of groceries 🛒"},
	{experience, 15, "movie tickets 🎬"},
	{experience, 80, "nice dinners out 🍽️"},
	{experience, 600, "weekend getaways ✈️"},
	{experience, 2000, "week-long vacations 🏖️"},
	{tech, 180, "AirPods 🎧"},
	{tech, 400, "Apple Watches ⌚"},
	{tech, 1000, "iPhones 📱"},
	{tech, 1800, "MacBooks 💻"},
}

// Select maps a spend total onto the catalog item whose quantity is the most
// relatable. Quantities outside [1,10] are ignored; the rest are scored by
// distance from 3 plus the category bonus, lower winning. When nothing
// qualifies, small totals fall back to lattes and large ones to dinners.
func Select(amount decimal.Decimal) domain.Comparison {
	spent := amount.InexactFloat64()

	var best domain.Comparison
	bestScore := math.Inf(1)
	found := false

	for _, it := range catalog {
		quantity := spent / it.price
		if quantity < 1 || quantity > 10 {
			continue
		}
		score := math.Abs(quantity-3) + categoryBonus[it.category]
		if score < bestScore {
			bestScore = score
			best = domain.Comparison{Quantity: formatQuantity(quantity), Description: it.name}
			found = true
		}
	}
	if found {
		return best
	}

	if spent < 100 {
		return domain.Comparison{Quantity: fmt.Sprintf("%.0f", spent/4), Description: "Starbucks lattes ☕"}
	}
	return domain.Comparison{Quantity: fmt.Sprintf("%.1f", spent/80), Description: "nice dinners out 🍽️"}
}

func formatQuantity(quantity float64) string {
	if quantity < 10 {
		return fmt.Sprintf("%.1f", quantity)
	}
	return fmt.Sprintf("%.0f", quantity)
}
