package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/de-tools/order-atlas/pkg/models/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// Composer renders the HTML report that goes out by email. The document is
// self-contained: inline styles, no scripts, charts referenced by URL.
type Composer struct {
	tmpl *template.Template
}

func NewComposer() (*Composer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse report templates: %w", err)
	}
	return &Composer{tmpl: tmpl}, nil
}

// NoOrdersHTML is the page delivered when a payload contained nothing to analyze.
func NoOrdersHTML() string {
	return "<html><body><h1>No orders found to analyze</h1></body></html>"
}

// Subject builds the email subject for a report covering orderCount orders.
func Subject(orderCount int) string {
	return fmt.Sprintf("🍔 Your Food Delivery Analysis - %d Orders Analyzed", orderCount)
}

// Compose lays the statistics, the comparison and the chart slots out as the
// summary page. Unpublished charts degrade in place: the spending slot shows
// the monthly table, the cumulative slot points at the order history.
func (c *Composer) Compose(stats *domain.OrderStats, comparison domain.Comparison, artifacts []domain.ChartArtifact) (string, error) {
	var buf bytes.Buffer
	if err := c.tmpl.ExecuteTemplate(&buf, "summary.html", buildView(stats, comparison, artifacts)); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return buf.String(), nil
}

type statCard struct {
	Label  string
	Value  string
	Detail string
}

type monthRow struct {
	Month  string
	Amount string
}

type chartSlot struct {
	ImageURL string
	Alt      string
	Heading  string
	Months   []monthRow
	Note     string
}

type orderRow struct {
	Restaurant string
	Date       string
	Time       string
	Total      string
}

type view struct {
	Title    string
	CardRows [][]statCard
	Charts   []chartSlot
	Orders   []orderRow
}

func buildView(stats *domain.OrderStats, comparison domain.Comparison, artifacts []domain.ChartArtifact) view {
	cardRows := [][]statCard{
		{
			{Label: "Total Spent", Value: "$" + formatMoney(stats.TotalSpent)},
			{Label: "Average Order Cost", Value: "$" + stats.AverageOrder.StringFixed(2)},
			{Label: "Total Orders", Value: strconv.Itoa(stats.TotalOrders)},
		},
		{
			{Label: "Cancelled Orders", Value: strconv.Itoa(stats.CanceledOrders)},
			{Label: "Peak Ordering Hour", Value: stats.PeakHourLabel},
			{Label: "Top Day to Order", Value: stats.TopWeekday.String()},
		},
		{
			{
				Label:  "Top Restaurant",
				Value:  stats.TopRestaurant,
				Detail: fmt.Sprintf("Ordered %d times", stats.TopRestaurantCount),
			},
			{
				Label: "Largest Order",
				Value: "$" + stats.LargestOrder.Total.StringFixed(2),
				Detail: fmt.Sprintf("%s (%s)",
					stats.LargestOrder.RestaurantName,
					stats.LargestOrder.PlacedAt.Format("Jan 2 2006")),
			},
			{
				Label:  "Could Have Bought",
				Value:  comparison.Quantity,
				Detail: comparison.Description,
			},
		},
	}

	orders := make([]orderRow, 0, len(stats.Orders))
	for _, o := range stats.Orders {
		orders = append(orders, orderRow{
			Restaurant: o.RestaurantName,
			Date:       o.PlacedAt.Format("Jan 2 2006"),
			Time:       o.PlacedAt.Format("3:04 PM"),
			Total:      "$" + o.Total.StringFixed(2),
		})
	}

	return view{
		Title:    "🍔 Your Food Delivery Summary",
		CardRows: cardRows,
		Charts:   buildChartSlots(stats, artifacts),
		Orders:   orders,
	}
}

func buildChartSlots(stats *domain.OrderStats, artifacts []domain.ChartArtifact) []chartSlot {
	slots := make([]chartSlot, 0, len(artifacts))
	for _, artifact := range artifacts {
		switch {
		case artifact.Published() && artifact.Kind == domain.ChartSpending:
			slots = append(slots, chartSlot{
				ImageURL: artifact.URL,
				Alt:      "Spending Over Time Chart - Shows your spending patterns over time",
			})
		case artifact.Published():
			slots = append(slots, chartSlot{
				ImageURL: artifact.URL,
				Alt:      "Cumulative Spending Chart - Shows your total spending growth over time",
			})
		case artifact.Kind == domain.ChartSpending:
			months := make([]monthRow, 0, len(stats.Monthly))
			for _, bucket := range stats.Monthly {
				months = append(months, monthRow{
					Month:  bucket.Label(),
					Amount: "$" + formatMoney(bucket.Total),
				})
			}
			slots = append(slots, chartSlot{
				Heading: "📊 Monthly Spending Summary",
				Months:  months,
			})
		default:
			slots = append(slots, chartSlot{
				Note: "📈 See your order history table below for spending progression",
			})
		}
	}
	return slots
}

// formatMoney renders an amount with thousands separators, e.g. "1,234.50".
func formatMoney(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	dot := strings.IndexByte(s, '.')
	intPart, fracPart := s[:dot], s[dot:]

	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign, intPart = "-", intPart[1:]
	}
	if len(intPart) <= 3 {
		return sign + intPart + fracPart
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return sign + b.String() + fracPart
}
