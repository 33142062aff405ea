package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/shopspring/decimal"

	"github.com/de-tools/order-atlas/pkg/services/analyzer"
)

type TableConfig struct {
	LabelWidth int
	ValueWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		LabelWidth: 22,
		ValueWidth: 40,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(result *analyzer.Result) error {
	if result.Stats == nil {
		_, err := fmt.Fprintln(c.writer, "No orders found to analyze.")
		return err
	}

	funcMap := template.FuncMap{
		"formatRow": func(label string, value interface{}) string {
			return fmt.Sprintf("| %-*s | %-*v |",
				c.config.LabelWidth, label,
				c.config.ValueWidth, value)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+",
				strings.Repeat("-", c.config.LabelWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2))
		},
		"money": func(d decimal.Decimal) string {
			return "$" + d.StringFixed(2)
		},
	}

	tmpl := `
Food Delivery Summary

{{separator}}
{{formatRow "Total Spent" (money .Stats.TotalSpent)}}
{{formatRow "Total Orders" .Stats.TotalOrders}}
{{formatRow "Average Order" (money .Stats.AverageOrder)}}
{{formatRow "Largest Order" (money .Stats.LargestOrder.Total)}}
{{formatRow "Cancelled Orders" .Stats.CanceledOrders}}
{{formatRow "Peak Ordering Hour" .Stats.PeakHourLabel}}
{{formatRow "Top Day to Order" .Stats.TopWeekday}}
{{formatRow (printf "Top Restaurant (%dx)" .Stats.TopRestaurantCount) .Stats.TopRestaurant}}
{{formatRow "Could Have Bought" (printf "%s %s" .Comparison.Quantity .Comparison.Description)}}
{{separator}}

Monthly Spending
{{range .Stats.Monthly}}  {{printf "%-10s" .Label}} {{money .Total}}
{{end}}
Charts
{{range .Artifacts}}  {{printf "%-12s" .Kind}} {{if .Published}}{{.URL}}{{else}}(not published){{end}}
{{end}}`

	t, err := template.New("summary").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, result)
}
