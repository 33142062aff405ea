package domain

type ChartKind string

const (
	ChartSpending   ChartKind = "spending"
	ChartCumulative ChartKind = "cumulative"
)

// ChartArtifact is the outcome of rendering and publishing one chart. URL is
// set only when the image made it to the store; consumers are expected to
// degrade to markup otherwise.
type ChartArtifact struct {
	Kind ChartKind
	URL  string
}

// Published reports whether the chart is addressable as an image.
func (a ChartArtifact) Published() bool { return a.URL != "" }
