// Package breakdown turns label→count mappings into chart-ready bars.
package breakdown

import (
	"time"

	"github.com/hammamikhairi/nutribudget/internal/domain"
)

const (
	// Placeholder is the single row shown for an empty mapping.
	Placeholder = "No data available"

	// StaggerStep separates the reveal of consecutive bars.
	StaggerStep = 80 * time.Millisecond

	CategoryTitle   = "By Category"
	ProcessingTitle = "Processing Level"
)

// Bar is one row of a chart. Width is a percentage of the chart's own
// maximum, in [0,100].
type Bar struct {
	Label string
	Count int
	Width float64
	Delay time.Duration
}

// Chart is an aggregated mapping. When Empty is set, Bars is nil and the
// chart renders Placeholder instead.
type Chart struct {
	Title string
	Bars  []Bar
	Empty bool
}

// Aggregate builds a chart from counts, keeping their order. Widths are
// relative to the largest count, with a floor of one so all-zero mappings
// stay at zero width.
func Aggregate(title string, counts domain.Counts) Chart {
	entries := counts.Entries()
	if len(entries) == 0 {
		return Chart{Title: title, Empty: true}
	}

	max := 1
	for _, e := range entries {
		if e.Count > max {
			max = e.Count
		}
	}

	bars := make([]Bar, len(entries))
	for i, e := range entries {
		w := float64(e.Count) / float64(max) * 100
		if w < 0 {
			w = 0
		} else if w > 100 {
			w = 100
		}
		bars[i] = Bar{
			Label: e.Label,
			Count: e.Count,
			Width: w,
			Delay: time.Duration(i) * StaggerStep,
		}
	}
	return Chart{Title: title, Bars: bars}
}

// Charts returns the category and processing charts for a plan, each
// normalised on its own.
func Charts(resp *domain.PlanResponse) []Chart {
	if resp == nil {
		return []Chart{
			{Title: CategoryTitle, Empty: true},
			{Title: ProcessingTitle, Empty: true},
		}
	}
	return []Chart{
		Aggregate(CategoryTitle, resp.ClusterBreakdown),
		Aggregate(ProcessingTitle, resp.ProcessingBreakdown),
	}
}

// Revealed reports how many bars are visible after elapsed has passed
// since the chart appeared.
func (c Chart) Revealed(elapsed time.Duration) int {
	n := 0
	for _, b := range c.Bars {
		if b.Delay > elapsed {
			break
		}
		n++
	}
	return n
}

// Done reports whether every bar has been revealed by elapsed.
func (c Chart) Done(elapsed time.Duration) bool {
	return c.Revealed(elapsed) == len(c.Bars)
}
