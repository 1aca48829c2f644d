// Package sizing recommends apparel and footwear sizes from a customer's
// height using per-category range tables.
package sizing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vastra/commerce-core/internal/domain"
)

var ErrUnsupportedCategory = errors.New("no size chart available for category")

const (
	noteBelowRange = "Below standard range, smallest size recommended"
	noteAboveRange = "Above standard range, largest size recommended"
)

// Advisor answers size questions from immutable chart data. Safe for
// concurrent use.
type Advisor struct {
	charts []domain.SizeChart
	index  map[string]int // lowercased category -> index into charts
}

func NewAdvisor() *Advisor {
	return NewAdvisorWithCharts(defaultCharts())
}

func NewAdvisorWithCharts(charts []domain.SizeChart) *Advisor {
	a := &Advisor{
		charts: charts,
		index:  make(map[string]int, len(charts)),
	}
	for i, c := range charts {
		a.index[strings.ToLower(c.Category)] = i
	}
	return a
}

// Chart returns the full ordered size table for a category.
func (a *Advisor) Chart(category string) (domain.SizeChart, error) {
	i, ok := a.index[strings.ToLower(category)]
	if !ok {
		return domain.SizeChart{}, fmt.Errorf("%w: %s", ErrUnsupportedCategory, category)
	}

	chart := a.charts[i]
	out := domain.SizeChart{
		Category: chart.Category,
		Sizes:    make([]domain.SizeRange, len(chart.Sizes)),
	}
	copy(out.Sizes, chart.Sizes)
	return out, nil
}

// Recommend returns the first size whose height range contains heightCM,
// both ends inclusive. Ranges may overlap at their boundaries; definition
// order is the tie-break, never midpoint or best-fit logic. Heights below
// every range map to the smallest size, above every range to the largest,
// each with an explanatory note.
func (a *Advisor) Recommend(category string, heightCM int) (domain.SizeRecommendation, error) {
	i, ok := a.index[strings.ToLower(category)]
	if !ok {
		return domain.SizeRecommendation{}, fmt.Errorf("%w: %s", ErrUnsupportedCategory, category)
	}
	chart := a.charts[i]

	for _, r := range chart.Sizes {
		if r.HeightMin <= heightCM && heightCM <= r.HeightMax {
			return domain.SizeRecommendation{
				Size:         r.Label,
				Category:     chart.Category,
				HeightRange:  fmt.Sprintf("%d-%d cm", r.HeightMin, r.HeightMax),
				Measure:      r.Measure,
				MeasureValue: r.MeasureValue,
			}, nil
		}
	}

	// Charts are contiguous, so an unmatched height is either below the
	// smallest range or above the largest.
	if heightCM < chart.Sizes[0].HeightMin {
		return domain.SizeRecommendation{
			Size:     chart.Sizes[0].Label,
			Category: chart.Category,
			Note:     noteBelowRange,
		}, nil
	}
	last := chart.Sizes[len(chart.Sizes)-1]
	return domain.SizeRecommendation{
		Size:     last.Label,
		Category: chart.Category,
		Note:     noteAboveRange,
	}, nil
}
