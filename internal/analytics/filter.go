package analytics

import "sales-dashboard/internal/models"

// Filter restricts the working record set before the aggregators run.
// Zero values mean "no restriction": an empty Years set keeps every year,
// Month 0 keeps every month, an empty ExcludedCustomers set excludes nobody.
type Filter struct {
	Years             []int
	Month             int
	ExcludedCustomers []string
}

func (f Filter) IsEmpty() bool {
	return len(f.Years) == 0 && f.Month == 0 && len(f.ExcludedCustomers) == 0
}

// WithoutMonth drops the month restriction. The time series endpoints use
// it so trend charts always span the selected years.
func (f Filter) WithoutMonth() Filter {
	f.Month = 0
	return f
}

// Apply returns the lines matching the filter. Single pass with set
// lookups; the input slice is never mutated.
func (f Filter) Apply(lines []models.OrderLine) []models.OrderLine {
	if f.IsEmpty() {
		return lines
	}

	var years map[int]bool
	if len(f.Years) > 0 {
		years = make(map[int]bool, len(f.Years))
		for _, y := range f.Years {
			years[y] = true
		}
	}

	var excluded map[string]bool
	if len(f.ExcludedCustomers) > 0 {
		excluded = make(map[string]bool, len(f.ExcludedCustomers))
		for _, c := range f.ExcludedCustomers {
			excluded[c] = true
		}
	}

	out := make([]models.OrderLine, 0, len(lines))
	for _, l := range lines {
		if years != nil && !years[l.Year] {
			continue
		}
		if f.Month != 0 && l.MonthNumber != f.Month {
			continue
		}
		if excluded != nil && excluded[l.Customer] {
			continue
		}
		out = append(out, l)
	}
	return out
}
