package analytics

import (
	"slices"
	"time"

	"sales-dashboard/internal/models"
)

// SalesByDay sums total value per calendar date, sorted chronologically.
// Lines whose date could not be parsed are excluded: a null bucket would
// break the chronological axis.
func SalesByDay(lines []models.OrderLine) []models.DailySales {
	totals := make(map[time.Time]float64)
	for _, l := range lines {
		if !l.HasDate() {
			continue
		}
		totals[l.Date] += l.Value
	}

	out := make([]models.DailySales, 0, len(totals))
	for date, value := range totals {
		out = append(out, models.DailySales{Date: date, Value: value})
	}
	slices.SortFunc(out, func(a, b models.DailySales) int {
		return a.Date.Compare(b.Date)
	})
	return out
}

// SalesByMonth sums total value per (year, month), sorted by year then
// month number. MonthName follows MonthNumber's order, so callers can sort
// on the number and display the label. Dateless lines are excluded, as in
// SalesByDay.
func SalesByMonth(lines []models.OrderLine) []models.MonthlySales {
	type ym struct {
		year  int
		month int
	}
	totals := make(map[ym]float64)
	for _, l := range lines {
		if !l.HasDate() {
			continue
		}
		totals[ym{year: l.Year, month: l.MonthNumber}] += l.Value
	}

	out := make([]models.MonthlySales, 0, len(totals))
	for key, value := range totals {
		out = append(out, models.MonthlySales{
			Year:        key.year,
			MonthNumber: key.month,
			MonthName:   models.MonthName(key.month),
			Value:       value,
		})
	}
	slices.SortFunc(out, func(a, b models.MonthlySales) int {
		if a.Year != b.Year {
			return a.Year - b.Year
		}
		return a.MonthNumber - b.MonthNumber
	})
	return out
}
