package analytics

import "sales-dashboard/internal/models"

// Summarize computes the headline metrics for a filtered set: total sales
// value, distinct order and customer counts, and the average ticket
// (total value over distinct orders, zero when there are no orders).
func Summarize(lines []models.OrderLine) models.Summary {
	orders := make(map[string]bool)
	customers := make(map[string]bool)
	total := 0.0
	for _, l := range lines {
		total += l.Value
		orders[l.OrderID] = true
		customers[l.Customer] = true
	}

	s := models.Summary{
		TotalValue:    total,
		OrderCount:    len(orders),
		CustomerCount: len(customers),
	}
	if s.OrderCount > 0 {
		s.AverageTicket = s.TotalValue / float64(s.OrderCount)
	}
	return s
}
