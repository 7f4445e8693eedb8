package analytics

import (
	"slices"
	"strings"

	"sales-dashboard/internal/models"
)

// CustomerProfiles aggregates total spend and distinct order count per
// customer and derives the average order value. Sorted by total spend
// descending, then customer name ascending. A limit > 0 truncates to the
// top customers.
func CustomerProfiles(lines []models.OrderLine, limit int) []models.CustomerProfile {
	spend := make(map[string]float64)
	orders := make(map[string]map[string]bool)
	for _, l := range lines {
		spend[l.Customer] += l.Value
		set := orders[l.Customer]
		if set == nil {
			set = make(map[string]bool)
			orders[l.Customer] = set
		}
		set[l.OrderID] = true
	}

	profiles := make([]models.CustomerProfile, 0, len(spend))
	for customer, total := range spend {
		p := models.CustomerProfile{
			Customer:   customer,
			TotalSpend: total,
			OrderCount: len(orders[customer]),
		}
		if p.OrderCount > 0 {
			p.AverageOrder = p.TotalSpend / float64(p.OrderCount)
		}
		profiles = append(profiles, p)
	}

	slices.SortFunc(profiles, func(a, b models.CustomerProfile) int {
		if a.TotalSpend > b.TotalSpend {
			return -1
		}
		if a.TotalSpend < b.TotalSpend {
			return 1
		}
		return strings.Compare(a.Customer, b.Customer)
	})

	if limit > 0 && len(profiles) > limit {
		profiles = profiles[:limit]
	}
	return profiles
}
