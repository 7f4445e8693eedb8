package analytics

import (
	"slices"
	"strings"

	"sales-dashboard/internal/models"
)

type pairKey struct {
	a, b string
}

// canonical orders the two products lexicographically so (A,B) and (B,A)
// count as the same pair.
func canonical(p1, p2 string) pairKey {
	if p1 > p2 {
		p1, p2 = p2, p1
	}
	return pairKey{a: p1, b: p2}
}

// ProductPairs counts, per unordered pair of distinct products, the number
// of orders in which both appear. Duplicate product lines within an order
// are merged first, so each order contributes at most 1 to any pair; orders
// with fewer than two distinct products contribute nothing. The result is
// sorted by count descending, then by pair names ascending. A limit > 0
// truncates the result to the top entries.
func ProductPairs(lines []models.OrderLine, limit int) []models.ProductPair {
	orderProducts := make(map[string]map[string]bool)
	for _, l := range lines {
		set := orderProducts[l.OrderID]
		if set == nil {
			set = make(map[string]bool)
			orderProducts[l.OrderID] = set
		}
		set[l.Product] = true
	}

	counts := make(map[pairKey]int)
	for _, set := range orderProducts {
		if len(set) < 2 {
			continue
		}
		products := make([]string, 0, len(set))
		for p := range set {
			products = append(products, p)
		}
		slices.Sort(products)
		for i := 0; i < len(products); i++ {
			for j := i + 1; j < len(products); j++ {
				counts[canonical(products[i], products[j])]++
			}
		}
	}

	pairs := make([]models.ProductPair, 0, len(counts))
	for key, count := range counts {
		pairs = append(pairs, models.ProductPair{ProductA: key.a, ProductB: key.b, Count: count})
	}
	slices.SortFunc(pairs, func(a, b models.ProductPair) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		if c := strings.Compare(a.ProductA, b.ProductA); c != 0 {
			return c
		}
		return strings.Compare(a.ProductB, b.ProductB)
	})

	if limit > 0 && len(pairs) > limit {
		pairs = pairs[:limit]
	}
	return pairs
}
