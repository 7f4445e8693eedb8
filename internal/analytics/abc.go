package analytics

import (
	"slices"
	"strings"

	"sales-dashboard/internal/models"
)

// Metric selects which quantity the ABC classifier sums per product.
type Metric string

const (
	MetricValue    Metric = "value"
	MetricQuantity Metric = "quantity"
)

// Basis selects the denominator for cumulative percentages when the curve
// is restricted to a subset of tiers: BasisFull keeps the full-population
// numbers, BasisSubset recomputes them against the subset's own total.
type Basis string

const (
	BasisFull   Basis = "full"
	BasisSubset Basis = "subset"
)

// ABCCurve groups lines by product, sums the chosen metric, and ranks the
// products descending. Ties on the summed metric break by product name
// ascending, so the output order is deterministic. Each row carries its
// share of the grand total, the running cumulative share, and the tier
// derived from that row's own cumulative share (<=80 A, <=95 B, else C).
// An empty input, or one whose grand total is zero, yields an empty curve.
func ABCCurve(lines []models.OrderLine, metric Metric) []models.ABCRow {
	if len(lines) == 0 {
		return []models.ABCRow{}
	}

	sums := make(map[string]float64)
	for _, l := range lines {
		if metric == MetricQuantity {
			sums[l.Product] += l.Quantity
		} else {
			sums[l.Product] += l.Value
		}
	}

	rows := make([]models.ABCRow, 0, len(sums))
	grandTotal := 0.0
	for product, sum := range sums {
		rows = append(rows, models.ABCRow{Product: product, Metric: sum})
		grandTotal += sum
	}
	if grandTotal == 0 {
		return []models.ABCRow{}
	}

	slices.SortFunc(rows, func(a, b models.ABCRow) int {
		if a.Metric > b.Metric {
			return -1
		}
		if a.Metric < b.Metric {
			return 1
		}
		return strings.Compare(a.Product, b.Product)
	})

	cumulative := 0.0
	for i := range rows {
		rows[i].Percentage = rows[i].Metric / grandTotal * 100
		cumulative += rows[i].Percentage
		rows[i].Cumulative = cumulative
		rows[i].Tier = classifyTier(cumulative)
	}
	return rows
}

func classifyTier(cumulative float64) string {
	switch {
	case cumulative <= 80:
		return models.TierA
	case cumulative <= 95:
		return models.TierB
	default:
		return models.TierC
	}
}

// RestrictTiers keeps only the rows whose tier is in the given set. With
// BasisSubset the percentage and cumulative columns are recomputed against
// the subset's own total; tier labels always keep their full-population
// assignment. An empty tier set, or one covering every tier, returns a
// copy of the input untouched.
func RestrictTiers(rows []models.ABCRow, tiers []string, basis Basis) []models.ABCRow {
	if len(tiers) == 0 {
		return slices.Clone(rows)
	}

	keep := make(map[string]bool, len(tiers))
	for _, t := range tiers {
		keep[t] = true
	}
	if keep[models.TierA] && keep[models.TierB] && keep[models.TierC] {
		return slices.Clone(rows)
	}

	out := make([]models.ABCRow, 0, len(rows))
	subtotal := 0.0
	for _, r := range rows {
		if keep[r.Tier] {
			out = append(out, r)
			subtotal += r.Metric
		}
	}

	if basis == BasisSubset && subtotal > 0 {
		cumulative := 0.0
		for i := range out {
			out[i].Percentage = out[i].Metric / subtotal * 100
			cumulative += out[i].Percentage
			out[i].Cumulative = cumulative
		}
	}
	return out
}
