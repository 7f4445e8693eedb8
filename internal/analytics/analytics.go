package analytics

import (
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"sales-dashboard/internal/models"
)

// Analytics owns an immutable snapshot of normalized order lines and
// answers the dashboard's derived queries. Every query applies its filter
// and computes a fresh result set; nothing derived is cached. Only the
// load-and-normalize step is memoized (see loader.go).
type Analytics struct {
	mu          sync.RWMutex
	snapshot    []models.OrderLine
	loadedAt    time.Time
	csvPath     string
	rowsLoaded  atomic.Int64
	rowsSkipped atomic.Int64
	logger      *slog.Logger
}

func NewAnalytics() *Analytics {
	return &Analytics{
		logger: slog.Default(),
	}
}

// SetData installs already-normalized lines as the current snapshot.
func (a *Analytics) SetData(lines []models.OrderLine) {
	a.mu.Lock()
	a.snapshot = slices.Clone(lines)
	a.loadedAt = time.Now()
	a.mu.Unlock()
	a.rowsLoaded.Store(int64(len(lines)))
}

// lines returns the current snapshot. Snapshots are never mutated after
// installation, so callers may read the returned slice without the lock.
func (a *Analytics) lines() []models.OrderLine {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot
}

func (a *Analytics) Summary(f Filter) models.Summary {
	return Summarize(f.Apply(a.lines()))
}

func (a *Analytics) ABC(f Filter, metric Metric, basis Basis, tiers []string) []models.ABCRow {
	curve := ABCCurve(f.Apply(a.lines()), metric)
	return RestrictTiers(curve, tiers, basis)
}

func (a *Analytics) Pairs(f Filter, limit int) []models.ProductPair {
	return ProductPairs(f.Apply(a.lines()), limit)
}

func (a *Analytics) Customers(f Filter, limit int) []models.CustomerProfile {
	return CustomerProfiles(f.Apply(a.lines()), limit)
}

// Daily and Monthly ignore the month part of the filter so trend charts
// always span the selected years.
func (a *Analytics) Daily(f Filter) []models.DailySales {
	return SalesByDay(f.WithoutMonth().Apply(a.lines()))
}

func (a *Analytics) Monthly(f Filter) []models.MonthlySales {
	return SalesByMonth(f.WithoutMonth().Apply(a.lines()))
}

// FilterOptions lists the distinct years and customers in the snapshot so
// the UI can populate its filter controls.
func (a *Analytics) FilterOptions() models.FilterOptions {
	lines := a.lines()

	yearSet := make(map[int]bool)
	customerSet := make(map[string]bool)
	for _, l := range lines {
		if l.Year != 0 {
			yearSet[l.Year] = true
		}
		customerSet[l.Customer] = true
	}

	opts := models.FilterOptions{
		Years:     make([]int, 0, len(yearSet)),
		Customers: make([]string, 0, len(customerSet)),
	}
	for y := range yearSet {
		opts.Years = append(opts.Years, y)
	}
	for c := range customerSet {
		opts.Customers = append(opts.Customers, c)
	}
	slices.Sort(opts.Years)
	slices.Sort(opts.Customers)
	return opts
}

// Stats reports load metadata for the admin endpoint.
func (a *Analytics) Stats() map[string]any {
	lines := a.lines()

	products := make(map[string]bool)
	orders := make(map[string]bool)
	dateless := 0
	for _, l := range lines {
		products[l.Product] = true
		orders[l.OrderID] = true
		if !l.HasDate() {
			dateless++
		}
	}

	a.mu.RLock()
	loadedAt := a.loadedAt
	a.mu.RUnlock()

	return map[string]any{
		"record_count": a.rowsLoaded.Load(),
		"rows_skipped": a.rowsSkipped.Load(),
		"rows_no_date": dateless,
		"loaded_at":    loadedAt,
		"products":     len(products),
		"orders":       len(orders),
	}
}
