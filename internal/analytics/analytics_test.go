package analytics

import (
	"reflect"
	"testing"
	"time"

	"sales-dashboard/internal/models"
)

// orderLine builds a normalized line the way the loader would.
func orderLine(date, orderID, customer, product string, qty, price float64) models.OrderLine {
	l := models.OrderLine{
		OrderID:   orderID,
		Customer:  customer,
		Product:   product,
		Quantity:  qty,
		UnitPrice: price,
		Value:     qty * price,
	}
	if date != "" {
		t, err := time.Parse("2006-01-02", date)
		if err != nil {
			panic(err)
		}
		l.Date = t
		l.Year = t.Year()
		l.MonthNumber = int(t.Month())
		l.MonthName = models.MonthName(l.MonthNumber)
	}
	return l
}

// Two orders: O1 has products A and B, O2 has A and C. By value the sums
// are A=20, B=20, C=5 (grand total 45), with the A/B tie broken by name.
func exampleLines() []models.OrderLine {
	return []models.OrderLine{
		orderLine("2023-01-15", "O1", "Cliente Alfa", "Produto A", 1, 10),
		orderLine("2023-01-15", "O1", "Cliente Alfa", "Produto B", 1, 20),
		orderLine("2023-02-10", "O2", "Cliente Beta", "Produto A", 1, 10),
		orderLine("2023-02-10", "O2", "Cliente Beta", "Produto C", 1, 5),
	}
}

func TestNewAnalytics(t *testing.T) {
	a := NewAnalytics()
	if a == nil {
		t.Fatal("NewAnalytics() returned nil")
	}
	if a.logger == nil {
		t.Error("logger should be initialized")
	}
}

func TestAnalytics_SetData(t *testing.T) {
	a := NewAnalytics()
	a.SetData(exampleLines())

	if got := a.rowsLoaded.Load(); got != 4 {
		t.Errorf("rowsLoaded = %d, want 4", got)
	}

	summary := a.Summary(Filter{})
	if summary.TotalValue != 45 {
		t.Errorf("TotalValue = %v, want 45", summary.TotalValue)
	}
	if summary.OrderCount != 2 {
		t.Errorf("OrderCount = %d, want 2", summary.OrderCount)
	}
	if summary.CustomerCount != 2 {
		t.Errorf("CustomerCount = %d, want 2", summary.CustomerCount)
	}
	if summary.AverageTicket != 22.5 {
		t.Errorf("AverageTicket = %v, want 22.5", summary.AverageTicket)
	}
}

func TestAnalytics_EmptyData(t *testing.T) {
	a := NewAnalytics()

	if got := a.ABC(Filter{}, MetricValue, BasisFull, nil); len(got) != 0 {
		t.Errorf("ABC() on empty data returned %d rows", len(got))
	}
	if got := a.Pairs(Filter{}, 10); len(got) != 0 {
		t.Errorf("Pairs() on empty data returned %d rows", len(got))
	}
	if got := a.Customers(Filter{}, 10); len(got) != 0 {
		t.Errorf("Customers() on empty data returned %d rows", len(got))
	}
	if got := a.Daily(Filter{}); len(got) != 0 {
		t.Errorf("Daily() on empty data returned %d rows", len(got))
	}
	summary := a.Summary(Filter{})
	if summary.AverageTicket != 0 {
		t.Errorf("AverageTicket on empty data = %v, want 0", summary.AverageTicket)
	}
}

func TestAnalytics_FilterOptions(t *testing.T) {
	a := NewAnalytics()
	lines := exampleLines()
	lines = append(lines, orderLine("2024-03-01", "O3", "Cliente Gama", "Produto A", 1, 7))
	lines = append(lines, orderLine("", "O4", "Cliente Gama", "Produto B", 1, 3))
	a.SetData(lines)

	opts := a.FilterOptions()
	if !reflect.DeepEqual(opts.Years, []int{2023, 2024}) {
		t.Errorf("Years = %v, want [2023 2024]", opts.Years)
	}
	want := []string{"Cliente Alfa", "Cliente Beta", "Cliente Gama"}
	if !reflect.DeepEqual(opts.Customers, want) {
		t.Errorf("Customers = %v, want %v", opts.Customers, want)
	}
}

// Running the same query twice on a frozen snapshot must yield identical
// results.
func TestAnalytics_Idempotence(t *testing.T) {
	a := NewAnalytics()
	a.SetData(exampleLines())
	f := Filter{Years: []int{2023}}

	abc1 := a.ABC(f, MetricValue, BasisFull, nil)
	abc2 := a.ABC(f, MetricValue, BasisFull, nil)
	if !reflect.DeepEqual(abc1, abc2) {
		t.Error("ABC() is not idempotent")
	}

	pairs1 := a.Pairs(f, 0)
	pairs2 := a.Pairs(f, 0)
	if !reflect.DeepEqual(pairs1, pairs2) {
		t.Error("Pairs() is not idempotent")
	}

	profiles1 := a.Customers(f, 0)
	profiles2 := a.Customers(f, 0)
	if !reflect.DeepEqual(profiles1, profiles2) {
		t.Error("Customers() is not idempotent")
	}
}

func TestAnalytics_ConcurrentAccess(t *testing.T) {
	a := NewAnalytics()
	a.SetData(exampleLines())

	done := make(chan bool, 10)
	for i := 0; i < 10; i++ {
		go func() {
			defer func() { done <- true }()

			_ = a.Summary(Filter{})
			_ = a.ABC(Filter{}, MetricValue, BasisFull, nil)
			_ = a.Pairs(Filter{}, 10)
			_ = a.Customers(Filter{}, 10)
			_ = a.Daily(Filter{})
			_ = a.Monthly(Filter{})
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestAnalytics_Stats(t *testing.T) {
	a := NewAnalytics()
	lines := exampleLines()
	lines = append(lines, orderLine("", "O5", "Cliente Beta", "Produto D", 1, 1))
	a.SetData(lines)

	stats := a.Stats()
	if stats["record_count"].(int64) != 5 {
		t.Errorf("record_count = %v, want 5", stats["record_count"])
	}
	if stats["rows_no_date"].(int) != 1 {
		t.Errorf("rows_no_date = %v, want 1", stats["rows_no_date"])
	}
	if stats["products"].(int) != 4 {
		t.Errorf("products = %v, want 4", stats["products"])
	}
	if stats["orders"].(int) != 3 {
		t.Errorf("orders = %v, want 3", stats["orders"])
	}
}

func BenchmarkAnalytics_ABC(b *testing.B) {
	a := NewAnalytics()
	lines := make([]models.OrderLine, 0, 1000)
	for i := 0; i < 1000; i++ {
		lines = append(lines, orderLine("2023-01-02", "O1", "C", "Produto "+string(rune('A'+i%26)), 1, float64(i%97)))
	}
	a.SetData(lines)

	b.ResetTimer()
	for b.Loop() {
		_ = a.ABC(Filter{}, MetricValue, BasisFull, nil)
	}
}

func BenchmarkAnalytics_Pairs(b *testing.B) {
	a := NewAnalytics()
	lines := make([]models.OrderLine, 0, 1000)
	for i := 0; i < 1000; i++ {
		lines = append(lines, orderLine("2023-01-02", "O"+string(rune('0'+i%10)), "C", "Produto "+string(rune('A'+i%26)), 1, 10))
	}
	a.SetData(lines)

	b.ResetTimer()
	for b.Loop() {
		_ = a.Pairs(Filter{}, 10)
	}
}
