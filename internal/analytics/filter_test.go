package analytics

import (
	"testing"

	"sales-dashboard/internal/models"
)

func filterFixture() []models.OrderLine {
	return []models.OrderLine{
		orderLine("2023-01-15", "O1", "Cliente Alfa", "P1", 1, 10),
		orderLine("2023-02-10", "O2", "Cliente Beta", "P2", 1, 20),
		orderLine("2024-01-05", "O3", "Cliente Alfa", "P1", 1, 30),
		orderLine("2024-03-09", "O4", "Cliente Gama", "P3", 1, 40),
	}
}

func TestFilter_Empty(t *testing.T) {
	lines := filterFixture()
	got := Filter{}.Apply(lines)
	if len(got) != len(lines) {
		t.Errorf("empty filter kept %d of %d lines", len(got), len(lines))
	}
}

func TestFilter_Years(t *testing.T) {
	got := Filter{Years: []int{2023}}.Apply(filterFixture())
	if len(got) != 2 {
		t.Fatalf("got %d lines, want 2", len(got))
	}
	for _, l := range got {
		if l.Year != 2023 {
			t.Errorf("line from year %d passed a 2023-only filter", l.Year)
		}
	}
}

func TestFilter_Month(t *testing.T) {
	got := Filter{Month: 1}.Apply(filterFixture())
	if len(got) != 2 {
		t.Fatalf("got %d lines, want 2", len(got))
	}
	for _, l := range got {
		if l.MonthNumber != 1 {
			t.Errorf("line from month %d passed a January-only filter", l.MonthNumber)
		}
	}
}

func TestFilter_ExcludedCustomers(t *testing.T) {
	f := Filter{ExcludedCustomers: []string{"Cliente Alfa"}}
	got := f.Apply(filterFixture())
	if len(got) != 2 {
		t.Fatalf("got %d lines, want 2", len(got))
	}
	for _, l := range got {
		if l.Customer == "Cliente Alfa" {
			t.Error("excluded customer appeared in filtered set")
		}
	}
}

// Excluding a customer must strictly reduce (or leave unchanged) every
// aggregate and never surface the excluded customer in any output.
func TestFilter_ExclusionPropagates(t *testing.T) {
	a := NewAnalytics()
	a.SetData(filterFixture())

	full := a.Summary(Filter{})
	reduced := a.Summary(Filter{ExcludedCustomers: []string{"Cliente Alfa"}})
	if reduced.TotalValue >= full.TotalValue {
		t.Errorf("exclusion did not reduce total: %v >= %v", reduced.TotalValue, full.TotalValue)
	}

	for _, p := range a.Customers(Filter{ExcludedCustomers: []string{"Cliente Alfa"}}, 0) {
		if p.Customer == "Cliente Alfa" {
			t.Error("excluded customer present in profiles")
		}
	}
}

func TestFilter_Combined(t *testing.T) {
	f := Filter{Years: []int{2024}, Month: 3, ExcludedCustomers: []string{"Cliente Beta"}}
	got := f.Apply(filterFixture())
	if len(got) != 1 || got[0].OrderID != "O4" {
		t.Errorf("got %+v, want only O4", got)
	}
}

func TestFilter_WithoutMonth(t *testing.T) {
	f := Filter{Years: []int{2024}, Month: 3}
	got := f.WithoutMonth().Apply(filterFixture())
	if len(got) != 2 {
		t.Errorf("got %d lines, want 2 (month restriction dropped)", len(got))
	}
	if f.Month != 3 {
		t.Error("WithoutMonth must not mutate the receiver")
	}
}
