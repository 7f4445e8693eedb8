package models

import "time"

// OrderLine is one normalized row of the sales-order export. Date is the
// zero time when the source value could not be parsed; such rows keep all
// other fields but carry no Year/MonthNumber/MonthName.
type OrderLine struct {
	Date        time.Time
	OrderID     string
	InvoiceCode string
	Customer    string
	ProductCode string
	Product     string
	Quantity    float64
	UnitPrice   float64
	Value       float64
	Year        int
	MonthNumber int
	MonthName   string
}

// HasDate reports whether the source date was parseable.
func (l OrderLine) HasDate() bool {
	return !l.Date.IsZero()
}

// MonthNames is the ordered categorical domain for month labels, indexed
// by month number - 1. The labels follow the locale of the source export.
var MonthNames = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// MonthName returns the label for a 1-12 month number, or "" out of range.
func MonthName(n int) string {
	if n < 1 || n > 12 {
		return ""
	}
	return MonthNames[n-1]
}

const (
	TierA = "A"
	TierB = "B"
	TierC = "C"
)

type ABCRow struct {
	Product    string  `json:"product"`
	Metric     float64 `json:"metric"`
	Percentage float64 `json:"percentage"`
	Cumulative float64 `json:"cumulative_percentage"`
	Tier       string  `json:"tier"`
}

// ProductPair is an unordered pair of distinct products bought together in
// the same order. ProductA < ProductB lexicographically.
type ProductPair struct {
	ProductA string `json:"product_a"`
	ProductB string `json:"product_b"`
	Count    int    `json:"count"`
}

type CustomerProfile struct {
	Customer     string  `json:"customer"`
	TotalSpend   float64 `json:"total_spend"`
	OrderCount   int     `json:"order_count"`
	AverageOrder float64 `json:"average_order_value"`
}

type DailySales struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

type MonthlySales struct {
	Year        int     `json:"year"`
	MonthNumber int     `json:"month_number"`
	MonthName   string  `json:"month_name"`
	Value       float64 `json:"value"`
}

// Summary holds the dashboard's headline metrics for a filtered set.
type Summary struct {
	TotalValue    float64 `json:"total_value"`
	OrderCount    int     `json:"order_count"`
	CustomerCount int     `json:"customer_count"`
	AverageTicket float64 `json:"average_ticket"`
}

// FilterOptions lists the values available to the filter controls.
type FilterOptions struct {
	Years     []int    `json:"years"`
	Customers []string `json:"customers"`
}
