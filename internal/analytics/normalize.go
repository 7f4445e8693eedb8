package analytics

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"sales-dashboard/internal/errors"
	"sales-dashboard/internal/models"
)

// columnNames maps the export's header labels to canonical fields. The
// order report comes out of the ERP with Portuguese headers.
var columnNames = map[string]string{
	"Data":       "date",
	"ID":         "order_id",
	"NF":         "invoice_code",
	"Cliente":    "customer",
	"Produto ID": "product_code",
	"Produto":    "product",
	"Quantidade": "quantity",
	"Preço R$":   "unit_price",
	"Total":      "value",
}

var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2006-01-02 15:04:05",
}

// mapHeader resolves the header row to column positions for the canonical
// fields. Unknown columns are ignored; any canonical field without a
// source column is a schema error and aborts the whole load.
func mapHeader(fields []string) (map[string]int, error) {
	cols := make(map[string]int, len(columnNames))
	for i, field := range fields {
		if name, ok := columnNames[strings.TrimSpace(field)]; ok {
			cols[name] = i
		}
	}

	var missing []string
	for _, name := range columnNames {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, errors.Schema(fmt.Sprintf("input is missing required columns: %s", strings.Join(missing, ", ")))
	}
	return cols, nil
}

// coerceDate parses a source date value, returning the zero time when no
// layout matches. Row-level date failures never abort the load; the row is
// kept with no calendar attributes.
func coerceDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// parseDecimal accepts both plain floats and the export's pt-BR notation
// (thousands dot, decimal comma).
func parseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, nil
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	return strconv.ParseFloat(s, 64)
}

// normalizeLine turns one raw record into an OrderLine with canonical
// fields and derived calendar attributes.
func normalizeLine(record []string, cols map[string]int) (models.OrderLine, error) {
	for _, idx := range cols {
		if idx >= len(record) {
			return models.OrderLine{}, fmt.Errorf("record has %d columns, need %d", len(record), idx+1)
		}
	}

	field := func(name string) string {
		return strings.TrimSpace(record[cols[name]])
	}

	quantity, err := parseDecimal(field("quantity"))
	if err != nil {
		return models.OrderLine{}, fmt.Errorf("quantity: %w", err)
	}
	unitPrice, err := parseDecimal(field("unit_price"))
	if err != nil {
		return models.OrderLine{}, fmt.Errorf("unit_price: %w", err)
	}
	value, err := parseDecimal(field("value"))
	if err != nil {
		return models.OrderLine{}, fmt.Errorf("value: %w", err)
	}

	line := models.OrderLine{
		Date:        coerceDate(field("date")),
		OrderID:     field("order_id"),
		InvoiceCode: field("invoice_code"),
		Customer:    field("customer"),
		ProductCode: field("product_code"),
		Product:     field("product"),
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Value:       value,
	}
	if line.HasDate() {
		line.Year = line.Date.Year()
		line.MonthNumber = int(line.Date.Month())
		line.MonthName = models.MonthName(line.MonthNumber)
	}
	return line, nil
}
