package handlers

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"sales-dashboard/internal/analytics"
	"sales-dashboard/internal/models"
	"github.com/starfederation/datastar-go/datastar"
)

const (
	maxPairRows     = 10
	maxCustomerRows = 10
)

var pairTableTemplate = template.Must(template.New("pairTable").Parse(`
<div id="pairs-content">
<table class="modern-table">
<thead><tr><th>Produto 1</th><th>Produto 2</th><th>Frequência</th></tr></thead>
<tbody>
{{range .}}<tr>
<td>{{.ProductA}}</td>
<td>{{.ProductB}}</td>
<td><strong>{{.Count}}</strong></td>
</tr>{{end}}
</tbody>
</table>
</div>`))

var customerTableTemplate = template.Must(template.New("customerTable").Parse(`
<div id="customers-content">
<table class="modern-table">
<thead><tr><th>Cliente</th><th>Valor Total</th><th>Pedidos</th><th>Ticket Médio</th></tr></thead>
<tbody>
{{range .}}<tr>
<td>{{.Customer}}</td>
<td><strong>{{printf "%.2f" .TotalSpend}}</strong></td>
<td>{{.OrderCount}}</td>
<td>{{printf "%.2f" .AverageOrder}}</td>
</tr>{{end}}
</tbody>
</table>
</div>`))

type SSEHandlers struct {
	analytics *analytics.Analytics
	logger    *slog.Logger
}

func NewSSEHandlers(analytics *analytics.Analytics, logger *slog.Logger) *SSEHandlers {
	return &SSEHandlers{
		analytics: analytics,
		logger:    logger,
	}
}

func (h *SSEHandlers) renderPairTable(pairs []models.ProductPair) (string, error) {
	var buf strings.Builder
	err := pairTableTemplate.Execute(&buf, pairs)
	return buf.String(), err
}

func (h *SSEHandlers) renderCustomerTable(profiles []models.CustomerProfile) (string, error) {
	var buf strings.Builder
	err := customerTableTemplate.Execute(&buf, profiles)
	return buf.String(), err
}

// HandleProductPairs re-renders the co-purchase table for the filter
// carried in the request's query parameters.
func (h *SSEHandlers) HandleProductPairs(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	f, err := parseFilter(r)
	if err != nil {
		h.logger.Warn("bad pair filter", "error", err)
		return
	}

	html, err := h.renderPairTable(h.analytics.Pairs(f, maxPairRows))
	if err != nil {
		h.logger.Error("render pair table", "error", err)
		return
	}

	sse.PatchElements(html)

	if fl, ok := w.(http.Flusher); ok {
		fl.Flush()
	}
}

func (h *SSEHandlers) HandleCustomerProfiles(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	f, err := parseFilter(r)
	if err != nil {
		h.logger.Warn("bad customer filter", "error", err)
		return
	}

	html, err := h.renderCustomerTable(h.analytics.Customers(f, maxCustomerRows))
	if err != nil {
		h.logger.Error("render customer table", "error", err)
		return
	}

	sse.PatchElements(html)

	if fl, ok := w.(http.Flusher); ok {
		fl.Flush()
	}
}

// HandleABCCurve pushes the curve as chart signals.
func (h *SSEHandlers) HandleABCCurve(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	f, err := parseFilter(r)
	if err != nil {
		h.logger.Warn("bad abc filter", "error", err)
		return
	}
	metric, err := parseMetric(r)
	if err != nil {
		h.logger.Warn("bad abc metric", "error", err)
		return
	}
	basis, err := parseBasis(r)
	if err != nil {
		h.logger.Warn("bad abc basis", "error", err)
		return
	}
	tiers, err := parseTiers(r)
	if err != nil {
		h.logger.Warn("bad abc tiers", "error", err)
		return
	}

	jsonData, err := json.Marshal(map[string]any{
		"abcData": h.analytics.ABC(f, metric, basis, tiers),
	})
	if err != nil {
		h.logger.Error("marshal abc data", "error", err)
		return
	}
	sse.PatchSignals(jsonData)

	sse.PatchElements(`<div id="abc-content">✅ ABC curve data loaded</div>`)

	if fl, ok := w.(http.Flusher); ok {
		fl.Flush()
	}
}

// HandleSales pushes both the daily and the monthly series.
func (h *SSEHandlers) HandleSales(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	f, err := parseFilter(r)
	if err != nil {
		h.logger.Warn("bad sales filter", "error", err)
		return
	}

	jsonData, err := json.Marshal(map[string]any{
		"dailyData":   h.analytics.Daily(f),
		"monthlyData": h.analytics.Monthly(f),
	})
	if err != nil {
		h.logger.Error("marshal sales data", "error", err)
		return
	}
	sse.PatchSignals(jsonData)

	sse.PatchElements(`<div id="sales-content">✅ Sales trend data loaded</div>`)

	if fl, ok := w.(http.Flusher); ok {
		fl.Flush()
	}
}

// HandleRefreshAll recomputes every panel for the current filter in one
// SSE exchange.
func (h *SSEHandlers) HandleRefreshAll(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	f, err := parseFilter(r)
	if err != nil {
		h.logger.Warn("bad refresh filter", "error", err)
		return
	}

	pairHTML, err := h.renderPairTable(h.analytics.Pairs(f, maxPairRows))
	if err != nil {
		h.logger.Error("render pair table", "error", err)
		return
	}
	sse.PatchElements(pairHTML)

	customerHTML, err := h.renderCustomerTable(h.analytics.Customers(f, maxCustomerRows))
	if err != nil {
		h.logger.Error("render customer table", "error", err)
		return
	}
	sse.PatchElements(customerHTML)

	allSignals, err := json.Marshal(map[string]any{
		"summary":     h.analytics.Summary(f),
		"abcData":     h.analytics.ABC(f, analytics.MetricValue, analytics.BasisFull, nil),
		"dailyData":   h.analytics.Daily(f),
		"monthlyData": h.analytics.Monthly(f),
	})
	if err != nil {
		h.logger.Error("marshal refresh signals", "error", err)
		return
	}
	sse.PatchSignals(allSignals)

	if fl, ok := w.(http.Flusher); ok {
		fl.Flush()
	}
}
