package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sales-dashboard/internal/models"
)

func TestNewSSEHandlers(t *testing.T) {
	a := createTestAnalytics()
	logger := testLogger()

	h := NewSSEHandlers(a, logger)

	if h == nil {
		t.Fatal("NewSSEHandlers() returned nil")
	}
	if h.analytics != a {
		t.Error("NewSSEHandlers() should set analytics field")
	}
	if h.logger != logger {
		t.Error("NewSSEHandlers() should set logger field")
	}
}

func TestSSEHandlers_renderPairTable(t *testing.T) {
	h := NewSSEHandlers(createTestAnalytics(), testLogger())

	pairs := []models.ProductPair{
		{ProductA: "Produto A", ProductB: "Produto B", Count: 3},
		{ProductA: "Produto A", ProductB: "Produto C", Count: 1},
	}

	html, err := h.renderPairTable(pairs)
	if err != nil {
		t.Fatalf("renderPairTable() failed: %v", err)
	}

	for _, want := range []string{`id="pairs-content"`, "Produto A", "Produto B", "Produto C", "<strong>3</strong>"} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered table missing %q", want)
		}
	}
}

func TestSSEHandlers_renderCustomerTable(t *testing.T) {
	h := NewSSEHandlers(createTestAnalytics(), testLogger())

	profiles := []models.CustomerProfile{
		{Customer: "Cliente Alfa", TotalSpend: 30, OrderCount: 1, AverageOrder: 30},
	}

	html, err := h.renderCustomerTable(profiles)
	if err != nil {
		t.Fatalf("renderCustomerTable() failed: %v", err)
	}

	for _, want := range []string{`id="customers-content"`, "Cliente Alfa", "30.00"} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered table missing %q", want)
		}
	}
}

func TestSSEHandlers_HandleProductPairs(t *testing.T) {
	h := NewSSEHandlers(createTestAnalytics(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/sse/product-pairs", nil)
	w := httptest.NewRecorder()
	h.HandleProductPairs(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/event-stream") {
		t.Errorf("content-type = %q, want text/event-stream", ct)
	}

	body := w.Body.String()
	if !strings.Contains(body, "pairs-content") {
		t.Error("SSE body should patch the pairs fragment")
	}
	if !strings.Contains(body, "Produto A") {
		t.Error("SSE body should contain pair data")
	}
}

func TestSSEHandlers_HandleABCCurve(t *testing.T) {
	h := NewSSEHandlers(createTestAnalytics(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/sse/abc-curve?metric=quantity", nil)
	w := httptest.NewRecorder()
	h.HandleABCCurve(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}

	body := w.Body.String()
	if !strings.Contains(body, "abcData") {
		t.Error("SSE body should patch abcData signals")
	}
	if !strings.Contains(body, "abc-content") {
		t.Error("SSE body should patch the abc fragment")
	}
}

func TestSSEHandlers_HandleSales(t *testing.T) {
	h := NewSSEHandlers(createTestAnalytics(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/sse/sales?years=2023", nil)
	w := httptest.NewRecorder()
	h.HandleSales(w, req)

	body := w.Body.String()
	if !strings.Contains(body, "dailyData") || !strings.Contains(body, "monthlyData") {
		t.Error("SSE body should patch daily and monthly signals")
	}
}

func TestSSEHandlers_HandleRefreshAll(t *testing.T) {
	h := NewSSEHandlers(createTestAnalytics(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/sse/refresh-all?exclude=Cliente+Gama", nil)
	w := httptest.NewRecorder()
	h.HandleRefreshAll(w, req)

	body := w.Body.String()
	for _, want := range []string{"pairs-content", "customers-content", "summary", "abcData", "dailyData", "monthlyData"} {
		if !strings.Contains(body, want) {
			t.Errorf("refresh-all body missing %q", want)
		}
	}
	if strings.Contains(body, "Cliente Gama") {
		t.Error("excluded customer leaked into refresh-all output")
	}
}
