package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"sales-dashboard/internal/analytics"
	"sales-dashboard/internal/errors"
	"sales-dashboard/internal/observability"
)

const (
	defaultPairLimit     = 10
	defaultCustomerLimit = 10
	cacheControl         = "public, max-age=60"
)

type APIHandlers struct {
	analytics *analytics.Analytics
	logger    *slog.Logger
}

func NewAPIHandlers(analytics *analytics.Analytics, logger *slog.Logger) *APIHandlers {
	return &APIHandlers{
		analytics: analytics,
		logger:    logger,
	}
}

func (h *APIHandlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	errors.WriteError(w, h.logger, err, observability.GetRequestID(r.Context()))
}

func (h *APIHandlers) ok(w http.ResponseWriter, data any) {
	errors.WriteSuccessWithHeaders(w, data, map[string]string{
		"Cache-Control": cacheControl,
	})
}

func (h *APIHandlers) HandleSummary(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.ok(w, h.analytics.Summary(f))
}

func (h *APIHandlers) HandleABCCurve(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	metric, err := parseMetric(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	basis, err := parseBasis(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	tiers, err := parseTiers(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.ok(w, h.analytics.ABC(f, metric, basis, tiers))
}

func (h *APIHandlers) HandleProductPairs(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	limit, err := parseLimit(r, defaultPairLimit)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.ok(w, h.analytics.Pairs(f, limit))
}

func (h *APIHandlers) HandleCustomerProfiles(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	limit, err := parseLimit(r, defaultCustomerLimit)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.ok(w, h.analytics.Customers(f, limit))
}

func (h *APIHandlers) HandleDailySales(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.ok(w, h.analytics.Daily(f))
}

func (h *APIHandlers) HandleMonthlySales(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.ok(w, h.analytics.Monthly(f))
}

func (h *APIHandlers) HandleFilterOptions(w http.ResponseWriter, r *http.Request) {
	h.ok(w, h.analytics.FilterOptions())
}

func (h *APIHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	healthData := map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   "1.0.0",
	}

	errors.WriteSuccess(w, healthData)
}

func (h *APIHandlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccess(w, h.analytics.Stats())
}
