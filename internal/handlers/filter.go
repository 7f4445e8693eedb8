package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"sales-dashboard/internal/analytics"
	"sales-dashboard/internal/errors"
	"sales-dashboard/internal/models"
)

// parseFilter reads the shared filter query parameters:
//
//	years=2023,2024    year set, empty keeps all
//	month=3            single month 1-12, 0 or absent keeps all
//	exclude=Acme,Beta  customers to drop
func parseFilter(r *http.Request) (analytics.Filter, error) {
	var f analytics.Filter
	q := r.URL.Query()

	if raw := q.Get("years"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			year, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return f, errors.BadRequest(fmt.Sprintf("invalid year %q", part))
			}
			f.Years = append(f.Years, year)
		}
	}

	if raw := q.Get("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil || month < 0 || month > 12 {
			return f, errors.BadRequest(fmt.Sprintf("invalid month %q", raw))
		}
		f.Month = month
	}

	if raw := q.Get("exclude"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if c := strings.TrimSpace(part); c != "" {
				f.ExcludedCustomers = append(f.ExcludedCustomers, c)
			}
		}
	}

	return f, nil
}

func parseLimit(r *http.Request, fallback int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, errors.BadRequest(fmt.Sprintf("invalid limit %q", raw))
	}
	return limit, nil
}

func parseMetric(r *http.Request) (analytics.Metric, error) {
	switch raw := r.URL.Query().Get("metric"); raw {
	case "", string(analytics.MetricValue):
		return analytics.MetricValue, nil
	case string(analytics.MetricQuantity):
		return analytics.MetricQuantity, nil
	default:
		return "", errors.BadRequest(fmt.Sprintf("invalid metric %q, must be value or quantity", raw))
	}
}

func parseBasis(r *http.Request) (analytics.Basis, error) {
	switch raw := r.URL.Query().Get("basis"); raw {
	case "", string(analytics.BasisFull):
		return analytics.BasisFull, nil
	case string(analytics.BasisSubset):
		return analytics.BasisSubset, nil
	default:
		return "", errors.BadRequest(fmt.Sprintf("invalid basis %q, must be full or subset", raw))
	}
}

func parseTiers(r *http.Request) ([]string, error) {
	raw := r.URL.Query().Get("tiers")
	if raw == "" {
		return nil, nil
	}
	var tiers []string
	for _, part := range strings.Split(raw, ",") {
		tier := strings.ToUpper(strings.TrimSpace(part))
		switch tier {
		case models.TierA, models.TierB, models.TierC:
			tiers = append(tiers, tier)
		default:
			return nil, errors.BadRequest(fmt.Sprintf("invalid tier %q", part))
		}
	}
	return tiers, nil
}
