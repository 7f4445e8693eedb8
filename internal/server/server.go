package server

import (
	"log/slog"
	"net/http"

	"sales-dashboard/internal/analytics"
	"sales-dashboard/internal/handlers"
)

type Server struct {
	analytics   *analytics.Analytics
	mux         *http.ServeMux
	logger      *slog.Logger
	apiHandlers *handlers.APIHandlers
	sseHandlers *handlers.SSEHandlers
}

type TemplateHandlers struct {
	Dashboard http.HandlerFunc
}

func NewServer(analytics *analytics.Analytics, logger *slog.Logger, templateHandlers *TemplateHandlers) *Server {
	s := &Server{
		analytics:   analytics,
		mux:         http.NewServeMux(),
		logger:      logger,
		apiHandlers: handlers.NewAPIHandlers(analytics, logger),
		sseHandlers: handlers.NewSSEHandlers(analytics, logger),
	}
	s.setupRoutes(templateHandlers)
	return s
}

func (s *Server) setupRoutes(templateHandlers *TemplateHandlers) {
	// Dashboard routes
	s.mux.HandleFunc("GET /", templateHandlers.Dashboard)
	s.mux.HandleFunc("GET /health", s.apiHandlers.HandleHealth)
	s.mux.HandleFunc("GET /admin/stats", s.apiHandlers.HandleStats)

	// REST API endpoints
	s.mux.HandleFunc("GET /api/summary", s.apiHandlers.HandleSummary)
	s.mux.HandleFunc("GET /api/abc-curve", s.apiHandlers.HandleABCCurve)
	s.mux.HandleFunc("GET /api/product-pairs", s.apiHandlers.HandleProductPairs)
	s.mux.HandleFunc("GET /api/customer-profiles", s.apiHandlers.HandleCustomerProfiles)
	s.mux.HandleFunc("GET /api/sales-daily", s.apiHandlers.HandleDailySales)
	s.mux.HandleFunc("GET /api/sales-monthly", s.apiHandlers.HandleMonthlySales)
	s.mux.HandleFunc("GET /api/filter-options", s.apiHandlers.HandleFilterOptions)

	// Datastar SSE endpoints
	s.mux.HandleFunc("GET /sse/product-pairs", s.sseHandlers.HandleProductPairs)
	s.mux.HandleFunc("GET /sse/customer-profiles", s.sseHandlers.HandleCustomerProfiles)
	s.mux.HandleFunc("GET /sse/abc-curve", s.sseHandlers.HandleABCCurve)
	s.mux.HandleFunc("GET /sse/sales", s.sseHandlers.HandleSales)
	s.mux.HandleFunc("GET /sse/refresh-all", s.sseHandlers.HandleRefreshAll)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
