package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/user/idea-validator/internal/delivery/http/handler"
	"github.com/user/idea-validator/internal/delivery/http/middleware"
)

func New(h *handler.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.HandleRoot)
	mux.HandleFunc("GET /api/health", h.HandleHealthCheck)
	mux.HandleFunc("POST /api/validate", h.HandleValidate)
	mux.HandleFunc("GET /api/reports", h.HandleListReports)
	mux.HandleFunc("GET /api/reports/{id}", h.HandleGetReport)
	mux.HandleFunc("DELETE /api/reports/{id}", h.HandleDeleteReport)

	// Prometheus metrics endpoint
	mux.Handle("/metrics", promhttp.Handler())

	// Apply middlewares
	var chainedHandler http.Handler = mux
	chainedHandler = middleware.Metrics(chainedHandler)
	chainedHandler = middleware.Logging(chainedHandler)

	return chainedHandler
}
