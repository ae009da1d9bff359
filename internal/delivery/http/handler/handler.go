package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/user/idea-validator/internal/delivery/http/request"
	"github.com/user/idea-validator/internal/delivery/http/response"
	"github.com/user/idea-validator/internal/repository"
	"github.com/user/idea-validator/internal/usecase"
)

// Pinger checks connectivity to a backing service.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	validator usecase.Validator
	reports   usecase.ReportManager
	dbPinger  Pinger
}

func NewHandler(validator usecase.Validator, reports usecase.ReportManager, dbPinger Pinger) *Handler {
	return &Handler{
		validator: validator,
		reports:   reports,
		dbPinger:  dbPinger,
	}
}

func (h *Handler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Startup Idea Validator API",
		"status":  "running",
		"endpoints": map[string]string{
			"validate": "POST /api/validate",
			"reports":  "GET /api/reports",
			"health":   "GET /api/health",
		},
	})
}

func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	var req request.ValidateIdeaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		h.writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := h.validator.Validate(r.Context(), req.ToEntity())
	if err != nil {
		if errors.Is(err, usecase.ErrReportNotPersisted) {
			// The pipeline finished; only the save failed. Return the
			// computed report so the caller can retry persistence.
			h.writeJSON(w, http.StatusInternalServerError, response.ValidateResponse{
				Success: false,
				Message: "Validation completed but the report could not be saved",
				Data:    report,
			})
			return
		}
		slog.Error("Validation run failed", "idea_name", req.IdeaName, "error", err)
		h.writeJSON(w, http.StatusInternalServerError, response.ValidateResponse{
			Success: false,
			Message: "Validation failed: " + err.Error(),
		})
		return
	}

	h.writeJSON(w, http.StatusOK, response.ValidateResponse{
		Success:  true,
		Message:  "Validation completed successfully",
		ReportID: report.ID,
		Data:     report,
	})
}

func (h *Handler) HandleListReports(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 10)
	skip := queryInt(r, "skip", 0)

	reports, total, err := h.reports.List(r.Context(), limit, skip)
	if err != nil {
		slog.Error("Failed to list reports", "error", err)
		h.writeJSONError(w, "Failed to fetch reports", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, response.ReportListResponse{
		Success: true,
		Data:    reports,
		Total:   total,
		Limit:   limit,
		Skip:    skip,
	})
}

func (h *Handler) HandleGetReport(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	report, err := h.reports.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			h.writeJSONError(w, "Report not found", http.StatusNotFound)
			return
		}
		slog.Error("Failed to get report", "report_id", id, "error", err)
		h.writeJSONError(w, "Failed to fetch report", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, response.ReportResponse{
		Success: true,
		Data:    report,
	})
}

func (h *Handler) HandleDeleteReport(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.reports.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			h.writeJSONError(w, "Report not found", http.StatusNotFound)
			return
		}
		slog.Error("Failed to delete report", "report_id", id, "error", err)
		h.writeJSONError(w, "Failed to delete report", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, response.MessageResponse{
		Success: true,
		Message: "Report deleted successfully",
	})
}

func (h *Handler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	resp := response.HealthResponse{
		Status:    "healthy",
		API:       "running",
		Database:  "connected",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if h.dbPinger != nil {
		if err := h.dbPinger.Ping(r.Context()); err != nil {
			resp.Status = "unhealthy"
			resp.Database = "disconnected"
			resp.Error = err.Error()
			h.writeJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}

func (h *Handler) writeJSONError(w http.ResponseWriter, message string, status int) {
	h.writeJSON(w, status, map[string]interface{}{"success": false, "error": message})
}
