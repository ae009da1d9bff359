package response

import "github.com/user/idea-validator/internal/entity"

// ValidateResponse is returned by POST /api/validate. On a persistence
// failure after a successful pipeline, Success is false and Data still
// carries the computed report.
type ValidateResponse struct {
	Success  bool                     `json:"success"`
	Message  string                   `json:"message"`
	ReportID string                   `json:"report_id,omitempty"`
	Data     *entity.ValidationReport `json:"data,omitempty"`
}

// ReportListResponse is one page of stored reports, newest first.
type ReportListResponse struct {
	Success bool                       `json:"success"`
	Data    []*entity.ValidationReport `json:"data"`
	Total   int64                      `json:"total"`
	Limit   int                        `json:"limit"`
	Skip    int                        `json:"skip"`
}

// ReportResponse wraps a single stored report.
type ReportResponse struct {
	Success bool                     `json:"success"`
	Data    *entity.ValidationReport `json:"data"`
}

// MessageResponse is a generic success/message envelope.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthResponse reports component-level liveness.
type HealthResponse struct {
	Status    string `json:"status"`
	API       string `json:"api"`
	Database  string `json:"database"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
}
