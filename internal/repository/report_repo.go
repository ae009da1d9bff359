package repository

import (
	"context"

	"github.com/user/idea-validator/internal/entity"
)

// ReportRepository defines the interface for the append-mostly report
// store. Each Save writes the whole document once, never partially.
type ReportRepository interface {
	// Save persists a complete report and returns its generated id.
	Save(ctx context.Context, report *entity.ValidationReport) (string, error)
	// FindByID retrieves one report, or ErrReportNotFound.
	FindByID(ctx context.Context, id string) (*entity.ValidationReport, error)
	// List returns reports ordered by creation time, newest first.
	List(ctx context.Context, limit, skip int) ([]*entity.ValidationReport, error)
	// Count returns the total number of stored reports.
	Count(ctx context.Context) (int64, error)
	// Delete removes one report, or returns ErrReportNotFound.
	Delete(ctx context.Context, id string) error
}
