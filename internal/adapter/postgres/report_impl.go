package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/user/idea-validator/internal/entity"
	"github.com/user/idea-validator/internal/repository"
)

// ReportRepoImpl provides a concrete implementation for the
// ReportRepository interface using PostgreSQL. Each report is stored as
// a single JSONB document, written atomically in one INSERT.
type ReportRepoImpl struct {
	db *pgxpool.Pool
}

// NewReportRepo creates a new instance of ReportRepoImpl.
func NewReportRepo(db *pgxpool.Pool) *ReportRepoImpl {
	return &ReportRepoImpl{db: db}
}

// Init creates the reports table if it does not exist.
func (r *ReportRepoImpl) Init(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS validation_reports (
			id         TEXT PRIMARY KEY,
			document   JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_validation_reports_created_at
			ON validation_reports (created_at DESC);
	`
	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrPersistence, err)
	}
	return nil
}

// Save persists a complete report and returns its generated id.
func (r *ReportRepoImpl) Save(ctx context.Context, report *entity.ValidationReport) (string, error) {
	id := uuid.NewString()
	report.ID = id

	document, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("%w: %v", repository.ErrPersistence, err)
	}

	query := `INSERT INTO validation_reports (id, document, created_at) VALUES ($1, $2, $3);`
	if _, err := r.db.Exec(ctx, query, id, document, report.CreatedAt); err != nil {
		return "", fmt.Errorf("%w: %v", repository.ErrPersistence, err)
	}

	return id, nil
}

// FindByID retrieves one report by id.
func (r *ReportRepoImpl) FindByID(ctx context.Context, id string) (*entity.ValidationReport, error) {
	query := `SELECT document FROM validation_reports WHERE id = $1;`

	var document []byte
	err := r.db.QueryRow(ctx, query, id).Scan(&document)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrPersistence, err)
	}

	var report entity.ValidationReport
	if err := json.Unmarshal(document, &report); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrPersistence, err)
	}
	report.ID = id

	return &report, nil
}

// List returns reports ordered by creation time, newest first.
func (r *ReportRepoImpl) List(ctx context.Context, limit, skip int) ([]*entity.ValidationReport, error) {
	query := `
		SELECT id, document FROM validation_reports
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrPersistence, err)
	}
	defer rows.Close()

	reports := make([]*entity.ValidationReport, 0, limit)
	for rows.Next() {
		var id string
		var document []byte
		if err := rows.Scan(&id, &document); err != nil {
			return nil, fmt.Errorf("%w: %v", repository.ErrPersistence, err)
		}

		var report entity.ValidationReport
		if err := json.Unmarshal(document, &report); err != nil {
			return nil, fmt.Errorf("%w: %v", repository.ErrPersistence, err)
		}
		report.ID = id
		reports = append(reports, &report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrPersistence, err)
	}
	return reports, nil
}

// Count returns the total number of stored reports.
func (r *ReportRepoImpl) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM validation_reports;`).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: %v", repository.ErrPersistence, err)
	}
	return total, nil
}

// Delete removes one report. A second delete of the same id reports
// ErrReportNotFound.
func (r *ReportRepoImpl) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM validation_reports WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrPersistence, err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrReportNotFound
	}
	return nil
}
