package usecase

import (
	"context"

	"github.com/user/idea-validator/internal/entity"
	"github.com/user/idea-validator/internal/repository"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// ReportManager exposes the read and delete paths over stored reports.
type ReportManager interface {
	Get(ctx context.Context, id string) (*entity.ValidationReport, error)
	List(ctx context.Context, limit, skip int) ([]*entity.ValidationReport, int64, error)
	Delete(ctx context.Context, id string) error
}

type reportManagerUseCase struct {
	reportRepo repository.ReportRepository
}

// NewReportManager creates the report management use case.
func NewReportManager(reportRepo repository.ReportRepository) ReportManager {
	return &reportManagerUseCase{reportRepo: reportRepo}
}

func (uc *reportManagerUseCase) Get(ctx context.Context, id string) (*entity.ValidationReport, error) {
	return uc.reportRepo.FindByID(ctx, id)
}

// List returns one page of reports, newest first, plus the total count.
func (uc *reportManagerUseCase) List(ctx context.Context, limit, skip int) ([]*entity.ValidationReport, int64, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if skip < 0 {
		skip = 0
	}

	reports, err := uc.reportRepo.List(ctx, limit, skip)
	if err != nil {
		return nil, 0, err
	}

	total, err := uc.reportRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return reports, total, nil
}

func (uc *reportManagerUseCase) Delete(ctx context.Context, id string) error {
	return uc.reportRepo.Delete(ctx, id)
}
