package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/user/idea-validator/internal/entity"
	"github.com/user/idea-validator/internal/repository"
	"github.com/user/idea-validator/pkg/metrics"
)

// ErrReportNotPersisted marks a run whose pipeline succeeded but whose
// report could not be saved. The computed report is still returned so
// the caller can retry the save alone.
var ErrReportNotPersisted = errors.New("report computed but not persisted")

// Validator runs one end-to-end validation: normalize, research,
// extract, synthesize, summarize, persist.
type Validator interface {
	Validate(ctx context.Context, input entity.IdeaInput) (*entity.ValidationReport, error)
}

type validatorUseCase struct {
	normalizer  Normalizer
	gatherer    Gatherer
	extractor   Extractor
	synthesizer Synthesizer
	summarizer  Summarizer
	reportRepo  repository.ReportRepository
}

// NewValidator creates the pipeline orchestrator use case.
func NewValidator(
	normalizer Normalizer,
	gatherer Gatherer,
	extractor Extractor,
	synthesizer Synthesizer,
	summarizer Summarizer,
	reportRepo repository.ReportRepository,
) Validator {
	return &validatorUseCase{
		normalizer:  normalizer,
		gatherer:    gatherer,
		extractor:   extractor,
		synthesizer: synthesizer,
		summarizer:  summarizer,
		reportRepo:  reportRepo,
	}
}

// Validate executes the stages strictly in order; each stage's output
// is the next stage's input, and the report is assembled only after
// every stage finished. All run state lives in locals here, never in
// shared fields.
func (uc *validatorUseCase) Validate(ctx context.Context, input entity.IdeaInput) (*entity.ValidationReport, error) {
	slog.Info("Starting validation run", "idea_name", input.IdeaName, "market", input.Market)

	normalized, err := observeStage("normalize", func() (*entity.NormalizedIdea, error) {
		return uc.normalizer.Normalize(ctx, input)
	})
	if err != nil {
		metrics.ValidationsTotal.WithLabelValues("failure").Inc()
		return nil, fmt.Errorf("intake normalization: %w", err)
	}

	batch, _ := observeStage("gather", func() (*SearchBatch, error) {
		return uc.gatherer.Gather(ctx, normalized), nil
	})

	pages, _ := observeStage("extract", func() ([]entity.ScrapedPage, error) {
		return uc.extractor.Extract(ctx, batch.Competitors), nil
	})

	allResults := batch.Results()

	competitors, err := observeStage("synthesize", func() ([]entity.CompetitorInfo, error) {
		return uc.synthesizer.Synthesize(ctx, normalized, allResults, pages)
	})
	if err != nil {
		// Synthesis is best-effort: the run continues with whatever
		// evidence was collected.
		slog.Warn("Competitor synthesis failed, continuing with empty competitor list", "error", err)
		competitors = []entity.CompetitorInfo{}
	}

	insights := entity.MarketInsights{
		TotalSearches: batch.ExecutedSearches,
		TotalResults:  len(allResults),
		MarketData:    marketSnippets(batch.MarketData),
	}

	summary, err := observeStage("summarize", func() (*entity.ValidationSummary, error) {
		return uc.summarizer.Summarize(ctx, normalized, competitors, insights)
	})
	if err != nil {
		metrics.ValidationsTotal.WithLabelValues("failure").Inc()
		return nil, fmt.Errorf("validation summary: %w", err)
	}

	report := &entity.ValidationReport{
		UserInput:      input,
		ProcessedInput: *normalized,
		WebResearch: entity.WebResearch{
			SerperResults:    allResults,
			FirecrawlResults: pages,
			Competitors:      competitors,
			MarketInsights:   insights,
		},
		FinalSummary: *summary,
		CreatedAt:    time.Now().UTC(),
	}

	id, err := observeStage("persist", func() (string, error) {
		return uc.reportRepo.Save(ctx, report)
	})
	if err != nil {
		slog.Error("Report computed but could not be persisted", "idea_name", input.IdeaName, "error", err)
		metrics.ValidationsTotal.WithLabelValues("persist_failure").Inc()
		return report, fmt.Errorf("%w: %w", ErrReportNotPersisted, err)
	}
	report.ID = id

	metrics.ValidationsTotal.WithLabelValues("success").Inc()
	slog.Info("Validation run completed", "report_id", id,
		"competitors", len(competitors), "searches", insights.TotalSearches)

	return report, nil
}

func marketSnippets(results []entity.SearchResult) []string {
	snippets := make([]string, 0, len(results))
	for _, r := range results {
		if r.Snippet != "" {
			snippets = append(snippets, r.Snippet)
		}
	}
	return snippets
}

func observeStage[T any](stage string, fn func() (T, error)) (T, error) {
	start := time.Now()
	out, err := fn()
	metrics.StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
	return out, err
}
