package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/user/idea-validator/internal/entity"
	"github.com/user/idea-validator/internal/repository"
)

const normalizedEcoTrack = `{
	"idea_name": "EcoTrack",
	"problem": "People do not track their carbon footprint.",
	"target_audience": "Environmentally conscious consumers",
	"solution": "A mobile app that tracks daily emissions.",
	"market": "Sustainability",
	"region": "United States"
}`

const ecoTrackCompetitors = `[
	{"name": "GreenMeter", "url": "https://greenmeter.example.com", "description": "Carbon tracking app"}
]`

const ecoTrackSummary = `{
	"overview": "Viable with strong differentiation needed",
	"feasibility_score": 72,
	"market_readiness_score": 65,
	"swot_analysis": {"strengths": ["real problem"], "weaknesses": [], "opportunities": ["regulation"], "threats": ["incumbents"]},
	"risk_analysis": ["user retention"],
	"recommendations": ["focus on B2B"],
	"competitive_advantage": "automatic tracking",
	"market_size_estimate": "USD 1B"
}`

func ecoTrackInput() entity.IdeaInput {
	return entity.IdeaInput{
		IdeaName:         "EcoTrack",
		Problem:          "people don't track carbon footprint",
		WhyProblemExists: "tracking is tedious",
		TargetAudience:   "consumers",
		Solution:         "an app",
		KeyFeatures:      "auto tracking",
		Uniqueness:       "automatic",
		Market:           "Sustainability",
		RevenueModel:     "subscription",
		ExpectedUsers:    "10000",
		Region:           "United States",
	}
}

type validatorHarness struct {
	gen     *fakeGenerator
	search  *fakeSearch
	scraper *fakeScraper
	repo    *fakeReportRepo
	uc      Validator
}

func newValidatorHarness(gen *fakeGenerator, search *fakeSearch, scraper *fakeScraper, repo *fakeReportRepo) *validatorHarness {
	retryCfg := testRetryCfg()
	return &validatorHarness{
		gen:     gen,
		search:  search,
		scraper: scraper,
		repo:    repo,
		uc: NewValidator(
			NewNormalizer(gen),
			NewGatherer(search, nil, retryCfg, 10, time.Hour),
			NewExtractor(scraper, 5, 2),
			NewSynthesizer(gen),
			NewSummarizer(gen),
			repo,
		),
	}
}

func TestValidateEcoTrackScenario(t *testing.T) {
	search := &fakeSearch{results: map[string][]entity.SearchResult{
		"EcoTrack competitors Sustainability startups": {
			{Title: "GreenMeter", Link: "https://greenmeter.example.com", Snippet: "carbon app"},
			{Title: "GreenMeter blog", Link: "https://greenmeter.example.com", Snippet: "dup url"},
			{Title: "FootprintCo", Link: "https://footprint.example.com", Snippet: "tracker"},
		},
		"people don't track carbon footprint solutions Sustainability apps": {
			{Title: "Solutions roundup", Link: "https://roundup.example.com", Snippet: "apps"},
		},
		"Sustainability market size United States statistics": {
			{Title: "Market report", Link: "https://stats.example.com", Snippet: "market is growing"},
		},
	}}
	h := newValidatorHarness(
		&fakeGenerator{responses: []string{normalizedEcoTrack, ecoTrackCompetitors, ecoTrackSummary}},
		search,
		&fakeScraper{},
		newFakeReportRepo(),
	)

	report, err := h.uc.Validate(context.Background(), ecoTrackInput())
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}

	if len(search.queries) != 3 {
		t.Errorf("expected exactly 3 search queries, got %d", len(search.queries))
	}
	if len(h.scraper.scraped) > 5 {
		t.Errorf("expected at most 5 scraped pages, got %d", len(h.scraper.scraped))
	}
	if report.WebResearch.MarketInsights.TotalSearches != 3 {
		t.Errorf("expected total_searches=3, got %d", report.WebResearch.MarketInsights.TotalSearches)
	}
	if report.FinalSummary.Overview == "" {
		t.Errorf("expected non-empty final summary")
	}
	if report.FinalSummary.FeasibilityScore < 0 || report.FinalSummary.FeasibilityScore > 100 {
		t.Errorf("feasibility score out of range: %d", report.FinalSummary.FeasibilityScore)
	}
	if report.ID == "" {
		t.Errorf("expected a persisted report id")
	}
	if len(h.repo.saved) != 1 {
		t.Errorf("expected exactly one persisted report, got %d", len(h.repo.saved))
	}
	if report.UserInput != ecoTrackInput() {
		t.Errorf("raw user input must be preserved verbatim")
	}
	// The duplicate URL collapses: only 2 unique competitor URLs exist.
	if len(report.WebResearch.FirecrawlResults) != 2 {
		t.Errorf("expected 2 scraped pages, got %d", len(report.WebResearch.FirecrawlResults))
	}
}

func TestValidateNormalizerFailurePersistsNothing(t *testing.T) {
	h := newValidatorHarness(
		&fakeGenerator{errs: []error{fmt.Errorf("%w: down", repository.ErrUpstreamGeneration)}},
		&fakeSearch{},
		&fakeScraper{},
		newFakeReportRepo(),
	)

	_, err := h.uc.Validate(context.Background(), ecoTrackInput())
	if !errors.Is(err, repository.ErrUpstreamGeneration) {
		t.Fatalf("expected ErrUpstreamGeneration, got %v", err)
	}
	if len(h.repo.saved) != 0 {
		t.Errorf("no report may be persisted after a fatal stage, got %d", len(h.repo.saved))
	}
	if len(h.search.queries) != 0 {
		t.Errorf("pipeline must stop before research, got %d searches", len(h.search.queries))
	}
}

func TestValidateCompletesWhenAllSearchesFail(t *testing.T) {
	h := newValidatorHarness(
		// No synthesizer response needed: without evidence it is skipped.
		&fakeGenerator{responses: []string{normalizedEcoTrack, ecoTrackSummary}},
		&fakeSearch{err: errProviderDown},
		&fakeScraper{},
		newFakeReportRepo(),
	)

	report, err := h.uc.Validate(context.Background(), ecoTrackInput())
	if err != nil {
		t.Fatalf("run must survive total research failure, got %v", err)
	}
	if report.WebResearch.MarketInsights.TotalSearches != 0 {
		t.Errorf("expected total_searches=0, got %d", report.WebResearch.MarketInsights.TotalSearches)
	}
	if len(report.WebResearch.Competitors) != 0 {
		t.Errorf("expected empty competitor list, got %d", len(report.WebResearch.Competitors))
	}
	if report.WebResearch.Competitors == nil || report.WebResearch.SerperResults == nil {
		t.Errorf("research sequences must be present even when empty")
	}
}

func TestValidateAbsorbsSynthesizerFailure(t *testing.T) {
	search := &fakeSearch{results: map[string][]entity.SearchResult{
		"EcoTrack competitors Sustainability startups": {
			{Title: "GreenMeter", Link: "https://greenmeter.example.com", Snippet: "carbon app"},
		},
	}}
	h := newValidatorHarness(
		&fakeGenerator{
			responses: []string{normalizedEcoTrack, "", ecoTrackSummary},
			errs:      []error{nil, fmt.Errorf("%w: overloaded", repository.ErrUpstreamGeneration), nil},
		},
		search,
		&fakeScraper{},
		newFakeReportRepo(),
	)

	report, err := h.uc.Validate(context.Background(), ecoTrackInput())
	if err != nil {
		t.Fatalf("synthesizer failure must not fail the run, got %v", err)
	}
	if len(report.WebResearch.Competitors) != 0 {
		t.Errorf("expected empty competitor list after absorbed failure")
	}
	if report.FinalSummary.Overview == "" {
		t.Errorf("summary must still be produced")
	}
}

func TestValidatePersistenceFailureIsDistinct(t *testing.T) {
	repo := newFakeReportRepo()
	repo.saveErr = fmt.Errorf("%w: disk full", repository.ErrPersistence)

	h := newValidatorHarness(
		&fakeGenerator{responses: []string{normalizedEcoTrack, ecoTrackSummary}},
		&fakeSearch{err: errProviderDown},
		&fakeScraper{},
		repo,
	)

	report, err := h.uc.Validate(context.Background(), ecoTrackInput())
	if !errors.Is(err, ErrReportNotPersisted) {
		t.Fatalf("expected ErrReportNotPersisted, got %v", err)
	}
	if !errors.Is(err, repository.ErrPersistence) {
		t.Errorf("persistence cause must be preserved in the chain")
	}
	if report == nil || report.FinalSummary.Overview == "" {
		t.Errorf("computed report must be returned for a save-only retry")
	}
}
