package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/user/idea-validator/internal/entity"
	"github.com/user/idea-validator/internal/repository"
)

const summarizerPrompt = `You are a startup analyst. Produce a validation report for the idea
below, using the competitor list and market signals as grounding.

Idea:
%s

Identified competitors:
%s

Market signals: %d searches executed, %d results collected.
Market data snippets:
%s

Respond with only a JSON object with exactly these keys:
"overview" (string),
"feasibility_score" (integer 0-100),
"market_readiness_score" (integer 0-100),
"swot_analysis" (object with "strengths", "weaknesses",
"opportunities", "threats", each an array of strings),
"risk_analysis" (array of strings),
"recommendations" (array of strings),
"competitive_advantage" (string),
"market_size_estimate" (string).`

// Summarizer produces the final ValidationSummary.
type Summarizer interface {
	Summarize(ctx context.Context, idea *entity.NormalizedIdea, competitors []entity.CompetitorInfo, insights entity.MarketInsights) (*entity.ValidationSummary, error)
}

type summarizerUseCase struct {
	generator repository.GenerationRepository
}

// NewSummarizer creates the validation summary use case.
func NewSummarizer(generator repository.GenerationRepository) Summarizer {
	return &summarizerUseCase{generator: generator}
}

// Summarize combines idea, competitors and market signals into the
// final report. Failure here is fatal to the run: there is no usable
// report without a summary.
func (uc *summarizerUseCase) Summarize(ctx context.Context, idea *entity.NormalizedIdea, competitors []entity.CompetitorInfo, insights entity.MarketInsights) (*entity.ValidationSummary, error) {
	ideaJSON, err := json.MarshalIndent(idea, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode idea: %w", err)
	}

	prompt := fmt.Sprintf(summarizerPrompt,
		ideaJSON,
		formatCompetitors(competitors),
		insights.TotalSearches,
		insights.TotalResults,
		formatMarketData(insights.MarketData),
	)

	raw, err := uc.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	payload, ok := extractJSONObject(raw)
	if !ok {
		return nil, fmt.Errorf("%w: summarizer returned no JSON object", repository.ErrUpstreamGeneration)
	}

	var summary entity.ValidationSummary
	if err := json.Unmarshal([]byte(payload), &summary); err != nil {
		return nil, fmt.Errorf("%w: unparseable summarizer output: %v", repository.ErrUpstreamGeneration, err)
	}

	normalizeSummary(&summary)
	return &summary, nil
}

// normalizeSummary clamps scores into [0,100] and replaces nil lists
// with empty slices so rendering code can iterate unconditionally.
func normalizeSummary(s *entity.ValidationSummary) {
	s.FeasibilityScore = clampScore(s.FeasibilityScore)
	s.MarketReadinessScore = clampScore(s.MarketReadinessScore)

	ensure := func(list *[]string) {
		if *list == nil {
			*list = []string{}
		}
	}
	ensure(&s.SWOTAnalysis.Strengths)
	ensure(&s.SWOTAnalysis.Weaknesses)
	ensure(&s.SWOTAnalysis.Opportunities)
	ensure(&s.SWOTAnalysis.Threats)
	ensure(&s.RiskAnalysis)
	ensure(&s.Recommendations)
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func formatCompetitors(competitors []entity.CompetitorInfo) string {
	if len(competitors) == 0 {
		return "(no competitors identified)"
	}
	var sb strings.Builder
	for i, c := range competitors {
		fmt.Fprintf(&sb, "%d. %s (%s): %s; founders: %s; revenue: %s; region: %s; features: %s\n",
			i+1, c.Name, c.URL, c.Description, c.Founders, c.Revenue, c.Region, strings.Join(c.Features, ", "))
	}
	return sb.String()
}

func formatMarketData(snippets []string) string {
	if len(snippets) == 0 {
		return "(none)"
	}
	return strings.Join(snippets, "\n")
}
