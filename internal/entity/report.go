package entity

import "time"

// SWOT holds the four analysis quadrants. Lists may be empty but are
// never nil so templates can iterate unconditionally.
type SWOT struct {
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Opportunities []string `json:"opportunities"`
	Threats       []string `json:"threats"`
}

// ValidationSummary is the final generated analysis. Scores are
// integers clamped to [0,100].
type ValidationSummary struct {
	Overview             string   `json:"overview"`
	FeasibilityScore     int      `json:"feasibility_score"`
	MarketReadinessScore int      `json:"market_readiness_score"`
	SWOTAnalysis         SWOT     `json:"swot_analysis"`
	RiskAnalysis         []string `json:"risk_analysis"`
	Recommendations      []string `json:"recommendations"`
	CompetitiveAdvantage string   `json:"competitive_advantage"`
	MarketSizeEstimate   string   `json:"market_size_estimate"`
}

// WebResearch bundles everything collected from external providers
// during one run.
type WebResearch struct {
	SerperResults    []SearchResult   `json:"serper_results"`
	FirecrawlResults []ScrapedPage    `json:"firecrawl_results"`
	Competitors      []CompetitorInfo `json:"competitors"`
	MarketInsights   MarketInsights   `json:"market_insights"`
}

// ValidationReport is the complete trace of one pipeline run. It is
// assembled only after every stage succeeded and is persisted as a
// single immutable document.
type ValidationReport struct {
	ID             string            `json:"id,omitempty"`
	UserInput      IdeaInput         `json:"user_input"`
	ProcessedInput NormalizedIdea    `json:"processed_input"`
	WebResearch    WebResearch       `json:"web_research"`
	FinalSummary   ValidationSummary `json:"final_summary"`
	CreatedAt      time.Time         `json:"created_at"`
}
