package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/user/idea-validator/internal/entity"
	"github.com/user/idea-validator/internal/repository"
)

const synthesizerPrompt = `You are analysing market research for the startup idea "%s"
(market: %s). Below are web search results and extracted page contents.

Identify the distinct real competitors mentioned in the evidence. Merge
entries that refer to the same company. Fill each attribute only from
the evidence given; when the evidence does not determine an attribute,
use the string "Unknown". Do not invent companies or facts.

Search results:
%s

Extracted pages:
%s

Respond with only a JSON array of objects with exactly these keys:
"name", "url", "description", "founders", "revenue", "features"
(array of strings), "region".`

// Synthesizer cross-references search snippets and scraped pages into
// a deduplicated competitor list.
type Synthesizer interface {
	Synthesize(ctx context.Context, idea *entity.NormalizedIdea, results []entity.SearchResult, pages []entity.ScrapedPage) ([]entity.CompetitorInfo, error)
}

type synthesizerUseCase struct {
	generator repository.GenerationRepository
}

// NewSynthesizer creates the competitor synthesis use case.
func NewSynthesizer(generator repository.GenerationRepository) Synthesizer {
	return &synthesizerUseCase{generator: generator}
}

func (uc *synthesizerUseCase) Synthesize(ctx context.Context, idea *entity.NormalizedIdea, results []entity.SearchResult, pages []entity.ScrapedPage) ([]entity.CompetitorInfo, error) {
	if len(results) == 0 && len(pages) == 0 {
		return []entity.CompetitorInfo{}, nil
	}

	prompt := fmt.Sprintf(synthesizerPrompt,
		idea.IdeaName, idea.Market,
		formatSearchEvidence(results),
		formatPageEvidence(pages),
	)

	raw, err := uc.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	payload, ok := extractJSONArray(raw)
	if !ok {
		return nil, fmt.Errorf("%w: synthesizer returned no JSON array", repository.ErrUpstreamGeneration)
	}

	var competitors []entity.CompetitorInfo
	if err := json.Unmarshal([]byte(payload), &competitors); err != nil {
		return nil, fmt.Errorf("%w: unparseable synthesizer output: %v", repository.ErrUpstreamGeneration, err)
	}

	return sanitizeCompetitors(competitors), nil
}

// sanitizeCompetitors enforces the Unknown sentinel on every attribute
// the model left empty and drops entries without a name.
func sanitizeCompetitors(in []entity.CompetitorInfo) []entity.CompetitorInfo {
	out := make([]entity.CompetitorInfo, 0, len(in))
	for _, c := range in {
		c.Name = strings.TrimSpace(c.Name)
		if c.Name == "" || strings.EqualFold(c.Name, entity.Unknown) {
			continue
		}
		if strings.TrimSpace(c.URL) == "" {
			c.URL = entity.Unknown
		}
		if strings.TrimSpace(c.Description) == "" {
			c.Description = entity.Unknown
		}
		if strings.TrimSpace(c.Founders) == "" {
			c.Founders = entity.Unknown
		}
		if strings.TrimSpace(c.Revenue) == "" {
			c.Revenue = entity.Unknown
		}
		if strings.TrimSpace(c.Region) == "" {
			c.Region = entity.Unknown
		}
		if c.Features == nil {
			c.Features = []string{}
		}
		out = append(out, c)
	}
	return out
}

func formatSearchEvidence(results []entity.SearchResult) string {
	if len(results) == 0 {
		return "(none)"
	}
	var sb strings.Builder
	for i, r := range results {
		fmt.Fprintf(&sb, "%d. %s\n   %s\n   %s\n", i+1, r.Title, r.Link, r.Snippet)
	}
	return sb.String()
}

func formatPageEvidence(pages []entity.ScrapedPage) string {
	var sb strings.Builder
	for _, p := range pages {
		if p.Content == "" {
			continue
		}
		fmt.Fprintf(&sb, "--- %s (%s)\n%s\n", p.Title, p.URL, p.Content)
	}
	if sb.Len() == 0 {
		return "(none)"
	}
	return sb.String()
}
