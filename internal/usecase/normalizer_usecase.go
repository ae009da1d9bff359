package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/user/idea-validator/internal/entity"
	"github.com/user/idea-validator/internal/repository"
)

const normalizerPrompt = `You are preparing a startup idea questionnaire for market analysis.
Rewrite each field below for clarity and grammar. Do not add any claim,
number or fact that is not present in the original text. Keep empty
fields empty.

Questionnaire:
%s

Respond with only a JSON object using exactly these keys:
"idea_name", "problem", "why_problem_exists", "target_audience",
"solution", "key_features", "uniqueness", "market", "revenue_model",
"expected_users", "region", "extra_notes".`

// Normalizer cleans the raw questionnaire into a NormalizedIdea.
type Normalizer interface {
	Normalize(ctx context.Context, input entity.IdeaInput) (*entity.NormalizedIdea, error)
}

type normalizerUseCase struct {
	generator repository.GenerationRepository
}

// NewNormalizer creates the intake normalizer use case.
func NewNormalizer(generator repository.GenerationRepository) Normalizer {
	return &normalizerUseCase{generator: generator}
}

// Normalize rewrites every questionnaire field for clarity. Generation
// failure or unusable output aborts the run.
func (uc *normalizerUseCase) Normalize(ctx context.Context, input entity.IdeaInput) (*entity.NormalizedIdea, error) {
	inputJSON, err := json.MarshalIndent(input, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode questionnaire: %w", err)
	}

	raw, err := uc.generator.Generate(ctx, fmt.Sprintf(normalizerPrompt, inputJSON))
	if err != nil {
		return nil, err
	}

	payload, ok := extractJSONObject(raw)
	if !ok {
		return nil, fmt.Errorf("%w: normalizer returned no JSON object", repository.ErrUpstreamGeneration)
	}

	var normalized entity.NormalizedIdea
	if err := json.Unmarshal([]byte(payload), &normalized); err != nil {
		return nil, fmt.Errorf("%w: unparseable normalizer output: %v", repository.ErrUpstreamGeneration, err)
	}

	// The model must not blank out fields the user filled in.
	fillFallbacks(&normalized, input)

	return &normalized, nil
}

func fillFallbacks(n *entity.NormalizedIdea, in entity.IdeaInput) {
	fallback := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fallback(&n.IdeaName, in.IdeaName)
	fallback(&n.Problem, in.Problem)
	fallback(&n.WhyProblemExists, in.WhyProblemExists)
	fallback(&n.TargetAudience, in.TargetAudience)
	fallback(&n.Solution, in.Solution)
	fallback(&n.KeyFeatures, in.KeyFeatures)
	fallback(&n.Uniqueness, in.Uniqueness)
	fallback(&n.Market, in.Market)
	fallback(&n.RevenueModel, in.RevenueModel)
	fallback(&n.ExpectedUsers, in.ExpectedUsers)
	fallback(&n.Region, in.Region)
}
