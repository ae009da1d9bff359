package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/user/idea-validator/internal/entity"
	"github.com/user/idea-validator/internal/repository"
)

func TestNormalizeParsesFencedJSON(t *testing.T) {
	gen := &fakeGenerator{responses: []string{
		"```json\n{\"idea_name\": \"EcoTrack\", \"problem\": \"People do not track their carbon footprint.\", \"market\": \"Sustainability\", \"region\": \"United States\"}\n```",
	}}
	uc := NewNormalizer(gen)

	input := entity.IdeaInput{
		IdeaName: "ecotrack",
		Problem:  "people dont track carbon footprint",
		Market:   "sustainability",
		Region:   "US",
		Solution: "an app",
	}
	normalized, err := uc.Normalize(context.Background(), input)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if normalized.IdeaName != "EcoTrack" {
		t.Errorf("expected cleaned idea name, got %q", normalized.IdeaName)
	}
	// Fields the model left out fall back to the raw input.
	if normalized.Solution != "an app" {
		t.Errorf("expected fallback solution, got %q", normalized.Solution)
	}
}

func TestNormalizeGenerationFailureIsFatal(t *testing.T) {
	gen := &fakeGenerator{errs: []error{fmt.Errorf("%w: timeout", repository.ErrUpstreamGeneration)}}
	uc := NewNormalizer(gen)

	_, err := uc.Normalize(context.Background(), entity.IdeaInput{IdeaName: "x"})
	if !errors.Is(err, repository.ErrUpstreamGeneration) {
		t.Fatalf("expected ErrUpstreamGeneration, got %v", err)
	}
}

func TestNormalizeRejectsNonJSONOutput(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"Sure! Here is the cleaned idea."}}
	uc := NewNormalizer(gen)

	_, err := uc.Normalize(context.Background(), entity.IdeaInput{IdeaName: "x"})
	if !errors.Is(err, repository.ErrUpstreamGeneration) {
		t.Fatalf("expected ErrUpstreamGeneration for prose output, got %v", err)
	}
}
