package request

import (
	"fmt"
	"strings"

	"github.com/user/idea-validator/internal/entity"
)

// ValidateIdeaRequest is the questionnaire payload for POST /api/validate.
// All fields except extra_notes are required.
type ValidateIdeaRequest struct {
	IdeaName         string `json:"idea_name"`
	Problem          string `json:"problem"`
	WhyProblemExists string `json:"why_problem_exists"`
	TargetAudience   string `json:"target_audience"`
	Solution         string `json:"solution"`
	KeyFeatures      string `json:"key_features"`
	Uniqueness       string `json:"uniqueness"`
	Market           string `json:"market"`
	RevenueModel     string `json:"revenue_model"`
	ExpectedUsers    string `json:"expected_users"`
	Region           string `json:"region"`
	ExtraNotes       string `json:"extra_notes"`
}

// Validate reports the missing required fields, if any.
func (r *ValidateIdeaRequest) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"idea_name", r.IdeaName},
		{"problem", r.Problem},
		{"why_problem_exists", r.WhyProblemExists},
		{"target_audience", r.TargetAudience},
		{"solution", r.Solution},
		{"key_features", r.KeyFeatures},
		{"uniqueness", r.Uniqueness},
		{"market", r.Market},
		{"revenue_model", r.RevenueModel},
		{"expected_users", r.ExpectedUsers},
		{"region", r.Region},
	}

	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ToEntity converts the request into the immutable domain input.
func (r *ValidateIdeaRequest) ToEntity() entity.IdeaInput {
	return entity.IdeaInput{
		IdeaName:         r.IdeaName,
		Problem:          r.Problem,
		WhyProblemExists: r.WhyProblemExists,
		TargetAudience:   r.TargetAudience,
		Solution:         r.Solution,
		KeyFeatures:      r.KeyFeatures,
		Uniqueness:       r.Uniqueness,
		Market:           r.Market,
		RevenueModel:     r.RevenueModel,
		ExpectedUsers:    r.ExpectedUsers,
		Region:           r.Region,
		ExtraNotes:       r.ExtraNotes,
	}
}
