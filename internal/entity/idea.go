package entity

// IdeaInput is the raw questionnaire exactly as submitted by the user.
// It is never mutated after submission.
type IdeaInput struct {
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

// NormalizedIdea mirrors IdeaInput after the language cleanup pass.
// It is derived once per run and owned by that run.
type NormalizedIdea struct {
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
