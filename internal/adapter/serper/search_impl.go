package serper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/user/idea-validator/internal/entity"
	"github.com/user/idea-validator/internal/repository"
)

// SearchImpl implements SearchRepository against the Serper.dev
// Google-search REST API.
type SearchImpl struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewSearch creates a Serper client.
func NewSearch(apiKey, baseURL string, timeout time.Duration) *SearchImpl {
	if baseURL == "" {
		baseURL = "https://google.serper.dev"
	}
	return &SearchImpl{
		apiKey:  apiKey,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Search runs one query and returns at most limit organic results in
// provider ranking order.
func (s *SearchImpl) Search(ctx context.Context, query string, limit int) ([]entity.SearchResult, error) {
	requestBody := map[string]interface{}{
		"q":   query,
		"num": limit,
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrSearchProvider, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/search", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrSearchProvider, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrSearchProvider, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrSearchProvider, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", repository.ErrSearchProvider, resp.StatusCode)
	}

	var apiResponse struct {
		Organic []struct {
			Title   string `json:"title"`
			Link    string `json:"link"`
			Snippet string `json:"snippet"`
		} `json:"organic"`
	}
	if err := json.Unmarshal(body, &apiResponse); err != nil {
		return nil, fmt.Errorf("%w: failed to parse response: %v", repository.ErrSearchProvider, err)
	}

	results := make([]entity.SearchResult, 0, len(apiResponse.Organic))
	for _, r := range apiResponse.Organic {
		if len(results) == limit {
			break
		}
		results = append(results, entity.SearchResult{
			Title:   r.Title,
			Link:    r.Link,
			Snippet: r.Snippet,
		})
	}

	return results, nil
}
