package repository

import (
	"context"

	"github.com/user/idea-validator/internal/entity"
)

// SearchRepository is the capability interface for the web search
// provider. Results are relevance-ranked as returned by the provider.
type SearchRepository interface {
	// Search runs one query and returns at most limit ranked results.
	Search(ctx context.Context, query string, limit int) ([]entity.SearchResult, error)
}
