package repository

import (
	"context"
	"time"

	"github.com/user/idea-validator/internal/entity"
)

// SearchCacheRepository caches search results per query so repeated
// validations of similar ideas do not re-bill the search provider.
// A cache miss is reported as (nil, false, nil), never as an error.
type SearchCacheRepository interface {
	Get(ctx context.Context, query string) ([]entity.SearchResult, bool, error)
	Set(ctx context.Context, query string, results []entity.SearchResult, expiry time.Duration) error
}
