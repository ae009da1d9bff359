package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/user/idea-validator/internal/entity"
	"github.com/user/idea-validator/pkg/utils"
)

const searchCachePrefix = "search:"

// SearchCacheRepoImpl provides a concrete implementation for the
// SearchCacheRepository interface using Redis.
type SearchCacheRepoImpl struct {
	client *redis.Client
}

// NewSearchCacheRepo creates a new instance of SearchCacheRepoImpl.
func NewSearchCacheRepo(client *redis.Client) *SearchCacheRepoImpl {
	return &SearchCacheRepoImpl{client: client}
}

// generateKey creates a consistent Redis key for a query by hashing it.
func (r *SearchCacheRepoImpl) generateKey(query string) string {
	return fmt.Sprintf("%s%s", searchCachePrefix, utils.HashQuery(query))
}

// Get returns cached results for a query. A missing key is a cache
// miss, not an error.
func (r *SearchCacheRepoImpl) Get(ctx context.Context, query string) ([]entity.SearchResult, bool, error) {
	payload, err := r.client.Get(ctx, r.generateKey(query)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var results []entity.SearchResult
	if err := json.Unmarshal(payload, &results); err != nil {
		return nil, false, err
	}
	return results, true, nil
}

// Set stores results for a query with an expiry.
func (r *SearchCacheRepoImpl) Set(ctx context.Context, query string, results []entity.SearchResult, expiry time.Duration) error {
	payload, err := json.Marshal(results)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.generateKey(query), payload, expiry).Err()
}
