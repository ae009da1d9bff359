package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/user/idea-validator/internal/entity"
	"github.com/user/idea-validator/internal/repository"
	"github.com/user/idea-validator/pkg/metrics"
	"github.com/user/idea-validator/pkg/retry"
)

// marketDataLimit caps the market-size query, which needs statistics,
// not breadth.
const marketDataLimit = 5

// SearchBatch holds the three ordered result sets of one research
// phase. ExecutedSearches counts the queries that got a provider
// response; failed queries leave their set empty instead of failing
// the run.
type SearchBatch struct {
	Competitors []entity.SearchResult
	Solutions   []entity.SearchResult
	MarketData  []entity.SearchResult

	ExecutedSearches int
}

// Results concatenates all three sets in query order, preserving the
// provider ranking within each set.
func (b *SearchBatch) Results() []entity.SearchResult {
	out := make([]entity.SearchResult, 0, len(b.Competitors)+len(b.Solutions)+len(b.MarketData))
	out = append(out, b.Competitors...)
	out = append(out, b.Solutions...)
	out = append(out, b.MarketData...)
	return out
}

// Gatherer runs the fixed set of market research searches.
type Gatherer interface {
	Gather(ctx context.Context, idea *entity.NormalizedIdea) *SearchBatch
}

type gathererUseCase struct {
	searchRepo repository.SearchRepository
	cacheRepo  repository.SearchCacheRepository
	retryCfg   retry.Config
	maxResults int
	cacheTTL   time.Duration
}

// NewGatherer creates the market research use case. cacheRepo may be
// nil to disable result caching.
func NewGatherer(
	searchRepo repository.SearchRepository,
	cacheRepo repository.SearchCacheRepository,
	retryCfg retry.Config,
	maxResults int,
	cacheTTL time.Duration,
) Gatherer {
	return &gathererUseCase{
		searchRepo: searchRepo,
		cacheRepo:  cacheRepo,
		retryCfg:   retryCfg,
		maxResults: maxResults,
		cacheTTL:   cacheTTL,
	}
}

// Gather issues the three deterministic queries concurrently and joins
// before returning. The phase never fails as a whole; partial research
// is acceptable.
func (uc *gathererUseCase) Gather(ctx context.Context, idea *entity.NormalizedIdea) *SearchBatch {
	queries := []struct {
		query string
		limit int
		dest  *[]entity.SearchResult
	}{
		{fmt.Sprintf("%s competitors %s startups", idea.IdeaName, idea.Market), uc.maxResults, nil},
		{fmt.Sprintf("%s solutions %s apps", idea.Problem, idea.Market), uc.maxResults, nil},
		{fmt.Sprintf("%s market size %s statistics", idea.Market, idea.Region), marketDataLimit, nil},
	}

	batch := &SearchBatch{}
	queries[0].dest = &batch.Competitors
	queries[1].dest = &batch.Solutions
	queries[2].dest = &batch.MarketData

	var wg sync.WaitGroup
	var mu sync.Mutex
	for _, q := range queries {
		wg.Add(1)
		go func(query string, limit int, dest *[]entity.SearchResult) {
			defer wg.Done()
			results, executed := uc.runQuery(ctx, query, limit)

			mu.Lock()
			defer mu.Unlock()
			*dest = results
			if executed {
				batch.ExecutedSearches++
			}
		}(q.query, q.limit, q.dest)
	}
	wg.Wait()

	return batch
}

// runQuery serves one query from the cache when possible, otherwise
// hits the provider with bounded retries. Exhausted retries yield an
// empty result set.
func (uc *gathererUseCase) runQuery(ctx context.Context, query string, limit int) ([]entity.SearchResult, bool) {
	if uc.cacheRepo != nil {
		cached, hit, err := uc.cacheRepo.Get(ctx, query)
		if err != nil {
			slog.Warn("Search cache lookup failed", "query", query, "error", err)
		} else if hit {
			metrics.SearchesTotal.WithLabelValues("cached").Inc()
			return cached, true
		}
	}

	var results []entity.SearchResult
	err := uc.retryCfg.Do(ctx, "web search", func(ctx context.Context) error {
		var searchErr error
		results, searchErr = uc.searchRepo.Search(ctx, query, limit)
		return searchErr
	})
	if err != nil {
		slog.Error("Search query failed after retries, recording empty result set", "query", query, "error", err)
		metrics.SearchesTotal.WithLabelValues("failure").Inc()
		return []entity.SearchResult{}, false
	}

	metrics.SearchesTotal.WithLabelValues("success").Inc()

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.Set(ctx, query, results, uc.cacheTTL); err != nil {
			slog.Warn("Failed to cache search results", "query", query, "error", err)
		}
	}

	return results, true
}
