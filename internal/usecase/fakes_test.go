package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/user/idea-validator/internal/entity"
	"github.com/user/idea-validator/internal/repository"
	"github.com/user/idea-validator/pkg/metrics"
)

func TestMain(m *testing.M) {
	metrics.Init()
	m.Run()
}

// fakeGenerator replays canned responses, one per call.
type fakeGenerator struct {
	mu        sync.Mutex
	responses []string
	errs      []error
	prompts   []string
}

func (g *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prompts = append(g.prompts, prompt)
	call := len(g.prompts) - 1
	if call < len(g.errs) && g.errs[call] != nil {
		return "", g.errs[call]
	}
	if call < len(g.responses) {
		return g.responses[call], nil
	}
	return "", fmt.Errorf("%w: no canned response for call %d", repository.ErrUpstreamGeneration, call)
}

// fakeSearch records queries and serves per-query results.
type fakeSearch struct {
	mu      sync.Mutex
	queries []string
	limits  []int
	results map[string][]entity.SearchResult
	err     error
}

func (s *fakeSearch) Search(ctx context.Context, query string, limit int) ([]entity.SearchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, query)
	s.limits = append(s.limits, limit)
	if s.err != nil {
		return nil, s.err
	}
	return s.results[query], nil
}

// fakeCache is an in-memory SearchCacheRepository.
type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]entity.SearchResult
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]entity.SearchResult)}
}

func (c *fakeCache) Get(ctx context.Context, query string) ([]entity.SearchResult, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	results, ok := c.entries[query]
	return results, ok, nil
}

func (c *fakeCache) Set(ctx context.Context, query string, results []entity.SearchResult, expiry time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[query] = results
	c.sets++
	return nil
}

// fakeScraper serves canned pages and fails listed URLs.
type fakeScraper struct {
	mu       sync.Mutex
	pages    map[string]*entity.ScrapedPage
	failURLs map[string]bool
	scraped  []string
}

func (s *fakeScraper) Scrape(ctx context.Context, url string) (*entity.ScrapedPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scraped = append(s.scraped, url)
	if s.failURLs[url] {
		return nil, fmt.Errorf("%w: %s: connection refused", repository.ErrExtraction, url)
	}
	if page, ok := s.pages[url]; ok {
		return page, nil
	}
	return &entity.ScrapedPage{URL: url, Title: "t", Content: "c"}, nil
}

// fakeReportRepo is an in-memory ReportRepository.
type fakeReportRepo struct {
	mu      sync.Mutex
	saved   map[string]*entity.ValidationReport
	order   []string
	nextID  int
	saveErr error
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{saved: make(map[string]*entity.ValidationReport)}
}

func (r *fakeReportRepo) Save(ctx context.Context, report *entity.ValidationReport) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return "", r.saveErr
	}
	r.nextID++
	id := fmt.Sprintf("report-%d", r.nextID)
	clone := *report
	clone.ID = id
	r.saved[id] = &clone
	r.order = append(r.order, id)
	return id, nil
}

func (r *fakeReportRepo) FindByID(ctx context.Context, id string) (*entity.ValidationReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	report, ok := r.saved[id]
	if !ok {
		return nil, repository.ErrReportNotFound
	}
	return report, nil
}

func (r *fakeReportRepo) List(ctx context.Context, limit, skip int) ([]*entity.ValidationReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.ValidationReport
	for i := len(r.order) - 1 - skip; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.saved[r.order[i]])
	}
	return out, nil
}

func (r *fakeReportRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.saved)), nil
}

func (r *fakeReportRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.saved[id]; !ok {
		return repository.ErrReportNotFound
	}
	delete(r.saved, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

var errProviderDown = errors.New("provider down")
