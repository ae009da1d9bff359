package usecase

import (
	"context"
	"log/slog"

	"github.com/user/idea-validator/internal/entity"
	"github.com/user/idea-validator/internal/repository"
	"github.com/user/idea-validator/pkg/metrics"
)

// Extractor fetches readable content from candidate competitor pages.
type Extractor interface {
	Extract(ctx context.Context, candidates []entity.SearchResult) []entity.ScrapedPage
}

type extractorUseCase struct {
	scraperRepo repository.ScraperRepository
	maxURLs     int
	concurrency int
}

// NewExtractor creates the content extraction use case.
func NewExtractor(scraperRepo repository.ScraperRepository, maxURLs, concurrency int) Extractor {
	if concurrency < 1 {
		concurrency = 1
	}
	return &extractorUseCase{
		scraperRepo: scraperRepo,
		maxURLs:     maxURLs,
		concurrency: concurrency,
	}
}

// Extract scrapes the top unique candidate URLs with a bounded number
// of concurrent fetches. Scraping is best-effort: a failed page yields
// empty content in place, and the output keeps the candidate order and
// cardinality.
func (uc *extractorUseCase) Extract(ctx context.Context, candidates []entity.SearchResult) []entity.ScrapedPage {
	urls := selectURLs(candidates, uc.maxURLs)
	pages := make([]entity.ScrapedPage, len(urls))

	sem := make(chan struct{}, uc.concurrency)
	done := make(chan int, len(urls))

	for i, url := range urls {
		go func(i int, url string) {
			sem <- struct{}{}
			defer func() { <-sem }()

			page, err := uc.scraperRepo.Scrape(ctx, url)
			if err != nil {
				slog.Warn("Page extraction failed, keeping empty content", "url", url, "error", err)
				metrics.ScrapesTotal.WithLabelValues("failure").Inc()
				pages[i] = entity.ScrapedPage{URL: url}
			} else {
				metrics.ScrapesTotal.WithLabelValues("success").Inc()
				pages[i] = *page
			}
			done <- i
		}(i, url)
	}

	for range urls {
		<-done
	}

	return pages
}

// selectURLs deduplicates candidate links by URL, preserving the
// original rank order, capped at max.
func selectURLs(candidates []entity.SearchResult, max int) []string {
	seen := make(map[string]struct{}, len(candidates))
	urls := make([]string, 0, max)
	for _, c := range candidates {
		if c.Link == "" {
			continue
		}
		if _, dup := seen[c.Link]; dup {
			continue
		}
		seen[c.Link] = struct{}{}
		urls = append(urls, c.Link)
		if len(urls) == max {
			break
		}
	}
	return urls
}
