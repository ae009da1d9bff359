package chromedp_scraper

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
	"github.com/user/idea-validator/internal/entity"
	"github.com/user/idea-validator/internal/repository"
)

const maxContentRunes = 8000

// ChromedpScraper implements ScraperRepository with a headless browser
// so JavaScript-rendered competitor pages still yield content.
type ChromedpScraper struct {
	allocatorPool *sync.Pool
	timeout       time.Duration
}

// NewScraper creates a scraper backed by a pool of browser allocators.
func NewScraper(maxConcurrency int, pageLoadTimeout time.Duration) (*ChromedpScraper, error) {
	pool := &sync.Pool{
		New: func() interface{} {
			opts := append(chromedp.DefaultExecAllocatorOptions[:],
				chromedp.Flag("headless", true),
				chromedp.Flag("disable-gpu", true),
				chromedp.Flag("no-sandbox", true),
				chromedp.Flag("disable-dev-shm-usage", true),
				chromedp.UserAgent(`Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/108.0.0.0 Safari/537.36`),
			)
			allocCtx, _ := chromedp.NewExecAllocator(context.Background(), opts...)
			return allocCtx
		},
	}

	// Pre-warm the pool
	for i := 0; i < maxConcurrency; i++ {
		allocCtx := pool.Get().(context.Context)
		pool.Put(allocCtx)
	}

	return &ChromedpScraper{
		allocatorPool: pool,
		timeout:       pageLoadTimeout,
	}, nil
}

// Scrape navigates to a URL and extracts the title and main readable
// content from the rendered HTML.
func (s *ChromedpScraper) Scrape(ctx context.Context, url string) (*entity.ScrapedPage, error) {
	allocCtx := s.allocatorPool.Get().(context.Context)
	defer s.allocatorPool.Put(allocCtx)

	taskCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	taskCtx, cancel = context.WithTimeout(taskCtx, s.timeout)
	defer cancel()

	var htmlContent string
	err := chromedp.Run(taskCtx,
		chromedp.Navigate(url),
		chromedp.WaitVisible("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &htmlContent),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", repository.ErrExtraction, url, err)
	}

	page, err := extractReadable(url, htmlContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", repository.ErrExtraction, url, err)
	}

	return page, nil
}

// extractReadable parses rendered HTML and pulls out the title and the
// cleaned body text.
func extractReadable(url, htmlContent string) (*entity.ScrapedPage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, err
	}

	page := &entity.ScrapedPage{
		URL:   url,
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}

	doc.Find("script, style, noscript, nav, footer").Each(func(i int, sel *goquery.Selection) {
		sel.Remove()
	})

	text := doc.Find("body").Text()
	page.Content = truncateRunes(collapseWhitespace(text), maxContentRunes)

	return page, nil
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
