package repository

import (
	"context"

	"github.com/user/idea-validator/internal/entity"
)

// ScraperRepository is the capability interface for fetching readable
// content from competitor pages.
type ScraperRepository interface {
	// Scrape fetches a URL and extracts title and main content.
	Scrape(ctx context.Context, url string) (*entity.ScrapedPage, error)
}
