package usecase

import (
	"context"
	"testing"

	"github.com/user/idea-validator/internal/entity"
)

func TestExtractDeduplicatesAndCapsURLs(t *testing.T) {
	candidates := []entity.SearchResult{
		{Link: "https://a.example.com"},
		{Link: "https://b.example.com"},
		{Link: "https://a.example.com"}, // duplicate
		{Link: ""},                      // no link
		{Link: "https://c.example.com"},
		{Link: "https://d.example.com"},
		{Link: "https://e.example.com"},
		{Link: "https://f.example.com"}, // beyond the cap
	}

	scraper := &fakeScraper{}
	uc := NewExtractor(scraper, 5, 2)
	pages := uc.Extract(context.Background(), candidates)

	if len(pages) != 5 {
		t.Fatalf("expected 5 pages, got %d", len(pages))
	}

	wantOrder := []string{
		"https://a.example.com",
		"https://b.example.com",
		"https://c.example.com",
		"https://d.example.com",
		"https://e.example.com",
	}
	for i, url := range wantOrder {
		if pages[i].URL != url {
			t.Errorf("page %d: expected %s, got %s", i, url, pages[i].URL)
		}
	}
}

func TestExtractKeepsFailedPagesWithEmptyContent(t *testing.T) {
	candidates := []entity.SearchResult{
		{Link: "https://ok.example.com"},
		{Link: "https://broken.example.com"},
	}
	scraper := &fakeScraper{failURLs: map[string]bool{"https://broken.example.com": true}}

	uc := NewExtractor(scraper, 5, 2)
	pages := uc.Extract(context.Background(), candidates)

	if len(pages) != 2 {
		t.Fatalf("expected batch cardinality preserved, got %d pages", len(pages))
	}
	if pages[0].Content == "" {
		t.Errorf("expected content for the healthy page")
	}
	if pages[1].URL != "https://broken.example.com" || pages[1].Content != "" {
		t.Errorf("expected empty-content placeholder for failed page, got %+v", pages[1])
	}
}

func TestExtractNoCandidates(t *testing.T) {
	uc := NewExtractor(&fakeScraper{}, 5, 2)
	pages := uc.Extract(context.Background(), nil)
	if len(pages) != 0 {
		t.Fatalf("expected no pages, got %d", len(pages))
	}
}
