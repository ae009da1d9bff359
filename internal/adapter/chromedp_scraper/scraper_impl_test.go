package chromedp_scraper

import (
	"strings"
	"testing"
)

func TestExtractReadable(t *testing.T) {
	html := `<html><head><title> GreenMeter | Carbon Tracking </title>
		<style>body { color: red }</style></head>
		<body>
			<nav>Home About</nav>
			<script>console.log("noise")</script>
			<h1>GreenMeter</h1>
			<p>Track   your
			carbon footprint automatically.</p>
			<footer>© GreenMeter</footer>
		</body></html>`

	page, err := extractReadable("https://greenmeter.example.com", html)
	if err != nil {
		t.Fatalf("extractReadable returned error: %v", err)
	}

	if page.Title != "GreenMeter | Carbon Tracking" {
		t.Errorf("unexpected title: %q", page.Title)
	}
	if page.URL != "https://greenmeter.example.com" {
		t.Errorf("unexpected url: %q", page.URL)
	}
	if strings.Contains(page.Content, "console.log") {
		t.Errorf("script content leaked into extracted text")
	}
	if strings.Contains(page.Content, "Home About") || strings.Contains(page.Content, "©") {
		t.Errorf("nav/footer content leaked into extracted text")
	}
	if !strings.Contains(page.Content, "Track your carbon footprint automatically.") {
		t.Errorf("expected collapsed body text, got %q", page.Content)
	}
}

func TestExtractReadableTruncatesLongContent(t *testing.T) {
	html := "<html><head><title>big</title></head><body>" +
		strings.Repeat("word ", maxContentRunes) + "</body></html>"

	page, err := extractReadable("https://big.example.com", html)
	if err != nil {
		t.Fatalf("extractReadable returned error: %v", err)
	}
	if len([]rune(page.Content)) > maxContentRunes {
		t.Errorf("content not truncated: %d runes", len([]rune(page.Content)))
	}
}
