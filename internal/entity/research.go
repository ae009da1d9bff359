package entity

// Unknown is the sentinel stored for any competitor attribute that
// could not be determined from the collected evidence. Rendering code
// relies on every attribute being either a real value or this literal.
const Unknown = "Unknown"

// SearchResult is a single ranked hit returned by the search provider.
type SearchResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// ScrapedPage holds the readable content extracted from a competitor
// page. Content is empty when extraction failed; that is missing data,
// not an error.
type ScrapedPage struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CompetitorInfo is one identified competitor with every attribute
// either filled from evidence or set to the Unknown sentinel.
type CompetitorInfo struct {
	Name        string   `json:"name"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Founders    string   `json:"founders"`
	Revenue     string   `json:"revenue"`
	Features    []string `json:"features"`
	Region      string   `json:"region"`
}

// MarketInsights aggregates what the research phase managed to collect.
// TotalSearches counts search calls that executed successfully.
type MarketInsights struct {
	TotalSearches int      `json:"total_searches"`
	TotalResults  int      `json:"total_results"`
	MarketData    []string `json:"market_data"`
}
