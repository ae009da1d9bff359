package repository

import "errors"

var (
	// ErrUpstreamGeneration indicates the text-generation capability was
	// unavailable or returned unusable output. Fatal at the normalizer
	// and summarizer stages.
	ErrUpstreamGeneration = errors.New("upstream generation failed")

	// ErrSearchProvider indicates a search call failed after retries.
	ErrSearchProvider = errors.New("search provider failed")

	// ErrExtraction indicates a single page could not be scraped.
	ErrExtraction = errors.New("page extraction failed")

	// ErrPersistence indicates a report store read or write failed.
	ErrPersistence = errors.New("report persistence failed")

	// ErrReportNotFound indicates the requested report id is absent.
	ErrReportNotFound = errors.New("report not found")
)
