package usecase

import "strings"

// Generation providers frequently wrap JSON in markdown fences or
// surrounding prose. These helpers cut out the first JSON value of the
// expected kind before unmarshalling.

func extractJSONObject(s string) (string, bool) {
	return extractDelimited(s, '{', '}')
}

func extractJSONArray(s string) (string, bool) {
	return extractDelimited(s, '[', ']')
}

func extractDelimited(s string, open, closer byte) (string, bool) {
	s = stripFences(s)
	start := strings.IndexByte(s, open)
	end := strings.LastIndexByte(s, closer)
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return s[start : end+1], true
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
