package usecase

import (
	"fmt"
	"log"
	"regexp"
	"strings"
)

// Multiple spaces cleanup
var multiSpacePattern = regexp.MustCompile(`\s+`)

// maxQueryLength bounds queries accepted for search
const maxQueryLength = 200

// QueryPreprocessor cleans user input before it is searched and cached
type QueryPreprocessor struct {
	enableDebugLogging bool
}

// NewQueryPreprocessor creates a new query preprocessor
func NewQueryPreprocessor(enableDebugLogging bool) *QueryPreprocessor {
	return &QueryPreprocessor{
		enableDebugLogging: enableDebugLogging,
	}
}

// CleanQuery trims, collapses whitespace and bounds the length of a query
// while keeping its case, since synthesized product names echo it back.
func (p *QueryPreprocessor) CleanQuery(query string) string {
	cleaned := multiSpacePattern.ReplaceAllString(strings.TrimSpace(query), " ")

	if runes := []rune(cleaned); len(runes) > maxQueryLength {
		cleaned = string(runes[:maxQueryLength])
		// Try to cut at word boundary
		if lastSpace := strings.LastIndex(cleaned, " "); lastSpace > maxQueryLength/2 {
			cleaned = cleaned[:lastSpace]
		}
	}

	if p.enableDebugLogging && cleaned != query {
		log.Printf("[PREPROCESS] Input: %q → Output: %q", query, cleaned)
	}
	return cleaned
}

// NormalizeCountry upper-cases and trims a country code
func (p *QueryPreprocessor) NormalizeCountry(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// CacheKey builds "search:{COUNTRY}:{cleaned query}".
// Case and punctuation stay in the key because results echo the query back;
// only spacing differences share an entry.
func (p *QueryPreprocessor) CacheKey(country, query string) string {
	return fmt.Sprintf("search:%s:%s", p.NormalizeCountry(country), p.CleanQuery(query))
}
