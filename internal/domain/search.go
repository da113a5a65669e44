package domain

import "time"

// Source tells where the listings of a result came from
type Source string

const (
	SourceStatic      Source = "static"
	SourceSynthesized Source = "synthesized"
)

// SearchRequest represents a price comparison search
type SearchRequest struct {
	Country  string `json:"country" form:"country"`
	Query    string `json:"query" form:"query"`
	ClientID string `json:"-" form:"-"`
}

// PricedListing is a listing decorated for display
type PricedListing struct {
	Listing
	DisplayPrice   string `json:"displayPrice"`
	ConvertedPrice string `json:"convertedPrice,omitempty"` // in the reference currency
}

// SearchResult is the ranked outcome of one search
type SearchResult struct {
	ID                string          `json:"id"`
	Country           string          `json:"country"`
	CountryName       string          `json:"countryName"`
	Query             string          `json:"query"`
	Family            Family          `json:"family,omitempty"`
	Source            Source          `json:"source"`
	Cached            bool            `json:"cached"`
	Title             string          `json:"title"`
	Summary           string          `json:"summary"`
	Products          []PricedListing `json:"products"`
	TotalResults      int             `json:"totalResults"`
	SearchTimeMs      int64           `json:"searchTimeMs"`
	ReferenceCurrency Currency        `json:"referenceCurrency,omitempty"`
}

// SearchRecord is the history entry kept for every completed search
type SearchRecord struct {
	ID          string    `json:"id"`
	Country     string    `json:"country"`
	Query       string    `json:"query"`
	Family      Family    `json:"family,omitempty"`
	Source      Source    `json:"source"`
	ResultCount int       `json:"resultCount"`
	DurationMs  int64     `json:"durationMs"`
	SearchedAt  time.Time `json:"searchedAt"`
}
