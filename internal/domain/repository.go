package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations.
// Values are opaque serialized payloads.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// ListingStore is the read-only lookup data store
type ListingStore interface {
	Lookup(ctx context.Context, countryCode string, family Family) ([]Listing, bool)
	Countries() []Country
	Country(code string) (Country, bool)
	Vendors(code string) []Vendor
	Examples() []ExampleSearch
}

// SearchHistoryRepository persists completed searches
type SearchHistoryRepository interface {
	Save(ctx context.Context, record *SearchRecord) error
	Recent(ctx context.Context, limit int) ([]SearchRecord, error)
}

// RateProvider returns exchange rates relative to a base currency:
// 1 unit of base = rates[c] units of c.
type RateProvider interface {
	Rates(ctx context.Context, base Currency) (map[Currency]float64, error)
}
