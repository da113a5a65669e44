package catalog

import (
	"context"
	"strings"

	"github.com/pricelens/backend/internal/domain"
)

// StaticStore serves the built-in sample listings, countries and vendors.
// It is read-only and safe for concurrent use.
type StaticStore struct {
	listings  map[string][]domain.Listing
	countries []domain.Country
	vendors   map[string][]domain.Vendor
	examples  []domain.ExampleSearch
}

// NewStaticStore creates a store backed by the built-in sample data
func NewStaticStore() *StaticStore {
	return &StaticStore{
		listings:  sampleListings,
		countries: countries,
		vendors:   vendors,
		examples:  examples,
	}
}

// Lookup returns a copy of the listings for the country and family.
// The bool is false when the pair is not covered by the sample data.
func (s *StaticStore) Lookup(ctx context.Context, countryCode string, family domain.Family) ([]domain.Listing, bool) {
	if family == domain.FamilyUnknown {
		return nil, false
	}

	listings, ok := s.listings[domain.ListingKey(normalizeCode(countryCode), family)]
	if !ok {
		return nil, false
	}

	out := make([]domain.Listing, len(listings))
	copy(out, listings)
	return out, true
}

// Countries returns all supported countries in display order
func (s *StaticStore) Countries() []domain.Country {
	out := make([]domain.Country, len(s.countries))
	copy(out, s.countries)
	return out
}

// Country finds a supported country by code
func (s *StaticStore) Country(code string) (domain.Country, bool) {
	code = normalizeCode(code)
	for _, c := range s.countries {
		if c.Code == code {
			return c, true
		}
	}
	return domain.Country{}, false
}

// Vendors returns the vendor directory of a country, nil if unknown
func (s *StaticStore) Vendors(code string) []domain.Vendor {
	list, ok := s.vendors[normalizeCode(code)]
	if !ok {
		return nil
	}
	out := make([]domain.Vendor, len(list))
	copy(out, list)
	return out
}

// Examples returns the preset searches
func (s *StaticStore) Examples() []domain.ExampleSearch {
	out := make([]domain.ExampleSearch, len(s.examples))
	copy(out, s.examples)
	return out
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
