package usecase

import (
	"context"
	"math/rand/v2"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/pricelens/backend/internal/domain"
)

// Mock synthesis parameters
const (
	mockListingCount  = 3
	mockBaseMin       = 100
	mockBaseSpan      = 1000 // base in [100, 1099]
	mockVariationSpan = 200  // variation in [-100, 99]
	mockVariationLow  = 100
	mockStepPerIndex  = 50
	fallbackVendor    = "Local Store"
)

// RandomSource yields integers in [0, n)
type RandomSource interface {
	IntN(n int) int
}

// globalSource uses the process-wide generator of math/rand/v2
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// lockedSource serializes access to a source that is not safe for concurrent use
type lockedSource struct {
	mu  sync.Mutex
	src RandomSource
}

func (l *lockedSource) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.IntN(n)
}

// Resolution is the outcome of resolving one query
type Resolution struct {
	Family   domain.Family
	Source   domain.Source
	Listings []domain.Listing
}

// Resolver turns a country and free-text query into listings
type Resolver struct {
	store      domain.ListingStore
	classifier *Classifier
	rng        RandomSource
}

// NewResolver creates a resolver. A nil rng uses the process-wide generator.
func NewResolver(store domain.ListingStore, classifier *Classifier, rng RandomSource) *Resolver {
	if classifier == nil {
		classifier = NewClassifier()
	}
	if rng == nil {
		rng = globalSource{}
	} else {
		rng = &lockedSource{src: rng}
	}
	return &Resolver{
		store:      store,
		classifier: classifier,
		rng:        rng,
	}
}

// Resolve classifies the query and returns the static listings of the
// family in the country, or synthesized listings when none exist.
func (r *Resolver) Resolve(ctx context.Context, countryCode, query string) Resolution {
	family := r.classifier.Classify(query)

	if family != domain.FamilyUnknown {
		if listings, ok := r.store.Lookup(ctx, countryCode, family); ok && len(listings) > 0 {
			return Resolution{Family: family, Source: domain.SourceStatic, Listings: listings}
		}
	}

	return Resolution{
		Family:   family,
		Source:   domain.SourceSynthesized,
		Listings: r.Synthesize(countryCode, query),
	}
}

// Synthesize generates mockListingCount plausible listings sorted by price.
// Prices are base + variation + 50*i, which is never below zero.
func (r *Resolver) Synthesize(countryCode, query string) []domain.Listing {
	currency := domain.CurrencyUSD
	if country, ok := r.store.Country(countryCode); ok {
		currency = country.Currency
	}
	vendors := r.store.Vendors(countryCode)

	base := mockBaseMin + r.rng.IntN(mockBaseSpan)
	listings := make([]domain.Listing, 0, mockListingCount)

	for i := 0; i < mockListingCount; i++ {
		variation := r.rng.IntN(mockVariationSpan) - mockVariationLow
		price := base + variation + i*mockStepPerIndex

		vendor := fallbackVendor
		if i < len(vendors) {
			vendor = vendors[i].Name
		}

		listings = append(listings, domain.Listing{
			Link:         domain.PlaceholderLink,
			Price:        decimal.NewFromInt(int64(price)).StringFixed(2),
			Currency:     currency,
			ProductName:  query + " - " + vendor,
			Vendor:       vendor,
			Availability: domain.AvailabilityInStock,
		})
	}

	SortByPrice(listings)
	return listings
}

// SortByPrice stable-sorts listings ascending by numeric price.
// Unparseable prices sort last.
func SortByPrice(listings []domain.Listing) {
	sort.SliceStable(listings, func(i, j int) bool {
		a, aok := parsePrice(listings[i].Price)
		b, bok := parsePrice(listings[j].Price)
		if !aok || !bok {
			return aok && !bok
		}
		return a.LessThan(b)
	})
}
