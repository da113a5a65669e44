package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/pricelens/backend/internal/domain"
)

// anonymousClient is the session key used when a request carries no client id
const anonymousClient = "anonymous"

// defaultRecentLimit bounds RecentSearches when no limit is given
const defaultRecentLimit = 10

// SearchServiceConfig holds configuration for the search service
type SearchServiceConfig struct {
	Delay              time.Duration
	CacheTTL           time.Duration
	CacheEnabled       bool
	RecentLimit        int
	EnableDebugLogging bool
}

// SearchService runs price comparison searches
type SearchService struct {
	store        domain.ListingStore
	resolver     *Resolver
	cache        domain.CacheRepository
	history      domain.SearchHistoryRepository
	converter    *CurrencyConverter
	session      *SearchSession
	preprocessor *QueryPreprocessor

	delay        time.Duration
	cacheTTL     time.Duration
	cacheEnabled bool
	recentLimit  int
	debug        bool
	now          func() time.Time
}

// NewSearchService creates a new search service with dependencies.
// cache, history and converter may be nil.
func NewSearchService(
	store domain.ListingStore,
	resolver *Resolver,
	cache domain.CacheRepository,
	history domain.SearchHistoryRepository,
	converter *CurrencyConverter,
	config SearchServiceConfig,
) *SearchService {
	if resolver == nil {
		resolver = NewResolver(store, nil, nil)
	}

	cacheTTL := config.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = 10 * time.Minute
	}

	recentLimit := config.RecentLimit
	if recentLimit <= 0 {
		recentLimit = defaultRecentLimit
	}

	delay := config.Delay
	if delay < 0 {
		delay = 0
	}

	return &SearchService{
		store:        store,
		resolver:     resolver,
		cache:        cache,
		history:      history,
		converter:    converter,
		session:      NewSearchSession(),
		preprocessor: NewQueryPreprocessor(config.EnableDebugLogging),
		delay:        delay,
		cacheTTL:     cacheTTL,
		cacheEnabled: config.CacheEnabled && cache != nil,
		recentLimit:  recentLimit,
		debug:        config.EnableDebugLogging,
		now:          time.Now,
	}
}

// Session exposes the in-progress tracker
func (s *SearchService) Session() *SearchSession {
	return s.session
}

// Search runs one submission.
// Flow: validate -> session gate -> cache -> delay -> resolve -> sort -> format -> convert -> cache -> history
func (s *SearchService) Search(
	ctx context.Context,
	request *domain.SearchRequest,
) (result *domain.SearchResult, err error) {
	if request == nil {
		return nil, domain.ErrInvalidRequest
	}

	country := s.preprocessor.NormalizeCountry(request.Country)
	query := s.preprocessor.CleanQuery(request.Query)
	if country == "" || query == "" {
		return nil, domain.ErrInvalidRequest
	}

	clientKey := request.ClientID
	if clientKey == "" {
		clientKey = anonymousClient
	}
	if !s.session.TryStart(clientKey) {
		return nil, domain.ErrSearchInProgress
	}
	defer s.session.Finish(clientKey)

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[SEARCH] Recovered from panic for %s/%q: %v", country, query, r)
			result, err = nil, domain.ErrSearchFailed
		}
	}()

	started := s.now()
	cacheKey := s.preprocessor.CacheKey(country, query)

	if s.cacheEnabled {
		if cached, cacheErr := s.getFromCache(ctx, cacheKey); cacheErr == nil {
			cached.Cached = true
			cached.SearchTimeMs = s.now().Sub(started).Milliseconds()
			s.debugLog("Cache hit for %s", cacheKey)
			s.record(ctx, cached)
			return cached, nil
		}
	}

	if err := s.wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSearchFailed, err)
	}

	resolution := s.resolver.Resolve(ctx, country, query)
	listings := append([]domain.Listing(nil), resolution.Listings...)
	SortByPrice(listings)

	countryName := country
	if c, ok := s.store.Country(country); ok {
		countryName = c.Name
	}

	result = &domain.SearchResult{
		ID:           uuid.New().String(),
		Country:      country,
		CountryName:  countryName,
		Query:        query,
		Family:       resolution.Family,
		Source:       resolution.Source,
		Products:     s.price(listings),
		TotalResults: len(listings),
	}
	result.Title, result.Summary = describe(query, countryName, len(listings))
	s.convert(ctx, result)
	result.SearchTimeMs = s.now().Sub(started).Milliseconds()

	s.debugLog("Resolved %s/%q to %d %s listings (family %q)",
		country, query, len(listings), resolution.Source, resolution.Family)

	if s.cacheEnabled {
		if err := s.setInCache(ctx, cacheKey, result); err != nil {
			log.Printf("[SEARCH] Failed to cache %s: %v", cacheKey, err)
		}
	}
	s.record(ctx, result)

	return result, nil
}

// Countries returns the supported countries
func (s *SearchService) Countries() []domain.Country {
	return s.store.Countries()
}

// Vendors returns the vendor directory of a country
func (s *SearchService) Vendors(code string) ([]domain.Vendor, error) {
	code = s.preprocessor.NormalizeCountry(code)
	if _, ok := s.store.Country(code); !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrCountryNotFound, code)
	}
	return s.store.Vendors(code), nil
}

// Examples returns the preset example searches
func (s *SearchService) Examples() []domain.ExampleSearch {
	return s.store.Examples()
}

// RecentSearches returns up to limit history records, newest first
func (s *SearchService) RecentSearches(ctx context.Context, limit int) ([]domain.SearchRecord, error) {
	if s.history == nil {
		return []domain.SearchRecord{}, nil
	}
	if limit <= 0 || limit > s.recentLimit {
		limit = s.recentLimit
	}
	return s.history.Recent(ctx, limit)
}

// wait blocks for the configured delay or until ctx is done
func (s *SearchService) wait(ctx context.Context) error {
	if s.delay == 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *SearchService) price(listings []domain.Listing) []domain.PricedListing {
	products := make([]domain.PricedListing, 0, len(listings))
	for _, l := range listings {
		products = append(products, domain.PricedListing{
			Listing:      l,
			DisplayPrice: FormatPrice(l.Price, l.Currency),
		})
	}
	return products
}

// convert fills ConvertedPrice when FX is configured. Failures leave prices unconverted.
func (s *SearchService) convert(ctx context.Context, result *domain.SearchResult) {
	if s.converter == nil || len(result.Products) == 0 {
		return
	}

	rates, err := s.converter.Rates(ctx)
	if err != nil {
		log.Printf("[FX] Skipping conversion: %v", err)
		return
	}

	result.ReferenceCurrency = s.converter.Reference()
	for i := range result.Products {
		p := &result.Products[i]
		converted, err := s.converter.Convert(p.Price, p.Currency, rates)
		if err != nil {
			s.debugLog("No conversion for %s %s: %v", p.Price, p.Currency, err)
			continue
		}
		p.ConvertedPrice = converted
	}
}

// record stores the search in history; failures are logged only
func (s *SearchService) record(ctx context.Context, result *domain.SearchResult) {
	if s.history == nil {
		return
	}
	record := &domain.SearchRecord{
		ID:          uuid.New().String(),
		Country:     result.Country,
		Query:       result.Query,
		Family:      result.Family,
		Source:      result.Source,
		ResultCount: result.TotalResults,
		DurationMs:  result.SearchTimeMs,
		SearchedAt:  s.now().UTC(),
	}
	if err := s.history.Save(ctx, record); err != nil {
		log.Printf("[HISTORY] Failed to save search %s: %v", record.ID, err)
	}
}

// getFromCache retrieves a search result from cache
func (s *SearchService) getFromCache(ctx context.Context, key string) (*domain.SearchResult, error) {
	payload, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var result domain.SearchResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCacheMiss, err)
	}
	return &result, nil
}

// setInCache stores a search result in cache
func (s *SearchService) setInCache(ctx context.Context, key string, result *domain.SearchResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, key, payload, s.cacheTTL)
}

func (s *SearchService) debugLog(format string, args ...interface{}) {
	if s.debug {
		log.Printf("[SEARCH] "+format, args...)
	}
}

// describe builds the results heading and count line
func describe(query, countryName string, count int) (title, summary string) {
	if count == 0 {
		return fmt.Sprintf("No results found for \"%s\"", query),
			"Try different keywords or select another country"
	}

	noun := "products"
	if count == 1 {
		noun = "product"
	}
	return fmt.Sprintf("Results for \"%s\" in %s", query, countryName),
		fmt.Sprintf("Found %d %s", count, noun)
}
