package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pricelens/backend/internal/domain"
	"github.com/pricelens/backend/internal/infrastructure/catalog"
)

// MockCacheRepository is a mock implementation of domain.CacheRepository
type MockCacheRepository struct {
	mu        sync.Mutex
	data      map[string][]byte
	getError  error
	setError  error
	getCalled bool
	setCalled bool
}

func NewMockCacheRepository() *MockCacheRepository {
	return &MockCacheRepository{
		data: make(map[string][]byte),
	}
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalled = true
	if m.getError != nil {
		return nil, m.getError
	}
	if value, ok := m.data[key]; ok {
		return value, nil
	}
	return nil, domain.ErrCacheMiss
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setCalled = true
	if m.setError != nil {
		return m.setError
	}
	m.data[key] = value
	return nil
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok, nil
}

// MockHistoryRepository is a mock implementation of domain.SearchHistoryRepository
type MockHistoryRepository struct {
	mu        sync.Mutex
	records   []domain.SearchRecord
	saveError error
	lastLimit int
}

func (m *MockHistoryRepository) Save(ctx context.Context, record *domain.SearchRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveError != nil {
		return m.saveError
	}
	m.records = append(m.records, *record)
	return nil
}

func (m *MockHistoryRepository) Recent(ctx context.Context, limit int) ([]domain.SearchRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastLimit = limit
	return append([]domain.SearchRecord(nil), m.records...), nil
}

func (m *MockHistoryRepository) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

// panickingStore blows up on lookup
type panickingStore struct {
	*catalog.StaticStore
}

func (panickingStore) Lookup(ctx context.Context, countryCode string, family domain.Family) ([]domain.Listing, bool) {
	panic("lookup exploded")
}

func newTestService(cache domain.CacheRepository, history domain.SearchHistoryRepository, config SearchServiceConfig) *SearchService {
	store := catalog.NewStaticStore()
	resolver := NewResolver(store, nil, &scriptedSource{values: []int{400, 150, 0, 70}})
	return NewSearchService(store, resolver, cache, history, nil, config)
}

func TestNewSearchService(t *testing.T) {
	t.Run("creates service with default values", func(t *testing.T) {
		svc := NewSearchService(catalog.NewStaticStore(), nil, nil, nil, nil, SearchServiceConfig{CacheEnabled: true})
		if svc == nil {
			t.Fatal("expected service to be created")
		}
		if svc.cacheTTL != 10*time.Minute {
			t.Errorf("cacheTTL = %v, want 10m", svc.cacheTTL)
		}
		if svc.recentLimit != defaultRecentLimit {
			t.Errorf("recentLimit = %d, want %d", svc.recentLimit, defaultRecentLimit)
		}
		if svc.cacheEnabled {
			t.Error("cache should stay disabled without a cache repository")
		}
	})

	t.Run("creates service with custom values", func(t *testing.T) {
		svc := NewSearchService(catalog.NewStaticStore(), nil, NewMockCacheRepository(), nil, nil, SearchServiceConfig{
			Delay:        -time.Second,
			CacheTTL:     time.Hour,
			CacheEnabled: true,
			RecentLimit:  5,
		})
		if svc.cacheTTL != time.Hour {
			t.Errorf("cacheTTL = %v, want 1h", svc.cacheTTL)
		}
		if svc.delay != 0 {
			t.Errorf("delay = %v, want 0", svc.delay)
		}
		if !svc.cacheEnabled {
			t.Error("cache should be enabled")
		}
	})
}

func TestSearch_Validation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(nil, nil, SearchServiceConfig{})

	testCases := []struct {
		name    string
		request *domain.SearchRequest
	}{
		{"nil request", nil},
		{"missing country", &domain.SearchRequest{Query: "iphone 16"}},
		{"missing query", &domain.SearchRequest{Country: "US"}},
		{"blank fields", &domain.SearchRequest{Country: "  ", Query: " \t "}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := svc.Search(ctx, tc.request)
			if !errors.Is(err, domain.ErrInvalidRequest) {
				t.Errorf("error = %v, want ErrInvalidRequest", err)
			}
			if result != nil {
				t.Error("expected nil result")
			}
		})
	}

	if svc.Session().Active() != 0 {
		t.Error("invalid requests must not start a session")
	}
}

func TestSearch_StaticListings(t *testing.T) {
	ctx := context.Background()
	history := &MockHistoryRepository{}
	svc := newTestService(nil, history, SearchServiceConfig{})

	result, err := svc.Search(ctx, &domain.SearchRequest{Country: " in ", Query: "boAt Airdopes 141"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Country != "IN" || result.CountryName != "India" {
		t.Errorf("country = %s/%s, want IN/India", result.Country, result.CountryName)
	}
	if result.Source != domain.SourceStatic {
		t.Errorf("source = %s, want static", result.Source)
	}
	if result.Family != domain.FamilyBoAt {
		t.Errorf("family = %s, want boAt", result.Family)
	}
	if result.TotalResults != len(result.Products) || result.TotalResults == 0 {
		t.Errorf("totalResults = %d, products = %d", result.TotalResults, len(result.Products))
	}
	if result.Title != `Results for "boAt Airdopes 141" in India` {
		t.Errorf("title = %q", result.Title)
	}
	if !strings.HasPrefix(result.Summary, "Found ") {
		t.Errorf("summary = %q", result.Summary)
	}
	if result.ID == "" {
		t.Error("expected result id")
	}
	if result.Cached {
		t.Error("fresh result must not be marked cached")
	}

	for i, p := range result.Products {
		if p.Currency != domain.CurrencyINR {
			t.Errorf("product %d currency = %s, want INR", i, p.Currency)
		}
		if !strings.HasPrefix(p.DisplayPrice, "₹") {
			t.Errorf("product %d displayPrice = %q", i, p.DisplayPrice)
		}
		if i > 0 {
			prev, _ := parsePrice(result.Products[i-1].Price)
			cur, _ := parsePrice(p.Price)
			if cur.LessThan(prev) {
				t.Errorf("products not sorted ascending at %d", i)
			}
		}
	}

	if history.count() != 1 {
		t.Errorf("history records = %d, want 1", history.count())
	}
}

func TestSearch_SynthesizedListings(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(nil, nil, SearchServiceConfig{})

	result, err := svc.Search(ctx, &domain.SearchRequest{Country: "US", Query: "desk lamp"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Source != domain.SourceSynthesized {
		t.Errorf("source = %s, want synthesized", result.Source)
	}
	if len(result.Products) != mockListingCount {
		t.Fatalf("products = %d, want %d", len(result.Products), mockListingCount)
	}
	if result.Summary != "Found 3 products" {
		t.Errorf("summary = %q", result.Summary)
	}
	for _, p := range result.Products {
		if !strings.HasPrefix(p.ProductName, "desk lamp - ") {
			t.Errorf("productName = %q", p.ProductName)
		}
		if !strings.HasPrefix(p.DisplayPrice, "$") {
			t.Errorf("displayPrice = %q", p.DisplayPrice)
		}
	}
}

func TestSearch_InProgress(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(nil, nil, SearchServiceConfig{})

	if !svc.Session().TryStart("client-1") {
		t.Fatal("expected session to start")
	}

	_, err := svc.Search(ctx, &domain.SearchRequest{Country: "US", Query: "switch", ClientID: "client-1"})
	if !errors.Is(err, domain.ErrSearchInProgress) {
		t.Errorf("error = %v, want ErrSearchInProgress", err)
	}

	// Other clients are not blocked
	if _, err := svc.Search(ctx, &domain.SearchRequest{Country: "US", Query: "switch", ClientID: "client-2"}); err != nil {
		t.Errorf("unexpected error for second client: %v", err)
	}

	svc.Session().Finish("client-1")
	if _, err := svc.Search(ctx, &domain.SearchRequest{Country: "US", Query: "switch", ClientID: "client-1"}); err != nil {
		t.Errorf("unexpected error after finish: %v", err)
	}
	if svc.Session().Active() != 0 {
		t.Errorf("active sessions = %d, want 0", svc.Session().Active())
	}
}

func TestSearch_Cache(t *testing.T) {
	ctx := context.Background()

	t.Run("second search is served from cache", func(t *testing.T) {
		cache := NewMockCacheRepository()
		svc := newTestService(cache, nil, SearchServiceConfig{CacheEnabled: true})

		first, err := svc.Search(ctx, &domain.SearchRequest{Country: "JP", Query: "Nintendo Switch"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cache.setCalled {
			t.Error("expected result to be cached")
		}

		// Enable a delay that would fail the test if not skipped
		svc.delay = time.Hour
		second, err := svc.Search(ctx, &domain.SearchRequest{Country: "jp", Query: " Nintendo   Switch "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !second.Cached {
			t.Error("expected cached result")
		}
		if second.ID != first.ID {
			t.Errorf("id = %s, want %s", second.ID, first.ID)
		}
	})

	t.Run("differently cased queries get their own results", func(t *testing.T) {
		cache := NewMockCacheRepository()
		svc := newTestService(cache, nil, SearchServiceConfig{CacheEnabled: true})

		if _, err := svc.Search(ctx, &domain.SearchRequest{Country: "US", Query: "TOASTER!!"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		result, err := svc.Search(ctx, &domain.SearchRequest{Country: "US", Query: "toaster"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Cached {
			t.Error("a different query must not be served from cache")
		}
		if result.Query != "toaster" {
			t.Errorf("query = %q, want toaster", result.Query)
		}
		if result.Title != `Results for "toaster" in United States` {
			t.Errorf("title = %q", result.Title)
		}
		for _, p := range result.Products {
			if !strings.HasPrefix(p.ProductName, "toaster - ") {
				t.Errorf("productName = %q, want toaster prefix", p.ProductName)
			}
		}
	})

	t.Run("cache failures are not fatal", func(t *testing.T) {
		cache := NewMockCacheRepository()
		cache.getError = errors.New("connection refused")
		cache.setError = errors.New("connection refused")
		svc := newTestService(cache, nil, SearchServiceConfig{CacheEnabled: true})

		result, err := svc.Search(ctx, &domain.SearchRequest{Country: "UK", Query: "galaxy s24"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Cached {
			t.Error("result must not be marked cached")
		}
	})

	t.Run("disabled cache is never touched", func(t *testing.T) {
		cache := NewMockCacheRepository()
		svc := newTestService(cache, nil, SearchServiceConfig{})

		if _, err := svc.Search(ctx, &domain.SearchRequest{Country: "US", Query: "iphone 16"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cache.getCalled || cache.setCalled {
			t.Error("cache should not be used when disabled")
		}
	})
}

func TestSearch_DelayHonorsContext(t *testing.T) {
	svc := newTestService(nil, nil, SearchServiceConfig{Delay: time.Hour})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := svc.Search(ctx, &domain.SearchRequest{Country: "US", Query: "iphone 16"})
	if !errors.Is(err, domain.ErrSearchFailed) {
		t.Errorf("error = %v, want ErrSearchFailed", err)
	}
	if svc.Session().Active() != 0 {
		t.Error("session must be finished after cancellation")
	}
}

func TestSearch_RecoversFromPanic(t *testing.T) {
	store := panickingStore{catalog.NewStaticStore()}
	svc := NewSearchService(store, NewResolver(store, nil, nil), nil, nil, nil, SearchServiceConfig{})

	result, err := svc.Search(context.Background(), &domain.SearchRequest{Country: "US", Query: "iphone 16", ClientID: "c"})
	if !errors.Is(err, domain.ErrSearchFailed) {
		t.Errorf("error = %v, want ErrSearchFailed", err)
	}
	if result != nil {
		t.Error("expected nil result")
	}
	if svc.Session().InProgress("c") {
		t.Error("session must be finished after a panic")
	}
}

func TestSearch_HistoryFailureIsNotFatal(t *testing.T) {
	history := &MockHistoryRepository{saveError: errors.New("disk full")}
	svc := newTestService(nil, history, SearchServiceConfig{})

	if _, err := svc.Search(context.Background(), &domain.SearchRequest{Country: "US", Query: "switch"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSearch_CurrencyConversion(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewStaticStore()

	t.Run("converts prices to the reference currency", func(t *testing.T) {
		provider := &MockRateProvider{rates: map[domain.Currency]float64{"USD": 1, "INR": 80}}
		converter := NewCurrencyConverter(provider, nil, domain.CurrencyUSD, time.Minute)
		svc := NewSearchService(store, nil, nil, nil, converter, SearchServiceConfig{})

		result, err := svc.Search(ctx, &domain.SearchRequest{Country: "IN", Query: "iphone 16 pro"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.ReferenceCurrency != domain.CurrencyUSD {
			t.Errorf("referenceCurrency = %s, want USD", result.ReferenceCurrency)
		}
		for _, p := range result.Products {
			if p.ConvertedPrice == "" {
				t.Errorf("missing converted price for %s", p.ProductName)
			}
		}
	})

	t.Run("provider failure leaves prices unconverted", func(t *testing.T) {
		provider := &MockRateProvider{err: domain.ErrFXAPIFailure}
		converter := NewCurrencyConverter(provider, nil, domain.CurrencyUSD, time.Minute)
		svc := NewSearchService(store, nil, nil, nil, converter, SearchServiceConfig{})

		result, err := svc.Search(ctx, &domain.SearchRequest{Country: "IN", Query: "iphone 16 pro"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.ReferenceCurrency != "" {
			t.Errorf("referenceCurrency = %s, want empty", result.ReferenceCurrency)
		}
		for _, p := range result.Products {
			if p.ConvertedPrice != "" {
				t.Errorf("unexpected converted price %q", p.ConvertedPrice)
			}
		}
	})
}

func TestDirectoryOperations(t *testing.T) {
	ctx := context.Background()
	history := &MockHistoryRepository{}
	svc := newTestService(nil, history, SearchServiceConfig{RecentLimit: 5})

	if got := len(svc.Countries()); got != 4 {
		t.Errorf("countries = %d, want 4", got)
	}
	if len(svc.Examples()) == 0 {
		t.Error("expected example searches")
	}

	vendors, err := svc.Vendors("uk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vendors) == 0 || vendors[0].Name != "Amazon UK" {
		t.Errorf("vendors = %v", vendors)
	}

	if _, err := svc.Vendors("FR"); !errors.Is(err, domain.ErrCountryNotFound) {
		t.Errorf("error = %v, want ErrCountryNotFound", err)
	}

	if _, err := svc.RecentSearches(ctx, 100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if history.lastLimit != 5 {
		t.Errorf("limit = %d, want 5", history.lastLimit)
	}

	empty := newTestService(nil, nil, SearchServiceConfig{})
	records, err := empty.RecentSearches(ctx, 3)
	if err != nil || len(records) != 0 {
		t.Errorf("records = %v, err = %v", records, err)
	}
}

func TestDescribe(t *testing.T) {
	testCases := []struct {
		count   int
		title   string
		summary string
	}{
		{0, `No results found for "lamp"`, "Try different keywords or select another country"},
		{1, `Results for "lamp" in Japan`, "Found 1 product"},
		{3, `Results for "lamp" in Japan`, "Found 3 products"},
	}

	for _, tc := range testCases {
		title, summary := describe("lamp", "Japan", tc.count)
		if title != tc.title || summary != tc.summary {
			t.Errorf("describe(%d) = %q, %q", tc.count, title, summary)
		}
	}
}

func TestSearch_UnsupportedCountryIsRecorded(t *testing.T) {
	history := &MockHistoryRepository{}
	svc := newTestService(nil, history, SearchServiceConfig{})

	result, err := svc.Search(context.Background(), &domain.SearchRequest{Country: "France", Query: "desk lamp"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Country != "FRANCE" || result.CountryName != "FRANCE" {
		t.Errorf("country = %s/%s, want FRANCE/FRANCE", result.Country, result.CountryName)
	}
	for _, p := range result.Products {
		if p.Currency != domain.CurrencyUSD {
			t.Errorf("currency = %s, want USD", p.Currency)
		}
	}

	records, _ := history.Recent(context.Background(), 10)
	if len(records) != 1 || records[0].Country != "FRANCE" {
		t.Errorf("records = %+v, want one FRANCE record", records)
	}
}
