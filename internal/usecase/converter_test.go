package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pricelens/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockRateProvider is a mock implementation of domain.RateProvider
type MockRateProvider struct {
	rates map[domain.Currency]float64
	err   error
	calls int
}

func (m *MockRateProvider) Rates(ctx context.Context, base domain.Currency) (map[domain.Currency]float64, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.rates, nil
}

func TestCurrencyConverter_Convert(t *testing.T) {
	conv := NewCurrencyConverter(&MockRateProvider{}, nil, domain.CurrencyUSD, 0)
	rates := map[domain.Currency]float64{"INR": 80, "JPY": 150, "GBP": 0.8}

	testCases := []struct {
		name  string
		price string
		from  domain.Currency
		want  string
	}{
		{"same currency", "999", domain.CurrencyUSD, "999.00"},
		{"INR to USD", "119900.00", domain.CurrencyINR, "1498.75"},
		{"JPY to USD", "159800", domain.CurrencyJPY, "1065.33"},
		{"GBP to USD", "999.00", domain.CurrencyGBP, "1248.75"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := conv.Convert(tc.price, tc.from, rates)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("missing rate", func(t *testing.T) {
		_, err := conv.Convert("10", "CHF", rates)
		assert.ErrorIs(t, err, domain.ErrRateNotFound)
	})

	t.Run("invalid price", func(t *testing.T) {
		_, err := conv.Convert("abc", domain.CurrencyINR, rates)
		assert.Error(t, err)
	})
}

func TestCurrencyConverter_RatesAreCached(t *testing.T) {
	provider := &MockRateProvider{rates: map[domain.Currency]float64{"USD": 1, "INR": 80}}
	cache := NewMockCacheRepository()
	conv := NewCurrencyConverter(provider, cache, "", time.Minute)
	ctx := context.Background()

	assert.Equal(t, domain.CurrencyUSD, conv.Reference())

	first, err := conv.Rates(ctx)
	require.NoError(t, err)
	second, err := conv.Rates(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, provider.calls)
	assert.True(t, cache.setCalled)
}

func TestCurrencyConverter_ProviderError(t *testing.T) {
	provider := &MockRateProvider{err: domain.ErrFXAPIFailure}
	conv := NewCurrencyConverter(provider, nil, domain.CurrencyUSD, time.Minute)

	_, err := conv.Rates(context.Background())
	assert.True(t, errors.Is(err, domain.ErrFXAPIFailure))
}
