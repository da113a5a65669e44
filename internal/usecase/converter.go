package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pricelens/backend/internal/domain"
)

// CurrencyConverter converts listing prices into a reference currency so
// results from different countries can be compared side by side.
type CurrencyConverter struct {
	provider  domain.RateProvider
	cache     domain.CacheRepository
	reference domain.Currency
	ttl       time.Duration
}

// NewCurrencyConverter creates a converter. cache may be nil.
func NewCurrencyConverter(
	provider domain.RateProvider,
	cache domain.CacheRepository,
	reference domain.Currency,
	ttl time.Duration,
) *CurrencyConverter {
	if reference == "" {
		reference = domain.CurrencyUSD
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &CurrencyConverter{
		provider:  provider,
		cache:     cache,
		reference: reference,
		ttl:       ttl,
	}
}

// Reference returns the currency prices are converted into
func (c *CurrencyConverter) Reference() domain.Currency {
	return c.reference
}

// Rates returns rates relative to the reference currency, cached for ttl
func (c *CurrencyConverter) Rates(ctx context.Context) (map[domain.Currency]float64, error) {
	key := "fx:" + string(c.reference)

	if c.cache != nil {
		if payload, err := c.cache.Get(ctx, key); err == nil {
			var rates map[domain.Currency]float64
			if err := json.Unmarshal(payload, &rates); err == nil {
				return rates, nil
			}
		}
	}

	rates, err := c.provider.Rates(ctx, c.reference)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if payload, err := json.Marshal(rates); err == nil {
			if err := c.cache.Set(ctx, key, payload, c.ttl); err != nil {
				log.Printf("[FX] Failed to cache rates: %v", err)
			}
		}
	}
	return rates, nil
}

// Convert turns price (in from) into the reference currency, rounded to 2 decimals
func (c *CurrencyConverter) Convert(price string, from domain.Currency, rates map[domain.Currency]float64) (string, error) {
	amount, ok := parsePrice(price)
	if !ok {
		return "", fmt.Errorf("invalid price %q", price)
	}
	if from == c.reference {
		return amount.StringFixed(2), nil
	}

	rate, ok := rates[from]
	if !ok || rate <= 0 {
		return "", fmt.Errorf("%w: %s->%s", domain.ErrRateNotFound, c.reference, from)
	}

	// 1 reference = rate units of from
	return amount.Div(decimal.NewFromFloat(rate)).StringFixed(2), nil
}
