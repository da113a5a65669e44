package fx

import (
	"strings"

	"github.com/pricelens/backend/internal/domain"
)

// mapRates normalizes an API payload into per-unit rates keyed by currency.
// Non-positive rates are dropped.
func mapRates(base domain.Currency, payload latestResponse) map[domain.Currency]float64 {
	amount := payload.Amount
	if amount <= 0 {
		amount = 1
	}

	rates := make(map[domain.Currency]float64, len(payload.Rates)+1)
	for code, value := range payload.Rates {
		if value <= 0 {
			continue
		}
		rates[domain.Currency(strings.ToUpper(code))] = value / amount
	}
	rates[base] = 1
	return rates
}
