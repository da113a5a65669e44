package fx

import (
	"testing"

	"github.com/pricelens/backend/internal/domain"
)

func TestMapRates(t *testing.T) {
	tests := []struct {
		name    string
		base    domain.Currency
		payload latestResponse
		want    map[domain.Currency]float64
	}{
		{
			name:    "unit amount",
			base:    domain.CurrencyUSD,
			payload: latestResponse{Amount: 1, Rates: map[string]float64{"GBP": 0.8, "INR": 80}},
			want:    map[domain.Currency]float64{"USD": 1, "GBP": 0.8, "INR": 80},
		},
		{
			name:    "scaled amount is normalized",
			base:    domain.CurrencyGBP,
			payload: latestResponse{Amount: 10, Rates: map[string]float64{"USD": 12.5}},
			want:    map[domain.Currency]float64{"GBP": 1, "USD": 1.25},
		},
		{
			name:    "drops non-positive and uppercases codes",
			base:    domain.CurrencyUSD,
			payload: latestResponse{Rates: map[string]float64{"jpy": 150, "EUR": 0}},
			want:    map[domain.Currency]float64{"USD": 1, "JPY": 150},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapRates(tt.base, tt.payload)
			if len(got) != len(tt.want) {
				t.Fatalf("mapRates() = %v, want %v", got, tt.want)
			}
			for code, rate := range tt.want {
				if got[code] != rate {
					t.Errorf("rate[%s] = %v, want %v", code, got[code], rate)
				}
			}
		})
	}
}
