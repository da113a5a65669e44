package usecase

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pricelens/backend/internal/domain"
)

var currencySymbols = map[domain.Currency]string{
	domain.CurrencyUSD: "$",
	domain.CurrencyINR: "₹",
	domain.CurrencyGBP: "£",
	domain.CurrencyJPY: "¥",
}

// leadingNumberRegex matches the numeric prefix of a price string
var leadingNumberRegex = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

var (
	groupingPrinter = message.NewPrinter(language.English)
	half            = decimal.NewFromFloat(0.5)
)

// parsePrice reads the leading number of s, ignoring trailing garbage ("12abc" -> 12)
func parsePrice(s string) (decimal.Decimal, bool) {
	m := leadingNumberRegex.FindString(strings.TrimSpace(s))
	if m == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// CurrencySymbol returns the display symbol, or the code itself when unknown
func CurrencySymbol(currency domain.Currency) string {
	if symbol, ok := currencySymbols[currency]; ok {
		return symbol
	}
	return string(currency)
}

// FormatPrice renders a decimal price string for display.
// JPY is rounded to whole yen with thousands grouping, INR uses Indian
// grouping with up to 3 decimals, everything else gets 2 fixed decimals.
// Unparseable input renders as "NaN" after the symbol.
func FormatPrice(price string, currency domain.Currency) string {
	symbol := CurrencySymbol(currency)

	amount, ok := parsePrice(price)
	if !ok {
		return symbol + "NaN"
	}

	switch currency {
	case domain.CurrencyJPY:
		// round half up, matching Math.round
		yen := amount.Add(half).Floor().IntPart()
		return symbol + groupingPrinter.Sprintf("%d", yen)
	case domain.CurrencyINR:
		return symbol + formatIndian(amount.Round(3))
	default:
		return symbol + amount.StringFixed(2)
	}
}

// formatIndian groups the integer part as 12,34,567 and keeps significant decimals
func formatIndian(amount decimal.Decimal) string {
	s := amount.String()

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, fracPart := s, ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart, fracPart = s[:idx], s[idx:]
	}

	if len(intPart) > 3 {
		head, tail := intPart[:len(intPart)-3], intPart[len(intPart)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		intPart = strings.Join(append(groups, tail), ",")
	}

	return sign + intPart + fracPart
}
