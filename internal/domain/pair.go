package domain

import (
	"fmt"
	"strings"
)

// Pair is a trading instrument expressed as base/quote currencies.
type Pair struct {
	// Base currency symbol.
	Base string
	// Quote currency symbol.
	Quote string
}

// ParsePair parses the "BTC_USDT" form used in configs.
func ParsePair(s string) (Pair, error) {
	parts := strings.Split(s, "_")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Pair{}, fmt.Errorf("invalid pair %q, expected BASE_QUOTE", s)
	}
	return Pair{Base: parts[0], Quote: parts[1]}, nil
}

// String returns the underscore-separated representation.
func (p Pair) String() string {
	return fmt.Sprintf("%s_%s", p.Base, p.Quote)
}

// Symbol returns the concatenated exchange symbol, e.g. BTCUSDT.
func (p Pair) Symbol() string {
	return fmt.Sprintf("%s%s", p.Base, p.Quote)
}
