// Package trend classifies price action against the EMA 20/50/200 stack.
package trend

import (
	"math"

	"srsignal/internal/domain"
)

// Classify derives the qualitative trend label and score from the current
// price and EMA stack. When EMA200 is still undefined (young series) it
// falls back to EMA50, matching the indicator engine's documented fallback.
// Rules are evaluated in priority order; the first match wins.
func Classify(price, ema20, ema50, ema200 float64) domain.TrendSnapshot {
	if math.IsNaN(ema200) {
		ema200 = ema50
	}

	var label domain.Trend
	var score int
	switch {
	case price > ema20 && ema20 > ema50 && ema50 > ema200:
		label, score = domain.TrendStrongUp, 100
	case price > ema50 && ema20 < ema50:
		label, score = domain.TrendWeakUp, 60
	case price > ema50:
		label, score = domain.TrendWeakUp, 70
	case price < ema20 && ema20 < ema50 && ema50 < ema200:
		label, score = domain.TrendStrongDown, 0
	case price < ema50 && ema20 > ema50:
		label, score = domain.TrendWeakDown, 40
	case price < ema50:
		label, score = domain.TrendWeakDown, 30
	default:
		label, score = domain.TrendRanging, 50
	}

	return domain.TrendSnapshot{
		EMA20:         ema20,
		EMA50:         ema50,
		EMA200:        ema200,
		Trend:         label,
		Score:         score,
		PriceVsEMA20:  deviationPercent(price, ema20),
		PriceVsEMA50:  deviationPercent(price, ema50),
		PriceVsEMA200: deviationPercent(price, ema200),
	}
}

func deviationPercent(price, ema float64) float64 {
	if ema == 0 {
		return 0
	}
	return (price - ema) / ema * 100
}
