package levels

import (
	"math"

	"srsignal/internal/domain"
)

// FlipConfig holds the role-flip detection parameters.
type FlipConfig struct {
	// Threshold is the relative distance within which a level is considered
	// in play, both for candidate selection and for the retest check.
	Threshold float64
	// Confirmation is the number of most recent candles that must contain
	// the retest.
	Confirmation int
}

// DefaultFlipConfig returns the standard flip parameters.
func DefaultFlipConfig() FlipConfig {
	return FlipConfig{Threshold: 0.015, Confirmation: 3}
}

// flipBreakoutLookback is how many candles before the confirmation window
// are scanned for the original breakout.
const flipBreakoutLookback = 10

// DetectFlip looks for a support<->resistance role reversal around each
// level near the current close.
//
// A bullish flip requires a level that acted as resistance (>=2 high
// touches), a close below it inside the breakout lookback, the current close
// above it, a retest of the level by the confirmation-window low, and a
// bounce off that low. A bearish flip is the exact mirror.
//
// Across qualifying levels the highest confidence wins; on equal confidence
// the later-evaluated level wins. That tie-break is an explicit, stable
// policy tied to the strength-sorted level order.
func DetectFlip(candles []domain.Candle, srLevels []domain.SRLevel, cfg FlipConfig) domain.FlipResult {
	result := domain.FlipResult{Type: domain.FlipNone}

	if len(candles) < cfg.Confirmation+flipBreakoutLookback || len(srLevels) == 0 {
		return result
	}

	n := len(candles)
	closes := domain.Closes(candles)
	highs := domain.Highs(candles)
	lows := domain.Lows(candles)

	price := closes[n-1]
	recentLow := minOf(lows[n-cfg.Confirmation:])
	recentHigh := maxOf(highs[n-cfg.Confirmation:])
	prevCloses := closes[n-cfg.Confirmation-flipBreakoutLookback : n-cfg.Confirmation]

	for _, sr := range srLevels {
		level := sr.Level
		if level == 0 {
			continue
		}
		if math.Abs(price-level)/level > cfg.Threshold {
			continue
		}

		confidence := flipConfidence(sr.Strength)

		// resistance -> support
		if sr.HighTouches >= 2 {
			wasBelow := anyBelow(prevCloses, level)
			nowAbove := price > level
			tested := recentLow <= level*(1+cfg.Threshold)
			bounced := price > recentLow

			if wasBelow && nowAbove && tested && bounced && confidence >= result.Confidence {
				result = domain.FlipResult{
					Detected:   true,
					Type:       domain.FlipBullish,
					Level:      level,
					Confidence: confidence,
				}
			}
		}

		// support -> resistance
		if sr.LowTouches >= 2 {
			wasAbove := anyAbove(prevCloses, level)
			nowBelow := price < level
			tested := recentHigh >= level*(1-cfg.Threshold)
			rejected := price < recentHigh

			if wasAbove && nowBelow && tested && rejected && confidence >= result.Confidence {
				result = domain.FlipResult{
					Detected:   true,
					Type:       domain.FlipBearish,
					Level:      level,
					Confidence: confidence,
				}
			}
		}
	}

	return result
}

func flipConfidence(strength int) int {
	c := strength*20 + 40
	if c > 100 {
		c = 100
	}
	return c
}

func minOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func anyBelow(values []float64, level float64) bool {
	for _, v := range values {
		if v < level {
			return true
		}
	}
	return false
}

func anyAbove(values []float64, level float64) bool {
	for _, v := range values {
		if v > level {
			return true
		}
	}
	return false
}
