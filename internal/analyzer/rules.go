package analyzer

import (
	"fmt"

	"srsignal/internal/domain"
)

// ruleContext accumulates scores, reasons and warnings while the rule table
// runs. Reason/warning order is part of the observable contract.
type ruleContext struct {
	trend      domain.TrendSnapshot
	flip       domain.FlipResult
	support    *domain.SRProximity
	resistance *domain.SRProximity
	macd       domain.MACDSnapshot
	volume     domain.VolumeSnapshot
	rsi        float64

	bullish  int
	bearish  int
	reasons  []string
	warnings []string
}

func (c *ruleContext) reason(format string, args ...any) {
	c.reasons = append(c.reasons, fmt.Sprintf(format, args...))
}

func (c *ruleContext) warning(format string, args ...any) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}

type rule struct {
	name  string
	apply func(*ruleContext)
}

// scoringRules is the fixed, ordered scoring table. Later rules observe the
// scores earlier rules produced (volume rewards the leading side, RSI warns
// against a leading bull), so the order is load-bearing.
var scoringRules = []rule{
	{name: "trend", apply: scoreTrend},
	{name: "sr_flip", apply: scoreFlip},
	{name: "sr_proximity", apply: scoreProximity},
	{name: "macd", apply: scoreMACD},
	{name: "volume", apply: scoreVolume},
	{name: "rsi", apply: scoreRSI},
}

func scoreTrend(c *ruleContext) {
	switch c.trend.Trend {
	case domain.TrendStrongUp:
		c.bullish += 30
		c.reason("Strong uptrend (EMA stack aligned)")
	case domain.TrendWeakUp:
		c.bullish += 15
		c.reason("Weak uptrend")
	case domain.TrendStrongDown:
		c.bearish += 30
		c.reason("Strong downtrend (EMA stack aligned)")
	case domain.TrendWeakDown:
		c.bearish += 15
		c.reason("Weak downtrend")
	default:
		c.reason("Ranging/Sideways market")
	}
}

func scoreFlip(c *ruleContext) {
	if !c.flip.Detected {
		return
	}
	if c.flip.Type == domain.FlipBullish {
		c.bullish += 25
		c.reason("Bullish S/R flip at $%.2f", c.flip.Level)
	} else {
		c.bearish += 25
		c.reason("Bearish S/R flip at $%.2f", c.flip.Level)
	}
}

func scoreProximity(c *ruleContext) {
	if s := c.support; s != nil && s.Proximity != domain.ProximityFar {
		points := 12
		if s.Proximity == domain.ProximityVeryClose {
			points = 20
		}
		c.bullish += points
		c.reason("Near support at $%.2f (%.1f ATR)", s.Level, s.DistanceATR)
	}

	if r := c.resistance; r != nil && r.Proximity != domain.ProximityFar {
		points := 12
		if r.Proximity == domain.ProximityVeryClose {
			points = 20
		}
		c.bearish += points
		c.reason("Near resistance at $%.2f (%.1f ATR)", r.Level, r.DistanceATR)
	}
}

func scoreMACD(c *ruleContext) {
	switch c.macd.Status {
	case domain.MACDBullish:
		c.bullish += 10
		c.reason("MACD bullish")
		if c.macd.Crossover == domain.CrossoverBullish {
			c.bullish += 5
			c.reason("MACD bullish crossover!")
		}
	case domain.MACDBearish:
		c.bearish += 10
		c.reason("MACD bearish")
		if c.macd.Crossover == domain.CrossoverBearish {
			c.bearish += 5
			c.reason("MACD bearish crossover!")
		}
	}
}

func scoreVolume(c *ruleContext) {
	switch c.volume.Status {
	case domain.VolumeHigh:
		// high volume amplifies whichever side already leads; a tie feeds neither
		if c.bullish > c.bearish {
			c.bullish += 10
		} else if c.bearish > c.bullish {
			c.bearish += 10
		}
		c.reason("High volume (%.1fx avg)", c.volume.Ratio)
	case domain.VolumeLow:
		c.warning("Low volume (%.1fx avg) - weak conviction", c.volume.Ratio)
	}
}

func scoreRSI(c *ruleContext) {
	rsi := c.rsi
	switch {
	case rsi >= 40 && rsi <= 60:
		c.reason("RSI neutral (%.1f) - room to move", rsi)
	case rsi < 30:
		c.bullish += 10
		c.reason("RSI oversold (%.1f)", rsi)
	case rsi < 40:
		c.bullish += 5
		c.reason("RSI approaching oversold (%.1f)", rsi)
	case rsi > 70:
		c.bearish += 10
		c.reason("RSI overbought (%.1f)", rsi)
		c.warning("RSI overbought - potential reversal")
	case rsi > 60:
		c.bearish += 5
		c.reason("RSI approaching overbought (%.1f)", rsi)
		if c.bullish > c.bearish {
			c.warning("RSI getting high - watch for pullback")
		}
	}
}
