// Package analyzer fuses trend, support/resistance, flip, MACD, volume and
// RSI readings into one graded trading signal. The whole pipeline is a pure
// function over the candle series it is given: no I/O, no retained state,
// no clock. Concurrent callers need no coordination.
package analyzer

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"srsignal/internal/domain"
	"srsignal/internal/indicators"
	"srsignal/internal/levels"
	"srsignal/internal/trend"
)

// Config carries every tunable of the pipeline. Parameters are always passed
// explicitly; there are no package-level knobs.
type Config struct {
	EMAFast int
	EMAMid  int
	EMASlow int

	RSIPeriod int
	ATRPeriod int

	MACDFast   int
	MACDSlow   int
	MACDSignal int

	VolumePeriod int

	BollingerPeriod int
	BollingerStdDev float64

	Levels levels.Config
	Flip   levels.FlipConfig

	// MinCandles is the history required for scoring; shorter series produce
	// a HOLD/0 result with the insufficient-data marker.
	MinCandles int
}

// DefaultConfig returns the standard pipeline parameters.
func DefaultConfig() Config {
	return Config{
		EMAFast:         20,
		EMAMid:          50,
		EMASlow:         200,
		RSIPeriod:       14,
		ATRPeriod:       14,
		MACDFast:        12,
		MACDSlow:        26,
		MACDSignal:      9,
		VolumePeriod:    20,
		BollingerPeriod: 20,
		BollingerStdDev: 2.0,
		Levels:          levels.DefaultConfig(),
		Flip:            levels.DefaultFlipConfig(),
		MinCandles:      200,
	}
}

// Validate rejects structurally invalid parameters.
func (c Config) Validate() error {
	periods := map[string]int{
		"ema_fast":         c.EMAFast,
		"ema_mid":          c.EMAMid,
		"ema_slow":         c.EMASlow,
		"rsi_period":       c.RSIPeriod,
		"atr_period":       c.ATRPeriod,
		"macd_fast":        c.MACDFast,
		"macd_slow":        c.MACDSlow,
		"macd_signal":      c.MACDSignal,
		"volume_period":    c.VolumePeriod,
		"bollinger_period": c.BollingerPeriod,
		"min_candles":      c.MinCandles,
	}
	for name, v := range periods {
		if v < 1 {
			return errors.Errorf("%s must be positive, got %d", name, v)
		}
	}
	if c.MACDFast >= c.MACDSlow {
		return errors.Errorf("macd_fast (%d) must be below macd_slow (%d)", c.MACDFast, c.MACDSlow)
	}
	if c.BollingerStdDev <= 0 {
		return errors.Errorf("bollinger_std_dev must be positive, got %v", c.BollingerStdDev)
	}
	return nil
}

// Analyze runs the full pipeline over an ascending-time candle series and
// returns a fresh AnalysisResult owned by the caller. Only structurally
// invalid input produces an error; numeric edge cases (zero ATR, zero
// average volume, no levels) are absorbed with documented fallbacks.
func Analyze(symbol, timeframe string, candles []domain.Candle, cfg Config) (*domain.AnalysisResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid analyzer config")
	}

	result := &domain.AnalysisResult{
		Symbol:    symbol,
		Timeframe: timeframe,
		Signal:    domain.SignalHold,
		Flip:      domain.FlipResult{Type: domain.FlipNone},
	}
	if len(candles) > 0 {
		result.Timestamp = candles[len(candles)-1].OpenTime
	}

	if len(candles) < cfg.MinCandles {
		result.InsufficientData = true
		result.Err = fmt.Sprintf("insufficient data (need %d+ candles)", cfg.MinCandles)
		return result, nil
	}

	closes := domain.Closes(candles)
	highs := domain.Highs(candles)
	lows := domain.Lows(candles)
	volumes := domain.Volumes(candles)
	price := closes[len(closes)-1]

	rsi := indicators.Last(indicators.RSI(closes, cfg.RSIPeriod))
	atr := indicators.Last(indicators.ATR(highs, lows, closes, cfg.ATRPeriod))
	trendSnap := trend.Classify(price,
		indicators.Last(indicators.EMA(closes, cfg.EMAFast)),
		indicators.Last(indicators.EMA(closes, cfg.EMAMid)),
		indicators.Last(indicators.EMA(closes, cfg.EMASlow)),
	)
	macdSnap := indicators.MACD(closes, cfg.MACDFast, cfg.MACDSlow, cfg.MACDSignal).Snapshot()
	volumeSnap := indicators.Volume(volumes, cfg.VolumePeriod)
	bollSnap := indicators.Bollinger(closes, cfg.BollingerPeriod, cfg.BollingerStdDev).Snapshot()

	srLevels := levels.Find(candles, cfg.Levels)
	flip := levels.DetectFlip(candles, srLevels, cfg.Flip)
	support, resistance := levels.Nearest(srLevels, price)

	ctx := &ruleContext{
		trend:      trendSnap,
		flip:       flip,
		support:    proximityFor(price, support, atr),
		resistance: proximityFor(price, resistance, atr),
		macd:       macdSnap,
		volume:     volumeSnap,
		rsi:        rsi,
	}
	for _, r := range scoringRules {
		r.apply(ctx)
	}

	net := ctx.bullish - ctx.bearish
	total := ctx.bullish
	if ctx.bearish > total {
		total = ctx.bearish
	}
	confidence := total
	if confidence > 100 {
		confidence = 100
	}

	signal := classify(net, confidence)
	if signal == domain.SignalHold && confidence > holdConfidenceCap {
		confidence = holdConfidenceCap
	}

	// mixed-signal penalty applies after classification, as a confidence
	// adjustment only
	if adjusted, mixed := mixedPenalty(ctx.bullish, ctx.bearish, confidence); mixed {
		ctx.warnings = append(ctx.warnings, "Mixed signals - reduced confidence")
		confidence = adjusted
	}

	result.Signal = signal
	result.Confidence = confidence
	result.Trend = trendSnap.Trend
	result.Price = price
	result.Indicators = domain.IndicatorSnapshot{
		EMA20:     trendSnap.EMA20,
		EMA50:     trendSnap.EMA50,
		EMA200:    trendSnap.EMA200,
		RSI:       rsi,
		ATR:       atr,
		MACD:      macdSnap,
		Volume:    volumeSnap,
		Bollinger: bollSnap,
	}
	result.Levels = srLevels
	result.Support = ctx.support
	result.Resistance = ctx.resistance
	result.Flip = flip
	result.Scores = domain.Scores{Bullish: ctx.bullish, Bearish: ctx.bearish, Net: net}
	result.Reasons = ctx.reasons
	result.Warnings = ctx.warnings

	return result, nil
}

const (
	holdConfidenceCap  = 39
	mixedSignalFloor   = 20
	mixedSignalPenalty = 0.8
)

// classify maps net score and confidence to the signal class. Thresholds
// are evaluated in this exact order; the first match wins.
func classify(net, confidence int) domain.Signal {
	switch {
	case net >= 40 && confidence >= 80:
		return domain.SignalStrongBuy
	case net >= 20 && confidence >= 60:
		return domain.SignalBuy
	case net > 0 && confidence >= 40:
		return domain.SignalWeakBuy
	case net <= -40 && confidence >= 80:
		return domain.SignalStrongSell
	case net <= -20 && confidence >= 60:
		return domain.SignalSell
	case net < 0 && confidence >= 40:
		return domain.SignalWeakSell
	default:
		return domain.SignalHold
	}
}

// mixedPenalty reduces confidence when both sides scored materially. The
// truncating conversion is intentional.
func mixedPenalty(bullish, bearish, confidence int) (int, bool) {
	if bullish > mixedSignalFloor && bearish > mixedSignalFloor {
		return int(float64(confidence) * mixedSignalPenalty), true
	}
	return confidence, false
}

// proximityFor expresses the distance to a level in ATR units. With no level
// or a zero/undefined ATR the proximity is omitted rather than computed.
func proximityFor(price float64, level *domain.SRLevel, atr float64) *domain.SRProximity {
	if level == nil || atr == 0 || math.IsNaN(atr) {
		return nil
	}

	distance := math.Abs(price - level.Level)
	distanceATR := distance / atr

	proximity := domain.ProximityFar
	switch {
	case distanceATR <= 0.5:
		proximity = domain.ProximityVeryClose
	case distanceATR <= 1.0:
		proximity = domain.ProximityClose
	}

	return &domain.SRProximity{
		Level:       level.Level,
		Distance:    distance,
		DistanceATR: distanceATR,
		Proximity:   proximity,
	}
}
