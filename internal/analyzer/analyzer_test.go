package analyzer

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"srsignal/internal/domain"
)

func risingCandles(n int) []domain.Candle {
	out := make([]domain.Candle, n)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range out {
		c := 100 + float64(i)*0.5
		out[i] = domain.Candle{
			OpenTime: start.Add(time.Duration(i) * time.Hour),
			Open:     decimal.NewFromFloat(c - 0.5),
			High:     decimal.NewFromFloat(c + 1),
			Low:      decimal.NewFromFloat(c - 1),
			Close:    decimal.NewFromFloat(c),
			Volume:   decimal.NewFromFloat(10),
		}
	}
	return out
}

func TestAnalyzeInsufficientHistory(t *testing.T) {
	candles := risingCandles(50)

	result, err := Analyze("BTCUSDT", "1h", candles, DefaultConfig())

	require.NoError(t, err)
	assert.True(t, result.InsufficientData)
	assert.Equal(t, domain.SignalHold, result.Signal)
	assert.Equal(t, 0, result.Confidence)
	assert.Equal(t, "insufficient data (need 200+ candles)", result.Err)
	assert.Equal(t, candles[49].OpenTime, result.Timestamp)
}

func TestAnalyzeEmptySeries(t *testing.T) {
	result, err := Analyze("BTCUSDT", "1h", nil, DefaultConfig())

	require.NoError(t, err)
	assert.True(t, result.InsufficientData)
	assert.Equal(t, domain.SignalHold, result.Signal)
	assert.True(t, result.Timestamp.IsZero())
}

func TestAnalyzeRisingSeries(t *testing.T) {
	candles := risingCandles(250)

	result, err := Analyze("BTCUSDT", "1h", candles, DefaultConfig())

	require.NoError(t, err)
	assert.False(t, result.InsufficientData)
	assert.Equal(t, "BTCUSDT", result.Symbol)
	assert.Equal(t, "1h", result.Timeframe)
	assert.Equal(t, domain.TrendStrongUp, result.Trend)
	assert.InDelta(t, 224.5, result.Price, 1e-9)
	assert.Equal(t, candles[249].OpenTime, result.Timestamp)

	// a strictly monotonic series confirms no swing pivots
	assert.Empty(t, result.Levels)
	assert.Nil(t, result.Support)
	assert.Nil(t, result.Resistance)
	assert.False(t, result.Flip.Detected)

	assert.GreaterOrEqual(t, result.Confidence, 0)
	assert.LessOrEqual(t, result.Confidence, 100)
	assert.NotEmpty(t, result.Reasons)
	assert.Contains(t, result.Reasons, "Strong uptrend (EMA stack aligned)")
	assert.False(t, result.Signal.IsSell())
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	candles := risingCandles(250)
	cfg := DefaultConfig()

	first, err := Analyze("BTCUSDT", "1h", candles, cfg)
	require.NoError(t, err)
	second, err := Analyze("BTCUSDT", "1h", candles, cfg)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAnalyzeRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RSIPeriod = 0

	_, err := Analyze("BTCUSDT", "1h", risingCandles(250), cfg)
	require.Error(t, err)

	cfg = DefaultConfig()
	cfg.MACDFast = 30
	_, err = Analyze("BTCUSDT", "1h", risingCandles(250), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "macd_fast")
}

func TestClassifyThresholds(t *testing.T) {
	tests := []struct {
		net        int
		confidence int
		want       domain.Signal
	}{
		{40, 80, domain.SignalStrongBuy},
		{80, 80, domain.SignalStrongBuy},
		{40, 40, domain.SignalWeakBuy},
		{45, 79, domain.SignalBuy},
		{20, 60, domain.SignalBuy},
		{20, 59, domain.SignalWeakBuy},
		{1, 40, domain.SignalWeakBuy},
		{1, 39, domain.SignalHold},
		{0, 100, domain.SignalHold},
		{-1, 40, domain.SignalWeakSell},
		{-20, 60, domain.SignalSell},
		{-40, 80, domain.SignalStrongSell},
		{-45, 79, domain.SignalSell},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("net=%d conf=%d", tt.net, tt.confidence), func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.net, tt.confidence))
		})
	}
}

func TestMixedPenalty(t *testing.T) {
	conf, mixed := mixedPenalty(25, 25, 50)
	assert.True(t, mixed)
	assert.Equal(t, 40, conf)

	// truncating, not rounding
	conf, mixed = mixedPenalty(25, 25, 41)
	assert.True(t, mixed)
	assert.Equal(t, 32, conf)

	// both sides must exceed the floor
	conf, mixed = mixedPenalty(25, 20, 50)
	assert.False(t, mixed)
	assert.Equal(t, 50, conf)

	conf, mixed = mixedPenalty(20, 25, 50)
	assert.False(t, mixed)
	assert.Equal(t, 50, conf)
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.BollingerStdDev = 0
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.MinCandles = 0
	require.Error(t, cfg.Validate())
}
