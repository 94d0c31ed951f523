package levels

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"srsignal/internal/domain"
)

func candle(high, low, close float64, idx int) domain.Candle {
	return domain.Candle{
		OpenTime: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(idx) * time.Hour),
		Open:     decimal.NewFromFloat(close),
		High:     decimal.NewFromFloat(high),
		Low:      decimal.NewFromFloat(low),
		Close:    decimal.NewFromFloat(close),
		Volume:   decimal.NewFromFloat(10),
	}
}

func candlesFrom(highs, lows, closes []float64) []domain.Candle {
	out := make([]domain.Candle, len(highs))
	for i := range highs {
		out[i] = candle(highs[i], lows[i], closes[i], i)
	}
	return out
}

func TestFindPivots(t *testing.T) {
	highs := []float64{115, 116, 120, 116, 115}
	lows := []float64{105, 104, 100, 104, 105}
	closes := []float64{110, 110, 110, 110, 110}

	pivots := FindPivots(candlesFrom(highs, lows, closes), 2, 2)

	require.Len(t, pivots, 2)
	assert.Equal(t, domain.PivotHigh, pivots[0].Type)
	assert.InDelta(t, 120, pivots[0].Price, 1e-9)
	assert.Equal(t, 2, pivots[0].Index)
	assert.Equal(t, domain.PivotLow, pivots[1].Type)
	assert.InDelta(t, 100, pivots[1].Price, 1e-9)
}

func TestFindPivotsTieDisqualifies(t *testing.T) {
	// the plateau high repeats, so neither candle is a confirmed swing
	highs := []float64{115, 116, 120, 120, 116, 115, 114}
	lows := []float64{105, 105, 105, 105, 105, 105, 105}
	closes := []float64{110, 110, 110, 110, 110, 110, 110}

	pivots := FindPivots(candlesFrom(highs, lows, closes), 2, 2)

	assert.Empty(t, pivots)
}

func TestFindClustersRepeatedTouches(t *testing.T) {
	highs := []float64{115, 116, 120.0, 116, 115, 116, 120.4, 116, 115, 116, 120.2, 116, 115}
	lows := []float64{105, 104, 100.0, 104, 105, 104, 100.3, 104, 105, 104, 100.2, 104, 105}
	closes := []float64{110, 110, 110, 110, 110, 110, 110, 110, 110, 110, 110, 110, 110}

	cfg := Config{PivotLeft: 2, PivotRight: 2, Lookback: 100, ClusterThreshold: 0.005, MinTouches: 2}
	found := Find(candlesFrom(highs, lows, closes), cfg)

	require.Len(t, found, 2)

	// equal strength keeps cluster creation order: the resistance seeded first
	resistance := found[0]
	assert.Equal(t, domain.LevelResistance, resistance.Type)
	assert.Equal(t, 3, resistance.Strength)
	assert.Equal(t, 3, resistance.HighTouches)
	assert.InDelta(t, 120.2, resistance.Level, 1e-9)

	support := found[1]
	assert.Equal(t, domain.LevelSupport, support.Type)
	assert.Equal(t, 3, support.Strength)
	assert.Equal(t, 3, support.LowTouches)
	assert.InDelta(t, (100.0+100.3+100.2)/3, support.Level, 1e-9)
}

func TestFindClusteringIsSeedAnchored(t *testing.T) {
	// pivot lows at 100, 100.4 and 100.9: the second is within threshold of
	// the first seed, the third is not, even though it neighbors 100.4
	highs := []float64{102, 103, 104, 105, 106, 107, 108}
	lows := []float64{101, 100, 101.5, 100.4, 101.6, 100.9, 101.7}
	closes := []float64{102, 102, 102, 102, 102, 102, 102}

	cfg := Config{PivotLeft: 1, PivotRight: 1, Lookback: 100, ClusterThreshold: 0.005, MinTouches: 2}
	found := Find(candlesFrom(highs, lows, closes), cfg)

	require.Len(t, found, 1)
	assert.Equal(t, 2, found[0].Strength)
	assert.InDelta(t, 100.2, found[0].Level, 1e-9)
}

func TestFindTooFewCandles(t *testing.T) {
	cfg := DefaultConfig()
	assert.Nil(t, Find(candlesFrom([]float64{101}, []float64{99}, []float64{100}), cfg))
	assert.Nil(t, Find(nil, cfg))
}

func TestNearest(t *testing.T) {
	lvls := []domain.SRLevel{
		{Level: 120, Type: domain.LevelResistance},
		{Level: 95, Type: domain.LevelSupport},
		{Level: 100, Type: domain.LevelSupport},
		{Level: 130, Type: domain.LevelResistance},
	}

	support, resistance := Nearest(lvls, 110)

	require.NotNil(t, support)
	require.NotNil(t, resistance)
	assert.InDelta(t, 100, support.Level, 1e-9)
	assert.InDelta(t, 120, resistance.Level, 1e-9)
}

func TestNearestExactPriceBelongsToNeither(t *testing.T) {
	lvls := []domain.SRLevel{{Level: 110}}

	support, resistance := Nearest(lvls, 110)

	assert.Nil(t, support)
	assert.Nil(t, resistance)
}
