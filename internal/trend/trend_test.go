package trend

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"srsignal/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		price  float64
		ema20  float64
		ema50  float64
		ema200 float64
		trend  domain.Trend
		score  int
	}{
		{"aligned stack up", 110, 105, 100, 95, domain.TrendStrongUp, 100},
		{"recovering above mid", 103, 99, 100, 101, domain.TrendWeakUp, 60},
		{"above mid, stack bent", 103, 104, 100, 101, domain.TrendWeakUp, 70},
		{"aligned stack down", 90, 95, 100, 105, domain.TrendStrongDown, 0},
		{"breaking below mid", 97, 101, 100, 99, domain.TrendWeakDown, 40},
		{"below mid, stack bent", 97, 96, 100, 99, domain.TrendWeakDown, 30},
		{"everything equal", 100, 100, 100, 100, domain.TrendRanging, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := Classify(tt.price, tt.ema20, tt.ema50, tt.ema200)

			assert.Equal(t, tt.trend, snap.Trend)
			assert.Equal(t, tt.score, snap.Score)
		})
	}
}

func TestClassifyFallsBackToEMA50(t *testing.T) {
	snap := Classify(110, 105, 100, math.NaN())

	// ema50 stands in for the undefined ema200, so the full stack
	// alignment cannot hold and the weaker rule fires
	assert.Equal(t, domain.TrendWeakUp, snap.Trend)
	assert.Equal(t, 70, snap.Score)
	assert.InDelta(t, 100, snap.EMA200, 1e-9)
}

func TestClassifyDeviations(t *testing.T) {
	snap := Classify(110, 100, 100, 100)

	assert.InDelta(t, 10, snap.PriceVsEMA20, 1e-9)
	assert.InDelta(t, 10, snap.PriceVsEMA50, 1e-9)
	assert.InDelta(t, 10, snap.PriceVsEMA200, 1e-9)
}
