package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBollingerConstantSeries(t *testing.T) {
	series := []float64{10, 10, 10, 10, 10}

	snap := Bollinger(series, 3, 2.0).Snapshot()

	assert.InDelta(t, 10, snap.Mid, 1e-9)
	assert.InDelta(t, 10, snap.Upper, 1e-9)
	assert.InDelta(t, 10, snap.Lower, 1e-9)
	assert.InDelta(t, 0, snap.Bandwidth, 1e-9)
}

func TestBollingerBands(t *testing.T) {
	series := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	snap := Bollinger(series, 8, 2.0).Snapshot()

	// mean 5, population std 2
	assert.InDelta(t, 5, snap.Mid, 1e-9)
	assert.InDelta(t, 9, snap.Upper, 1e-9)
	assert.InDelta(t, 1, snap.Lower, 1e-9)
	assert.InDelta(t, 8.0/5.0, snap.Bandwidth, 1e-9)
}
