package marketdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCandle(t *testing.T) {
	candle, err := parseCandle("100.5", "101.2", "99.8", "100.9", "1234.56")

	require.NoError(t, err)
	assert.Equal(t, "100.5", candle.Open.String())
	assert.Equal(t, "101.2", candle.High.String())
	assert.Equal(t, "99.8", candle.Low.String())
	assert.Equal(t, "100.9", candle.Close.String())
	assert.Equal(t, "1234.56", candle.Volume.String())
}

func TestParseCandleMalformedField(t *testing.T) {
	tests := []struct {
		name                           string
		open, high, low, close, volume string
		wantErr                        string
	}{
		{"bad open", "x", "1", "1", "1", "1", "open"},
		{"bad high", "1", "", "1", "1", "1", "high"},
		{"bad low", "1", "1", "abc", "1", "1", "low"},
		{"bad close", "1", "1", "1", "1,5", "1", "close"},
		{"bad volume", "1", "1", "1", "1", "NaN?", "volume"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseCandle(tt.open, tt.high, tt.low, tt.close, tt.volume)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBybitIntervalMapping(t *testing.T) {
	known := []string{"1m", "5m", "15m", "1h", "4h", "1d", "1w"}
	for _, interval := range known {
		_, ok := bybitIntervals[interval]
		assert.True(t, ok, "interval %s must be mapped", interval)
	}

	_, ok := bybitIntervals["7h"]
	assert.False(t, ok)
}
