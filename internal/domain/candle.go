// Package domain defines the value objects shared by the analysis pipeline
// and its collaborators.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Candle is a single OHLCV candlestick. Candles are immutable once created
// and are always passed around as ascending-time slices.
type Candle struct {
	OpenTime time.Time       `json:"open_time"`
	Open     decimal.Decimal `json:"open"`
	High     decimal.Decimal `json:"high"`
	Low      decimal.Decimal `json:"low"`
	Close    decimal.Decimal `json:"close"`
	Volume   decimal.Decimal `json:"volume"`
}

// Closes extracts close prices as float64 for indicator math.
func Closes(candles []Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i], _ = c.Close.Float64()
	}
	return out
}

// Highs extracts high prices as float64.
func Highs(candles []Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i], _ = c.High.Float64()
	}
	return out
}

// Lows extracts low prices as float64.
func Lows(candles []Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i], _ = c.Low.Float64()
	}
	return out
}

// Volumes extracts volumes as float64.
func Volumes(candles []Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i], _ = c.Volume.Float64()
	}
	return out
}
