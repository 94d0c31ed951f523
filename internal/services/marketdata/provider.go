// Package marketdata fetches candlestick series from exchanges. Providers
// return fully materialized, ascending-time candle slices; the analysis core
// never talks to an exchange itself.
package marketdata

import (
	"context"

	"srsignal/internal/domain"
)

// KlineProvider fetches historical candles for a trading pair.
type KlineProvider interface {
	// GetKlines returns up to limit candles for the pair at the given
	// interval (e.g. "1m", "15m", "1h", "4h", "1d"), oldest first.
	GetKlines(ctx context.Context, pair domain.Pair, interval string, limit int) ([]domain.Candle, error)
}
