package marketdata

import (
	"context"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"srsignal/internal/domain"
)

// BinanceProvider implements KlineProvider for the Binance exchange.
type BinanceProvider struct {
	client *binance.Client
}

// NewBinanceProvider creates a Binance kline provider. Kline endpoints are
// public, so empty credentials are fine.
func NewBinanceProvider(client *binance.Client) *BinanceProvider {
	return &BinanceProvider{client: client}
}

// GetKlines fetches candles from Binance, oldest first.
func (p *BinanceProvider) GetKlines(ctx context.Context, pair domain.Pair, interval string, limit int) ([]domain.Candle, error) {
	klines, err := p.client.NewKlinesService().
		Symbol(pair.Symbol()).
		Interval(interval).
		Limit(limit).
		Do(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch klines from Binance for %s", pair.String())
	}

	candles := make([]domain.Candle, len(klines))
	for i, k := range klines {
		candle, err := parseCandle(k.Open, k.High, k.Low, k.Close, k.Volume)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid kline at index %d", i)
		}
		candle.OpenTime = time.Unix(0, k.OpenTime*int64(time.Millisecond))
		candles[i] = candle
	}

	return candles, nil
}

// parseCandle converts string OHLCV fields into a Candle. A missing or
// malformed field is a structural error and fails the whole fetch.
func parseCandle(open, high, low, close, volume string) (domain.Candle, error) {
	var c domain.Candle
	var err error

	if c.Open, err = decimal.NewFromString(open); err != nil {
		return c, errors.Wrapf(err, "failed to parse open price %q", open)
	}
	if c.High, err = decimal.NewFromString(high); err != nil {
		return c, errors.Wrapf(err, "failed to parse high price %q", high)
	}
	if c.Low, err = decimal.NewFromString(low); err != nil {
		return c, errors.Wrapf(err, "failed to parse low price %q", low)
	}
	if c.Close, err = decimal.NewFromString(close); err != nil {
		return c, errors.Wrapf(err, "failed to parse close price %q", close)
	}
	if c.Volume, err = decimal.NewFromString(volume); err != nil {
		return c, errors.Wrapf(err, "failed to parse volume %q", volume)
	}

	return c, nil
}
