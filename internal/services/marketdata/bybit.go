package marketdata

import (
	"context"
	"strconv"
	"time"

	bybit "github.com/hirokisan/bybit/v2"
	"github.com/pkg/errors"

	"srsignal/internal/domain"
)

// bybitIntervals maps the common interval notation to Bybit V5 intervals.
var bybitIntervals = map[string]bybit.Interval{
	"1m":  bybit.Interval1,
	"3m":  bybit.Interval3,
	"5m":  bybit.Interval5,
	"15m": bybit.Interval15,
	"30m": bybit.Interval30,
	"1h":  bybit.Interval60,
	"2h":  bybit.Interval120,
	"4h":  bybit.Interval240,
	"6h":  bybit.Interval360,
	"12h": bybit.Interval720,
	"1d":  bybit.IntervalD,
	"1w":  bybit.IntervalW,
}

// BybitProvider implements KlineProvider for the Bybit exchange.
type BybitProvider struct {
	client *bybit.Client
}

// NewBybitProvider creates a Bybit kline provider.
func NewBybitProvider(client *bybit.Client) *BybitProvider {
	return &BybitProvider{client: client}
}

// GetKlines fetches spot candles from Bybit, oldest first.
func (p *BybitProvider) GetKlines(ctx context.Context, pair domain.Pair, interval string, limit int) ([]domain.Candle, error) {
	bybitInterval, ok := bybitIntervals[interval]
	if !ok {
		return nil, errors.Errorf("unsupported interval %q for Bybit", interval)
	}

	resp, err := p.client.V5().Market().GetKline(bybit.V5GetKlineParam{
		Category: bybit.CategoryV5Spot,
		Symbol:   bybit.SymbolV5(pair.Symbol()),
		Interval: bybitInterval,
		Limit:    &limit,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch klines from Bybit for %s", pair.String())
	}
	if len(resp.Result.List) == 0 {
		return nil, errors.Errorf("no kline data received from Bybit for %s", pair.String())
	}

	// Bybit returns newest first; candles must be ascending.
	list := resp.Result.List
	candles := make([]domain.Candle, len(list))
	for i, k := range list {
		candle, err := parseCandle(k.Open, k.High, k.Low, k.Close, k.Volume)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid kline at index %d", i)
		}

		startMs, err := strconv.ParseInt(k.StartTime, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse start time %q", k.StartTime)
		}
		candle.OpenTime = time.Unix(0, startMs*int64(time.Millisecond))

		candles[len(list)-1-i] = candle
	}

	return candles, nil
}
