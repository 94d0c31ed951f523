// Package indicators computes windowed technical indicators over raw price
// and volume series. Every function returns a series index-aligned with its
// input: warm-up positions hold NaN and are never silently zeroed. The
// package performs no I/O and keeps no state between calls.
package indicators

import "math"

// nanSeries allocates a series of the given length filled with NaN.
func nanSeries(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

// Last returns the final value of a series, or NaN for an empty one.
func Last(series []float64) float64 {
	if len(series) == 0 {
		return math.NaN()
	}
	return series[len(series)-1]
}

// firstDefined returns the index of the first non-NaN value, or -1.
func firstDefined(series []float64) int {
	for i, v := range series {
		if !math.IsNaN(v) {
			return i
		}
	}
	return -1
}

// subtract returns a-b element-wise. NaN in either operand propagates.
func subtract(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

// SMA computes a simple moving average. The first period-1 values are NaN.
func SMA(series []float64, period int) []float64 {
	out := nanSeries(len(series))
	if period < 1 || len(series) < period {
		return out
	}
	var sum float64
	for i, v := range series {
		sum += v
		if i >= period {
			sum -= series[i-period]
		}
		if i >= period-1 {
			out[i] = sum / float64(period)
		}
	}
	return out
}

// EMA computes an exponential moving average seeded with the SMA of the
// first period values. The first period-1 values are NaN.
func EMA(series []float64, period int) []float64 {
	out := nanSeries(len(series))
	if period < 1 || len(series) < period {
		return out
	}
	var sum float64
	for i := 0; i < period; i++ {
		sum += series[i]
	}
	prev := sum / float64(period)
	out[period-1] = prev
	k := 2.0 / float64(period+1)
	for i := period; i < len(series); i++ {
		prev = (series[i]-prev)*k + prev
		out[i] = prev
	}
	return out
}

// RSI computes the Wilder relative strength index, bounded to [0,100].
// The first period values are NaN. A series with no movement reads 50.
func RSI(series []float64, period int) []float64 {
	out := nanSeries(len(series))
	if period < 1 || len(series) < period+1 {
		return out
	}
	var gain, loss float64
	for i := 1; i <= period; i++ {
		d := series[i] - series[i-1]
		if d > 0 {
			gain += d
		} else {
			loss -= d
		}
	}
	avgGain := gain / float64(period)
	avgLoss := loss / float64(period)
	out[period] = rsiValue(avgGain, avgLoss)
	for i := period + 1; i < len(series); i++ {
		d := series[i] - series[i-1]
		var g, l float64
		if d > 0 {
			g = d
		} else {
			l = -d
		}
		avgGain = (avgGain*float64(period-1) + g) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + l) / float64(period)
		out[i] = rsiValue(avgGain, avgLoss)
	}
	return out
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgGain == 0 && avgLoss == 0 {
		// flat market carries no momentum either way
		return 50
	}
	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}

// TrueRange computes the per-candle true range. The first candle has no
// previous close, so its range is simply high-low.
func TrueRange(highs, lows, closes []float64) []float64 {
	out := make([]float64, len(highs))
	for i := range highs {
		tr := highs[i] - lows[i]
		if i > 0 {
			hc := math.Abs(highs[i] - closes[i-1])
			lc := math.Abs(lows[i] - closes[i-1])
			tr = math.Max(tr, math.Max(hc, lc))
		}
		out[i] = tr
	}
	return out
}

// ATR computes the Wilder-smoothed average true range.
// The first period-1 values are NaN.
func ATR(highs, lows, closes []float64, period int) []float64 {
	out := nanSeries(len(closes))
	if period < 1 || len(closes) < period ||
		len(highs) != len(closes) || len(lows) != len(closes) {
		return out
	}
	tr := TrueRange(highs, lows, closes)
	var sum float64
	for i := 0; i < period; i++ {
		sum += tr[i]
	}
	prev := sum / float64(period)
	out[period-1] = prev
	for i := period; i < len(tr); i++ {
		prev = (prev*float64(period-1) + tr[i]) / float64(period)
		out[i] = prev
	}
	return out
}

// RollingStd computes the rolling population standard deviation.
// The first period-1 values are NaN.
func RollingStd(series []float64, period int) []float64 {
	out := nanSeries(len(series))
	if period < 1 || len(series) < period {
		return out
	}
	for i := period - 1; i < len(series); i++ {
		window := series[i-period+1 : i+1]
		var sum float64
		for _, v := range window {
			sum += v
		}
		mean := sum / float64(period)
		var sq float64
		for _, v := range window {
			d := v - mean
			sq += d * d
		}
		out[i] = math.Sqrt(sq / float64(period))
	}
	return out
}
