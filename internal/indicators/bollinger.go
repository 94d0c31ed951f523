package indicators

import "srsignal/internal/domain"

// BollingerSeries holds the band series, index-aligned with the input.
type BollingerSeries struct {
	Lower []float64
	Mid   []float64
	Upper []float64
}

// Bollinger computes Bollinger bands: mid = SMA(period), upper/lower =
// mid +/- stdDev * rolling standard deviation.
func Bollinger(series []float64, period int, stdDev float64) BollingerSeries {
	mid := SMA(series, period)
	std := RollingStd(series, period)

	lower := make([]float64, len(series))
	upper := make([]float64, len(series))
	for i := range series {
		lower[i] = mid[i] - stdDev*std[i]
		upper[i] = mid[i] + stdDev*std[i]
	}

	return BollingerSeries{Lower: lower, Mid: mid, Upper: upper}
}

// Snapshot returns the latest band values. Bandwidth is (upper-lower)/mid,
// zero when mid is zero.
func (b BollingerSeries) Snapshot() domain.BollingerSnapshot {
	snap := domain.BollingerSnapshot{
		Lower: Last(b.Lower),
		Mid:   Last(b.Mid),
		Upper: Last(b.Upper),
	}
	if snap.Mid != 0 {
		snap.Bandwidth = (snap.Upper - snap.Lower) / snap.Mid
	}
	return snap
}
