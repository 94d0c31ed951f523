package indicators

import (
	"math"

	"srsignal/internal/domain"
)

// MACDSeries holds the three MACD component series, index-aligned with the
// close series they were computed from.
type MACDSeries struct {
	Line      []float64
	Signal    []float64
	Histogram []float64
}

// MACD computes the MACD line (fast EMA minus slow EMA), its signal line and
// the histogram. The signal EMA runs over the defined suffix of the line and
// is re-padded so all three series stay aligned with the input.
func MACD(closes []float64, fast, slow, signalPeriod int) MACDSeries {
	line := subtract(EMA(closes, fast), EMA(closes, slow))

	signal := nanSeries(len(closes))
	if start := firstDefined(line); start >= 0 {
		copy(signal[start:], EMA(line[start:], signalPeriod))
	}

	return MACDSeries{
		Line:      line,
		Signal:    signal,
		Histogram: subtract(line, signal),
	}
}

// Snapshot derives the latest MACD state. Status is bullish when the line
// sits above the signal with a growing histogram, bearish in the mirror
// case, neutral otherwise. Crossover fires only when the line crossed the
// signal on the latest step. NaN in any compared value yields neutral/none.
func (m MACDSeries) Snapshot() domain.MACDSnapshot {
	n := len(m.Line)
	snap := domain.MACDSnapshot{Status: domain.MACDNeutral}
	if n == 0 {
		return snap
	}

	snap.Line = m.Line[n-1]
	snap.Signal = m.Signal[n-1]
	snap.Histogram = m.Histogram[n-1]

	prevLine, prevSignal := math.NaN(), math.NaN()
	snap.PrevHistogram = math.NaN()
	if n > 1 {
		prevLine = m.Line[n-2]
		prevSignal = m.Signal[n-2]
		snap.PrevHistogram = m.Histogram[n-2]
	}

	switch {
	case snap.Line > snap.Signal && snap.Histogram > snap.PrevHistogram:
		snap.Status = domain.MACDBullish
	case snap.Line < snap.Signal && snap.Histogram < snap.PrevHistogram:
		snap.Status = domain.MACDBearish
	}

	switch {
	case snap.Line > snap.Signal && prevLine <= prevSignal:
		snap.Crossover = domain.CrossoverBullish
	case snap.Line < snap.Signal && prevLine >= prevSignal:
		snap.Crossover = domain.CrossoverBearish
	}

	return snap
}
