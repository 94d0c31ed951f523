// Package levels detects swing pivots, clusters them into support and
// resistance levels, and recognizes support<->resistance role flips.
package levels

import (
	"math"
	"sort"

	"srsignal/internal/domain"
)

// Config holds the S/R detection parameters.
type Config struct {
	// PivotLeft/PivotRight are the confirmation windows around a swing.
	PivotLeft  int
	PivotRight int
	// Lookback restricts clustering to the most recent candles.
	Lookback int
	// ClusterThreshold is the relative price distance for cluster membership.
	ClusterThreshold float64
	// MinTouches is the minimum cluster size for a valid level.
	MinTouches int
}

// DefaultConfig returns the standard detection parameters.
func DefaultConfig() Config {
	return Config{
		PivotLeft:        5,
		PivotRight:       5,
		Lookback:         100,
		ClusterThreshold: 0.005,
		MinTouches:       2,
	}
}

// FindPivots returns swing highs and lows in chronological order. A swing
// high needs its high strictly above the highs of the left preceding and
// right following candles; any tie disqualifies it. Swing lows mirror the
// condition on lows. Indices are relative to the given slice.
func FindPivots(candles []domain.Candle, left, right int) []domain.PivotPoint {
	var pivots []domain.PivotPoint
	if len(candles) < left+right+1 {
		return pivots
	}

	highs := domain.Highs(candles)
	lows := domain.Lows(candles)

	for i := left; i < len(candles)-right; i++ {
		if isSwingHigh(highs, i, left, right) {
			pivots = append(pivots, domain.PivotPoint{
				Index: i,
				Price: highs[i],
				Type:  domain.PivotHigh,
				Time:  candles[i].OpenTime,
			})
		}
		if isSwingLow(lows, i, left, right) {
			pivots = append(pivots, domain.PivotPoint{
				Index: i,
				Price: lows[i],
				Type:  domain.PivotLow,
				Time:  candles[i].OpenTime,
			})
		}
	}

	return pivots
}

func isSwingHigh(highs []float64, i, left, right int) bool {
	for j := 1; j <= left; j++ {
		if highs[i-j] >= highs[i] {
			return false
		}
	}
	for j := 1; j <= right; j++ {
		if highs[i+j] >= highs[i] {
			return false
		}
	}
	return true
}

func isSwingLow(lows []float64, i, left, right int) bool {
	for j := 1; j <= left; j++ {
		if lows[i-j] <= lows[i] {
			return false
		}
	}
	for j := 1; j <= right; j++ {
		if lows[i+j] <= lows[i] {
			return false
		}
	}
	return true
}

// Find clusters pivots from the last cfg.Lookback candles into S/R levels,
// classified against the latest close and sorted by descending strength.
//
// Clustering is seed-order dependent and deliberately not transitively
// closed: each not-yet-clustered pivot seeds a cluster and absorbs every
// remaining pivot within ClusterThreshold of the SEED's price. A pivot near
// another member but not the seed stays out. Downstream consumers rely on
// this exact membership rule; do not replace it with transitive closure.
func Find(candles []domain.Candle, cfg Config) []domain.SRLevel {
	if len(candles) == 0 {
		return nil
	}

	start := 0
	if len(candles) > cfg.Lookback {
		start = len(candles) - cfg.Lookback
	}
	pivots := FindPivots(candles[start:], cfg.PivotLeft, cfg.PivotRight)
	for i := range pivots {
		pivots[i].Index += start
	}
	if len(pivots) == 0 {
		return nil
	}

	used := make([]bool, len(pivots))
	var clusters [][]domain.PivotPoint
	for i, seed := range pivots {
		if used[i] {
			continue
		}
		cluster := []domain.PivotPoint{seed}
		used[i] = true
		for j := i + 1; j < len(pivots); j++ {
			if used[j] {
				continue
			}
			if math.Abs(seed.Price-pivots[j].Price)/seed.Price <= cfg.ClusterThreshold {
				cluster = append(cluster, pivots[j])
				used[j] = true
			}
		}
		clusters = append(clusters, cluster)
	}

	latestClose, _ := candles[len(candles)-1].Close.Float64()

	var out []domain.SRLevel
	for _, cluster := range clusters {
		if len(cluster) < cfg.MinTouches {
			continue
		}

		var sum float64
		var highTouches, lowTouches int
		for _, p := range cluster {
			sum += p.Price
			if p.Type == domain.PivotHigh {
				highTouches++
			} else {
				lowTouches++
			}
		}
		level := sum / float64(len(cluster))

		typ := domain.LevelResistance
		if level < latestClose {
			typ = domain.LevelSupport
		}

		out = append(out, domain.SRLevel{
			Level:       level,
			Strength:    len(cluster),
			Type:        typ,
			HighTouches: highTouches,
			LowTouches:  lowTouches,
			Pivots:      cluster,
		})
	}

	// stable: equal-strength levels keep cluster creation order
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Strength > out[j].Strength
	})

	return out
}

// Nearest returns the closest support below and resistance above the given
// price. A level exactly at the price belongs to neither side.
func Nearest(levels []domain.SRLevel, price float64) (support, resistance *domain.SRLevel) {
	for i := range levels {
		lvl := levels[i]
		switch {
		case lvl.Level < price:
			if support == nil || lvl.Level > support.Level {
				s := lvl
				support = &s
			}
		case lvl.Level > price:
			if resistance == nil || lvl.Level < resistance.Level {
				r := lvl
				resistance = &r
			}
		}
	}
	return support, resistance
}
