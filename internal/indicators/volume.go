package indicators

import (
	"math"

	"srsignal/internal/domain"
)

const (
	highVolumeRatio = 1.5
	lowVolumeRatio  = 0.8
)

// Volume compares the latest volume with its period-SMA. When the average is
// zero or still in warm-up, the ratio defaults to 1.0 and status to normal
// rather than dividing by zero.
func Volume(volumes []float64, period int) domain.VolumeSnapshot {
	if len(volumes) == 0 {
		return domain.VolumeSnapshot{Ratio: 1.0, Status: domain.VolumeNormal}
	}

	current := volumes[len(volumes)-1]
	avg := Last(SMA(volumes, period))
	if math.IsNaN(avg) || avg == 0 {
		return domain.VolumeSnapshot{
			Current: current,
			Ratio:   1.0,
			Status:  domain.VolumeNormal,
		}
	}

	ratio := current / avg
	status := domain.VolumeNormal
	switch {
	case ratio > highVolumeRatio:
		status = domain.VolumeHigh
	case ratio < lowVolumeRatio:
		status = domain.VolumeLow
	}

	return domain.VolumeSnapshot{
		Current: current,
		Average: avg,
		Ratio:   ratio,
		Status:  status,
	}
}
