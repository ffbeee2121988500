package conversion

import (
	"cmp"
	"math"
	"slices"
)

// IdentityScaling assumes both systems vary by the same relative amount
func IdentityScaling(variance float64) float64 {
	return variance
}

// LinearScaling scales variance by a constant factor. A target system whose
// stats vary 20% more than the source uses a factor of 1.2.
func LinearScaling(factor float64) func(float64) float64 {
	return func(variance float64) float64 {
		return variance * factor
	}
}

// ScalingSegment applies Factor to the part of a variance's magnitude above Threshold
type ScalingSegment struct {
	Threshold float64
	Factor    float64
}

// PiecewiseScaling builds a sign-preserving scaling from segments. Magnitude
// below the lowest threshold passes through unchanged; each segment's factor
// covers the span up to the next threshold. Factors below 1 give diminishing
// returns for large deviations.
func PiecewiseScaling(segments ...ScalingSegment) func(float64) float64 {
	sorted := slices.Clone(segments)
	slices.SortFunc(sorted, func(a, b ScalingSegment) int {
		return cmp.Compare(a.Threshold, b.Threshold)
	})

	return func(variance float64) float64 {
		magnitude := math.Abs(variance)
		scaled, lower, factor := 0.0, 0.0, 1.0

		for _, s := range sorted {
			if s.Threshold < lower {
				continue
			}
			if magnitude <= s.Threshold {
				break
			}
			scaled += (s.Threshold - lower) * factor
			lower, factor = s.Threshold, s.Factor
		}
		scaled += (magnitude - lower) * factor

		return math.Copysign(scaled, variance)
	}
}
