package stats

import (
	"math"
	"sort"
)

// Quantile calculates the q-th quantile (0-1) of values.
// Uses linear interpolation between closest ranks over a sorted copy.
func Quantile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return 0
	}

	// Create a copy to avoid modifying the original slice
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return quantileSorted(sorted, q)
}

// Percentiles calculates multiple percentiles (0-100) at once
func Percentiles(values []float64, ps []float64) []float64 {
	if len(values) == 0 {
		return make([]float64, len(ps))
	}

	// Sort once for efficiency
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	results := make([]float64, len(ps))
	for i, p := range ps {
		results[i] = quantileSorted(sorted, p/100.0)
	}

	return results
}

// Abs returns the absolute value of every element
func Abs(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = math.Abs(v)
	}
	return out
}

func quantileSorted(sorted []float64, q float64) float64 {
	if q < 0 {
		q = 0
	}
	if q > 1 {
		q = 1
	}

	n := float64(len(sorted))
	index := q * (n - 1)
	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))

	if lower == upper {
		return sorted[lower]
	}

	// Linear interpolation
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}
