package rng

import (
	"fmt"

	"github.com/born-ml/tensorrand/internal/tensor"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds sample moments and extrema of a tensor's elements.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64 // Unbiased sample standard deviation
	Min    float64
	Max    float64
}

// String formats the summary on one line.
func (s Summary) String() string {
	return fmt.Sprintf("n=%d mean=%.6f std=%.6f min=%.6f max=%.6f", s.Count, s.Mean, s.StdDev, s.Min, s.Max)
}

// Summarize computes a Summary over t's logical elements (padding excluded).
func Summarize(t *tensor.RawTensor) Summary {
	return SummarizeSlice(Float64s(t))
}

// SummarizeSlice computes a Summary over x.
func SummarizeSlice(x []float64) Summary {
	if len(x) == 0 {
		return Summary{}
	}
	mean, std := stat.MeanStdDev(x, nil)
	return Summary{
		Count:  len(x),
		Mean:   mean,
		StdDev: std,
		Min:    floats.Min(x),
		Max:    floats.Max(x),
	}
}

// Float64s returns t's logical elements widened to float64.
func Float64s(t *tensor.RawTensor) []float64 {
	out := make([]float64, 0, t.NumElements())
	for i := 0; i < t.Rows(); i++ {
		for _, v := range t.Row(i) {
			out = append(out, float64(v))
		}
	}
	return out
}
