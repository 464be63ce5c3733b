package rng

import (
	"errors"
	"fmt"
	"math"

	"github.com/born-ml/tensorrand/internal/tensor"
	"gonum.org/v1/gonum/mathext/prng"
	"gonum.org/v1/gonum/stat/distuv"
)

// errBadArgs is the status a vectorized call reports for invalid
// distribution parameters.
var errBadArgs = errors.New("bad distribution arguments")

// VectorBackend fills whole rows from a Mersenne Twister stream through
// gonum's distribution samplers, the same generator family a vectorized
// math library would use. Each row is one library call with one status.
type VectorBackend struct {
	stream *prng.MT19937
}

// NewVectorBackend creates an MT19937 stream seeded with seed.
func NewVectorBackend(seed int64) *VectorBackend {
	stream := prng.NewMT19937()
	//nolint:gosec // G115: the seed's bit pattern is what matters
	stream.Seed(uint64(seed))
	return &VectorBackend{stream: stream}
}

// Name returns the backend name.
func (b *VectorBackend) Name() string {
	return "CPU (MT19937)"
}

// Device returns the compute device.
func (b *VectorBackend) Device() tensor.Device {
	return tensor.CPU
}

// SampleUniform fills row from U[low, high). Requires low < high.
func (b *VectorBackend) SampleUniform(row []float32, low, high float32) error {
	if !(low < high) {
		return fmt.Errorf("uniform [%g, %g): %w", low, high, errBadArgs)
	}
	dist := distuv.Uniform{Min: float64(low), Max: float64(high), Src: b.stream}
	for j := range row {
		row[j] = narrow(dist.Rand(), low, high)
	}
	return nil
}

// SampleGaussian fills row from N(mu, sigma^2). Requires sigma >= 0.
func (b *VectorBackend) SampleGaussian(row []float32, mu, sigma float32) error {
	if !(sigma >= 0) || math.IsInf(float64(mu), 0) || math.IsNaN(float64(mu)) {
		return fmt.Errorf("gaussian mu=%g sigma=%g: %w", mu, sigma, errBadArgs)
	}
	dist := distuv.Normal{Mu: float64(mu), Sigma: float64(sigma), Src: b.stream}
	for j := range row {
		row[j] = float32(dist.Rand())
	}
	return nil
}

// AllocateScratch allocates host memory.
func (b *VectorBackend) AllocateScratch(capacity int) (*tensor.RawTensor, error) {
	return tensor.Alloc1D(capacity, tensor.CPU)
}

// Release drops the stream.
func (b *VectorBackend) Release() error {
	b.stream = nil
	return nil
}
