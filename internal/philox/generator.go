package philox

import (
	"math"

	"github.com/born-ml/tensorrand/internal/parallel"
	"github.com/born-ml/tensorrand/internal/tensor"
)

// Generator is a host-side Philox stream with the same call surface as the
// device generator, playing the role a host generator plays next to a GPU
// RNG library. Every call consumes whole 4-word blocks, so block i of a
// fill is independent of every other block and fills run in parallel
// without changing the output.
type Generator struct {
	key    Key
	offset uint64 // Next unused block
	par    parallel.Config
}

// NewGenerator creates a host generator seeded with seed.
func NewGenerator(seed uint64) *Generator {
	g := &Generator{par: parallel.DefaultConfig()}
	_ = g.SetSeed(seed)
	return g
}

// SetParallel overrides the chunking used for fills.
func (g *Generator) SetParallel(cfg parallel.Config) {
	g.par = cfg
}

// Device reports where generated values live.
func (g *Generator) Device() tensor.Device {
	return tensor.CPU
}

// SetSeed rekeys the generator and rewinds the counter.
func (g *Generator) SetSeed(seed uint64) error {
	g.key = KeyFromSeed(seed)
	g.offset = 0
	return nil
}

// Offset returns the index of the next block the generator will use.
func (g *Generator) Offset() uint64 {
	return g.offset
}

// GenerateUniform fills out with values in [0, 1).
func (g *Generator) GenerateUniform(out []float32) error {
	base, key := g.reserve(len(out)), g.key
	blocks := (len(out) + 3) / 4
	parallel.For(blocks, func(i int) {
		w := Block(CounterAt(base+uint64(i)), key)
		for lane := 0; lane < 4; lane++ {
			if j := i*4 + lane; j < len(out) {
				out[j] = Uniform(w[lane])
			}
		}
	}, g.par)
	return nil
}

// GenerateNormal fills out with values drawn from N(mu, sigma^2).
func (g *Generator) GenerateNormal(out []float32, mu, sigma float32) error {
	base, key := g.reserve(len(out)), g.key
	blocks := (len(out) + 3) / 4
	parallel.For(blocks, func(i int) {
		w := Block(CounterAt(base+uint64(i)), key)
		z0, z1 := BoxMuller(w[0], w[1])
		z2, z3 := BoxMuller(w[2], w[3])
		for lane, z := range [4]float32{z0, z1, z2, z3} {
			if j := i*4 + lane; j < len(out) {
				out[j] = mu + z*sigma
			}
		}
	}, g.par)
	return nil
}

// TransferUniform rescales data in place from [0, 1) to [low, high).
func (g *Generator) TransferUniform(data []float32, low, high float32) error {
	parallel.For(len(data), func(i int) {
		data[i] = Rescale(data[i], low, high)
	}, g.par)
	return nil
}

// Destroy releases the generator. The host stream holds no resources.
func (g *Generator) Destroy() error {
	return nil
}

// reserve advances the counter past n values and returns the first block.
func (g *Generator) reserve(n int) uint64 {
	base := g.offset
	g.offset += uint64((n + 3) / 4)
	return base
}

// Rescale maps v from [0, 1) onto [low, high). The affine step runs in
// float64 so high-low cannot overflow, and the result is kept below high
// when narrowing to float32 rounds onto it.
func Rescale(v, low, high float32) float32 {
	lo, hi := float64(low), float64(high)
	out := float32(float64(v)*(hi-lo) + lo)
	if low < high && out >= high {
		out = math.Nextafter32(high, low)
	}
	return out
}
