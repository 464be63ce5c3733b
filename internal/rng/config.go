package rng

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/tensorrand/internal/backend/webgpu"
	"github.com/born-ml/tensorrand/internal/philox"
	"github.com/born-ml/tensorrand/internal/tensor"
)

// BackendKind selects the sampling strategy at startup.
type BackendKind int

// Supported backends.
const (
	// BackendCPU is the platform generator with the Box-Muller fallback.
	BackendCPU BackendKind = iota
	// BackendVector is the MT19937 vectorized library path.
	BackendVector
	// BackendWebGPU runs Philox kernels on the GPU.
	BackendWebGPU
	// BackendHostAccelerator runs the accelerator path on the host Philox generator.
	BackendHostAccelerator
)

// String returns the name accepted by ParseBackend.
func (k BackendKind) String() string {
	switch k {
	case BackendCPU:
		return "cpu"
	case BackendVector:
		return "vector"
	case BackendWebGPU:
		return "webgpu"
	case BackendHostAccelerator:
		return "host"
	default:
		return "unknown"
	}
}

// ParseBackend maps a backend name to its kind.
func ParseBackend(name string) (BackendKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cpu", "":
		return BackendCPU, nil
	case "vector", "mt19937":
		return BackendVector, nil
	case "webgpu", "gpu":
		return BackendWebGPU, nil
	case "host", "philox":
		return BackendHostAccelerator, nil
	default:
		return 0, fmt.Errorf("unknown backend %q", name)
	}
}

// Environment variables read by ConfigFromEnv.
const (
	EnvBackend    = "TENSORRAND_BACKEND"
	EnvSeed       = "TENSORRAND_SEED"
	EnvBufferSize = "TENSORRAND_BUFFER_SIZE"
)

// Config selects and sizes an engine.
type Config struct {
	Backend    BackendKind
	Seed       int64
	BufferSize int // Scratch capacity in elements. 0 = DefaultBufferSize.
}

// DefaultConfig returns a CPU engine config with seed 0.
func DefaultConfig() Config {
	return Config{
		Backend:    BackendCPU,
		Seed:       0,
		BufferSize: DefaultBufferSize,
	}
}

// ConfigFromEnv overlays the TENSORRAND_* environment variables on base.
func ConfigFromEnv(base Config) (Config, error) {
	cfg := base
	if v, ok := os.LookupEnv(EnvBackend); ok {
		kind, err := ParseBackend(v)
		if err != nil {
			return base, fmt.Errorf("%s: %w", EnvBackend, err)
		}
		cfg.Backend = kind
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return base, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}
	if v, ok := os.LookupEnv(EnvBufferSize); ok {
		size, err := strconv.Atoi(v)
		if err != nil || size <= 0 {
			return base, fmt.Errorf("%s: invalid size %q", EnvBufferSize, v)
		}
		cfg.BufferSize = size
	}
	return cfg, nil
}

// Sampler is the capability set every engine variant provides.
type Sampler interface {
	SampleUniform(dst *tensor.RawTensor, low, high float32)
	SampleGaussian(dst *tensor.RawTensor, mu, sigma float32)
	Uniform(shape tensor.Shape) *Exp
	Gaussian(shape tensor.Shape) *Exp
	UniformShared(shape tensor.Shape) *Exp
	GaussianShared(shape tensor.Shape) *Exp
	Scratch() *Scratch
	Name() string
	Device() tensor.Device
	Release()
}

// Compile-time checks that every engine variant is a Sampler.
var (
	_ Sampler = (*Engine[*CPUBackend])(nil)
	_ Sampler = (*Engine[*VectorBackend])(nil)
	_ Sampler = (*Engine[*AcceleratorBackend])(nil)
)

// Open constructs the engine cfg selects.
func Open(cfg Config) (Sampler, error) {
	switch cfg.Backend {
	case BackendCPU:
		return sampler(NewCPU(cfg.Seed, cfg.BufferSize))
	case BackendVector:
		return sampler(NewVector(cfg.Seed, cfg.BufferSize))
	case BackendWebGPU:
		gen, err := webgpu.NewGenerator()
		if err != nil {
			return nil, newError(BackendInitFailed, "Open", err)
		}
		return sampler(NewAccelerator(gen, cfg.Seed, cfg.BufferSize))
	case BackendHostAccelerator:
		//nolint:gosec // G115: the seed's bit pattern is what matters
		return sampler(NewAccelerator(philox.NewGenerator(uint64(cfg.Seed)), cfg.Seed, cfg.BufferSize))
	default:
		return nil, newError(BackendInitFailed, "Open", fmt.Errorf("unknown backend %d", cfg.Backend))
	}
}

// sampler keeps a failed construction from yielding a non-nil interface.
func sampler[B Backend](e *Engine[B], err error) (Sampler, error) {
	if err != nil {
		return nil, err
	}
	return e, nil
}
