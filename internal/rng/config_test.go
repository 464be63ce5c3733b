package rng

import (
	"testing"

	"github.com/born-ml/tensorrand/internal/backend/webgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBackend(t *testing.T) {
	tests := []struct {
		in   string
		want BackendKind
	}{
		{"", BackendCPU},
		{"cpu", BackendCPU},
		{" CPU ", BackendCPU},
		{"vector", BackendVector},
		{"mt19937", BackendVector},
		{"webgpu", BackendWebGPU},
		{"gpu", BackendWebGPU},
		{"host", BackendHostAccelerator},
		{"philox", BackendHostAccelerator},
	}
	for _, tt := range tests {
		got, err := ParseBackend(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseBackend("tpu")
	assert.Error(t, err)
}

func TestBackendKind_RoundTrip(t *testing.T) {
	for _, k := range []BackendKind{BackendCPU, BackendVector, BackendWebGPU, BackendHostAccelerator} {
		got, err := ParseBackend(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	assert.Equal(t, "unknown", BackendKind(9).String())
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EnvBackend, "vector")
	t.Setenv(EnvSeed, "-17")
	t.Setenv(EnvBufferSize, "4096")

	cfg, err := ConfigFromEnv(DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, Config{Backend: BackendVector, Seed: -17, BufferSize: 4096}, cfg)
}

func TestConfigFromEnv_Unset(t *testing.T) {
	base := Config{Backend: BackendHostAccelerator, Seed: 5, BufferSize: 64}
	cfg, err := ConfigFromEnv(base)
	require.NoError(t, err)
	assert.Equal(t, base, cfg)
}

func TestConfigFromEnv_Invalid(t *testing.T) {
	tests := map[string][2]string{
		"backend":       {EnvBackend, "quantum"},
		"seed":          {EnvSeed, "forty-two"},
		"buffer size":   {EnvBufferSize, "-1"},
		"buffer string": {EnvBufferSize, "big"},
	}
	for name, kv := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			cfg, err := ConfigFromEnv(DefaultConfig())
			assert.Error(t, err)
			assert.Equal(t, DefaultConfig(), cfg)
		})
	}
}

func TestOpen(t *testing.T) {
	tests := []struct {
		kind BackendKind
		name string
	}{
		{BackendCPU, "CPU"},
		{BackendVector, "CPU (MT19937)"},
		{BackendHostAccelerator, "Accelerator (CPU)"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			s, err := Open(Config{Backend: tt.kind, Seed: 1, BufferSize: 128})
			require.NoError(t, err)
			defer s.Release()
			assert.Equal(t, tt.name, s.Name())
			assert.Equal(t, 128, s.Scratch().Capacity())
		})
	}
}

func TestOpen_WebGPUUnavailable(t *testing.T) {
	if webgpu.IsAvailable() {
		t.Skip("WebGPU adapter present")
	}
	s, err := Open(Config{Backend: BackendWebGPU})
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrBackendInit)
}

func TestOpen_UnknownBackend(t *testing.T) {
	s, err := Open(Config{Backend: BackendKind(99)})
	assert.Nil(t, s)
	assert.Equal(t, BackendInitFailed, KindOf(err))
}
