//go:build windows

// Package webgpu implements a Philox random generator on WebGPU compute shaders.
// Uses go-webgpu (github.com/go-webgpu/webgpu) for zero-CGO WebGPU bindings.
package webgpu

import (
	"fmt"
	"sync"

	"github.com/born-ml/tensorrand/internal/philox"
	"github.com/born-ml/tensorrand/internal/tensor"
	"github.com/go-webgpu/webgpu/wgpu"
)

// Generator is a seeded Philox stream whose blocks are computed on the GPU.
// It walks the same counter space as philox.Generator.
type Generator struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	// Shader and pipeline cache
	shaders   map[string]*wgpu.ShaderModule
	pipelines map[string]*wgpu.ComputePipeline
	mu        sync.RWMutex

	// Device info
	adapterInfo *wgpu.AdapterInfo

	key    philox.Key
	offset uint64 // Next unused block
}

// NewGenerator acquires a GPU device and returns an unseeded generator.
// Returns an error if WebGPU is not available or initialization fails.
func NewGenerator() (gen *Generator, err error) {
	// Recover from panic if wgpu_native library is not found.
	defer func() {
		if r := recover(); r != nil {
			gen = nil
			err = fmt.Errorf("webgpu: native library not available: %v", r)
		}
	}()

	instance := wgpu.CreateInstance(nil)
	adapter, adapterErr := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if adapterErr != nil {
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to request adapter: %w", adapterErr)
	}

	adapterInfo := adapter.GetInfo()

	device, deviceErr := adapter.RequestDevice(nil)
	if deviceErr != nil {
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to request device: %w", deviceErr)
	}

	queue := device.GetQueue()
	if queue == nil {
		device.Release()
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to get queue")
	}

	return &Generator{
		instance:    instance,
		adapter:     adapter,
		device:      device,
		queue:       queue,
		shaders:     make(map[string]*wgpu.ShaderModule),
		pipelines:   make(map[string]*wgpu.ComputePipeline),
		adapterInfo: &adapterInfo,
	}, nil
}

// Device returns the compute device.
func (g *Generator) Device() tensor.Device {
	return tensor.WebGPU
}

// Name returns the adapter name.
func (g *Generator) Name() string {
	if g.adapterInfo != nil {
		return fmt.Sprintf("WebGPU (%s %s)", g.adapterInfo.Device, g.adapterInfo.Vendor)
	}
	return "WebGPU"
}

// SetSeed rekeys the generator and rewinds the counter.
func (g *Generator) SetSeed(seed uint64) error {
	g.key = philox.KeyFromSeed(seed)
	g.offset = 0
	return nil
}

// Offset returns the index of the next block the generator will use.
func (g *Generator) Offset() uint64 {
	return g.offset
}

// Destroy releases all WebGPU resources.
func (g *Generator) Destroy() (err error) {
	defer guard("Destroy", &err)

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, p := range g.pipelines {
		p.Release()
	}
	g.pipelines = nil

	for _, s := range g.shaders {
		s.Release()
	}
	g.shaders = nil

	if g.queue != nil {
		g.queue.Release()
		g.queue = nil
	}
	if g.device != nil {
		g.device.Release()
		g.device = nil
	}
	if g.adapter != nil {
		g.adapter.Release()
		g.adapter = nil
	}
	if g.instance != nil {
		g.instance.Release()
		g.instance = nil
	}
	return nil
}

// IsAvailable checks if WebGPU is available on this system.
func IsAvailable() (available bool) {
	// Recover from panic if wgpu_native library is not found.
	defer func() {
		if r := recover(); r != nil {
			available = false
		}
	}()

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	adapter, err := instance.RequestAdapter(nil)
	if err != nil {
		return false
	}
	adapter.Release()

	return true
}

// guard turns a panic inside a wgpu call into the call's error status.
func guard(op string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("webgpu: %s: %v", op, r)
	}
}
