//go:build windows

package webgpu

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"unsafe"

	"github.com/go-webgpu/webgpu/wgpu"
)

// errReleased is returned by calls made after Destroy.
var errReleased = errors.New("webgpu: generator destroyed")

// compileShader compiles WGSL shader code into a ShaderModule.
// Results are cached in the Generator's shaders map.
func (g *Generator) compileShader(name, code string) *wgpu.ShaderModule {
	g.mu.RLock()
	if shader, exists := g.shaders[name]; exists {
		g.mu.RUnlock()
		return shader
	}
	g.mu.RUnlock()

	shader := g.device.CreateShaderModuleWGSL(code)

	g.mu.Lock()
	g.shaders[name] = shader
	g.mu.Unlock()

	return shader
}

// getOrCreatePipeline returns a cached ComputePipeline or creates a new one.
func (g *Generator) getOrCreatePipeline(name string, shader *wgpu.ShaderModule) *wgpu.ComputePipeline {
	g.mu.RLock()
	if pipeline, exists := g.pipelines[name]; exists {
		g.mu.RUnlock()
		return pipeline
	}
	g.mu.RUnlock()

	// Create compute pipeline with auto layout (nil layout)
	pipeline := g.device.CreateComputePipelineSimple(nil, shader, "main")

	g.mu.Lock()
	g.pipelines[name] = pipeline
	g.mu.Unlock()

	return pipeline
}

// createBuffer creates a GPU buffer and uploads initial data.
func (g *Generator) createBuffer(data []byte, usage wgpu.BufferUsage) *wgpu.Buffer {
	size := uint64(len(data))

	buffer := g.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            usage,
		Size:             size,
		MappedAtCreation: wgpu.True,
	})

	mappedPtr := buffer.GetMappedRange(0, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), size)
	copy(mappedSlice, data)
	buffer.Unmap()

	return buffer
}

// createUniformBuffer creates a uniform buffer rounded up to 16 bytes.
func (g *Generator) createUniformBuffer(data []byte) *wgpu.Buffer {
	size := uint64(len(data))
	alignedSize := (size + 15) &^ 15

	buffer := g.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		Size:             alignedSize,
		MappedAtCreation: wgpu.True,
	})

	mappedPtr := buffer.GetMappedRange(0, alignedSize)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), alignedSize)
	copy(mappedSlice, data)
	buffer.Unmap()

	return buffer
}

// readBuffer reads data back from a GPU buffer to CPU memory.
// Uses a staging buffer since storage buffers can't be mapped directly.
func (g *Generator) readBuffer(srcBuffer *wgpu.Buffer, size uint64) ([]byte, error) {
	stagingBuffer := g.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
		Size:  size,
	})
	defer stagingBuffer.Release()

	encoder := g.device.CreateCommandEncoder(nil)
	encoder.CopyBufferToBuffer(srcBuffer, 0, stagingBuffer, 0, size)
	cmdBuffer := encoder.Finish(nil)
	g.queue.Submit(cmdBuffer)

	err := stagingBuffer.MapAsync(g.device, wgpu.MapModeRead, 0, size)
	if err != nil {
		return nil, fmt.Errorf("failed to map staging buffer: %w", err)
	}

	mappedPtr := stagingBuffer.GetMappedRange(0, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), size)
	result := make([]byte, size)
	copy(result, mappedSlice)

	stagingBuffer.Unmap()

	return result, nil
}

// run dispatches a shader that reads/writes one f32 storage buffer and
// reads a uniform params block, then copies the buffer back into out.
// If upload is true, out's current contents are sent to the GPU first.
func (g *Generator) run(name, code string, out []float32, upload bool, params []byte, invocations int) error {
	if g.device == nil {
		return errReleased
	}
	//nolint:gosec // G115: workgroup count is non-negative
	workgroups := uint32((invocations + workgroupSize - 1) / workgroupSize)
	if workgroups > maxWorkgroups {
		return fmt.Errorf("webgpu: %d elements exceed one dispatch", len(out))
	}

	shader := g.compileShader(name, code)
	pipeline := g.getOrCreatePipeline(name, shader)

	//nolint:gosec // G115: Safe conversion, length is non-negative
	size := uint64(len(out) * 4)
	usage := wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst
	var bufferData *wgpu.Buffer
	if upload {
		bufferData = g.createBuffer(float32Bytes(out), usage)
	} else {
		bufferData = g.device.CreateBuffer(&wgpu.BufferDescriptor{Usage: usage, Size: size})
	}
	defer bufferData.Release()

	bufferParams := g.createUniformBuffer(params)
	defer bufferParams.Release()

	bindGroupLayout := pipeline.GetBindGroupLayout(0)
	bindGroup := g.device.CreateBindGroupSimple(bindGroupLayout, []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, bufferData, 0, size),
		//nolint:gosec // G115: params are at most 32 bytes
		wgpu.BufferBindingEntry(1, bufferParams, 0, uint64((len(params)+15)&^15)),
	})
	defer bindGroup.Release()

	encoder := g.device.CreateCommandEncoder(nil)
	computePass := encoder.BeginComputePass(nil)
	computePass.SetPipeline(pipeline)
	computePass.SetBindGroup(0, bindGroup, nil)
	computePass.DispatchWorkgroups(workgroups, 1, 1)
	computePass.End()

	cmdBuffer := encoder.Finish(nil)
	g.queue.Submit(cmdBuffer)

	resultData, err := g.readBuffer(bufferData, size)
	if err != nil {
		return err
	}
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(resultData[i*4:]))
	}
	return nil
}

// generationParams packs the Params struct shared by the Philox shaders.
func (g *Generator) generationParams(n int, a, b float32) []byte {
	params := make([]byte, 32)
	//nolint:gosec // G115: Safe conversion, length checked against dispatch limit
	binary.LittleEndian.PutUint32(params[0:4], uint32(n))
	binary.LittleEndian.PutUint32(params[4:8], g.key[0])
	binary.LittleEndian.PutUint32(params[8:12], g.key[1])
	binary.LittleEndian.PutUint32(params[12:16], uint32(g.offset))
	binary.LittleEndian.PutUint32(params[16:20], uint32(g.offset>>32))
	binary.LittleEndian.PutUint32(params[20:24], math.Float32bits(a))
	binary.LittleEndian.PutUint32(params[24:28], math.Float32bits(b))
	return params
}

// GenerateUniform fills out with values in [0, 1).
func (g *Generator) GenerateUniform(out []float32) (err error) {
	defer guard("GenerateUniform", &err)
	if len(out) == 0 {
		return nil
	}
	blocks := (len(out) + 3) / 4
	err = g.run("philox_uniform", uniformShader, out, false, g.generationParams(len(out), 0, 0), blocks)
	if err != nil {
		return err
	}
	g.offset += uint64(blocks)
	return nil
}

// GenerateNormal fills out with draws from N(mu, sigma^2).
func (g *Generator) GenerateNormal(out []float32, mu, sigma float32) (err error) {
	defer guard("GenerateNormal", &err)
	if len(out) == 0 {
		return nil
	}
	blocks := (len(out) + 3) / 4
	err = g.run("philox_normal", normalShader, out, false, g.generationParams(len(out), mu, sigma), blocks)
	if err != nil {
		return err
	}
	g.offset += uint64(blocks)
	return nil
}

// TransferUniform rescales data in place from [0, 1) to [low, high) on the GPU.
func (g *Generator) TransferUniform(data []float32, low, high float32) (err error) {
	defer guard("TransferUniform", &err)
	if len(data) == 0 {
		return nil
	}
	upper := high
	if low < high {
		upper = math.Nextafter32(high, low)
	}
	params := make([]byte, 16)
	//nolint:gosec // G115: Safe conversion, length checked against dispatch limit
	binary.LittleEndian.PutUint32(params[0:4], uint32(len(data)))
	binary.LittleEndian.PutUint32(params[4:8], math.Float32bits(low))
	binary.LittleEndian.PutUint32(params[8:12], math.Float32bits(high))
	binary.LittleEndian.PutUint32(params[12:16], math.Float32bits(upper))
	return g.run("transfer_uniform", transferShader, data, true, params, len(data))
}

// float32Bytes views a float32 slice as its little-endian bytes.
func float32Bytes(data []float32) []byte {
	//nolint:gosec // unsafe.Slice for zero-copy upload
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*4)
}
