package wgpu

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
	types "github.com/gogpu/gputypes"

	"github.com/gogpu/framefit"
	"github.com/gogpu/framefit/render"
)

//go:embed shaders/scale_to_fit.wgsl
var scaleToFitWGSL string

// WorkgroupSize is the compute workgroup edge length.
// Must match @workgroup_size in scale_to_fit.wgsl.
const WorkgroupSize = 8

// ErrFrameNotBound is returned when Dispatch runs before BindFrame.
var ErrFrameNotBound = errors.New("wgpu: no frame bound")

// Resampler executes the residual-transform resample pass on the GPU.
//
// It implements framefit.FrameBinder: once the planner is configured, the
// host calls Processor.InitializeResource with the Resampler and the input
// texture id, and the Resampler records the frame geometry as the shader
// uniform for the next Dispatch.
//
// The device and queue come from the host application (see
// render.DeviceHandle); the Resampler never creates its own.
//
// Resampler methods must be called from the thread that owns the GPU
// execution context, matching the planner's own threading contract.
type Resampler struct {
	device hal.Device
	queue  hal.Queue

	// Compiled SPIR-V (cached for verification)
	spirvCode []uint32

	shaderModule  hal.ShaderModule
	uniformLayout hal.BindGroupLayout
	textureLayout hal.BindGroupLayout

	pipelineLayout hal.PipelineLayout
	pipeline       hal.ComputePipeline

	// Bound frame state, set by BindFrame.
	uniform  FrameUniform
	inputTex framefit.TextureID
	outDesc  render.FrameDescriptor
	bound    bool

	initialized bool
}

// NewResampler creates the resample pipeline on the given device.
// Returns an error if the shader does not compile or the device rejects
// the pipeline (e.g. no compute support).
func NewResampler(device hal.Device, queue hal.Queue) (*Resampler, error) {
	if device == nil || queue == nil {
		return nil, errors.New("wgpu: device and queue are required")
	}

	r := &Resampler{
		device: device,
		queue:  queue,
	}

	if err := r.init(); err != nil {
		r.Destroy()
		return nil, err
	}

	framefit.Logger().Info("wgpu: resample pipeline ready")
	return r, nil
}

// init compiles the shader and creates the pipeline objects.
func (r *Resampler) init() error {
	spirvBytes, err := naga.Compile(scaleToFitWGSL)
	if err != nil {
		return fmt.Errorf("wgpu: failed to compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	r.spirvCode = make([]uint32, len(spirvBytes)/4)
	for i := range r.spirvCode {
		r.spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	shaderModule, err := r.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: "scale_to_fit_shader",
		Source: hal.ShaderSource{
			SPIRV: r.spirvCode,
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create shader module: %w", err)
	}
	r.shaderModule = shaderModule

	if err := r.createBindGroupLayouts(); err != nil {
		return err
	}

	pipelineLayout, err := r.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "scale_to_fit_pipeline_layout",
		BindGroupLayouts: []hal.BindGroupLayout{r.uniformLayout, r.textureLayout},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create pipeline layout: %w", err)
	}
	r.pipelineLayout = pipelineLayout

	pipeline, err := r.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label:  "scale_to_fit_pipeline",
		Layout: r.pipelineLayout,
		Compute: hal.ComputeState{
			Module:     r.shaderModule,
			EntryPoint: "cs_scale_to_fit",
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create compute pipeline: %w", err)
	}
	r.pipeline = pipeline

	r.initialized = true
	return nil
}

// createBindGroupLayouts creates the bind group layouts for the pipeline.
func (r *Resampler) createBindGroupLayouts() error {
	// Frame uniform (group 0)
	uniformLayout, err := r.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "scale_to_fit_uniform_layout",
		Entries: []types.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: types.ShaderStageCompute,
				Buffer: &types.BufferBindingLayout{
					Type:           types.BufferBindingTypeUniform,
					MinBindingSize: FrameUniformSize,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create uniform bind group layout: %w", err)
	}
	r.uniformLayout = uniformLayout

	// Source and destination textures (group 1)
	textureLayout, err := r.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "scale_to_fit_texture_layout",
		Entries: []types.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: types.ShaderStageCompute,
				StorageTexture: &types.StorageTextureBindingLayout{
					Access:        types.StorageTextureAccessReadWrite,
					Format:        types.TextureFormatRGBA8Unorm,
					ViewDimension: types.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: types.ShaderStageCompute,
				StorageTexture: &types.StorageTextureBindingLayout{
					Access:        types.StorageTextureAccessReadWrite,
					Format:        types.TextureFormatRGBA8Unorm,
					ViewDimension: types.TextureViewDimension2D,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create texture bind group layout: %w", err)
	}
	r.textureLayout = textureLayout

	return nil
}

// BindFrame records one planned frame for the next Dispatch.
//
// transform, input and plan come from the Processor; tex identifies the
// source texture in the host's graphics stack. The output texture
// descriptor is derived from the plan and can be fetched via OutputDesc
// to allocate the destination texture.
func (r *Resampler) BindFrame(transform framefit.Matrix, input framefit.Size, plan framefit.PlanResult, tex framefit.TextureID) error {
	if !r.initialized {
		return errors.New("wgpu: resampler not initialized")
	}
	if !input.IsValid() {
		return fmt.Errorf("wgpu: invalid source size %s", input)
	}
	if !plan.Output.IsValid() {
		return errors.New("wgpu: plan has no valid output size")
	}

	r.uniform = UniformForFrame(transform, input, plan)
	r.inputTex = tex
	r.outDesc = render.DescriptorForPlan(plan)
	r.outDesc.Label = "scale_to_fit_output"
	r.bound = true

	framefit.Logger().Info("wgpu: frame bound",
		"src", input.String(),
		"dst", plan.Output.String(),
		"rotation", plan.RotationDegrees,
		"tex", uint64(tex))
	return nil
}

// Dispatch returns the workgroup counts for the bound frame. The host
// encodes the compute pass itself (it owns the command encoder) using
// Pipeline, the bind group layouts and these counts.
func (r *Resampler) Dispatch() (x, y uint32, err error) {
	if !r.bound {
		return 0, 0, ErrFrameNotBound
	}
	x = (r.uniform.DstWidth + WorkgroupSize - 1) / WorkgroupSize
	y = (r.uniform.DstHeight + WorkgroupSize - 1) / WorkgroupSize
	return x, y, nil
}

// Uniform returns the shader uniform for the bound frame.
func (r *Resampler) Uniform() (FrameUniform, error) {
	if !r.bound {
		return FrameUniform{}, ErrFrameNotBound
	}
	return r.uniform, nil
}

// InputTexture returns the texture id bound by the last BindFrame.
func (r *Resampler) InputTexture() (framefit.TextureID, error) {
	if !r.bound {
		return 0, ErrFrameNotBound
	}
	return r.inputTex, nil
}

// OutputDesc returns the descriptor for the destination texture the host
// must allocate for the bound frame.
func (r *Resampler) OutputDesc() (render.FrameDescriptor, error) {
	if !r.bound {
		return render.FrameDescriptor{}, ErrFrameNotBound
	}
	return r.outDesc, nil
}

// Pipeline returns the compute pipeline for command encoding.
func (r *Resampler) Pipeline() hal.ComputePipeline {
	return r.pipeline
}

// Destroy releases all GPU resources in reverse creation order.
func (r *Resampler) Destroy() {
	if r.device == nil {
		return
	}

	if r.pipeline != nil {
		r.device.DestroyComputePipeline(r.pipeline)
		r.pipeline = nil
	}
	if r.pipelineLayout != nil {
		r.device.DestroyPipelineLayout(r.pipelineLayout)
		r.pipelineLayout = nil
	}
	if r.textureLayout != nil {
		r.device.DestroyBindGroupLayout(r.textureLayout)
		r.textureLayout = nil
	}
	if r.uniformLayout != nil {
		r.device.DestroyBindGroupLayout(r.uniformLayout)
		r.uniformLayout = nil
	}
	if r.shaderModule != nil {
		r.device.DestroyShaderModule(r.shaderModule)
		r.shaderModule = nil
	}

	r.initialized = false
	r.bound = false
}

// Ensure Resampler implements the planner's binder boundary.
var _ framefit.FrameBinder = (*Resampler)(nil)
