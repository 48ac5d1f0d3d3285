package wgpu

import (
	"github.com/gogpu/framefit"
	"github.com/gogpu/framefit/render"
)

// FrameUniform is the GPU-side layout of one frame's resample parameters.
// Must match the Config struct in scale_to_fit.wgsl, including padding.
//
// The matrix coefficients hold the INVERSE of the source-to-destination
// transform: the shader walks destination pixels and maps each one back
// into the source frame.
type FrameUniform struct {
	InvA float32 // Inverse transform, row-major 2x3
	InvB float32
	InvC float32
	InvD float32
	InvE float32
	InvF float32
	Pad0 float32 // Padding for alignment
	Pad1 float32

	SrcWidth  uint32 // Source frame width in pixels
	SrcHeight uint32 // Source frame height in pixels
	DstWidth  uint32 // Destination frame width in pixels
	DstHeight uint32 // Destination frame height in pixels

	RotationDegrees uint32 // Residual metadata rotation, 0 or 90
	ShouldProcess   uint32 // 1 if a resample pass is needed
	Pad2            uint32
	Pad3            uint32
}

// FrameUniformSize is the byte size of FrameUniform, used as the minimum
// uniform binding size in the bind group layout.
const FrameUniformSize = 64

// UniformForFrame builds the shader uniform for one planned frame.
// input must be the dimensions Configure was called with.
func UniformForFrame(m framefit.Matrix, input framefit.Size, plan framefit.PlanResult) FrameUniform {
	inv := render.ResampleTransform(m, input, plan).Invert()

	u := FrameUniform{
		InvA: float32(inv.A), InvB: float32(inv.B), InvC: float32(inv.C),
		InvD: float32(inv.D), InvE: float32(inv.E), InvF: float32(inv.F),

		SrcWidth:  uint32(input.Width),
		SrcHeight: uint32(input.Height),
		DstWidth:  uint32(plan.Output.Width),
		DstHeight: uint32(plan.Output.Height),

		RotationDegrees: uint32(plan.RotationDegrees),
	}
	if plan.ShouldProcess {
		u.ShouldProcess = 1
	}
	return u
}
