// Package framefit plans frame-geometry transforms for GPU video pipelines.
//
// # Overview
//
// framefit decides how a video frame changes shape when an arbitrary 2D
// affine transform (scale, rotation, shear composition) is applied to it.
// Given the input frame dimensions and a transform, it computes:
//
//   - the output frame's pixel dimensions,
//   - a quantized residual rotation (0 or 90 degrees) carried as
//     orientation metadata instead of being resampled into pixels,
//   - whether a pixel-level resampling pass is needed at all.
//
// Splitting the transform this way avoids unnecessary resampling passes and
// keeps the processed frame landscape-major (width >= height), which most
// video encoders expect.
//
// # Quick Start
//
//	import "github.com/gogpu/framefit"
//
//	// Shrink the frame horizontally by half.
//	p := framefit.New(framefit.Scale(0.5, 1))
//
//	out, err := p.Configure(1920, 1080)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rot, _ := p.OutputRotationDegrees()
//	need, _ := p.ShouldProcess()
//	fmt.Println(out, rot, need) // {1080 960} 90 true
//
// # Lifecycle
//
// A Processor is a two-state machine: it starts unconfigured, and Configure
// transitions it to configured. Every accessor and the GPU resource binding
// step return ErrNotConfigured until Configure has run. A Processor belongs
// to a single frame-processing stage and is discarded with it. Processors
// are not safe for concurrent use; each one is owned by the goroutine that
// owns the surrounding GPU execution context.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Matrix, Size, PlanResult, Processor
//   - render/: GPU device boundary and a CPU reference resampler
//   - backend/wgpu/: compute-shader resample pass via gogpu/wgpu
//
// # Coordinate System
//
// Uses standard image coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, positive is counter-clockwise
package framefit
