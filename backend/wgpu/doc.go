// Package wgpu provides the GPU resample pass using WebGPU compute.
//
// The Resampler implements framefit.FrameBinder: after the planner is
// configured, the host hands it the input texture and the Resampler sets
// up the compute pipeline that applies the residual transform. The WGSL
// shader is compiled to SPIR-V at initialization via gogpu/naga, and all
// GPU objects are created on the hal.Device injected by the host.
//
// The pixel mapping matches render.SoftwareResampler: both derive their
// source-to-destination matrix from render.ResampleTransform.
package wgpu
