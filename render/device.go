// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/framefit"
)

// DeviceHandle provides GPU device access from the host application.
//
// This interface is the integration point between framefit and GPU
// frameworks like gogpu. The host application implements DeviceHandle and
// passes it to the GPU resample backend, allowing framefit to use the
// shared GPU device.
//
// Key principle: framefit RECEIVES the device from the host, it does NOT
// create one. This enables:
//   - Shared GPU resources between framefit and the host application
//   - Zero device creation overhead in framefit
//   - Consistent resource management across the stack
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, providing a
// framefit-specific name for the interface while maintaining full
// compatibility with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// FrameDescriptor describes the output texture for a planned frame.
// This mirrors the WebGPU GPUTextureDescriptor specification, filled in
// from a PlanResult.
type FrameDescriptor struct {
	// Label is an optional debug label for the texture.
	Label string

	// Width is the texture width in pixels.
	Width uint32

	// Height is the texture height in pixels.
	Height uint32

	// MipLevelCount is the number of mipmap levels.
	// Use 1 for no mipmaps; video frames never carry mips.
	MipLevelCount uint32

	// SampleCount is the number of samples for multisampling.
	// Use 1 for no multisampling.
	SampleCount uint32

	// Format is the texture pixel format.
	Format gputypes.TextureFormat

	// RotationDegrees is the residual rotation (0 or 90) the consumer
	// must attach as orientation metadata alongside the texture.
	RotationDegrees int
}

// DescriptorForPlan returns a FrameDescriptor sized from a PlanResult.
// Only Label needs to be set afterwards if a debug name is wanted.
//
// The plan's output dimensions are positive by contract, so the uint32
// conversions are safe for any plan produced by framefit.Plan.
func DescriptorForPlan(plan framefit.PlanResult) FrameDescriptor {
	return FrameDescriptor{
		Width:           uint32(plan.Output.Width),
		Height:          uint32(plan.Output.Height),
		MipLevelCount:   1,
		SampleCount:     1,
		Format:          gputypes.TextureFormatRGBA8Unorm,
		RotationDegrees: plan.RotationDegrees,
	}
}

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
// Used for CPU-only processing where no GPU is available.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo returns unknown adapter info for the null device.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}
