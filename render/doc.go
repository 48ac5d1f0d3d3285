// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render provides the integration layer between framefit and GPU
// frameworks, plus a CPU reference implementation of the resample pass.
//
// # Key Principle
//
// framefit RECEIVES a GPU device from the host application, it does NOT
// create its own. The host (e.g. gogpu.App) implements DeviceHandle and
// hands it to the GPU backend; the planner core never touches a device.
//
// # Contents
//
//   - DeviceHandle: GPU device access injected by the host application
//   - FrameDescriptor: output texture parameters derived from a PlanResult
//   - SoftwareResampler: CPU resample pass using golang.org/x/image/draw,
//     used as the fallback when no GPU device is available and as the
//     reference oracle for the compute-shader pass in backend/wgpu
package render
