// Package backend groups the pluggable resample-pass implementations.
//
// The planner core in the root package never touches pixels; it hands a
// PlanResult and an input texture to a framefit.FrameBinder. The packages
// under backend/ provide those binders:
//
//   - wgpu: GPU compute-shader resample pass via gogpu/wgpu
//
// A CPU reference implementation lives in render/ rather than here, since
// it doubles as the test oracle for the GPU pass.
package backend
