// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/framefit"
)

// SoftwareResampler is a CPU implementation of the resample pass.
//
// It applies the full affine transform to the frame pixels, honoring the
// planner's output dimensions and the 90 degree relabel, using
// golang.org/x/image/draw for interpolation. It is the fallback when no
// GPU device is available and the reference oracle for the compute-shader
// pass in backend/wgpu.
//
// Performance characteristics:
//   - Single-threaded
//   - O(n) where n is the number of output pixels
//
// Example:
//
//	plan := framefit.Plan(framefit.Size{Width: 200, Height: 150}, m, framefit.HeightUnset)
//	r := render.NewSoftwareResampler()
//	out, err := r.Resample(src, m, plan)
type SoftwareResampler struct {
	// Interpolator selects the resampling kernel. Defaults to
	// draw.BiLinear, matching the GPU pass.
	Interpolator draw.Interpolator
}

// NewSoftwareResampler creates a CPU resampler with bilinear interpolation.
func NewSoftwareResampler() *SoftwareResampler {
	return &SoftwareResampler{Interpolator: draw.BiLinear}
}

// Resample applies the transform behind plan to src and returns the
// output frame, sized plan.Output.Width x plan.Output.Height.
//
// When the plan requires no processing the source pixels are copied
// through unchanged. The plan must have been computed for src's
// dimensions with the same transform; mismatched arguments produce
// geometrically wrong output, not an error.
func (r *SoftwareResampler) Resample(src image.Image, m framefit.Matrix, plan framefit.PlanResult) (*image.RGBA, error) {
	if src == nil {
		return nil, errors.New("render: nil source image")
	}
	if !plan.Output.IsValid() {
		return nil, errors.New("render: plan has no valid output size")
	}

	sr := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, plan.Output.Width, plan.Output.Height))

	if !plan.ShouldProcess {
		draw.Copy(dst, image.Point{}, src, sr, draw.Src, nil)
		return dst, nil
	}

	interp := r.Interpolator
	if interp == nil {
		interp = draw.BiLinear
	}

	total := ResampleTransform(m, framefit.Size{Width: sr.Dx(), Height: sr.Dy()}, plan)
	// Account for source images whose bounds do not start at the origin.
	total = total.Multiply(framefit.Translate(-float64(sr.Min.X), -float64(sr.Min.Y)))

	interp.Transform(dst, aff3(total), src, sr, draw.Src, nil)
	return dst, nil
}

// ResampleTransform composes the full source-to-destination matrix for a
// planned frame: the caller's transform, a translation that anchors the
// transformed bounding box at the origin, the 90 degree relabel when the
// plan selected one, and the rescale to the final output size.
//
// Both the CPU resampler and the GPU pass in backend/wgpu derive their
// pixel mapping from this single composition, so the two stay in
// agreement pixel for pixel up to interpolation differences.
func ResampleTransform(m framefit.Matrix, input framefit.Size, plan framefit.PlanResult) framefit.Matrix {
	minX, minY, w, h := framefit.MapBounds(m, input)

	// Anchor the transformed box at the origin.
	total := framefit.Translate(-minX, -minY).Multiply(m)

	// Base extents before any resolution request, rounded the same way
	// the analyzer rounds them.
	bw := math.Round(w)
	bh := math.Round(h)

	baseW, baseH := bw, bh
	if plan.RotationDegrees == 90 {
		// Rotate the pixels clockwise into the landscape-major frame;
		// the metadata rotation undoes this at display time.
		// (x, y) -> (bh - y, x)
		relabel := framefit.Matrix{
			A: 0, B: -1, C: bh,
			D: 1, E: 0, F: 0,
		}
		total = relabel.Multiply(total)
		baseW, baseH = bh, bw
	}

	if baseW > 0 && baseH > 0 {
		sx := float64(plan.Output.Width) / baseW
		sy := float64(plan.Output.Height) / baseH
		total = framefit.Scale(sx, sy).Multiply(total)
	}

	return total
}

// aff3 converts a framefit.Matrix to the x/image affine layout.
// Both are row-major 2x3, so the coefficients map directly.
func aff3(m framefit.Matrix) f64.Aff3 {
	return f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
}
