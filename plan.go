package framefit

import "math"

// HeightUnset is the sentinel for "no requested output height".
const HeightUnset = 0

// PlanResult is the outcome of planning one frame transform. It is an
// immutable value: a given (input size, transform, requested height)
// triple always produces the same PlanResult.
type PlanResult struct {
	// Output is the output frame's pixel dimensions.
	Output Size

	// RotationDegrees is the residual rotation, 0 or 90, to be applied
	// as orientation metadata by the consumer (e.g. the encoder).
	RotationDegrees int

	// ShouldProcess reports whether a pixel-level resampling pass is
	// required. False means the frame can be passed through untouched.
	ShouldProcess bool
}

// Plan computes the output geometry for applying m to an input frame.
//
// requestedHeight, when positive, rescales the output to that height while
// preserving its aspect ratio; pass HeightUnset to keep the natural size.
//
// The transformed bounding box is swapped when the quantized rotation is
// 90 degrees, so the reported frame stays landscape-major. ShouldProcess
// is false only for the exact identity transform with no resolution
// request: any other transform forces processing even when the net
// bounding box happens to match the input (a 180 degree rotation, for
// example, still moves every pixel).
//
// Plan is a pure function and is total over valid inputs (input.IsValid()
// and m finite and invertible); both output dimensions are positive.
func Plan(input Size, m Matrix, requestedHeight int) PlanResult {
	bounds, rot := Analyze(m, input)

	output := bounds
	if rot == 90 {
		output = bounds.Swapped()
	}

	if requestedHeight > 0 {
		aspect := float64(output.Width) / float64(output.Height)
		output = Size{
			Width:  max(1, int(math.Round(float64(requestedHeight)*aspect))),
			Height: requestedHeight,
		}
	}

	return PlanResult{
		Output:          output,
		RotationDegrees: rot,
		ShouldProcess:   !(m.IsIdentity() && requestedHeight == HeightUnset),
	}
}
