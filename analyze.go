package framefit

import "math"

// MapBounds maps the four corners of a size.Width x size.Height rectangle
// anchored at the origin through m and returns the axis-aligned bounding
// box of the result: its top-left corner and its extents.
//
// The caller must ensure m is invertible and finite; a degenerate
// transform yields a degenerate (zero-area) box.
func MapBounds(m Matrix, size Size) (minX, minY, width, height float64) {
	w := float64(size.Width)
	h := float64(size.Height)

	corners := [4][2]float64{
		{0, 0},
		{w, 0},
		{0, h},
		{w, h},
	}

	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		x, y := m.TransformPoint(c[0], c[1])
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	return minX, minY, maxX - minX, maxY - minY
}

// Analyze computes the transformed bounding box of an input frame and the
// quantized rotation that keeps the output landscape-major.
//
// The bounding box extents are rounded to the nearest pixel, halves away
// from zero. The rotation is derived from the shape outcome alone: a
// portrait box (width < height) selects a 90 degree compensating rotation,
// anything else selects 0. The rotation is orientation metadata for the
// downstream encoder; it is never baked into pixels.
func Analyze(m Matrix, size Size) (bounds Size, rotationDegrees int) {
	_, _, w, h := MapBounds(m, size)

	// math.Round is round-half-away-from-zero, the rounding rule used
	// throughout the planner. A frame never collapses below one pixel,
	// however extreme the downscale.
	bounds = Size{
		Width:  max(1, int(math.Round(w))),
		Height: max(1, int(math.Round(h))),
	}
	if bounds.Width < bounds.Height {
		rotationDegrees = 90
	}
	return bounds, rotationDegrees
}
