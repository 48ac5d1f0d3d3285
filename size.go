package framefit

import "fmt"

// Size is a frame's pixel dimensions. Both Width and Height must be
// positive for a Size to describe a real frame.
type Size struct {
	Width  int
	Height int
}

// IsValid returns true if both dimensions are positive.
func (s Size) IsValid() bool {
	return s.Width > 0 && s.Height > 0
}

// Landscape returns true if the size is landscape-major (width >= height).
func (s Size) Landscape() bool {
	return s.Width >= s.Height
}

// Swapped returns the size with width and height exchanged.
func (s Size) Swapped() Size {
	return Size{Width: s.Height, Height: s.Width}
}

// String returns the size as "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}
