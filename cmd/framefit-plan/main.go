// Command framefit-plan runs the frame-geometry planner from the command
// line and prints the resulting plan.
//
// The transform is composed from flags, applied in order: scale, shear,
// then rotation. Example:
//
//	framefit-plan -width 1920 -height 1080 -sx 0.5 -rotate 90 -target-height 720
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/framefit"
)

func main() {
	var (
		width        = flag.Int("width", 1920, "input frame width in pixels")
		height       = flag.Int("height", 1080, "input frame height in pixels")
		sx           = flag.Float64("sx", 1, "horizontal scale factor")
		sy           = flag.Float64("sy", 1, "vertical scale factor")
		shearX       = flag.Float64("shear-x", 0, "horizontal shear factor")
		shearY       = flag.Float64("shear-y", 0, "vertical shear factor")
		rotate       = flag.Float64("rotate", 0, "rotation in degrees, counter-clockwise")
		targetHeight = flag.Int("target-height", framefit.HeightUnset, "requested output height (0 = natural size)")
		verbose      = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		framefit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	m := framefit.RotateDegrees(*rotate).
		Multiply(framefit.Shear(*shearX, *shearY)).
		Multiply(framefit.Scale(*sx, *sy))

	p := framefit.New(m, framefit.WithRequestedHeight(*targetHeight))
	out, err := p.Configure(*width, *height)
	if err != nil {
		log.Fatalf("plan failed: %v", err)
	}

	rot, _ := p.OutputRotationDegrees()
	need, _ := p.ShouldProcess()

	fmt.Printf("input:          %dx%d\n", *width, *height)
	fmt.Printf("output:         %s\n", out)
	fmt.Printf("rotation:       %d\n", rot)
	fmt.Printf("shouldProcess:  %v\n", need)
}
