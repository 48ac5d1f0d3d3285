package framefit

import (
	"errors"
	"fmt"
)

// Common errors returned by Processor operations.
var (
	// ErrNotConfigured is returned when a plan-dependent operation is
	// invoked before Configure has run.
	ErrNotConfigured = errors.New("framefit: processor not configured")

	// ErrInvalidSize is returned when input dimensions are not positive.
	ErrInvalidSize = errors.New("framefit: invalid frame size")

	// ErrInvalidTransform is returned when the transform has non-finite
	// coefficients.
	ErrInvalidTransform = errors.New("framefit: non-finite transform")
)

// TextureID is an opaque handle to a GPU texture owned by the caller's
// graphics stack. The planner never dereferences it; it only hands it to
// the FrameBinder.
type TextureID uint64

// FrameBinder binds GPU-side resources for a planned frame. It is the
// boundary to the out-of-process GPU collaborator: backend/wgpu provides
// a compute-shader implementation, and tests can substitute their own.
//
// Implementations receive the full transform and input dimensions
// alongside the plan because the residual resample pass needs the
// original matrix and source extents, not just the quantized outcome.
type FrameBinder interface {
	BindFrame(transform Matrix, input Size, plan PlanResult, tex TextureID) error
}

// Processor plans the geometry of one frame-processing stage and gates
// GPU resource binding on that plan existing.
//
// Processor is a two-state machine. It starts unconfigured; Configure
// computes and stores a PlanResult, after which the accessors and
// InitializeResource become valid. Calling Configure again recomputes and
// overwrites the plan; callers are expected to configure once per stage.
//
// Processor is NOT safe for concurrent use. It is designed to live on the
// thread that owns the surrounding GPU execution context.
type Processor struct {
	transform       Matrix
	requestedHeight int

	// plan doubles as the state tag: nil means unconfigured.
	plan *PlanResult

	// input is the frame size Configure was called with; valid only
	// when plan is non-nil.
	input Size
}

// Option configures a Processor during creation.
type Option func(*Processor)

// WithRequestedHeight requests a specific output height in pixels. The
// output width is rescaled to preserve the planned aspect ratio. A
// non-positive value is ignored, leaving the natural output size.
func WithRequestedHeight(h int) Option {
	return func(p *Processor) {
		if h > 0 {
			p.requestedHeight = h
		}
	}
}

// New creates a Processor that will apply the given transform.
func New(transform Matrix, opts ...Option) *Processor {
	p := &Processor{
		transform:       transform,
		requestedHeight: HeightUnset,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Configure plans the output geometry for an input frame of the given
// dimensions and transitions the Processor to its configured state.
// It returns the planned output dimensions.
//
// Configure fails fast on out-of-domain input: non-positive dimensions
// or a transform with non-finite coefficients.
func (p *Processor) Configure(width, height int) (Size, error) {
	input := Size{Width: width, Height: height}
	if !input.IsValid() {
		return Size{}, fmt.Errorf("%w: %s", ErrInvalidSize, input)
	}
	if !p.transform.IsFinite() {
		return Size{}, ErrInvalidTransform
	}

	plan := Plan(input, p.transform, p.requestedHeight)
	p.plan = &plan
	p.input = input

	Logger().Debug("framefit: configured",
		"input", input.String(),
		"output", plan.Output.String(),
		"rotation", plan.RotationDegrees,
		"shouldProcess", plan.ShouldProcess)

	return plan.Output, nil
}

// result is the single place the configured/unconfigured state is
// inspected; every plan-dependent method goes through it.
func (p *Processor) result() (*PlanResult, error) {
	if p.plan == nil {
		return nil, ErrNotConfigured
	}
	return p.plan, nil
}

// Plan returns the stored PlanResult.
func (p *Processor) Plan() (PlanResult, error) {
	plan, err := p.result()
	if err != nil {
		return PlanResult{}, err
	}
	return *plan, nil
}

// OutputSize returns the planned output dimensions.
func (p *Processor) OutputSize() (Size, error) {
	plan, err := p.result()
	if err != nil {
		return Size{}, err
	}
	return plan.Output, nil
}

// OutputRotationDegrees returns the residual rotation (0 or 90) that the
// consumer must apply as orientation metadata.
func (p *Processor) OutputRotationDegrees() (int, error) {
	plan, err := p.result()
	if err != nil {
		return 0, err
	}
	return plan.RotationDegrees, nil
}

// ShouldProcess reports whether a pixel-level resampling pass is needed.
func (p *Processor) ShouldProcess() (bool, error) {
	plan, err := p.result()
	if err != nil {
		return false, err
	}
	return plan.ShouldProcess, nil
}

// InitializeResource hands the plan and the input texture to the GPU
// collaborator. The binder is passed explicitly rather than held as
// ambient state so the Processor stays context-free and testable.
//
// Valid only after Configure; the Processor's own state is not mutated.
func (p *Processor) InitializeResource(binder FrameBinder, tex TextureID) error {
	plan, err := p.result()
	if err != nil {
		return err
	}
	if binder == nil {
		return errors.New("framefit: binder must not be nil")
	}
	return binder.BindFrame(p.transform, p.input, *plan, tex)
}
