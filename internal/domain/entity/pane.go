package entity

// PaneID uniquely identifies a pane. IDs are allocated monotonically
// by the session and never reused.
type PaneID int

// InputField identifies which Julia constant component is being edited.
type InputField int

const (
	InputNone InputField = iota // No text entry in progress
	InputReal                   // Editing the real part of the Julia constant
	InputImag                   // Editing the imaginary part of the Julia constant
)

func (f InputField) String() string {
	switch f {
	case InputReal:
		return "real"
	case InputImag:
		return "imag"
	default:
		return "none"
	}
}

// Iteration cap constants.
const (
	DefaultMaxIterations = 1100
	MinIterations        = 10
	IterationStep        = 10
)

// Default Julia constant.
const (
	DefaultJuliaReal = -0.8
	DefaultJuliaImag = 0.156
)

// PaneDefaults holds the state a fresh or reset pane starts from.
type PaneDefaults struct {
	CenterX       float64
	CenterY       float64
	Scale         float64
	MaxIterations int
	JuliaReal     float64
	JuliaImag     float64
	Palette       Palette
	FractalType   FractalType
}

// DefaultPaneDefaults returns the built-in defaults.
func DefaultPaneDefaults() PaneDefaults {
	return PaneDefaults{
		CenterX:       DefaultCenterX,
		CenterY:       DefaultCenterY,
		Scale:         DefaultScale,
		MaxIterations: DefaultMaxIterations,
		JuliaReal:     DefaultJuliaReal,
		JuliaImag:     DefaultJuliaImag,
		Palette:       PaletteClassic,
		FractalType:   FractalMandelbrot,
	}
}

// Pane is one independently navigable fractal viewport (a tree leaf).
type Pane struct {
	ID PaneID

	// View. Scale is the visible height in math units; the width is
	// derived from the rendered rectangle and never stored.
	CenterX float64
	CenterY float64
	Scale   float64

	Palette       Palette
	FractalType   FractalType
	MaxIterations int

	// Julia constant, only meaningful when FractalType is FractalJulia.
	JuliaReal float64
	JuliaImag float64

	// Text entry for the Julia constant.
	ActiveInput InputField
	InputBuffer []rune

	// Area is the last rendered rectangle. Written only by the layout
	// pass, read by input handling for hit-testing and coordinate mapping.
	Area Rect
}

// NewPane creates a pane in its default state.
func NewPane(id PaneID, d PaneDefaults) *Pane {
	maxIter := d.MaxIterations
	if maxIter < MinIterations {
		maxIter = MinIterations
	}
	return &Pane{
		ID:            id,
		CenterX:       d.CenterX,
		CenterY:       d.CenterY,
		Scale:         d.Scale,
		Palette:       d.Palette,
		FractalType:   d.FractalType,
		MaxIterations: maxIter,
		JuliaReal:     d.JuliaReal,
		JuliaImag:     d.JuliaImag,
	}
}

// Clone returns a deep copy of the pane, including its ID.
func (p *Pane) Clone() *Pane {
	c := *p
	if p.InputBuffer != nil {
		c.InputBuffer = append([]rune(nil), p.InputBuffer...)
	}
	return &c
}

// Reset restores center, scale and iteration cap, and the Julia constant
// when the pane shows a Julia set. Palette and fractal type are kept.
func (p *Pane) Reset(d PaneDefaults) {
	p.CenterX = d.CenterX
	p.CenterY = d.CenterY
	p.Scale = d.Scale
	p.MaxIterations = d.MaxIterations
	if p.MaxIterations < MinIterations {
		p.MaxIterations = MinIterations
	}
	if p.FractalType == FractalJulia {
		p.JuliaReal = d.JuliaReal
		p.JuliaImag = d.JuliaImag
	}
}

// CyclePalette advances to the next palette.
func (p *Pane) CyclePalette() {
	p.Palette = p.Palette.Next()
}

// CycleFractalType advances to the next fractal family.
func (p *Pane) CycleFractalType() {
	p.FractalType = p.FractalType.Next()
}

// IncreaseIterations raises the iteration cap by one step.
func (p *Pane) IncreaseIterations() {
	p.MaxIterations += IterationStep
}

// DecreaseIterations lowers the iteration cap by one step, never below MinIterations.
func (p *Pane) DecreaseIterations() {
	p.MaxIterations -= IterationStep
	if p.MaxIterations < MinIterations {
		p.MaxIterations = MinIterations
	}
}

// IsEditing reports whether a Julia text entry is in progress.
func (p *Pane) IsEditing() bool {
	return p.ActiveInput != InputNone
}

// InputRow returns the screen row of the click target for the given field.
// The rows sit just above the bottom border of the pane.
func (p *Pane) InputRow(field InputField) int {
	switch field {
	case InputReal:
		return p.Area.Bottom() - 3
	case InputImag:
		return p.Area.Bottom() - 2
	default:
		return -1
	}
}

// InputFieldAt returns the Julia input field drawn at (col, row), if any.
func (p *Pane) InputFieldAt(col, row int) InputField {
	if p.FractalType != FractalJulia {
		return InputNone
	}
	inner := p.Area.Inner()
	if inner.Empty() || col < inner.X || col >= inner.Right() {
		return InputNone
	}
	for _, f := range []InputField{InputReal, InputImag} {
		r := p.InputRow(f)
		if r == row && r >= inner.Y && r < inner.Bottom() {
			return f
		}
	}
	return InputNone
}
