package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bnema/fractui/internal/domain/entity"
	"github.com/bnema/fractui/internal/logging"
)

// EditJuliaConstantUseCase drives text entry for a pane's Julia constant.
type EditJuliaConstantUseCase struct{}

// NewEditJuliaConstantUseCase creates a new Julia constant editor.
func NewEditJuliaConstantUseCase() *EditJuliaConstantUseCase {
	return &EditJuliaConstantUseCase{}
}

// Begin starts editing field on the pane with an empty buffer.
func (uc *EditJuliaConstantUseCase) Begin(ctx context.Context, p *entity.Pane, field entity.InputField) error {
	if p == nil {
		return fmt.Errorf("pane is required")
	}
	if field == entity.InputNone {
		return fmt.Errorf("input field is required")
	}
	p.ActiveInput = field
	p.InputBuffer = p.InputBuffer[:0]

	logging.FromContext(ctx).Debug().
		Int("pane_id", int(p.ID)).
		Str("field", field.String()).
		Msg("julia input started")
	return nil
}

// IsAccepted reports whether r may be typed into the buffer.
func IsAccepted(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.' || r == '-'
}

// Append adds r to the buffer. Characters other than digits, '.' and '-'
// are ignored; the return value reports whether r was taken.
func (uc *EditJuliaConstantUseCase) Append(p *entity.Pane, r rune) bool {
	if p == nil || !p.IsEditing() || !IsAccepted(r) {
		return false
	}
	p.InputBuffer = append(p.InputBuffer, r)
	return true
}

// Backspace removes the last buffered character.
func (uc *EditJuliaConstantUseCase) Backspace(p *entity.Pane) {
	if p == nil || len(p.InputBuffer) == 0 {
		return
	}
	p.InputBuffer = p.InputBuffer[:len(p.InputBuffer)-1]
}

// Commit parses the buffer and stores it in the edited component of the
// Julia constant. Unparseable input is dropped. Editing ends either way.
// Returns true when a value was stored.
func (uc *EditJuliaConstantUseCase) Commit(ctx context.Context, p *entity.Pane) bool {
	if p == nil || !p.IsEditing() {
		return false
	}
	log := logging.FromContext(ctx)

	field := p.ActiveInput
	text := string(p.InputBuffer)
	p.ActiveInput = entity.InputNone
	p.InputBuffer = nil

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		log.Debug().Err(err).Str("input", text).Msg("discarding julia input")
		return false
	}

	switch field {
	case entity.InputReal:
		p.JuliaReal = v
	case entity.InputImag:
		p.JuliaImag = v
	}

	log.Info().
		Int("pane_id", int(p.ID)).
		Float64("real", p.JuliaReal).
		Float64("imag", p.JuliaImag).
		Msg("julia constant updated")
	return true
}

// Cancel ends editing without touching the constant.
func (uc *EditJuliaConstantUseCase) Cancel(ctx context.Context, p *entity.Pane) {
	if p == nil || !p.IsEditing() {
		return
	}
	logging.FromContext(ctx).Debug().Int("pane_id", int(p.ID)).Msg("julia input cancelled")
	p.ActiveInput = entity.InputNone
	p.InputBuffer = nil
}
