// Package input routes terminal key and mouse events to session operations.
package input

import "github.com/bnema/fractui/internal/domain/entity"

// Mode represents the current input mode.
type Mode int

const (
	// ModeNormal dispatches global shortcuts and pane navigation.
	ModeNormal Mode = iota
	// ModeQuitConfirm waits for a yes/no answer to the quit prompt.
	ModeQuitConfirm
	// ModeHelp shows the key reference; most keys are swallowed.
	ModeHelp
	// ModeTextCapture sends every key to a pane's Julia constant editor.
	ModeTextCapture
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeQuitConfirm:
		return "quit_confirm"
	case ModeHelp:
		return "help"
	case ModeTextCapture:
		return "text_capture"
	default:
		return "unknown"
	}
}

// CurrentMode derives the input mode from session state. Popups take
// precedence over text entry.
func CurrentMode(s *entity.Session) Mode {
	switch {
	case s.ShowQuitPopup:
		return ModeQuitConfirm
	case s.ShowHelpPopup:
		return ModeHelp
	case s.EditingPane() != nil:
		return ModeTextCapture
	default:
		return ModeNormal
	}
}
