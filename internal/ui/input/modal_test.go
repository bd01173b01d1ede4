package input

import (
	"testing"

	"github.com/bnema/fractui/internal/domain/entity"
)

func TestCurrentMode(t *testing.T) {
	tests := []struct {
		name    string
		quit    bool
		help    bool
		editing bool
		want    Mode
	}{
		{name: "fresh session", want: ModeNormal},
		{name: "quit prompt", quit: true, want: ModeQuitConfirm},
		{name: "help", help: true, want: ModeHelp},
		{name: "editing", editing: true, want: ModeTextCapture},
		{name: "quit wins over help", quit: true, help: true, want: ModeQuitConfirm},
		{name: "help wins over editing", help: true, editing: true, want: ModeHelp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := entity.NewSession(entity.DefaultPaneDefaults())
			s.ShowQuitPopup = tt.quit
			s.ShowHelpPopup = tt.help
			if tt.editing {
				s.ActivePane().ActiveInput = entity.InputReal
			}

			if got := CurrentMode(s); got != tt.want {
				t.Errorf("CurrentMode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMode_String(t *testing.T) {
	if ModeTextCapture.String() != "text_capture" {
		t.Errorf("ModeTextCapture.String() = %q", ModeTextCapture.String())
	}
	if Mode(99).String() != "unknown" {
		t.Errorf("Mode(99).String() = %q", Mode(99).String())
	}
}
