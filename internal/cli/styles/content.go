package styles

// Header box content.
const (
	HeaderTitle = "Frac-tui"
	HeaderText  = "Shift+{u,d,l,r}: Split Pane | Shift+x: Close Pane | Tab: Cycle | {1..9}: Switch | r: Reset | Click: Focus | h: Help | Q: Quit"
)

// Popup content.
const (
	HelpTitle   = " Help "
	QuitTitle   = " Warning "
	QuitMessage = "Are you sure you want to quit?\n\n(y) Yes / (n) No"
)

// Popup sizes as percentages of the screen.
const (
	HelpWidthPct  = 60
	HelpHeightPct = 60
	QuitWidthPct  = 60
	QuitHeightPct = 20
)

// HelpRow is one line of the help table.
type HelpRow struct {
	Key    string
	Action string
}

// HelpHeader is the header row of the help table.
var HelpHeader = HelpRow{Key: "Key", Action: "Action"}
