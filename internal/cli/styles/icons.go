package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconGo        = "\ue627" // go gopher
	IconCPU       = "\uf2db" // microchip
	IconConfig    = "\ue615" // config
	IconLogs      = "\uf0f6" // file-text
	IconX         = "\uf00d" // x
	IconCursor    = "\uf054" // chevron-right
)
