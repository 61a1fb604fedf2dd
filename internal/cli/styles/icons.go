// Package styles renders tessera's command-line output with lipgloss.
package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGithub    = "" // github
	IconGo        = "" // go gopher
	IconCheck     = "" // check
	IconX         = "" // x
	IconWarning   = "" // warning
	IconInfo      = "" // info
	IconConfig    = "" // config
	IconFolder    = "" // folder
	IconLogs      = "" // file-text
	IconKeyboard  = "" // keyboard
	IconPalette   = "" // paint brush
	IconCursor    = "" // chevron-right
)
