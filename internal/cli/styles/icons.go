package styles

// Nerd Font glyphs used by CLI output.
const (
	IconHome      = "\uf015" // home
	IconGlobe     = "\uf0ac" // browser/web
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconHeart     = "\uf004" // heart
	IconGo        = "\ue627" // go gopher
	IconArrow     = "\uf061" // arrow right

	IconCheck   = "\uf00c"
	IconX       = "\uf00d"
	IconWarning = "\uf071"
	IconInfo    = "\uf05a"

	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
	IconLogs     = "\uf0f6" // file-text
	IconTab      = "\uf0ce"
	IconClock    = "\uf017"
	IconPlay     = "\uf04b" // running
	IconStop     = "\uf04d" // stopped
)
