package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconHeart     = "\uf004" // heart
	IconGo        = "\ue627" // go gopher
	IconArrow     = "\uf061" // arrow right

	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info

	IconBolt     = "\uf0e7" // bolt
	IconSearch   = "\uf002" // search
	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
	IconChart    = "\uf080" // bar chart
	IconPlus     = "\uf067" // plus
	IconTrash    = "\uf1f8" // trash

	IconCursor = "\uf054" // chevron-right
)
