package cli

const (
	FlagHome     = "home"
	FlagURL      = "url"
	FlagUser     = "user"
	FlagPassword = "password"
	FlagFormat   = "format"
)

const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatJSON = "json"
)
