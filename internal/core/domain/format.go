package domain

// Format selects how results are written to stdout.
type Format string

const (
	// FormatAuto picks a format from the environment.
	FormatAuto Format = "auto"
	// FormatText is the human-readable summary.
	FormatText Format = "text"
	// FormatJSON is a single machine-readable JSON document.
	FormatJSON Format = "json"
)

// ParseFormat converts a user-supplied format name. An empty name means FormatAuto.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", Tag(ErrInvalidFormat, "format", name)
	}
}
