// Package style provides the shared colour palette and icons used by the terminal output.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Slate  = lipgloss.Color("#667085")
	Iris   = lipgloss.Color("#8B5CF6")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Bullet  = "•"
	Arrow   = "→"
)

// Hex returns the colour as the hex string termenv expects.
func Hex(c lipgloss.Color) string {
	return string(c)
}
