// Package detector inspects the process environment to decide how results are rendered.
package detector

import (
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/lockscan/internal/core/domain"
	"go.trai.ch/lockscan/internal/ui/output"
	"golang.org/x/term"
)

// Environment describes the destination of the scan output.
type Environment struct {
	// IsTTY is true when stdout is an interactive terminal.
	IsTTY bool
	// IsCI is true when the CI environment variable is "true" or "1".
	IsCI bool
}

// DetectEnvironment inspects stdout and the CI environment variable.
func DetectEnvironment() Environment {
	return Detect(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv)
}

// Detect builds an Environment from a TTY flag and an environment lookup.
func Detect(isTTY bool, getenv func(string) string) Environment {
	ci := getenv("CI")
	return Environment{
		IsTTY: isTTY,
		IsCI:  ci == "true" || ci == "1",
	}
}

// ColorProfile returns the termenv profile for text output in this environment.
func (e Environment) ColorProfile() termenv.Profile {
	return output.ProfileFor(e.IsTTY, e.IsCI)
}

// ResolveFormat turns the requested format into a concrete one. Auto renders text.
func ResolveFormat(requested domain.Format) domain.Format {
	switch requested {
	case domain.FormatJSON:
		return domain.FormatJSON
	default:
		return domain.FormatText
	}
}
