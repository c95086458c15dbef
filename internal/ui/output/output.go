// Package output creates termenv outputs with a colour profile that honours NO_COLOR and
// degrades to plain text when the destination is not a terminal.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile returns the profile for the current environment.
// NO_COLOR forces Ascii; otherwise the terminal's capabilities are detected.
func ColorProfile() termenv.Profile {
	if noColor() {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// ProfileFor picks the profile for a destination that is or is not a terminal.
// CI logs render ANSI colours even though stdout is a pipe there.
func ProfileFor(isTTY, isCI bool) termenv.Profile {
	switch {
	case noColor():
		return termenv.Ascii
	case isCI:
		return termenv.ANSI
	case !isTTY:
		return termenv.Ascii
	default:
		return termenv.EnvColorProfile()
	}
}

// New creates a termenv.Output on w using ColorProfile. A nil writer means os.Stderr.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	return NewWithProfile(w, ColorProfile(), opts...)
}

// NewWithProfile creates a termenv.Output on w with a fixed profile.
func NewWithProfile(w io.Writer, profile termenv.Profile, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(profile),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}

func noColor() bool {
	return os.Getenv("NO_COLOR") != ""
}
