package report

import (
	"github.com/muesli/termenv"
	"go.trai.ch/lockscan/internal/adapters/detector"
	"go.trai.ch/lockscan/internal/core/domain"
	"go.trai.ch/lockscan/internal/core/ports"
)

// Factory selects a renderer for a requested format.
type Factory struct {
	profile termenv.Profile
}

// NewFactory creates a Factory whose text renderer uses profile.
func NewFactory(profile termenv.Profile) *Factory {
	return &Factory{profile: profile}
}

// For returns the renderer for format, resolving FormatAuto through the detector.
func (f *Factory) For(format domain.Format) (ports.Renderer, error) {
	switch format {
	case domain.FormatAuto, domain.FormatText, domain.FormatJSON:
	default:
		return nil, domain.Tag(domain.ErrInvalidFormat, "format", string(format))
	}

	if detector.ResolveFormat(format) == domain.FormatJSON {
		return NewJSON(), nil
	}
	return NewText(f.profile), nil
}
