package ports

import (
	"io"

	"go.trai.ch/lockscan/internal/core/domain"
)

// Renderer writes command results to an output stream.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// RenderScan writes the result of scanning a manifest.
	RenderScan(w io.Writer, summary domain.ScanSummary) error

	// RenderList writes the contents of the loaded affected list.
	RenderList(w io.Writer, summary domain.ListSummary) error

	// RenderLookup writes the listed versions of a single package.
	RenderLookup(w io.Writer, summary domain.LookupSummary) error
}

// RendererFactory selects a Renderer for an output format.
type RendererFactory interface {
	// For returns the renderer for format. FormatAuto is resolved from the environment.
	For(format domain.Format) (Renderer, error)
}
