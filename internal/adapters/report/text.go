// Package report renders scan, list and lookup results as text or JSON.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/lockscan/internal/core/domain"
	"go.trai.ch/lockscan/internal/ui/output"
	"go.trai.ch/lockscan/internal/ui/style"
)

const (
	title          = "Package Security Checker"
	ruleWidth      = 50
	recommendation = "Update these packages to secure versions, then reinstall from a clean node_modules."
)

// Text renders human-readable summaries.
type Text struct {
	profile termenv.Profile
}

// NewText creates a text renderer using the given colour profile.
func NewText(profile termenv.Profile) *Text {
	return &Text{profile: profile}
}

// RenderScan writes the checked path, counts, affected packages and a recommendation.
func (r *Text) RenderScan(w io.Writer, summary domain.ScanSummary) error {
	p := r.printer(w)
	report := summary.Report

	p.line(p.bold(title))
	p.line(strings.Repeat("=", ruleWidth))
	p.linef("Checking: %s", report.Manifest)
	p.line("")
	p.linef("Total packages found: %d", len(report.AllPackages))
	p.linef("Affected packages: %d", len(report.AffectedPackages))
	p.line(p.color(style.Slate, fmt.Sprintf("Affected list: %d entries (fingerprint %s)",
		summary.ListSize, summary.ListFingerprint)))
	p.line("")

	if report.Clean() {
		p.line(p.color(style.Green, style.Check+" No affected packages found! Your project appears to be secure."))
		return p.err
	}

	p.line(p.color(style.Red, style.Cross+" AFFECTED PACKAGES DETECTED:"))
	p.line(strings.Repeat("-", ruleWidth))
	for _, pkg := range report.AffectedPackages {
		p.linef("  %s %s", p.color(style.Yellow, style.Warning), pkg)
	}
	p.line("")
	p.linef("Recommendation: %s", recommendation)

	return p.err
}

// RenderList writes the list size, its fingerprint and every unique package name.
func (r *Text) RenderList(w io.Writer, summary domain.ListSummary) error {
	p := r.printer(w)

	p.linef("Affected list: %d entries (fingerprint %s)", summary.Total, summary.Fingerprint)
	p.linef("Packages: %d", len(summary.Names))
	if len(summary.Names) > 0 {
		p.line("")
	}
	for _, name := range summary.Names {
		p.linef("  %s", name)
	}

	return p.err
}

// RenderLookup writes every listed version of a package and the latest of them.
func (r *Text) RenderLookup(w io.Writer, summary domain.LookupSummary) error {
	p := r.printer(w)

	if !summary.Found() {
		p.line(p.color(style.Green, fmt.Sprintf("%s %s is not in the affected list", style.Check, summary.Name)))
		return p.err
	}

	p.line(p.color(style.Red, fmt.Sprintf("%s %s: %d affected version(s)", style.Cross, summary.Name, len(summary.Versions))))
	for _, version := range summary.Versions {
		p.linef("  %s %s", style.Bullet, version)
	}
	p.linef("Latest affected: %s", summary.Latest)

	return p.err
}

func (r *Text) printer(w io.Writer) *printer {
	return &printer{out: output.NewWithProfile(w, r.profile)}
}

// printer writes lines to a termenv output and keeps the first write error.
type printer struct {
	out *termenv.Output
	err error
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = p.out.WriteString(s + "\n")
}

func (p *printer) linef(format string, args ...any) {
	p.line(fmt.Sprintf(format, args...))
}

func (p *printer) color(c lipgloss.Color, s string) string {
	return p.out.String(s).Foreground(p.out.Color(style.Hex(c))).String()
}

func (p *printer) bold(s string) string {
	return p.out.String(s).Bold().String()
}
