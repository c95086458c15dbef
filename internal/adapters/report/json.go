package report

import (
	"encoding/json"
	"io"

	"go.trai.ch/lockscan/internal/core/domain"
)

// JSON renders each result as a single indented JSON document.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

type listDocument struct {
	Size        int    `json:"size"`
	Fingerprint string `json:"fingerprint"`
}

type scanDocument struct {
	Manifest         string       `json:"manifest"`
	Clean            bool         `json:"clean"`
	TotalPackages    int          `json:"totalPackages"`
	AffectedCount    int          `json:"affectedCount"`
	AffectedPackages []string     `json:"affectedPackages"`
	List             listDocument `json:"list"`
}

type listSummaryDocument struct {
	Total       int      `json:"total"`
	Fingerprint string   `json:"fingerprint"`
	Names       []string `json:"names"`
}

type lookupDocument struct {
	Name     string   `json:"name"`
	Found    bool     `json:"found"`
	Versions []string `json:"versions"`
	Latest   string   `json:"latest,omitempty"`
}

// RenderScan writes the scan result.
func (r *JSON) RenderScan(w io.Writer, summary domain.ScanSummary) error {
	report := summary.Report
	return encode(w, scanDocument{
		Manifest:         report.Manifest,
		Clean:            report.Clean(),
		TotalPackages:    len(report.AllPackages),
		AffectedCount:    len(report.AffectedPackages),
		AffectedPackages: nonNil(report.AffectedPackages),
		List: listDocument{
			Size:        summary.ListSize,
			Fingerprint: summary.ListFingerprint,
		},
	})
}

// RenderList writes the list summary.
func (r *JSON) RenderList(w io.Writer, summary domain.ListSummary) error {
	return encode(w, listSummaryDocument{
		Total:       summary.Total,
		Fingerprint: summary.Fingerprint,
		Names:       nonNil(summary.Names),
	})
}

// RenderLookup writes the lookup result.
func (r *JSON) RenderLookup(w io.Writer, summary domain.LookupSummary) error {
	return encode(w, lookupDocument{
		Name:     summary.Name,
		Found:    summary.Found(),
		Versions: nonNil(summary.Versions),
		Latest:   summary.Latest,
	})
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// nonNil keeps empty lists as [] instead of null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
