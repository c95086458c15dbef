package domain

// Report is the outcome of matching a manifest against the affected set.
type Report struct {
	// Manifest is the canonical path of the scanned lockfile.
	Manifest string

	// AllPackages holds every installed "name@version", sorted ascending.
	AllPackages []string

	// AffectedPackages holds the subset of AllPackages found in the affected set,
	// in the same order.
	AffectedPackages []string
}

// Clean reports whether no affected package was found.
func (r Report) Clean() bool {
	return len(r.AffectedPackages) == 0
}

// ScanSummary is a Report together with the affected list it was checked against.
type ScanSummary struct {
	Report          Report
	ListSize        int
	ListFingerprint string
}

// ListSummary describes the loaded affected list.
type ListSummary struct {
	Total       int
	Fingerprint string
	Names       []string
}

// LookupSummary describes every listed version of a single package name.
type LookupSummary struct {
	Name     string
	Versions []string
	Latest   string
}

// Found reports whether the name has any listed version.
func (l LookupSummary) Found() bool {
	return len(l.Versions) > 0
}
