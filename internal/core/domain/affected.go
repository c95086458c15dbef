package domain

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// SkippedEntry is a list entry that could not be loaded, with the reason.
type SkippedEntry struct {
	Entry string
	Err   error
}

// AffectedSetOption configures NewAffectedSet.
type AffectedSetOption func(*affectedSetConfig)

type affectedSetConfig struct {
	validate func(string) error
}

// WithValidator runs fn on every entry before it is parsed. Entries for which fn returns an
// error are skipped with that error.
func WithValidator(fn func(string) error) AffectedSetOption {
	return func(c *affectedSetConfig) {
		c.validate = fn
	}
}

// AffectedSet is the immutable lookup of known-compromised packages keyed by full name.
type AffectedSet struct {
	records map[string]PackageRecord
	order   []string
	skipped []SkippedEntry
}

// NewAffectedSet builds the set from raw "name@version" entries.
// A malformed entry is recorded in Skipped and never aborts loading the rest.
// Duplicate entries overwrite the earlier record but keep its original position.
func NewAffectedSet(entries []string, opts ...AffectedSetOption) *AffectedSet {
	cfg := &affectedSetConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	s := &AffectedSet{
		records: make(map[string]PackageRecord, len(entries)),
		order:   make([]string, 0, len(entries)),
	}

	for _, entry := range entries {
		if cfg.validate != nil {
			if err := cfg.validate(entry); err != nil {
				s.skipped = append(s.skipped, SkippedEntry{Entry: entry, Err: err})
				continue
			}
		}

		record, err := ParsePackageString(entry)
		if err != nil {
			s.skipped = append(s.skipped, SkippedEntry{Entry: entry, Err: err})
			continue
		}

		if _, exists := s.records[record.FullName]; !exists {
			s.order = append(s.order, record.FullName)
		}
		s.records[record.FullName] = record
	}

	return s
}

// HasPackage reports whether fullName is in the set. Empty input is never affected.
func (s *AffectedSet) HasPackage(fullName string) bool {
	if s == nil || fullName == "" {
		return false
	}
	_, ok := s.records[fullName]
	return ok
}

// PackagesByName returns every record with the given name in insertion order.
func (s *AffectedSet) PackagesByName(name string) []PackageRecord {
	var result []PackageRecord
	for _, fullName := range s.order {
		if record := s.records[fullName]; record.Name == name {
			result = append(result, record)
		}
	}
	return result
}

// LatestVersion returns the record with the greatest version for name under CompareVersions.
// On ties the record inserted first wins.
func (s *AffectedSet) LatestVersion(name string) (PackageRecord, bool) {
	var (
		latest PackageRecord
		found  bool
	)
	for _, record := range s.PackagesByName(name) {
		if !found || CompareVersions(record.Version, latest.Version) > 0 {
			latest = record
			found = true
		}
	}
	return latest, found
}

// AllPackageNames returns the unique package names, sorted ascending.
func (s *AffectedSet) AllPackageNames() []string {
	seen := make(map[string]struct{}, len(s.records))
	names := make([]string, 0, len(s.records))
	for _, record := range s.records {
		if _, ok := seen[record.Name]; ok {
			continue
		}
		seen[record.Name] = struct{}{}
		names = append(names, record.Name)
	}
	slices.Sort(names)
	return names
}

// TotalCount returns the number of distinct full names in the set.
func (s *AffectedSet) TotalCount() int {
	return len(s.records)
}

// Skipped returns the entries rejected while building the set, in input order.
func (s *AffectedSet) Skipped() []SkippedEntry {
	return slices.Clone(s.skipped)
}

// Fingerprint returns a digest of the set's contents that is independent of entry order.
func (s *AffectedSet) Fingerprint() string {
	keys := slices.Clone(s.order)
	slices.Sort(keys)

	hasher := xxhash.New()
	for _, key := range keys {
		_, _ = hasher.WriteString(key)
		_, _ = hasher.WriteString("\n")
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}
