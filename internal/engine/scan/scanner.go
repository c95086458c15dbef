package scan

import (
	"context"

	"go.trai.ch/lockscan/internal/core/domain"
	"go.trai.ch/lockscan/internal/core/ports"
	"go.trai.ch/zerr"
)

// Scanner runs the guarded read, parse, extract and match pipeline for one manifest.
type Scanner struct {
	guard     ports.PathGuard
	reader    ports.FileReader
	parser    ports.JSONParser
	extractor *Extractor
}

// NewScanner creates a new Scanner.
func NewScanner(guard ports.PathGuard, reader ports.FileReader, parser ports.JSONParser) *Scanner {
	return &Scanner{
		guard:     guard,
		reader:    reader,
		parser:    parser,
		extractor: NewExtractor(),
	}
}

// Packages returns the canonical manifest path and the packages installed according to it.
// A directory path is resolved to manifestName inside it.
func (s *Scanner) Packages(ctx context.Context, path, manifestName string) (string, []string, error) {
	canonical, err := s.guard.Validate(path)
	if err != nil {
		return "", nil, err
	}

	manifest, err := s.reader.Locate(canonical, manifestName)
	if err != nil {
		return "", nil, err
	}
	if manifest != canonical {
		// manifestName comes from configuration and must not escape the directory.
		if manifest, err = s.guard.Validate(manifest); err != nil {
			return "", nil, err
		}
	}

	data, err := s.reader.Read(manifest)
	if err != nil {
		return "", nil, err
	}

	if err := ctx.Err(); err != nil {
		return "", nil, zerr.Wrap(err, "scan cancelled")
	}

	tree, err := s.parser.Parse(data)
	if err != nil {
		return "", nil, domain.Tag(err, "manifest", manifest)
	}

	packages, err := s.extractor.Extract(tree)
	if err != nil {
		return "", nil, domain.Tag(err, "manifest", manifest)
	}

	return manifest, packages, nil
}

// Scan checks the manifest at path against affected.
func (s *Scanner) Scan(ctx context.Context, path, manifestName string, affected *domain.AffectedSet) (domain.Report, error) {
	manifest, packages, err := s.Packages(ctx, path, manifestName)
	if err != nil {
		return domain.Report{}, err
	}

	report := Match(packages, affected.HasPackage)
	report.Manifest = manifest
	return report, nil
}
