// Package affected supplies the list of known-compromised package versions.
package affected

import (
	"bufio"
	"bytes"
	_ "embed"
	"strings"

	"go.trai.ch/lockscan/internal/core/ports"
	"go.trai.ch/zerr"
)

//go:embed data/affected-packages.txt
var embeddedList []byte

// csvHeader is the first line of list files exported as CSV.
const csvHeader = "package_name"

// Source reads affected lists from the binary and from list files.
type Source struct {
	reader ports.FileReader
}

// NewSource creates a Source that reads list files through reader.
func NewSource(reader ports.FileReader) *Source {
	return &Source{reader: reader}
}

// Embedded returns the entries of the built-in list.
func (s *Source) Embedded() []string {
	return ParseList(embeddedList)
}

// ReadList returns the entries of the list file at path.
func (s *Source) ReadList(path string) ([]string, error) {
	data, err := s.reader.Read(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read affected list"), "list", path)
	}
	return ParseList(data), nil
}

// ParseList splits list content into raw entries. Blank lines, '#' comments and a CSV
// header are skipped, and only the first CSV column of each line is kept.
// Lines have no length limit, so an oversized entry never hides the entries after it.
// Entries are returned unvalidated so that the caller decides how to treat bad ones.
func ParseList(data []byte) []string {
	var entries []string

	r := bufio.NewReader(bytes.NewReader(data))
	for {
		raw, err := r.ReadString('\n')
		if line, ok := listEntry(raw); ok {
			entries = append(entries, line)
		}
		if err != nil {
			// bytes.Reader only fails with io.EOF.
			break
		}
	}

	return entries
}

func listEntry(raw string) (string, bool) {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", false
	}

	if field, _, found := strings.Cut(line, ","); found {
		line = strings.Trim(strings.TrimSpace(field), `"`)
	}
	if strings.EqualFold(line, csvHeader) {
		return "", false
	}

	return line, true
}
