package domain

import "strings"

// CompareVersions orders two version strings, comparing runs of digits by numeric value and
// everything else byte by byte, so "10.0.0" sorts after "9.0.0".
//
// This is not semantic-version precedence: a pre-release such as "1.0.0-beta" sorts after
// "1.0.0" because the longer string wins once the common runs are equal.
func CompareVersions(a, b string) int {
	for a != "" && b != "" {
		ra, restA := nextRun(a)
		rb, restB := nextRun(b)

		var c int
		if isDigit(ra[0]) && isDigit(rb[0]) {
			c = compareNumeric(ra, rb)
		} else {
			c = strings.Compare(ra, rb)
		}
		if c != 0 {
			return c
		}

		a, b = restA, restB
	}

	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	default:
		return 1
	}
}

// nextRun splits s into its leading run of digits or non-digits and the remainder.
func nextRun(s string) (string, string) {
	digits := isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == digits {
		i++
	}
	return s[:i], s[i:]
}

// compareNumeric compares two digit runs by value without overflowing on long runs.
// Runs of equal value ("01" and "1") fall back to byte order to keep the result total.
func compareNumeric(a, b string) int {
	ta := strings.TrimLeft(a, "0")
	tb := strings.TrimLeft(b, "0")

	if len(ta) != len(tb) {
		if len(ta) < len(tb) {
			return -1
		}
		return 1
	}
	if c := strings.Compare(ta, tb); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
