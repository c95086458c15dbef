package scan

import "go.trai.ch/lockscan/internal/core/domain"

// Match filters all through isAffected. The relative order of all is preserved, so a
// sorted input yields a sorted AffectedPackages.
func Match(all []string, isAffected func(string) bool) domain.Report {
	affected := make([]string, 0)
	for _, id := range all {
		if isAffected(id) {
			affected = append(affected, id)
		}
	}

	return domain.Report{
		AllPackages:      all,
		AffectedPackages: affected,
	}
}
