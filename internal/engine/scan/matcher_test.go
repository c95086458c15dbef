package scan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/lockscan/internal/core/domain"
	"go.trai.ch/lockscan/internal/engine/scan"
)

func TestMatch(t *testing.T) {
	affected := domain.NewAffectedSet([]string{"left-pad@1.0.0", "chalk@5.6.1"})
	all := []string{"chalk@5.6.0", "chalk@5.6.1", "left-pad@1.0.0", "right-pad@2.0.0"}

	report := scan.Match(all, affected.HasPackage)

	assert.Equal(t, all, report.AllPackages)
	assert.Equal(t, []string{"chalk@5.6.1", "left-pad@1.0.0"}, report.AffectedPackages)
	assert.Subset(t, report.AllPackages, report.AffectedPackages)
	assert.False(t, report.Clean())
}

func TestMatch_Empty(t *testing.T) {
	report := scan.Match(nil, func(string) bool { return true })
	assert.Empty(t, report.AllPackages)
	assert.NotNil(t, report.AffectedPackages)
	assert.True(t, report.Clean())
}
