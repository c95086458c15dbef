package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/lockscan/internal/core/domain"
)

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"10.0.0", "9.0.0", 1},
		{"9.0.0", "10.0.0", -1},
		{"1.2.10", "1.2.9", 1},
		{"1.10.0", "1.9.99", 1},
		{"4.1.2", "4.1.1", 1},
		{"1.0.0", "1.0.0-beta", -1},
		{"1.0.0-alpha", "1.0.0-beta", -1},
		{"1.0.0-rc.10", "1.0.0-rc.2", 1},
		{"01.0.0", "1.0.0", -1},
		{"99999999999999999999.0", "1.0", 1},
		{"", "1.0.0", -1},
		{"", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.CompareVersions(tt.a, tt.b))
			assert.Equal(t, -tt.want, domain.CompareVersions(tt.b, tt.a))
		})
	}
}
