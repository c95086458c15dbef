package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/lockscan/internal/ui/style"
)

func TestHex(t *testing.T) {
	assert.Equal(t, "#D93025", style.Hex(style.Red))
	assert.Equal(t, "#22A06B", style.Hex(style.Green))
}
