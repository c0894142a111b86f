package meter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHindiMeterStep(t *testing.T) {
	assert.Equal(t, 1, HindiMeterStep('=', 0))
	assert.Equal(t, 2, HindiMeterStep('-', 0))
	assert.Equal(t, -1, HindiMeterStep('-', 2))
	assert.Equal(t, -1, HindiMeterStep('=', 99))
	assert.Equal(t, -1, HindiMeterStep('x', 0))
}

func TestZamzamaMeterStep(t *testing.T) {
	assert.Equal(t, 3, ZamzamaMeterStep('=', 0))
	assert.Equal(t, 1, ZamzamaMeterStep('-', 0))
	assert.Equal(t, -1, ZamzamaMeterStep('=', 1))
}

func TestAcceptsOriginalHindi(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"==", true},     // one فعلن as two longs
		{"====", true},   // two feet
		{"=--==", true},  // long, two shorts substituting, rejoining
		{"=", false},     // dangling long
		{"-", false},     // dead transition from start
		{"=-", false},    // incomplete
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AcceptsOriginalHindi(tt.code), "code %q", tt.code)
	}
}

func TestAcceptsZamzama(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"==", true},
		{"--=", true},
		{"=-", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AcceptsZamzama(tt.code), "code %q", tt.code)
	}
}

func TestPatternTree_Expansion(t *testing.T) {
	pt := NewPatternTree("x=")
	require.Len(t, pt.resolved, 2)
	assert.ElementsMatch(t, []string{"-=", "=="}, pt.resolved)
}

func TestPatternTree_Match(t *testing.T) {
	base := NumStandard() + NumRubai()

	// A two-long code is accepted by both machines and lands in the
	// shortest special meters.
	matches := NewPatternTree("==").Match()
	require.NotEmpty(t, matches)
	var indices []int
	for _, m := range matches {
		indices = append(indices, m.Index)
	}
	assert.Contains(t, indices, base+7)

	// A lone long matches nothing.
	assert.Empty(t, NewPatternTree("=").Match())
}

func TestSpecialMoraRange(t *testing.T) {
	min, max := specialMoraRange("=(=)/=(=)")
	assert.Equal(t, 4, min)
	assert.Equal(t, 8, max)
}
