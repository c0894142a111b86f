package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tariquesani/aruuz-nigar/internal/domain"
)

func TestBuildLineResults_DeduplicatesByNameAndCode(t *testing.T) {
	l := line(word("w1", "-==="), word("w2", "-==="))
	l.Original = "two feet"

	// Two paths with the same codes and one shared meter index.
	paths := []ScanPath{
		{
			Nodes:  []PathNode{{Code: "-===", WordRef: 0}, {Code: "-===", WordRef: 1}},
			Meters: []int{118, 118},
		},
	}

	results := buildLineResults(l, paths, false)
	require.Len(t, results, 1)
	assert.Equal(t, "-===-===", results[0].FullCode)
	assert.Equal(t, []string{"-===", "-==="}, results[0].WordTaqti)
	assert.Equal(t, "two feet", results[0].Line)
	assert.False(t, results[0].IsDominant)
}

func TestBuildLineResults_SkipsEmptyCode(t *testing.T) {
	l := line(word("w1", ""))
	paths := []ScanPath{{Nodes: []PathNode{{Code: "", WordRef: 0}}, Meters: []int{0}}}
	assert.Empty(t, buildLineResults(l, paths, false))
}

func TestUnmatchedResult(t *testing.T) {
	l := line(word("w1", "=-"), word("w2", "x"))
	l.Original = "unmatched line"
	l.Words[0].NoteGeneration("heuristic-len-3")

	r := unmatchedResult(l, true)
	assert.Equal(t, domain.UnmatchedMeterName, r.MeterName)
	assert.Equal(t, "=-x", r.FullCode)
	assert.Equal(t, []string{"=-", "x"}, r.WordTaqti)
	assert.True(t, r.Partial)
	assert.NotEmpty(t, r.Explain)
}

func TestSpecialLineResults_HindiReading(t *testing.T) {
	// Four longs form a Hindi-meter reading when nothing standard fits.
	l := line(word("w1", "=="), word("w2", "=="))
	l.Original = "hindi line"

	results := specialLineResults(l, false)
	require.NotEmpty(t, results)
	assert.Contains(t, results[0].MeterName, "بحرِ ہندی")
	assert.NotEmpty(t, results[0].Feet)
}
