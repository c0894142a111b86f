package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tariquesani/aruuz-nigar/internal/domain"
	"github.com/tariquesani/aruuz-nigar/internal/meter"
)

func TestOrderedMatchCount(t *testing.T) {
	tests := []struct {
		name  string
		line  []string
		meter []string
		want  int
	}{
		{
			"full match",
			[]string{"مفاعیلن", "مفاعیلن"},
			[]string{"مفاعیلن", "مفاعیلن"},
			2,
		},
		{
			"prefix match stops at first miss",
			[]string{"مفاعیلن", "مفاعیلن", "فاعلن"},
			[]string{"مفاعیلن", "مفاعیلن", "مفاعیلن", "مفاعیلن"},
			2,
		},
		{
			"subsequence skips ahead",
			[]string{"مفاعیلن", "فاعلن"},
			[]string{"مفاعیلن", "مفعولن", "فاعلن"},
			2,
		},
		{
			"no reuse going backwards",
			[]string{"مفاعیلن", "فاعلن", "مفاعیلن"},
			[]string{"مفاعیلن", "مفاعیلن", "فاعلن"},
			2,
		},
		{"empty line feet", nil, []string{"مفاعیلن"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orderedMatchCount(tt.line, tt.meter))
		})
	}
}

func TestCalculateScore(t *testing.T) {
	name := "ہزج مثمن سالم"
	feet := meter.Afail("-===/-===/-===/-===")

	assert.Equal(t, 4, calculateScore(name, feet))
	// Foot-count mismatch is a hard structural constraint.
	assert.Equal(t, 0, calculateScore(name, "مفاعیلن مفاعیلن"))
	assert.Equal(t, 0, calculateScore("no such meter", feet))
}

func TestCalculateScore_PicksBestVariant(t *testing.T) {
	// ہزج مثمن اخرب مکفوف محذوف has four catalogue variants; the score is
	// the best across them.
	name := "ہزج مثمن اخرب مکفوف محذوف"
	idx := meter.IndexByName(name)
	if assert.Len(t, idx, 4) {
		feet := meter.Afail(meter.Pattern(idx[1]))
		assert.Positive(t, calculateScore(name, feet))
	}
}

func TestResolveDominantMeter(t *testing.T) {
	hazajFeet := meter.Afail("-===/-===/-===/-===")
	ramalFeet := meter.Afail("=-==/=-==/=-==/=-==")

	lineA := []domain.LineResult{
		{MeterName: "ہزج مثمن سالم", Feet: hazajFeet},
		{MeterName: "رمل مثمن سالم", Feet: ramalFeet},
	}
	lineB := []domain.LineResult{
		{MeterName: "ہزج مثمن سالم", Feet: hazajFeet},
	}
	perLine := [][]domain.LineResult{lineA, lineB}

	resolveDominantMeter(perLine)

	assert.True(t, perLine[0][0].IsDominant)
	assert.False(t, perLine[0][1].IsDominant, "losing meter is retained undominant")
	assert.True(t, perLine[1][0].IsDominant)
}

func TestResolveDominantMeter_UnmatchedIgnored(t *testing.T) {
	perLine := [][]domain.LineResult{
		{{MeterName: domain.UnmatchedMeterName}},
		{{MeterName: domain.UnmatchedMeterName}},
	}
	resolveDominantMeter(perLine)
	for _, rs := range perLine {
		for _, r := range rs {
			assert.False(t, r.IsDominant)
		}
	}
}

func TestResolveDominantMeter_TieBreaksByLineCount(t *testing.T) {
	hazajFeet := meter.Afail("-===/-===/-===/-===")
	ramalFeet := meter.Afail("=-==/=-==/=-==/=-==")

	// Both names score 4 overall, but hazaj appears in two lines.
	perLine := [][]domain.LineResult{
		{
			{MeterName: "ہزج مثمن سالم", Feet: hazajFeet},
			{MeterName: "رمل مثمن سالم", Feet: ramalFeet},
		},
		{
			{MeterName: "ہزج مثمن سالم", Feet: "مفاعیلن"},
		},
	}
	// hazaj: line1 score 4 + line2 score 0 = 4, lines 2.
	// ramal: line1 score 4, lines 1.
	resolveDominantMeter(perLine)
	assert.True(t, perLine[0][0].IsDominant)
	assert.False(t, perLine[0][1].IsDominant)
}
