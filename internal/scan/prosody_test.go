package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tariquesani/aruuz-nigar/internal/domain"
)

func word(raw string, codes ...string) *domain.Word {
	w := &domain.Word{Raw: raw}
	w.Surface = raw
	for _, c := range codes {
		w.AddCode(c, c, raw, -1)
	}
	return w
}

func line(words ...*domain.Word) *domain.Line {
	return &domain.Line{Original: "test", Words: words}
}

func TestProcessAlPrefix(t *testing.T) {
	// حقُ الیقین: paish-ended word before the article.
	w1 := word("حقُ", "=")
	w1.Surface = "حق"
	w2 := word("الیقین", "-=-=")
	l := line(w1, w2)

	processAlPrefix(l)

	// Consonant pair of length two absorbs into a double long.
	assert.Equal(t, []string{"=="}, w1.Codes)
	// The article's leading symbol is dropped.
	assert.Equal(t, []string{"=-="}, w2.Codes)
	require.Len(t, w1.Explain.Prosodic, 1)
	assert.Contains(t, w1.Explain.Prosodic[0], "al-absorption")
}

func TestProcessAlPrefix_NoTriggerWithoutDiacritic(t *testing.T) {
	w1 := word("حق", "=")
	w2 := word("الیقین", "-=-=")
	l := line(w1, w2)

	processAlPrefix(l)

	assert.Equal(t, []string{"="}, w1.Codes)
	assert.Equal(t, []string{"-=-="}, w2.Codes)
	assert.Empty(t, w1.Explain.Prosodic)
}

func TestProcessIzafat_KeepsOriginals(t *testing.T) {
	w := word("شوخیِ", "=x")
	w.Surface = "شوخی"
	l := line(w, word("تحریر", "=-="))

	before := len(w.Codes)
	processIzafat(l)

	assert.GreaterOrEqual(t, len(w.Codes), before)
	assert.Contains(t, w.Codes, "=x", "original reading must survive")
	assert.Contains(t, w.Codes, "=-x", "izafat alternative must be added")
	require.NotEmpty(t, w.Explain.Prosodic)
	assert.Contains(t, w.Explain.Prosodic[0], "izafat")
}

func TestProcessAtaf_FusesConjunction(t *testing.T) {
	w1 := word("شام", "=-")
	conj := word("و", "-")
	w2 := word("سحر", "-=")
	l := line(w1, conj, w2)

	processAtaf(l)

	// The conjunction vanishes from the scanned word list.
	require.Len(t, l.Words, 2)
	assert.Same(t, w1, l.Words[0])
	assert.Same(t, w2, l.Words[1])
	// Its mora lives on in the previous word's ending.
	assert.Equal(t, []string{"=x"}, w1.Codes)
	assert.Contains(t, w1.Explain.Prosodic[0], "ataf")
}

func TestProcessAtaf_VowelFinalPredecessorKeepsConjunction(t *testing.T) {
	w1 := word("صدا", "-=")
	conj := word("و", "-")
	l := line(w1, conj, word("سحر", "-="))

	processAtaf(l)

	assert.Len(t, l.Words, 3, "alif-final predecessor leaves و in place")
}

func TestProcessGrafting(t *testing.T) {
	w1 := word("دست", "=-")
	w2 := word("انداز", "=-=")
	l := line(w1, w2)

	processGrafting(l)

	// A long-ended code grafts to short; a short-ended code drops it.
	assert.Equal(t, []string{"=-"}, w1.Codes, "codes stay untouched")
	assert.Equal(t, []string{"="}, w1.GraftCodes)
	assert.Contains(t, w1.Explain.Prosodic[0], "grafting")
}

func TestProsodicRules_Monotonic(t *testing.T) {
	// None of the rules may remove a pre-existing code alternative count.
	w1 := word("دست", "=-", "x-")
	w2 := word("انداز", "=-=")
	l := line(w1, w2)

	counts := []int{len(w1.Codes), len(w2.Codes)}
	applyProsodicRules(l)

	assert.GreaterOrEqual(t, len(w1.Codes), counts[0])
	assert.GreaterOrEqual(t, len(w2.Codes), counts[1])
}
