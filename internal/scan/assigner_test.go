package scan

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tariquesani/aruuz-nigar/internal/domain"
	"github.com/tariquesani/aruuz-nigar/internal/lexicon"
)

// fakeLookup serves canned entries keyed by bare surface form.
type fakeLookup struct {
	entries map[string][]lexicon.Entry
	err     error
	queries []string
}

func (f *fakeLookup) FindWord(_ context.Context, word string) ([]lexicon.Entry, error) {
	f.queries = append(f.queries, word)
	if f.err != nil {
		return nil, f.err
	}
	return f.entries[word], nil
}

func (f *fakeLookup) Ping(context.Context) error { return f.err }
func (f *fakeLookup) Close() error               { return nil }

func newWord(raw string) *domain.Word {
	return &domain.Word{Raw: raw, Surface: raw}
}

func TestAssignWord_LexiconHit(t *testing.T) {
	lk := &fakeLookup{entries: map[string][]lexicon.Entry{
		"بار": {{ID: 7, Word: "بار", Taqti: "با ر", Source: lexicon.SourceMaster}},
	}}
	a := NewAssigner(lk, nil)

	w := newWord("بار")
	a.AssignWord(context.Background(), w)

	require.Equal(t, []string{"x-"}, w.Codes)
	assert.Equal(t, []int{7}, w.IDs)
	assert.Contains(t, w.Explain.Generation, "master")
}

func TestAssignWord_HeuristicFallback(t *testing.T) {
	lk := &fakeLookup{entries: map[string][]lexicon.Entry{}}
	a := NewAssigner(lk, nil)

	w := newWord("نقش")
	a.AssignWord(context.Background(), w)

	require.Equal(t, []string{"-="}, w.Codes)
	assert.Contains(t, w.Explain.Generation, "heuristic-len-3")
}

func TestAssignWord_NilLookupUsesHeuristics(t *testing.T) {
	a := NewAssigner(nil, nil)

	w := newWord("دل")
	a.AssignWord(context.Background(), w)
	assert.Equal(t, []string{"="}, w.Codes)
}

func TestAssignWord_LookupErrorFallsBack(t *testing.T) {
	lk := &fakeLookup{err: errors.New("connection refused")}
	a := NewAssigner(lk, nil)

	w := newWord("دل")
	a.AssignWord(context.Background(), w)

	require.Equal(t, []string{"="}, w.Codes)
	assert.Contains(t, w.Explain.Generation, "lexicon unavailable, heuristics only")
}

func TestAssignWord_AlreadyAssignedPassesThrough(t *testing.T) {
	a := NewAssigner(nil, nil)
	w := newWord("دل")
	w.AddCode("=", "=", "دل", -1)

	a.AssignWord(context.Background(), w)
	assert.Equal(t, []string{"="}, w.Codes)
	assert.Empty(t, w.Explain.Generation)
}

func TestAssignWord_DeduplicatesEntries(t *testing.T) {
	lk := &fakeLookup{entries: map[string][]lexicon.Entry{
		"بار": {
			{ID: 1, Word: "بار", Taqti: "با ر", Source: lexicon.SourceMaster},
			{ID: 2, Word: "بار 1", Taqti: "با ر", Source: lexicon.SourceMaster},
		},
	}}
	a := NewAssigner(lk, nil)

	w := newWord("بار")
	a.AssignWord(context.Background(), w)
	assert.Equal(t, []string{"x-"}, w.Codes, "identical codes collapse")
}

func TestAssignWord_ThreeLetterAlifVariation(t *testing.T) {
	lk := &fakeLookup{entries: map[string][]lexicon.Entry{
		"دعا": {{ID: 3, Word: "دعا", Taqti: "دع ا", Source: lexicon.SourceMaster}},
	}}
	a := NewAssigner(lk, nil)

	w := newWord("دعا")
	a.AssignWord(context.Background(), w)

	require.Equal(t, "x-", w.Codes[0])
	assert.Contains(t, w.Codes, "-=", "recorded alternative for alif-final three-letter words")
}

func TestAssignWord_PluralFallback(t *testing.T) {
	lk := &fakeLookup{entries: map[string][]lexicon.Entry{
		"لڑکی": {{ID: 9, Word: "لڑکی", Taqti: "لڑ کی", Source: lexicon.SourceMaster}},
	}}
	a := NewAssigner(lk, nil)

	w := newWord("لڑکیاں")
	a.AssignWord(context.Background(), w)

	require.NotEmpty(t, w.Codes)
	assert.Contains(t, w.Explain.Generation, "plural base form matched")
}

func TestHeuristicLength(t *testing.T) {
	assert.Equal(t, 1, heuristicLength("آ"))
	assert.Equal(t, 2, heuristicLength("دل"))
	assert.Equal(t, 2, heuristicLength("دکھ")) // silent ھ does not count
	assert.Equal(t, 5, heuristicLength("فریادی"))
	assert.Equal(t, 5, heuristicLength("تصویروں")) // capped at the five-plus bucket
}
