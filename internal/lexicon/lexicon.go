// Package lexicon defines the lookup contract against the word database.
// The engine depends only on this interface; the postgres and sqlite
// adapters implement it.
package lexicon

import "context"

// Source identifies which table produced an entry.
type Source string

const (
	SourceException Source = "exception"
	SourceMaster    Source = "master"
	SourcePlural    Source = "plural"
	SourceVariation Source = "variation"
)

// Entry is one recorded reading of a word: its diacritic-annotated form,
// its syllabification (taqti), and bookkeeping flags.
type Entry struct {
	ID       int
	Word     string
	Muarrab  string
	Taqti    string
	Language string
	IsVaried bool
	Source   Source
}

// Lookup queries the word database. FindWord returns zero or more entries
// for a bare (diacritic-free) surface form; an empty slice means "not
// found, fall back to heuristics".
//
// Resolution order: exceptions, then mastertable (the word itself plus its
// " 1".." 12" suffixed homograph rows), then plurals, then variations —
// first non-empty wins, except that a varied mastertable hit is extended
// with its variations rows (matched by id).
type Lookup interface {
	FindWord(ctx context.Context, word string) ([]Entry, error)
	Ping(ctx context.Context) error
	Close() error
}
