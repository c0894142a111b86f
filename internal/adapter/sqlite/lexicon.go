// Package sqlite implements the lexicon lookup contract on an embedded
// SQLite database, the format the reference word database ships in
// (aruuz_nigar.db).
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/tariquesani/aruuz-nigar/internal/lexicon"
)

// LexiconRepo provides lexicon lookup backed by a SQLite file.
type LexiconRepo struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at path and verifies the
// connection.
func Open(path string) (*LexiconRepo, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// The store is read-mostly and shared within one process.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}
	return &LexiconRepo{db: db}, nil
}

// Ping checks connectivity.
func (r *LexiconRepo) Ping(ctx context.Context) error { return r.db.PingContext(ctx) }

// Close closes the database.
func (r *LexiconRepo) Close() error { return r.db.Close() }

// EnsureSchema creates the four lexicon tables if absent. Used by the
// seeder when building a fresh database file.
func (r *LexiconRepo) EnsureSchema(ctx context.Context) error {
	for _, table := range []string{"exceptions", "mastertable", "plurals", "variations"} {
		stmt := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id INTEGER NOT NULL,
			word TEXT NOT NULL,
			muarrab TEXT,
			taqti TEXT,
			language TEXT,
			is_varied INTEGER NOT NULL DEFAULT 0
		)`, table)
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create %s: %w", table, err)
		}
		idx := fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_word ON %s (word)`, table, table)
		if _, err := r.db.ExecContext(ctx, idx); err != nil {
			return fmt.Errorf("index %s: %w", table, err)
		}
	}
	return nil
}

// FindWord resolves a bare surface form; same table order as the
// postgres adapter: exceptions, mastertable (+homograph rows), plurals,
// variations, with varied master hits extended by their variations.
func (r *LexiconRepo) FindWord(ctx context.Context, word string) ([]lexicon.Entry, error) {
	entries, err := r.queryWord(ctx, "exceptions", lexicon.SourceException, word, false)
	if err != nil {
		return nil, err
	}
	if len(entries) > 0 {
		return entries, nil
	}

	entries, err = r.queryWord(ctx, "mastertable", lexicon.SourceMaster, word, true)
	if err != nil {
		return nil, err
	}
	if len(entries) > 0 {
		if entries[0].IsVaried {
			varied, err := r.variationsByID(ctx, entries[0].ID)
			if err != nil {
				return nil, err
			}
			entries = append(entries, varied...)
		}
		return entries, nil
	}

	entries, err = r.queryWord(ctx, "plurals", lexicon.SourcePlural, word, false)
	if err != nil {
		return nil, err
	}
	if len(entries) > 0 {
		return entries, nil
	}

	return r.queryWord(ctx, "variations", lexicon.SourceVariation, word, false)
}

func (r *LexiconRepo) queryWord(ctx context.Context, table string, source lexicon.Source, word string, homographs bool) ([]lexicon.Entry, error) {
	conds := []string{"word = ?"}
	args := []any{word}
	if homographs {
		for i := 1; i <= 12; i++ {
			conds = append(conds, "word = ?")
			args = append(args, fmt.Sprintf("%s %d", word, i))
		}
	}
	query := fmt.Sprintf(
		`SELECT id, word, muarrab, taqti, language, is_varied FROM %s WHERE %s ORDER BY id`,
		table, strings.Join(conds, " OR "))
	return r.scanEntries(ctx, table, source, query, args...)
}

func (r *LexiconRepo) variationsByID(ctx context.Context, id int) ([]lexicon.Entry, error) {
	return r.scanEntries(ctx, "variations", lexicon.SourceVariation,
		`SELECT id, word, muarrab, taqti, language, is_varied FROM variations WHERE id = ? ORDER BY rowid`, id)
}

func (r *LexiconRepo) scanEntries(ctx context.Context, table string, source lexicon.Source, query string, args ...any) ([]lexicon.Entry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s query: %w", table, err)
	}
	defer rows.Close()

	var entries []lexicon.Entry
	for rows.Next() {
		var e lexicon.Entry
		var muarrab, taqti, language sql.NullString
		var isVaried sql.NullInt64
		if err := rows.Scan(&e.ID, &e.Word, &muarrab, &taqti, &language, &isVaried); err != nil {
			return nil, fmt.Errorf("%s scan: %w", table, err)
		}
		e.Muarrab = muarrab.String
		e.Taqti = taqti.String
		e.Language = language.String
		e.IsVaried = isVaried.Int64 != 0
		e.Source = source
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// InsertEntry writes one row into the named lexicon table. Used by the
// seeder; the engine itself never writes.
func (r *LexiconRepo) InsertEntry(ctx context.Context, table string, e lexicon.Entry) error {
	varied := 0
	if e.IsVaried {
		varied = 1
	}
	query := fmt.Sprintf(
		`INSERT INTO %s (id, word, muarrab, taqti, language, is_varied) VALUES (?, ?, ?, ?, ?, ?)`, table)
	if _, err := r.db.ExecContext(ctx, query, e.ID, e.Word, e.Muarrab, e.Taqti, e.Language, varied); err != nil {
		return fmt.Errorf("%s insert %q: %w", table, e.Word, err)
	}
	return nil
}
