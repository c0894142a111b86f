package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tariquesani/aruuz-nigar/internal/lexicon"
)

// psql builds queries with PostgreSQL placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// LexiconRepo provides lexicon lookup backed by PostgreSQL.
type LexiconRepo struct {
	pool *pgxpool.Pool
}

// NewLexiconRepo creates a lexicon repository over an open pool.
func NewLexiconRepo(pool *pgxpool.Pool) *LexiconRepo {
	return &LexiconRepo{pool: pool}
}

// Ping checks connectivity.
func (r *LexiconRepo) Ping(ctx context.Context) error { return r.pool.Ping(ctx) }

// Close releases the pool.
func (r *LexiconRepo) Close() error {
	r.pool.Close()
	return nil
}

// FindWord resolves a bare surface form through the four lexicon tables:
// exceptions first, then mastertable (the word plus its " 1".." 12"
// homograph rows), then plurals, then variations. A varied mastertable
// hit is extended with its variations rows.
func (r *LexiconRepo) FindWord(ctx context.Context, word string) ([]lexicon.Entry, error) {
	entries, err := r.queryTable(ctx, "exceptions", lexicon.SourceException, sq.Eq{"word": word})
	if err != nil {
		return nil, err
	}
	if len(entries) > 0 {
		return entries, nil
	}

	entries, err = r.queryTable(ctx, "mastertable", lexicon.SourceMaster, masterPredicate(word))
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

	entries, err = r.queryTable(ctx, "plurals", lexicon.SourcePlural, sq.Eq{"word": word})
	if err != nil {
		return nil, err
	}
	if len(entries) > 0 {
		return entries, nil
	}

	return r.queryTable(ctx, "variations", lexicon.SourceVariation, sq.Eq{"word": word})
}

// masterPredicate matches the word itself or any of its numbered
// homograph rows ("word 1" .. "word 12").
func masterPredicate(word string) sq.Sqlizer {
	or := sq.Or{sq.Eq{"word": word}}
	for i := 1; i <= 12; i++ {
		or = append(or, sq.Eq{"word": fmt.Sprintf("%s %d", word, i)})
	}
	return or
}

func (r *LexiconRepo) queryTable(ctx context.Context, table string, source lexicon.Source, pred sq.Sqlizer) ([]lexicon.Entry, error) {
	query, args, err := psql.
		Select("id", "word", "muarrab", "taqti", "language", "is_varied").
		From(table).
		Where(pred).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", table, err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, table, query)
	}
	defer rows.Close()

	var entries []lexicon.Entry
	for rows.Next() {
		var e lexicon.Entry
		var muarrab, taqti, language *string
		var isVaried *bool
		if err := rows.Scan(&e.ID, &e.Word, &muarrab, &taqti, &language, &isVaried); err != nil {
			return nil, mapError(err, table, "scan")
		}
		if muarrab != nil {
			e.Muarrab = *muarrab
		}
		if taqti != nil {
			e.Taqti = *taqti
		}
		if language != nil {
			e.Language = *language
		}
		if isVaried != nil {
			e.IsVaried = *isVaried
		}
		e.Source = source
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// variationsByID fetches the additional readings recorded against a
// varied mastertable entry.
func (r *LexiconRepo) variationsByID(ctx context.Context, id int) ([]lexicon.Entry, error) {
	return r.queryTable(ctx, "variations", lexicon.SourceVariation, sq.Eq{"id": id})
}

// InsertEntry writes one row into the named lexicon table. Used by the
// seeder; the engine itself never writes.
func (r *LexiconRepo) InsertEntry(ctx context.Context, table string, e lexicon.Entry) error {
	query, args, err := psql.
		Insert(table).
		Columns("id", "word", "muarrab", "taqti", "language", "is_varied").
		Values(e.ID, e.Word, e.Muarrab, e.Taqti, e.Language, e.IsVaried).
		ToSql()
	if err != nil {
		return fmt.Errorf("build %s insert: %w", table, err)
	}
	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return mapError(err, table, e.Word)
	}
	return nil
}
