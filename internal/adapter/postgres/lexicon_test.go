package postgres_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tariquesani/aruuz-nigar/internal/adapter/postgres"
	"github.com/tariquesani/aruuz-nigar/internal/adapter/postgres/testhelper"
	"github.com/tariquesani/aruuz-nigar/internal/lexicon"
)

func newRepo(t *testing.T) (*postgres.LexiconRepo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	truncateAll(t, pool)
	return postgres.NewLexiconRepo(pool), pool
}

func truncateAll(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`TRUNCATE exceptions, mastertable, plurals, variations`)
	require.NoError(t, err)
}

func seed(t *testing.T, repo *postgres.LexiconRepo, table string, e lexicon.Entry) {
	t.Helper()
	require.NoError(t, repo.InsertEntry(context.Background(), table, e))
}

func TestFindWord_LookupOrder(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	seed(t, repo, "mastertable", lexicon.Entry{ID: 1, Word: "وہ", Taqti: "و ہ"})
	seed(t, repo, "exceptions", lexicon.Entry{ID: 2, Word: "وہ", Taqti: "وہ"})

	entries, err := repo.FindWord(ctx, "وہ")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, lexicon.SourceException, entries[0].Source)
	assert.Equal(t, "وہ", entries[0].Taqti)
}

func TestFindWord_MasterWithHomographsAndVariations(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	seed(t, repo, "mastertable", lexicon.Entry{ID: 10, Word: "صبح", Taqti: "صبح", IsVaried: true})
	seed(t, repo, "mastertable", lexicon.Entry{ID: 11, Word: "صبح 1", Taqti: "صب ح"})
	seed(t, repo, "variations", lexicon.Entry{ID: 10, Word: "صبح", Taqti: "ص بح"})

	entries, err := repo.FindWord(ctx, "صبح")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, lexicon.SourceMaster, entries[0].Source)
	assert.Equal(t, lexicon.SourceMaster, entries[1].Source)
	assert.Equal(t, lexicon.SourceVariation, entries[2].Source)
}

func TestFindWord_FallsThroughToPluralsAndVariations(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	seed(t, repo, "plurals", lexicon.Entry{ID: 20, Word: "لڑکیاں", Taqti: "لڑ کی اں"})
	seed(t, repo, "variations", lexicon.Entry{ID: 21, Word: "پیالہ", Taqti: "پیا لہ"})

	entries, err := repo.FindWord(ctx, "لڑکیاں")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, lexicon.SourcePlural, entries[0].Source)

	entries, err = repo.FindWord(ctx, "پیالہ")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, lexicon.SourceVariation, entries[0].Source)
}

func TestFindWord_Miss(t *testing.T) {
	repo, _ := newRepo(t)

	entries, err := repo.FindWord(context.Background(), "غائب")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPing(t *testing.T) {
	repo, _ := newRepo(t)
	assert.NoError(t, repo.Ping(context.Background()))
}
