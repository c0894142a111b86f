// Command seeder loads a lexicon dump file into the configured word
// database (SQLite or PostgreSQL). It is intended to be run offline,
// not as part of the main server.
//
// Flags:
//
//	--input    path to the tab-separated lexicon dump (required)
//	--dry-run  parse the dump without writing to the database
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/tariquesani/aruuz-nigar/internal/adapter/postgres"
	"github.com/tariquesani/aruuz-nigar/internal/adapter/sqlite"
	"github.com/tariquesani/aruuz-nigar/internal/app"
	"github.com/tariquesani/aruuz-nigar/internal/config"
	"github.com/tariquesani/aruuz-nigar/internal/lexicon"
	"github.com/tariquesani/aruuz-nigar/internal/seeder/urdudict"
)

// inserter is the write surface both adapters expose for seeding.
type inserter interface {
	InsertEntry(ctx context.Context, table string, e lexicon.Entry) error
}

// Compile-time interface assertions.
var (
	_ inserter = (*sqlite.LexiconRepo)(nil)
	_ inserter = (*postgres.LexiconRepo)(nil)
)

func main() {
	inputFlag := flag.String("input", "", "path to the tab-separated lexicon dump")
	dryRunFlag := flag.Bool("dry-run", false, "parse the dump without writing to the database")
	flag.Parse()

	if *inputFlag == "" {
		log.Fatal("--input is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	result, err := urdudict.Parse(*inputFlag)
	if err != nil {
		logger.Error("parse dump", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("parsed lexicon dump",
		slog.Int("total_lines", result.Stats.TotalLines),
		slog.Int("parsed", result.Stats.ParsedLines),
		slog.Int("skipped", result.Stats.CommentLines),
		slog.Int("bad", result.Stats.BadLines),
	)

	if *dryRunFlag {
		logger.Info("dry run, nothing written")
		return
	}

	ctx := context.Background()
	store, err := openStore(ctx, cfg)
	if err != nil {
		logger.Error("open store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	written := 0
	for _, row := range result.Rows {
		if err := store.InsertEntry(ctx, row.Table, row.Entry); err != nil {
			logger.Error("insert entry",
				slog.String("table", row.Table),
				slog.String("word", row.Entry.Word),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		written++
	}
	logger.Info("seeding complete", slog.Int("rows", written))
}

func openStore(ctx context.Context, cfg *config.Config) (inserter, error) {
	if cfg.Lexicon.Driver == "postgres" {
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		return postgres.NewLexiconRepo(pool), nil
	}
	repo, err := sqlite.Open(cfg.Lexicon.Path)
	if err != nil {
		return nil, err
	}
	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	return repo, nil
}
