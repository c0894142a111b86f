// Command migrate applies the embedded goose migrations to the
// PostgreSQL lexicon database.
//
// Flags:
//
//	--command  goose command: up, down, status (default: up)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"database/sql"
	"flag"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/tariquesani/aruuz-nigar/internal/config"
	"github.com/tariquesani/aruuz-nigar/migrations"
)

func main() {
	command := flag.String("command", "up", "goose command: up, down, status")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.Database.DSN == "" {
		log.Fatal("database.dsn is required to run migrations")
	}

	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("set dialect: %v", err)
	}

	switch *command {
	case "up":
		err = goose.Up(db, ".")
	case "down":
		err = goose.Down(db, ".")
	case "status":
		err = goose.Status(db, ".")
	default:
		log.Fatalf("unknown command %q", *command)
	}
	if err != nil {
		log.Fatalf("goose %s: %v", *command, err)
	}
}
