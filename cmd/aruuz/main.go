// Command aruuz scans Urdu verse from the command line and prints the
// identified meters.
//
// Usage:
//
//	aruuz [flags] [line ...]
//
// With no line arguments, verse is read from stdin (or --file), one line
// per misra.
//
// Flags:
//
//	--file   read verse from a file instead of stdin
//	--json   print results as JSON
//	--all    print all candidate meters, not only the dominant one
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/tariquesani/aruuz-nigar/internal/app"
	"github.com/tariquesani/aruuz-nigar/internal/config"
	"github.com/tariquesani/aruuz-nigar/internal/meter"
	"github.com/tariquesani/aruuz-nigar/internal/scan"
)

func main() {
	fileFlag := flag.String("file", "", "read verse from a file instead of stdin")
	jsonFlag := flag.Bool("json", false, "print results as JSON")
	allFlag := flag.Bool("all", false, "print all candidate meters, not only the dominant one")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	if err := meter.Validate(); err != nil {
		log.Fatalf("meter catalogue self-check: %v", err)
	}

	ctx := context.Background()
	lookup, err := app.OpenLexicon(ctx, cfg)
	if err != nil {
		logger.Warn("lexicon unavailable, using heuristics only", slog.String("error", err.Error()))
		lookup = nil
	}
	if lookup != nil {
		defer lookup.Close()
	}

	lines, err := readLines(*fileFlag, flag.Args())
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	engine := scan.New(lookup, cfg.Engine.NodeBudget, logger)
	results, err := engine.Scan(ctx, lines, scan.Options{})
	if err != nil {
		log.Fatalf("scan: %v", err)
	}

	if *jsonFlag {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			log.Fatalf("encode: %v", err)
		}
		return
	}

	for _, r := range results {
		if !*allFlag && !r.IsDominant && r.MeterName != "unmatched" {
			continue
		}
		marker := " "
		if r.IsDominant {
			marker = "*"
		}
		fmt.Printf("%s %s\n", marker, r.Line)
		fmt.Printf("    bahr: %s\n", r.MeterName)
		if r.Feet != "" {
			fmt.Printf("    afail: %s\n", r.Feet)
		}
		fmt.Printf("    taqti: %s\n", strings.Join(r.WordTaqti, " / "))
		fmt.Printf("    code: %s\n", r.FullCode)
	}
}

func readLines(file string, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	in := os.Stdin
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	var lines []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			lines = append(lines, s)
		}
	}
	return lines, sc.Err()
}
