// Package urdudict parses lexicon dump files into entries ready for
// loading. Pure function: file path in, rows out. No database
// dependencies.
//
// The dump format is tab-separated, one row per reading:
//
//	table \t id \t word \t muarrab \t taqti \t language \t is_varied
//
// where table is one of exceptions, mastertable, plurals, variations.
// Lines starting with '#' and blank lines are skipped.
package urdudict

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tariquesani/aruuz-nigar/internal/lexicon"
)

// errSkipLine signals that a line should be skipped (comment, empty).
var errSkipLine = errors.New("skip line")

// validTables lists the lexicon tables a row may target.
var validTables = map[string]bool{
	"exceptions":  true,
	"mastertable": true,
	"plurals":     true,
	"variations":  true,
}

// Row is one parsed dump line: the target table plus the entry itself.
type Row struct {
	Table string
	Entry lexicon.Entry
}

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines   int
	CommentLines int
	ParsedLines  int
	BadLines     int
}

// ParseResult holds the parsed dump data.
type ParseResult struct {
	Rows  []Row
	Stats Stats
}

// Parse reads a dump file and returns its rows in file order.
func Parse(filePath string) (ParseResult, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return ParseResult{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var result ParseResult
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		result.Stats.TotalLines++

		row, err := parseLine(scanner.Text())
		if errors.Is(err, errSkipLine) {
			result.Stats.CommentLines++
			continue
		}
		if err != nil {
			result.Stats.BadLines++
			continue
		}
		result.Stats.ParsedLines++
		result.Rows = append(result.Rows, row)
	}
	if err := scanner.Err(); err != nil {
		return ParseResult{}, fmt.Errorf("read line %d: %w", lineNo, err)
	}
	return result, nil
}

func parseLine(line string) (Row, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return Row{}, errSkipLine
	}

	fields := strings.Split(line, "\t")
	if len(fields) < 5 {
		return Row{}, fmt.Errorf("expected at least 5 fields, got %d", len(fields))
	}

	table := strings.TrimSpace(fields[0])
	if !validTables[table] {
		return Row{}, fmt.Errorf("unknown table %q", table)
	}

	id, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return Row{}, fmt.Errorf("bad id %q: %w", fields[1], err)
	}

	word := strings.TrimSpace(fields[2])
	if word == "" {
		return Row{}, fmt.Errorf("empty word")
	}

	entry := lexicon.Entry{
		ID:      id,
		Word:    word,
		Muarrab: strings.TrimSpace(fields[3]),
		Taqti:   strings.TrimSpace(fields[4]),
	}
	if len(fields) > 5 {
		entry.Language = strings.TrimSpace(fields[5])
	}
	if len(fields) > 6 {
		v := strings.TrimSpace(fields[6])
		entry.IsVaried = v == "1" || strings.EqualFold(v, "true")
	}
	return Row{Table: table, Entry: entry}, nil
}
