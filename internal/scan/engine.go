package scan

import (
	"context"
	"log/slog"

	"github.com/tariquesani/aruuz-nigar/internal/domain"
	"github.com/tariquesani/aruuz-nigar/internal/lexicon"
	"github.com/tariquesani/aruuz-nigar/internal/urdu"
)

// Options tunes a scan. Fuzzy and FreeVerse are accepted for interface
// stability but currently change nothing.
type Options struct {
	Fuzzy     bool
	FreeVerse bool
}

// Engine is the scansion pipeline. It carries no per-couplet state; one
// engine may serve any number of sequential Scan calls, and distinct
// engines may run concurrently over the shared read-only catalogue.
type Engine struct {
	assigner   *Assigner
	nodeBudget int
	logger     *slog.Logger
}

// New creates an Engine. lookup may be nil (heuristics-only);
// nodeBudget <= 0 selects the default.
func New(lookup lexicon.Lookup, nodeBudget int, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if nodeBudget <= 0 {
		nodeBudget = DefaultNodeBudget
	}
	return &Engine{
		assigner:   NewAssigner(lookup, logger),
		nodeBudget: nodeBudget,
		logger:     logger,
	}
}

// Scan analyzes the couplet's lines and returns their results flattened
// in line order, with dominant-meter flags resolved across lines. Lines
// that match nothing yield a single "unmatched" result; empty input
// yields an empty slice. Scan never fails on input content.
func (e *Engine) Scan(ctx context.Context, lines []string, opts Options) ([]domain.LineResult, error) {
	_ = opts // recognized, currently inert

	perLine := make([][]domain.LineResult, 0, len(lines))
	for _, text := range lines {
		line := e.buildLine(ctx, text)
		if len(line.Words) == 0 {
			continue
		}
		perLine = append(perLine, e.scanLine(line))
	}
	if len(perLine) == 0 {
		return []domain.LineResult{}, nil
	}

	resolveDominantMeter(perLine)

	var out []domain.LineResult
	for _, rs := range perLine {
		out = append(out, rs...)
	}
	return out, nil
}

// buildLine tokenizes and assigns codes: normalizer, lexicon/heuristics,
// then the prosodic rules. After this the line's code sets are frozen.
func (e *Engine) buildLine(ctx context.Context, text string) *domain.Line {
	line := &domain.Line{Original: text}
	for _, tok := range urdu.Tokenize(text) {
		line.Words = append(line.Words, &domain.Word{
			Surface: urdu.RemoveAraab(tok),
			Raw:     tok,
		})
	}
	for _, w := range line.Words {
		e.assigner.AssignWord(ctx, w)
	}
	applyProsodicRules(line)
	return line
}

// scanLine runs the code tree for one line and renders its results.
func (e *Engine) scanLine(line *domain.Line) []domain.LineResult {
	tree := NewCodeTree(line, e.nodeBudget)
	paths := tree.FindMeters(nil)

	results := buildLineResults(line, paths, tree.Partial())
	if len(results) == 0 {
		results = specialLineResults(line, tree.Partial())
	}
	if len(results) == 0 {
		results = []domain.LineResult{unmatchedResult(line, tree.Partial())}
	}

	if tree.Partial() {
		e.logger.Warn("per-line node budget exceeded, results are partial",
			slog.String("line", line.Original),
			slog.Int("budget", e.nodeBudget))
	}
	return results
}
