package scan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tariquesani/aruuz-nigar/internal/domain"
	"github.com/tariquesani/aruuz-nigar/internal/lexicon"
	"github.com/tariquesani/aruuz-nigar/internal/urdu"
)

// Assigner produces candidate codes for a word: lexicon lookup first,
// length-indexed heuristics as fallback, compound splitting as a last
// resort. A nil lookup means heuristics-only operation.
type Assigner struct {
	lookup lexicon.Lookup
	logger *slog.Logger
}

// NewAssigner creates an Assigner. lookup may be nil.
func NewAssigner(lookup lexicon.Lookup, logger *slog.Logger) *Assigner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assigner{lookup: lookup, logger: logger}
}

// AssignWord populates w.Codes. Already-assigned words pass through.
func (a *Assigner) AssignWord(ctx context.Context, w *domain.Word) {
	if len(w.Codes) > 0 {
		return
	}

	if a.lookup != nil {
		entries, err := a.lookup.FindWord(ctx, urdu.RemoveAraab(w.Raw))
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				a.logger.WarnContext(ctx, "lexicon lookup failed, using heuristics",
					slog.String("word", w.Surface),
					slog.String("error", err.Error()))
				w.NoteGeneration("lexicon unavailable, heuristics only")
			}
		} else if len(entries) > 0 {
			a.applyEntries(w, entries)
			if len(w.Codes) > 0 {
				a.applyThreeLetterVariation(w)
				return
			}
		} else if fb, ok := a.pluralFallback(ctx, w.Surface); ok {
			a.applyEntries(w, fb)
			if len(w.Codes) > 0 {
				w.NoteGeneration("plural base form matched")
				a.applyThreeLetterVariation(w)
				return
			}
		}
	}

	code := heuristicCode(w)
	bare := []rune(urdu.RemoveAraab(w.Surface))
	if code == "" && len(bare) > 4 {
		if a.splitCompound(ctx, w) {
			return
		}
	}

	w.AddCode(code, code, w.Raw, -1)
	w.NoteGeneration(fmt.Sprintf("heuristic-len-%d", heuristicLength(w.Surface)))
}

// heuristicLength is the rule bucket the word dispatched to (5 = five-plus).
func heuristicLength(surface string) int {
	n := len([]rune(urdu.StripSilent(urdu.RemoveAraab(surface))))
	if n > 5 {
		return 5
	}
	return n
}

// applyEntries converts lexicon entries to codes, one candidate per entry.
func (a *Assigner) applyEntries(w *domain.Word, entries []lexicon.Entry) {
	for _, e := range entries {
		if e.Language != "" {
			w.Langs = append(w.Langs, e.Language)
		}
		w.IsVaried = append(w.IsVaried, e.IsVaried)
	}
	for _, e := range entries {
		code := computeScansion(w.Raw, e.Taqti, w.Langs, w.Modified)
		if code == "" {
			continue
		}
		w.AddCode(code, strings.TrimSpace(e.Taqti), strings.TrimSpace(e.Muarrab), e.ID)
		w.NoteGeneration(string(e.Source))
	}
}

// applyThreeLetterVariation adds the recorded alternative reading for
// three-letter alif-final words found in the lexicon.
func (a *Assigner) applyThreeLetterVariation(w *domain.Word) {
	bare := []rune(urdu.RemoveAraab(urdu.StripSilent(w.Surface)))
	if len(bare) != 3 || bare[2] != urdu.Alif || len(w.Codes) == 0 {
		return
	}
	if bare[0] == urdu.AlifMadd {
		if w.Codes[0] != "==" && w.Codes[0] != "=x" {
			w.AddCode("==", "==", w.Raw, -1)
			w.NoteGeneration("three-letter alif variation")
		}
	} else if w.Codes[0] != "-=" && w.Codes[0] != "-x" {
		w.AddCode("-=", "-=", w.Raw, -1)
		w.NoteGeneration("three-letter alif variation")
	}
}

// pluralFallback tries the recorded base forms for common plural endings
// when the surface itself misses. Returns entries for the base form.
func (a *Assigner) pluralFallback(ctx context.Context, surface string) ([]lexicon.Entry, bool) {
	bare := strings.TrimPrefix(urdu.RemoveAraab(surface), "ال")
	rs := []rune(bare)
	if len(rs) < 3 {
		return nil, false
	}

	var candidates []string
	switch {
	case strings.HasSuffix(bare, "ات"):
		base := string(rs[:len(rs)-2])
		candidates = []string{base, base + "ہ", string(rs[:len(rs)-2]) + string(rs[len(rs)-1:])}
		if strings.HasSuffix(bare, "یات") {
			candidates = append(candidates, string(rs[:len(rs)-3])+string(rs[len(rs)-2:]))
		}
	case strings.HasSuffix(bare, "اں") || strings.HasSuffix(bare, "وں") || strings.HasSuffix(bare, "یں"):
		base := string(rs[:len(rs)-2])
		candidates = []string{base, base + "ہ", base + "ا", base + "نا"}
	case strings.HasSuffix(bare, "ے"):
		base := string(rs[:len(rs)-2])
		candidates = []string{base + "نا", base}
	default:
		return nil, false
	}

	for _, c := range candidates {
		if c == "" {
			continue
		}
		entries, err := a.lookup.FindWord(ctx, c)
		if err == nil && len(entries) > 0 {
			return entries, true
		}
	}
	return nil, false
}

// splitCompound tries every split of the surface into two halves, looks
// up or heuristic-scans each half, and installs the cartesian product of
// the halves' codes.
func (a *Assigner) splitCompound(ctx context.Context, w *domain.Word) bool {
	stripped := []rune(urdu.RemoveAraab(w.Surface))

	for i := 1; i < len(stripped)-1; i++ {
		firstText := string(stripped[:i])
		secondText := string(stripped[i:])

		firstCodes := a.halfCodes(ctx, firstText)
		secondCodes := a.halfCodes(ctx, secondText)
		if len(firstCodes) == 0 || len(secondCodes) == 0 {
			continue
		}

		for _, fc := range firstCodes {
			for _, sc := range secondCodes {
				w.AddCode(fc+sc, fc+" + "+sc, w.Raw, -1)
			}
		}
		w.Modified = true
		w.NoteGeneration(fmt.Sprintf("compound split %s + %s", firstText, secondText))
		return true
	}
	return false
}

// halfCodes resolves one half of a compound: lexicon first, the length-2
// rule for short residues, heuristics otherwise.
func (a *Assigner) halfCodes(ctx context.Context, text string) []string {
	if a.lookup != nil {
		if entries, err := a.lookup.FindWord(ctx, text); err == nil && len(entries) > 0 {
			var codes []string
			for _, e := range entries {
				if c := computeScansion(text, e.Taqti, nil, false); c != "" {
					codes = append(codes, c)
				}
			}
			if len(codes) > 0 {
				return codes
			}
		}
	}
	if len([]rune(text)) <= 2 {
		if c := lengthTwoScan(text); c != "" {
			return []string{c}
		}
		return nil
	}
	if c := computeScansion(text, "", nil, false); c != "" {
		return []string{c}
	}
	return nil
}
