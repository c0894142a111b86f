package scan

import (
	"strings"

	"github.com/tariquesani/aruuz-nigar/internal/domain"
	"github.com/tariquesani/aruuz-nigar/internal/meter"
)

// buildLineResults turns surviving scan paths into per-line results, one
// per (path, meter) pair, deduplicated by (meter name, full code).
func buildLineResults(line *domain.Line, paths []ScanPath, partial bool) []domain.LineResult {
	var results []domain.LineResult
	type key struct{ name, code string }
	seen := map[key]bool{}

	for _, sp := range paths {
		var wordCodes []string
		for _, n := range sp.Nodes {
			wordCodes = append(wordCodes, n.Code)
		}
		fullCode := strings.Join(wordCodes, "")
		if fullCode == "" {
			continue
		}

		for _, m := range sp.Meters {
			name := meter.Name(m)
			k := key{name, fullCode}
			if seen[k] {
				continue
			}
			seen[k] = true

			pattern := meter.Pattern(m)
			results = append(results, domain.LineResult{
				Line:      line.Original,
				MeterName: name,
				MeterID:   m,
				Feet:      meter.Afail(pattern),
				FeetList:  footList(pattern),
				WordTaqti: wordCodes,
				FullCode:  fullCode,
				Partial:   partial,
				Explain:   flattenExplain(line),
			})
		}
	}
	return results
}

// specialLineResults consults the special-meter pattern tree for a line
// that matched nothing in the standard catalogue.
func specialLineResults(line *domain.Line, partial bool) []domain.LineResult {
	code := firstCodeConcat(line)
	if code == "" {
		return nil
	}
	matches := meter.NewPatternTree(code).Match()
	var results []domain.LineResult
	seen := map[string]bool{}
	for _, m := range matches {
		name := meter.Name(m.Index)
		if seen[name] {
			continue
		}
		seen[name] = true
		results = append(results, domain.LineResult{
			Line:      line.Original,
			MeterName: name,
			MeterID:   m.Index,
			Feet:      meter.AfailSpecial(name),
			WordTaqti: firstCodes(line),
			FullCode:  m.Resolved,
			Partial:   partial,
			Explain:   flattenExplain(line),
		})
	}
	return results
}

// unmatchedResult is the fallback for a line with no surviving paths.
func unmatchedResult(line *domain.Line, partial bool) domain.LineResult {
	return domain.LineResult{
		Line:      line.Original,
		MeterName: domain.UnmatchedMeterName,
		MeterID:   -1,
		Feet:      "",
		WordTaqti: firstCodes(line),
		FullCode:  firstCodeConcat(line),
		Partial:   partial,
		Explain:   flattenExplain(line),
	}
}

func footList(pattern string) []domain.Foot {
	var out []domain.Foot
	for _, f := range meter.AfailList(pattern) {
		out = append(out, domain.Foot{Name: f.Name, Code: f.Pattern})
	}
	return out
}

func firstCodes(line *domain.Line) []string {
	var codes []string
	for _, w := range line.Words {
		if len(w.Codes) > 0 {
			codes = append(codes, w.Codes[0])
		} else {
			codes = append(codes, "")
		}
	}
	return codes
}

func firstCodeConcat(line *domain.Line) string {
	return strings.Join(firstCodes(line), "")
}

func flattenExplain(line *domain.Line) []string {
	var notes []string
	for _, w := range line.Words {
		for _, n := range w.Explain.Generation {
			notes = append(notes, w.Surface+": "+n)
		}
		for _, n := range w.Explain.Prosodic {
			notes = append(notes, w.Surface+": "+n)
		}
	}
	return notes
}
