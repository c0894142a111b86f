package scan

import (
	"strings"

	"github.com/tariquesani/aruuz-nigar/internal/domain"
	"github.com/tariquesani/aruuz-nigar/internal/meter"
)

// resolveDominantMeter scores every candidate meter name across the
// couplet's per-line results and marks the winner's results dominant.
// Nothing is discarded: losing results keep IsDominant false.
//
// score(M) = Σ over lines of the best calculateScore among that line's
// results named M. Ties break by (a) more lines with at least one result
// named M, then (b) catalogue order of the first index carrying M.
func resolveDominantMeter(perLine [][]domain.LineResult) {
	type stat struct {
		score     int
		lineCount int
		firstIdx  int
	}
	stats := map[string]*stat{}

	for _, lineResults := range perLine {
		bestPerName := map[string]int{}
		for _, r := range lineResults {
			if r.MeterName == domain.UnmatchedMeterName {
				continue
			}
			s := calculateScore(r.MeterName, r.Feet)
			if cur, ok := bestPerName[r.MeterName]; !ok || s > cur {
				bestPerName[r.MeterName] = s
			}
		}
		for name, s := range bestPerName {
			st := stats[name]
			if st == nil {
				st = &stat{firstIdx: firstCatalogueIndex(name)}
				stats[name] = st
			}
			st.score += s
			st.lineCount++
		}
	}

	var winner string
	var best *stat
	for name, st := range stats {
		if best == nil {
			winner, best = name, st
			continue
		}
		switch {
		case st.score > best.score:
			winner, best = name, st
		case st.score == best.score && st.lineCount > best.lineCount:
			winner, best = name, st
		case st.score == best.score && st.lineCount == best.lineCount && st.firstIdx < best.firstIdx:
			winner, best = name, st
		case st.score == best.score && st.lineCount == best.lineCount && st.firstIdx == best.firstIdx && name < winner:
			// Full tie between names outside the standard catalogue; fall
			// back to lexical order so the result never depends on map
			// iteration.
			winner, best = name, st
		}
	}
	if winner == "" {
		return
	}

	for li := range perLine {
		for ri := range perLine[li] {
			if perLine[li][ri].MeterName == winner {
				perLine[li][ri].IsDominant = true
			}
		}
	}
}

// calculateScore rates how well a line's feet rendering fits the named
// meter: the maximum, over the name's catalogue variants of equal foot
// count, of the number of feet matched as an in-order subsequence.
func calculateScore(meterName, lineFeet string) int {
	indices := meter.IndexByName(meterName)
	if len(indices) == 0 {
		return 0
	}
	lineArkaan := splitFeet(lineFeet)

	best := 0
	for _, idx := range indices {
		meterFeet := splitFeet(meter.Afail(meter.Pattern(idx)))
		if len(lineArkaan) != len(meterFeet) {
			continue
		}
		if s := orderedMatchCount(lineArkaan, meterFeet); s > best {
			best = s
		}
	}
	return best
}

// orderedMatchCount counts line feet found in the meter's feet as an
// in-order subsequence without reuse; counting stops at the first foot
// that cannot be placed.
func orderedMatchCount(lineFeet, meterFeet []string) int {
	count, j := 0, 0
	for _, f := range lineFeet {
		found := false
		for j < len(meterFeet) {
			if f == meterFeet[j] {
				count++
				j++
				found = true
				break
			}
			j++
		}
		if !found {
			break
		}
	}
	return count
}

func splitFeet(s string) []string {
	var out []string
	for _, f := range strings.Fields(s) {
		out = append(out, f)
	}
	return out
}

func firstCatalogueIndex(name string) int {
	if idx := meter.IndexByName(name); len(idx) > 0 {
		return idx[0]
	}
	// Names outside the standard catalogue (rubai, special) sort last.
	return meter.Total()
}
