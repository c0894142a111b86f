package scan

import (
	"strings"

	"github.com/tariquesani/aruuz-nigar/internal/domain"
	"github.com/tariquesani/aruuz-nigar/internal/urdu"
)

// computeScansion assigns a weight code to a word. When a taqti
// (syllabification) string is available — from a lexicon entry — each
// syllable piece is scanned by the rule matching its bare length and the
// results are concatenated; otherwise the whole word goes through the
// length-indexed heuristics.
//
// lang and modified feed the word-final flexibility rule: Arabic words,
// and Persian words ending in alif, keep a firm long ending; everything
// else ending in a vowel letter becomes flexible.
func computeScansion(surface, taqti string, langs []string, modified bool) string {
	bare := urdu.StripSilent(urdu.RemoveAraab(surface))
	bareRunes := []rune(bare)

	switch len(bareRunes) {
	case 0:
		return ""
	case 1:
		return lengthOneScan(surface)
	case 2:
		return lengthTwoScan(surface)
	}

	if strings.TrimSpace(taqti) == "" {
		switch len(bareRunes) {
		case 3:
			return lengthThreeScan(surface)
		case 4:
			return lengthFourScan(surface)
		default:
			return lengthFiveScan(surface)
		}
	}

	// Taqti pieces are separated by '+' or space.
	residue := urdu.StripSilent(strings.TrimSpace(taqti))
	var code strings.Builder
	for _, piece := range strings.FieldsFunc(residue, func(r rune) bool {
		return r == '+' || r == ' '
	}) {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		n := len([]rune(urdu.RemoveAraab(urdu.StripSilent(piece))))
		switch {
		case n == 1:
			code.WriteString(lengthOneScan(piece))
		case n == 2:
			st := urdu.RemoveAraab(urdu.StripSilent(piece))
			sr := []rune(st)
			switch {
			case len(sr) > 0 && sr[0] == urdu.AlifMadd:
				code.WriteString("=-")
			case strings.ContainsAny(st, "ےوی"):
				// Inherent long vowel letter keeps the syllable firm.
				code.WriteString("=")
			default:
				// Closed short-vowel syllable: weight is ambiguous.
				code.WriteString("x")
			}
		case n == 3:
			code.WriteString(lengthThreeScan(piece))
		case n == 4:
			code.WriteString(lengthFourScan(piece))
		case n >= 5:
			code.WriteString(lengthFiveScan(piece))
		}
	}

	out := code.String()
	if out == "" {
		return out
	}

	// Word-final flexible syllable: a vowel-letter ending relaxes the last
	// long to 'x', except for Arabic words and Persian alif endings.
	last := out[len(out)-1]
	if (last == '=' || last == 'x') && urdu.IsVowelOrHeh(bareRunes[len(bareRunes)-1]) {
		firm := false
		if len(langs) > 0 && !modified {
			for _, lang := range langs {
				if lang == "عربی" {
					firm = true
				}
				if lang == "فارسی" && bareRunes[len(bareRunes)-1] == urdu.Alif {
					firm = true
				}
			}
		}
		if firm {
			out = out[:len(out)-1] + "="
		} else {
			out = out[:len(out)-1] + "x"
		}
	}
	return out
}

// heuristicCode runs the plain heuristic path for a word with no lexicon
// data. The raw form goes in: the scanners read diacritics.
func heuristicCode(w *domain.Word) string {
	return computeScansion(w.Raw, "", nil, w.Modified)
}
