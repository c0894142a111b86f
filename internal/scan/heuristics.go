// Package scan implements the scansion engine: per-word code assignment,
// prosodic rewriting, the per-line code tree with meter-pruned traversal,
// and dominant-meter resolution across a couplet.
package scan

import (
	"github.com/tariquesani/aruuz-nigar/internal/urdu"
)

// The length-indexed heuristics below assign a weight code to a word (or
// word piece) when the lexicon has no entry for it. They dispatch on the
// bare length after diacritics and the silent ھ/ں are removed. The rules
// are a closed switch over lengths 1..5+; there is no extensibility
// requirement.

func lengthOneScan(sub string) string {
	if urdu.RemoveAraab(sub) == string(urdu.AlifMadd) {
		return "="
	}
	return "-"
}

func lengthTwoScan(sub string) string {
	stripped := []rune(urdu.RemoveAraab(urdu.StripSilent(sub)))
	rs := []rune(sub)

	code := "="
	if len(rs) > 0 && rs[0] == urdu.AlifMadd {
		code = "=-"
	} else if len(stripped) > 0 && urdu.IsVowelOrHeh(stripped[len(stripped)-1]) {
		// Two-lettered words ending in a vowel letter are flexible.
		code = "x"
	}
	return code
}

// shortMark reports whether the mark is a short-vowel sign (zer, zabar,
// paish).
func shortMark(m rune) bool {
	return m == urdu.Zer || m == urdu.Zabar || m == urdu.Paish
}

func lengthThreeScan(sub string) string {
	subString := urdu.StripSilent(sub)
	stripped := []rune(urdu.RemoveAraab(subString))

	switch len(stripped) {
	case 0:
		return ""
	case 1:
		if stripped[0] == urdu.AlifMadd {
			return "-"
		}
		return "="
	case 2:
		return lengthTwoScan(sub)
	}

	var code string
	if urdu.IsMuarrab(subString) {
		loc := urdu.LocateAraab(subString)
		switch {
		case urdu.MarkAt(loc, 1) == urdu.Jazm:
			if stripped[0] == urdu.AlifMadd {
				code = "=--"
			} else {
				code = "=-"
			}
		case shortMark(urdu.MarkAt(loc, 1)):
			code = "-="
		case urdu.MarkAt(loc, 1) == urdu.Shadd:
			code = "=="
		case stripped[2] == urdu.Alif:
			code = "-="
		case urdu.IsVowelOrHeh(stripped[2]):
			if stripped[1] == urdu.Alif {
				code = "=-"
			} else {
				code = "-="
			}
		case stripped[1] == urdu.Alif || stripped[1] == urdu.ChhotiYeh ||
			stripped[1] == urdu.BariYeh || stripped[1] == urdu.Wao || stripped[2] == urdu.GolHeh:
			code = "=-"
		default:
			code = "=-"
		}
	} else {
		switch {
		case stripped[0] == urdu.AlifMadd:
			code = "=="
		case stripped[1] == urdu.Alif:
			code = "=-"
		case stripped[2] == urdu.Alif:
			code = "-="
		case stripped[1] == urdu.ChhotiYeh || stripped[1] == urdu.BariYeh ||
			stripped[1] == urdu.Wao || stripped[1] == urdu.GolHeh:
			if stripped[2] == urdu.GolHeh {
				code = "=-"
			} else if stripped[2] == urdu.ChhotiYeh || stripped[2] == urdu.BariYeh || stripped[2] == urdu.Wao {
				code = "-="
			} else {
				code = "=-"
			}
		case stripped[2] == urdu.ChhotiYeh || stripped[2] == urdu.BariYeh ||
			stripped[2] == urdu.Wao || stripped[2] == urdu.GolHeh:
			code = "-="
		default:
			code = "-="
		}
	}

	if urdu.ContainsNoon(string(stripped)) {
		code = noonGhunna(sub, code)
	}
	return code
}

func lengthFourScan(sub string) string {
	subString := urdu.StripSilent(sub)
	stripped := []rune(urdu.RemoveAraab(subString))

	switch len(stripped) {
	case 0:
		return ""
	case 1:
		return lengthOneScan(subString)
	case 2:
		return lengthTwoScan(subString)
	case 3:
		return lengthThreeScan(subString)
	}

	var code string
	ssr := []rune(subString)
	switch {
	case stripped[0] == urdu.AlifMadd:
		rest := ""
		if len(ssr) > 1 {
			rest = string(ssr[1:])
		}
		code = "=" + lengthThreeScan(rest)
	case urdu.IsMuarrab(subString):
		loc := urdu.LocateAraab(subString)
		switch {
		case stripped[1] == urdu.Alif:
			if urdu.MarkAt(loc, 2) == urdu.Jazm {
				code = "=--"
			} else {
				code = "=="
			}
		case stripped[2] == urdu.Alif:
			code = "-=-"
		case stripped[1] == urdu.Wao:
			if stripped[3] == 'ت' && urdu.MarkAt(loc, 3) == urdu.Jazm {
				code = "=-"
			} else if shortMark(urdu.MarkAt(loc, 1)) {
				code = "-=-"
			} else if urdu.MarkAt(loc, 2) == urdu.Jazm {
				code = "=--"
			} else {
				code = "=="
			}
		case stripped[1] == urdu.ChhotiYeh:
			if stripped[3] == 'ت' && urdu.MarkAt(loc, 3) == urdu.Jazm {
				code = "=-"
			} else if shortMark(urdu.MarkAt(loc, 0)) {
				if shortMark(urdu.MarkAt(loc, 1)) {
					code = "-=-"
				} else if urdu.MarkAt(loc, 2) == urdu.Jazm {
					code = "=--"
				} else {
					code = "=="
				}
			} else {
				code = "=="
			}
		case shortMark(urdu.MarkAt(loc, 0)):
			if shortMark(urdu.MarkAt(loc, 1)) {
				if urdu.IsVowelOrHeh(stripped[2]) {
					code = "-=-"
				} else if urdu.MarkAt(loc, 2) == urdu.Jazm {
					code = "-=-"
				} else {
					code = "--="
				}
			} else if urdu.MarkAt(loc, 1) == urdu.Jazm {
				code = "=="
			} else if urdu.MarkAt(loc, 2) == urdu.Jazm {
				code = "-=-"
			} else if stripped[3] == urdu.Alif || stripped[3] == urdu.ChhotiYeh {
				code = "--="
			} else {
				code = "-=-"
			}
		case urdu.MarkAt(loc, 1) == urdu.Jazm:
			if urdu.MarkAt(loc, 2) == urdu.Jazm {
				code = "=="
			} else {
				code = "=--"
			}
		case urdu.MarkAt(loc, 2) == urdu.Jazm:
			code = "-=-"
		case shortMark(urdu.MarkAt(loc, 2)):
			code = "=="
		case urdu.IsVowelOrHeh(stripped[2]):
			code = "-=-"
		default:
			code = "=="
		}
	case urdu.IsVowelOrHeh(stripped[2]):
		if stripped[3] == urdu.Alif {
			code = "=="
		} else if urdu.IsVowelOrHeh(stripped[1]) {
			code = "=="
		} else {
			code = "-=-"
		}
	default:
		code = "=="
	}

	if urdu.ContainsNoon(string(stripped)) {
		code = noonGhunna(sub, code)
	}
	return code
}
