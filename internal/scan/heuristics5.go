package scan

import (
	"github.com/tariquesani/aruuz-nigar/internal/urdu"
)

// lengthFiveScan handles words of five or more bare letters by combining
// positional vowel checks with diacritic evidence, peeling a leading
// syllable and re-scanning the remainder where the word decomposes.
func lengthFiveScan(sub string) string {
	subString := urdu.StripSilent(sub)
	stripped := []rune(urdu.RemoveAraab(subString))

	switch len(stripped) {
	case 0, 1, 2:
		return lengthTwoScan(sub)
	case 3:
		return lengthThreeScan(sub)
	case 4:
		return lengthFourScan(sub)
	}

	ssr := []rune(subString)
	tail := func(from int) string {
		if from < len(ssr) {
			return string(ssr[from:])
		}
		return ""
	}
	marked := func(loc []rune, i int) bool { return urdu.IsAraab(urdu.MarkAt(loc, i)) }

	var code string
	switch {
	case stripped[0] == urdu.AlifMadd:
		code = "=" + lengthFourScan(tail(2))
	case urdu.IsMuarrab(subString):
		loc := urdu.LocateAraab(subString)
		switch {
		case stripped[1] == urdu.Alif || stripped[2] == urdu.Alif || stripped[3] == urdu.Alif:
			switch {
			case stripped[2] == urdu.Alif:
				code = "-=="
			case stripped[1] == urdu.Alif:
				if marked(loc, 0) {
					if marked(loc, 1) {
						code = "=" + lengthThreeScan(tail(3))
					} else {
						code = "=" + lengthThreeScan(tail(4))
					}
				} else {
					if marked(loc, 1) {
						code = "=" + lengthThreeScan(tail(2))
					} else {
						code = "=" + lengthThreeScan(tail(3))
					}
				}
			default: // alif in fourth position
				code = "==-"
				if shortMark(urdu.MarkAt(loc, 1)) {
					code = "--=-"
				} else if urdu.MarkAt(loc, 1) == urdu.Jazm {
					code = "--=-"
				} else if stripped[0] == 'ب' {
					if urdu.IsVowelOrHeh(stripped[1]) || stripped[1] == 'ر' ||
						stripped[1] == urdu.Noon || stripped[1] == 'غ' {
						code = "==-"
					} else {
						code = "--=-"
					}
				}
			}
		case stripped[1] == urdu.Wao || stripped[2] == urdu.Wao || stripped[3] == urdu.Wao ||
			stripped[1] == urdu.ChhotiYeh || stripped[2] == urdu.ChhotiYeh || stripped[3] == urdu.ChhotiYeh:
			switch {
			case stripped[1] == urdu.Wao || stripped[1] == urdu.ChhotiYeh:
				switch {
				case urdu.MarkAt(loc, 1) == urdu.Jazm:
					if marked(loc, 0) {
						if marked(loc, 1) {
							code = "=" + lengthThreeScan(tail(5))
						} else {
							code = "=" + lengthThreeScan(tail(4))
						}
					} else {
						if marked(loc, 1) {
							code = "=" + lengthThreeScan(tail(3))
						} else {
							code = "=" + lengthThreeScan(tail(4))
						}
					}
				case shortMark(urdu.MarkAt(loc, 1)):
					if shortMark(urdu.MarkAt(loc, 2)) {
						code = "--=-"
					} else {
						code = "-=="
					}
				default:
					if shortMark(urdu.MarkAt(loc, 2)) {
						if shortMark(urdu.MarkAt(loc, 3)) {
							code = "=-="
						} else if urdu.MarkAt(loc, 3) == urdu.Jazm {
							code = "==-"
						} else {
							code = "==-"
						}
					} else if urdu.MarkAt(loc, 2) == urdu.Jazm {
						if shortMark(urdu.MarkAt(loc, 3)) {
							code = "=-="
						} else if urdu.MarkAt(loc, 3) == urdu.Jazm {
							code = "=---"
						} else {
							if marked(loc, 2) {
								code = "=" + lengthThreeScan(tail(4))
							} else {
								code = "=" + lengthThreeScan(tail(3))
							}
						}
					} else {
						code = "=" + lengthThreeScan(tail(2))
					}
				}
			case stripped[2] == urdu.Wao || stripped[2] == urdu.ChhotiYeh:
				if shortMark(urdu.MarkAt(loc, 2)) {
					if shortMark(urdu.MarkAt(loc, 1)) {
						if shortMark(urdu.MarkAt(loc, 3)) {
							code = "-----"
						} else {
							code = "--=-"
						}
					}
				} else if urdu.MarkAt(loc, 2) == urdu.Jazm {
					code = "-=="
				} else {
					code = "-=="
				}
			case stripped[3] == urdu.Wao || stripped[3] == urdu.ChhotiYeh:
				if shortMark(urdu.MarkAt(loc, 2)) {
					if shortMark(urdu.MarkAt(loc, 1)) {
						if shortMark(urdu.MarkAt(loc, 3)) {
							code = "---="
						} else {
							code = "--=-"
						}
					}
				} else if urdu.MarkAt(loc, 2) == urdu.Jazm {
					code = "-=="
				} else {
					code = "==-"
				}
			default:
				if shortMark(urdu.MarkAt(loc, 2)) {
					if shortMark(urdu.MarkAt(loc, 1)) {
						if shortMark(urdu.MarkAt(loc, 3)) {
							code = "-----"
						} else {
							code = "--=-"
						}
					}
				} else if urdu.MarkAt(loc, 2) == urdu.Jazm {
					code = "-=="
				} else {
					code = "==-"
				}
			}
		default:
			switch {
			case shortMark(urdu.MarkAt(loc, 1)):
				if shortMark(urdu.MarkAt(loc, 2)) {
					if stripped[4] == urdu.Alif {
						code = "---="
					} else {
						code = "--=-"
					}
				} else if urdu.MarkAt(loc, 2) == urdu.Jazm {
					code = "-=="
				} else {
					code = "-=="
				}
			case urdu.MarkAt(loc, 1) == urdu.Jazm:
				if marked(loc, 0) {
					code = "=" + lengthThreeScan(tail(4))
				} else {
					code = "=" + lengthThreeScan(tail(3))
				}
			case shortMark(urdu.MarkAt(loc, 2)):
				code = "=-="
			}
		}
	case stripped[1] == urdu.Alif || stripped[2] == urdu.Alif || stripped[3] == urdu.Alif:
		switch {
		case stripped[2] == urdu.Alif:
			code = "-=="
		case stripped[1] == urdu.Alif:
			if stripped[3] == urdu.Alif {
				code = "==-"
			} else if urdu.IsVowelOrHeh(stripped[3]) {
				if urdu.IsVowelOrHeh(stripped[4]) {
					code = "=-="
				} else {
					code = "==-"
				}
			} else if urdu.IsVowelOrHeh(stripped[4]) {
				code = "=-="
			} else {
				code = "==-"
			}
		default: // alif in fourth position
			code = "==-"
			if stripped[0] == 'ب' {
				if urdu.IsVowelOrHeh(stripped[1]) || stripped[1] == 'ر' ||
					stripped[1] == urdu.Noon || stripped[1] == 'غ' {
					code = "==-"
				} else {
					code = "--=-"
				}
			}
		}
	case urdu.IsVowelOrHeh(stripped[1]) || urdu.IsVowelOrHeh(stripped[2]) || urdu.IsVowelOrHeh(stripped[3]):
		switch {
		case urdu.IsVowelOrHeh(stripped[2]):
			code = "-=="
		case urdu.IsVowelOrHeh(stripped[1]):
			if urdu.IsVowelOrHeh(stripped[3]) {
				code = "==-"
			} else if urdu.IsVowelOrHeh(stripped[4]) {
				code = "=-="
			} else {
				code = "==-"
			}
		default: // vowel in fourth position
			code = "==-"
			if stripped[0] == 'ب' {
				if urdu.IsVowelOrHeh(stripped[1]) || stripped[1] == 'ر' ||
					stripped[1] == urdu.Noon || stripped[1] == 'غ' {
					code = "==-"
				} else {
					code = "--=-"
				}
			}
			if stripped[4] == 'ت' && stripped[3] == urdu.ChhotiYeh && len(code) > 0 {
				code = code[:len(code)-1] + "="
			}
		}
	default: // all consonants
		code = "==-"
		if stripped[0] == 'ب' {
			if urdu.IsVowelOrHeh(stripped[1]) || stripped[1] == 'ر' ||
				stripped[1] == urdu.Noon || stripped[1] == 'غ' {
				code = "==-"
			} else {
				code = "--=-"
			}
		}
		if stripped[0] == 'ت' || stripped[0] == 'ش' {
			code = "-=="
		}
		if stripped[4] == 'ت' && stripped[3] == urdu.ChhotiYeh {
			code = code[:len(code)-1] + "="
		}
		if stripped[4] == urdu.Alif {
			code = "-=="
		} else if urdu.IsVowelOrHeh(stripped[4]) {
			code = "=-="
		}
	}

	if urdu.ContainsNoon(string(stripped)) {
		code = noonGhunna(sub, code)
	}
	return code
}

// noonGhunna adjusts a code for nasalised patterns: a ن carrying jazm
// after a vowel does not weigh as its own syllable.
func noonGhunna(word, code string) string {
	subString := urdu.StripSilent(word)
	stripped := []rune(urdu.RemoveAraab(subString))
	loc := urdu.LocateAraab(subString)

	switch len(stripped) {
	case 3:
		if stripped[0] == urdu.AlifMadd {
			if stripped[1] == urdu.Noon && urdu.MarkAt(loc, 1) == urdu.Jazm && code == "=--" {
				code = "=-"
			}
		} else if stripped[1] == urdu.Noon && urdu.MarkAt(loc, 1) == urdu.Jazm && code == "=-" {
			if stripped[0] == urdu.Alif {
				code = "=-"
			} else if urdu.IsVowelOrHeh(stripped[0]) {
				code = "="
			}
		}
	case 4:
		if stripped[0] == urdu.AlifMadd {
			if stripped[1] == urdu.Noon && urdu.MarkAt(loc, 1) == urdu.Jazm && code == "=-=" {
				code = "=="
			}
		} else if stripped[1] == urdu.Noon && urdu.MarkAt(loc, 1) == urdu.Jazm {
			if code == "==" {
				if stripped[0] == urdu.Alif {
					code = "=="
				} else if urdu.IsVowelOrHeh(stripped[0]) {
					code = "-="
				}
			}
		} else if stripped[2] == urdu.Noon && urdu.MarkAt(loc, 2) == urdu.Jazm {
			if code == "=--" {
				if urdu.IsVowelOrHeh(stripped[1]) {
					code = "=-"
				}
			} else if code == "==" {
				if urdu.IsVowelOrHeh(stripped[1]) && !urdu.IsVowelOrHeh(stripped[3]) {
					code = "=-"
				}
			}
		}
	case 5:
		if stripped[0] == urdu.AlifMadd {
			if stripped[1] == urdu.Noon && urdu.MarkAt(loc, 1) == urdu.Jazm {
				if len(code) > 1 && code[1] == '-' {
					code = code[:1] + code[2:]
				}
			}
		} else if stripped[1] == urdu.Noon && urdu.MarkAt(loc, 1) == urdu.Jazm {
			// No recorded adjustment for this shape.
		} else if stripped[2] == urdu.Noon && urdu.MarkAt(loc, 2) == urdu.Jazm {
			if len(code) > 1 && code[0] == '=' && code[1] == '-' {
				if urdu.IsVowelOrHeh(stripped[1]) {
					code = code[:1] + code[2:]
				}
			}
		} else if stripped[3] == urdu.Noon && urdu.MarkAt(loc, 3) == urdu.Jazm {
			if len(code) >= 2 && code[len(code)-1] == '-' && code[len(code)-2] == '-' {
				if urdu.IsVowelOrHeh(stripped[2]) && len(code) > 2 && code[len(code)-3] == '=' {
					code = code[:len(code)-1]
				}
			}
		}
	}
	return code
}
