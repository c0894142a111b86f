package urdu

// Letters referenced throughout the heuristics.
const (
	Alif        = 'ا'
	AlifMadd    = 'آ'
	ChhotiYeh   = 'ی'
	BariYeh     = 'ے'
	Wao         = 'و'
	GolHeh      = 'ہ'
	WaoHamza    = 'ؤ'
	DoChashmi   = 'ھ'
	NoonGhunnaL = 'ں' // the letter, distinct from the mark
	Noon        = 'ن'
)

// IsVowelOrHeh reports whether r marks a flexible (vowel-like) syllable
// ending: one of ا ی ے و ہ ؤ.
func IsVowelOrHeh(r rune) bool {
	switch r {
	case Alif, ChhotiYeh, BariYeh, Wao, GolHeh, WaoHamza:
		return true
	}
	return false
}

// IsIzafat reports whether the word's final character is an izafat marker
// (zer, hamza-above, or the ۂ ligature).
func IsIzafat(word string) bool {
	rs := []rune(word)
	if len(rs) == 0 {
		return false
	}
	last := rs[len(rs)-1]
	return last == Zer || last == HamzaAbove || last == 'ۂ'
}

// IsConsonantPair reports whether positions 0 and 1 of word are both
// consonants (neither ا ی ے ہ).
func IsConsonantPair(word string) bool {
	rs := []rune(word)
	if len(rs) < 2 {
		return false
	}
	vowelish := func(r rune) bool {
		return r == Alif || r == ChhotiYeh || r == BariYeh || r == GolHeh
	}
	return !vowelish(rs[0]) && !vowelish(rs[1])
}

// ContainsNoon reports whether word has a ن before its last character.
func ContainsNoon(word string) bool {
	rs := []rune(word)
	for i := 0; i < len(rs)-1; i++ {
		if rs[i] == Noon {
			return true
		}
	}
	return false
}

// StripSilent removes the aspirate marker ھ and nasal ں, which do not
// count toward syllable length.
func StripSilent(word string) string {
	out := make([]rune, 0, len(word))
	for _, r := range word {
		if r != DoChashmi && r != NoonGhunnaL {
			out = append(out, r)
		}
	}
	return string(out)
}

// RemoveTashdid rewrites shadd as an explicit geminate: the doubled
// consonant with jazm on the first copy and zabar on the second.
func RemoveTashdid(word string) string {
	if !IsMuarrab(word) {
		return word
	}
	rs := []rune(word)
	out := make([]rune, 0, len(rs)+4)
	for i := 0; i < len(rs); i++ {
		if rs[i] != Shadd {
			out = append(out, rs[i])
			continue
		}
		if i >= 2 && !IsAraab(rs[i-2]) {
			if !IsAraab(rs[i-1]) {
				if len(out) > 0 {
					out = out[:len(out)-1]
				}
				out = append(out, rs[i-1], Jazm, rs[i-1], Zabar)
			} else {
				if len(out) >= 2 {
					out = out[:len(out)-2]
				}
				out = append(out, rs[i-2], Jazm, rs[i-2], Zabar)
			}
		} else if i >= 1 {
			out = append(out, Jazm, rs[i-1], Zabar)
		}
	}
	return string(out)
}
