package scan

import (
	"strings"

	"github.com/tariquesani/aruuz-nigar/internal/domain"
	"github.com/tariquesani/aruuz-nigar/internal/urdu"
)

// applyProsodicRules runs the four inter-word rules left to right, in the
// fixed order Al → Izafat → Ataf → Grafting. Each rule sees the output of
// the previous one. Rules add alternatives or rewrite codes in place (Al
// also trims the next word's leading symbol); a kept word never loses a
// candidate, though Ataf removes a fused و from the word list.
func applyProsodicRules(line *domain.Line) {
	processAlPrefix(line)
	processIzafat(line)
	processAtaf(line)
	processGrafting(line)
}

// processAlPrefix absorbs the alif of a following definite article ال:
// when the current word ends in zabar or paish (a voweled junction), the
// article's alif stops counting as its own syllable. The current word's
// ending lengthens and the next word's codes lose their leading symbol.
func processAlPrefix(line *domain.Line) {
	for i := 0; i+1 < len(line.Words); i++ {
		wrd, nwrd := line.Words[i], line.Words[i+1]

		next := []rune(nwrd.Surface)
		if len(next) < 2 || next[0] != urdu.Alif || next[1] != 'ل' {
			continue
		}
		raw := []rune(wrd.Raw)
		if len(raw) == 0 {
			continue
		}
		last := raw[len(raw)-1]
		if last != urdu.Zabar && last != urdu.Paish {
			continue
		}
		stripped := []rune(urdu.RemoveAraab(wrd.Raw))
		if len(stripped) == 0 {
			continue
		}

		for k := range wrd.Codes {
			c := wrd.Codes[k]
			if c == "" {
				continue
			}
			end := c[len(c)-1]
			if urdu.IsVowelOrHeh(stripped[len(stripped)-1]) {
				// Vowel-final junction: the ending firms up to a long.
				wrd.Codes[k] = c[:len(c)-1] + "="
			} else if len(stripped) == 2 && urdu.IsConsonantPair(string(stripped)) {
				wrd.Codes[k] = c[:len(c)-1] + "=="
			} else if end == '=' || end == 'x' {
				wrd.Codes[k] = c[:len(c)-1] + "-="
			} else if end == '-' {
				wrd.Codes[k] = c[:len(c)-1] + "="
			}
		}
		for k := range nwrd.Codes {
			if len(nwrd.Codes[k]) > 0 {
				nwrd.Codes[k] = nwrd.Codes[k][1:]
			}
		}
		for l := range wrd.Muarrab {
			wrd.Muarrab[l] += "ل"
		}
		for l := range nwrd.Muarrab {
			if mr := []rune(nwrd.Muarrab[l]); len(mr) >= 2 {
				nwrd.Muarrab[l] = string(mr[2:])
			}
		}
		wrd.NoteProsodic("al-absorption: article alif elided into previous word")
		nwrd.NoteProsodic("al-absorption: leading alif not counted")
	}
}

// processIzafat adds the linking short vowel of an izafat ending as new
// alternatives. Original codes are kept: izafat is optional in recitation
// and the tree must be able to choose either reading.
func processIzafat(line *domain.Line) {
	for _, wrd := range line.Words {
		if !urdu.IsIzafat(wrd.Raw) {
			continue
		}
		bare := []rune(urdu.RemoveAraab(wrd.Raw))
		fromLexicon := false
		for _, id := range wrd.IDs {
			if id >= 0 {
				fromLexicon = true
				break
			}
		}

		existing := len(wrd.Codes)
		for k := 0; k < existing; k++ {
			c := wrd.Codes[k]
			if c == "" {
				continue
			}
			end := c[len(c)-1]
			var alts []string
			switch {
			case fromLexicon && len(bare) == 2:
				alts = []string{"xx"}
			case (end == '=' || end == 'x') && fromLexicon &&
				len(bare) > 0 && (bare[len(bare)-1] == urdu.Alif || bare[len(bare)-1] == urdu.Wao):
				alts = []string{c[:len(c)-1] + "=x"}
			case (end == '=' || end == 'x') && fromLexicon &&
				len(bare) > 0 && bare[len(bare)-1] == urdu.ChhotiYeh:
				alts = []string{c + "x", c[:len(c)-1] + "-x"}
			case end == '=' || end == 'x':
				alts = []string{c[:len(c)-1] + "-x"}
			case end == '-':
				alts = []string{c[:len(c)-1] + "x"}
			}
			for _, alt := range alts {
				wrd.AddCode(alt, taqtiFor(wrd, k), muarrabFor(wrd, k), -1)
			}
		}
		if len(wrd.Codes) > existing {
			wrd.NoteProsodic("izafat: linking vowel added as alternative reading")
		}
	}
}

// processAtaf fuses the single-letter conjunction و into its predecessor:
// the conjunction contributes a short (or flexes the previous ending) and
// stops being scanned as its own word. After a predecessor ending in ا
// or ی the و is left in place as a word of its own.
func processAtaf(line *domain.Line) {
	var kept []*domain.Word
	for i := 0; i < len(line.Words); i++ {
		wrd := line.Words[i]
		if wrd.Surface != string(urdu.Wao) || i == 0 || len(kept) == 0 {
			kept = append(kept, wrd)
			continue
		}
		pwrd := kept[len(kept)-1]
		stripped := []rune(urdu.RemoveAraab(pwrd.Surface))
		if len(stripped) == 0 {
			kept = append(kept, wrd)
			continue
		}
		last := stripped[len(stripped)-1]
		if last == urdu.Alif || last == urdu.ChhotiYeh {
			// Vowel-final predecessor: و is kept and scanned on its own.
			kept = append(kept, wrd)
			continue
		}

		for k := range pwrd.Codes {
			c := pwrd.Codes[k]
			if c == "" {
				continue
			}
			end := c[len(c)-1]
			if len(stripped) == 2 && urdu.IsConsonantPair(urdu.RemoveAraab(pwrd.Surface)) {
				pwrd.Codes[k] = "xx"
			} else if end == '=' || end == 'x' {
				pwrd.Codes[k] = c[:len(c)-1] + "-x"
			} else if end == '-' {
				pwrd.Codes[k] = c[:len(c)-1] + "x"
			}
		}
		pwrd.NoteProsodic("ataf: conjunction و fused into this word")
		wrd.NoteProsodic("ataf: removed from scansion")
		// wrd is dropped from the scanned word list.
	}
	line.Words = kept
}

// processGrafting adds graft alternatives when a consonant-final word is
// followed by a vowel-initial one (ا or آ): the final syllable may absorb
// the vowel, shortening the word's own contribution. Graft codes live in
// GraftCodes so the tree can branch on grafted-vs-not.
func processGrafting(line *domain.Line) {
	for i := 1; i < len(line.Words); i++ {
		wrd, prev := line.Words[i], line.Words[i-1]
		first := []rune(wrd.Surface)
		if len(first) == 0 || (first[0] != urdu.Alif && first[0] != urdu.AlifMadd) {
			continue
		}
		stripped := []rune(urdu.RemoveAraab(prev.Surface))
		if len(stripped) == 0 || urdu.IsVowelOrHeh(stripped[len(stripped)-1]) {
			continue
		}

		added := 0
		for _, c := range prev.Codes {
			if c == "" {
				continue
			}
			switch c[len(c)-1] {
			case '=':
				prev.GraftCodes = append(prev.GraftCodes, c[:len(c)-1]+"-")
				added++
			case '-':
				prev.GraftCodes = append(prev.GraftCodes, c[:len(c)-1])
				added++
			}
		}
		if added > 0 {
			prev.NoteProsodic("grafting: final consonant may join following vowel")
		}
	}
}

func taqtiFor(w *domain.Word, k int) string {
	if k < len(w.Taqti) {
		return w.Taqti[k]
	}
	return ""
}

func muarrabFor(w *domain.Word, k int) string {
	if k < len(w.Muarrab) {
		return w.Muarrab[k]
	}
	return strings.TrimSpace(w.Raw)
}
