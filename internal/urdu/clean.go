package urdu

import "strings"

// Characters stripped from input lines: Latin and Urdu punctuation,
// honorific signs, and zero-width/bidi controls.
var stripChars = []string{
	",", "\"", "*", "'", "-", "۔", "،", "?", "!", "ؔ", "؟",
	"‘", "(", ")", "؛", ";", "​", "‌", "‍", "\uFEFF",
	".", "ؒ", "؎", "=", "ؑ", "ؓ", "﷽", "ﷺ",
	":", "’",
}

// CleanLine strips punctuation and zero-width characters from a line.
// Urdu comma and full stop become token separators rather than vanishing
// mid-word.
func CleanLine(line string) string {
	if line == "" {
		return ""
	}
	line = strings.ReplaceAll(line, "،", " ") // ،
	line = strings.ReplaceAll(line, "۔", " ") // ۔
	for _, ch := range stripChars {
		line = strings.ReplaceAll(line, ch, "")
	}
	return line
}

// CleanWord folds orthographic variants:
//   - final ئ → یٔ
//   - ا followed by the madd sign → آ
//   - ۂ (U+06C2) → ہ + hamza-above
func CleanWord(word string) string {
	if word == "" {
		return ""
	}
	if strings.HasSuffix(word, "ئ") {
		word = strings.TrimSuffix(word, "ئ") + "یٔ"
	}
	word = strings.ReplaceAll(word, "آ", "آ")
	word = strings.ReplaceAll(word, "ۂ", "ۂ")
	return word
}

// Tokenize cleans a line and splits it into word surface forms in reading
// order. A token whose nasal (ن or ں) is immediately followed by the final
// stop cluster کہ is split at that boundary (e.g. کیونکہ → کیون + کہ).
func Tokenize(line string) []string {
	cleaned := CleanLine(line)
	if strings.TrimSpace(cleaned) == "" {
		return nil
	}
	var toks []string
	for _, f := range strings.Fields(cleaned) {
		w := CleanWord(f)
		if w == "" {
			continue
		}
		if head, tail, ok := splitNoonStop(w); ok {
			toks = append(toks, head, tail)
			continue
		}
		toks = append(toks, w)
	}
	return toks
}

// splitNoonStop splits words like کیونکہ into their nasal-final head and
// the trailing کہ cluster.
func splitNoonStop(word string) (string, string, bool) {
	rs := []rune(word)
	if len(rs) < 4 {
		return "", "", false
	}
	if rs[len(rs)-1] != GolHeh || rs[len(rs)-2] != 'ک' {
		return "", "", false
	}
	nasal := rs[len(rs)-3]
	if nasal != Noon && nasal != NoonGhunnaL {
		return "", "", false
	}
	return string(rs[:len(rs)-2]), string(rs[len(rs)-2:]), true
}
