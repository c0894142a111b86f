package meter

// State-transition tables for special-meter detection. Rows are indexed by
// the current state; -1 is the dead state. The input alphabet is the two
// resolved weights '-' and '='.

var hindiTransition = map[rune][]int{
	'-': {2, 4, -1, 0, 5, -1, 7, -1},
	'=': {1, 0, 3, -1, 6, 1, -1, 0},
}

var zamzamaTransition = map[rune][]int{
	'-': {1, 2, -1, -1},
	'=': {3, -1, 0, 0},
}

var originalHindiTransition = map[rune][]int{
	'-': {-1, 2, 3, -1},
	'=': {1, 0, -1, 1},
}

func nextState(table map[rune][]int, code rune, state int) int {
	row, ok := table[code]
	if !ok || state < 0 || state >= len(row) {
		return -1
	}
	return row[state]
}

// HindiMeterStep advances the Hindi meter machine.
func HindiMeterStep(code rune, state int) int {
	return nextState(hindiTransition, code, state)
}

// ZamzamaMeterStep advances the Zamzama meter machine.
func ZamzamaMeterStep(code rune, state int) int {
	return nextState(zamzamaTransition, code, state)
}

// OriginalHindiMeterStep advances the original Hindi meter machine.
func OriginalHindiMeterStep(code rune, state int) int {
	return nextState(originalHindiTransition, code, state)
}

// AcceptsOriginalHindi reports whether the resolved code (no 'x') is
// accepted by the original Hindi machine: every step stays live and the
// run ends back in the start state.
func AcceptsOriginalHindi(code string) bool {
	return accepts(originalHindiTransition, code)
}

// AcceptsZamzama reports whether the resolved code is accepted by the
// Zamzama machine.
func AcceptsZamzama(code string) bool {
	return accepts(zamzamaTransition, code)
}

func accepts(table map[rune][]int, code string) bool {
	if code == "" {
		return false
	}
	state := 0
	for _, r := range code {
		state = nextState(table, r, state)
		if state < 0 {
			return false
		}
	}
	return state == 0
}
