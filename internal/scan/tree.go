package scan

import (
	"strings"

	"github.com/tariquesani/aruuz-nigar/internal/domain"
	"github.com/tariquesani/aruuz-nigar/internal/meter"
)

// DefaultNodeBudget bounds the number of tree nodes materialized per line.
const DefaultNodeBudget = 100000

// treeNode is one arena record: the chosen code for one word plus parent
// linkage. The root carries code "root" at wordRef -1.
type treeNode struct {
	code    string
	wordRef int
	codeRef int
	parent  int32
}

// PathNode is one terminal choice of a ScanPath.
type PathNode struct {
	Code    string
	WordRef int
	CodeRef int
}

// ScanPath is a complete per-word choice sequence that survived pruning,
// with the catalogue indices still alive on it.
type ScanPath struct {
	Nodes  []PathNode
	Meters []int
}

// CodeTree is the per-line search structure. Nodes live in a flat arena;
// children are materialized lazily during the pruned traversal. Every
// child tried costs one node of budget; the subtree below a pruned child
// is never built.
type CodeTree struct {
	nodes   []treeNode
	choices [][]string // per word: codes ∪ graft codes, deduplicated
	budget  int
	partial bool
}

// NewCodeTree prepares a tree over the line's frozen code alternatives.
func NewCodeTree(line *domain.Line, budget int) *CodeTree {
	if budget <= 0 {
		budget = DefaultNodeBudget
	}
	t := &CodeTree{budget: budget}
	t.nodes = append(t.nodes, treeNode{code: "root", wordRef: -1, codeRef: -1, parent: -1})
	for _, w := range line.Words {
		var union []string
		seen := map[string]bool{}
		for _, c := range w.Codes {
			if !seen[c] {
				seen[c] = true
				union = append(union, c)
			}
		}
		for _, c := range w.GraftCodes {
			if !seen[c] {
				seen[c] = true
				union = append(union, c)
			}
		}
		t.choices = append(t.choices, union)
	}
	return t
}

// Partial reports whether the node budget tripped during FindMeters.
func (t *CodeTree) Partial() bool { return t.partial }

// initialMeters returns the catalogue indices the traversal starts with:
// usable standard meters plus the rubai family. Special (Hindi/Zamzama)
// meters go through the pattern-tree machinery instead.
func initialMeters() []int {
	var alive []int
	for i := 0; i < meter.NumStandard(); i++ {
		if meter.Usable(i) {
			alive = append(alive, i)
		}
	}
	for i := meter.NumStandard(); i < meter.NumStandard()+meter.NumRubai(); i++ {
		alive = append(alive, i)
	}
	return alive
}

// FindMeters runs the depth-first traversal: at every node the branch's
// alive-meter set is re-filtered against the partial code, and branches
// with no alive meters are abandoned. Complete paths pass the final
// length check before being emitted.
func (t *CodeTree) FindMeters(seed []int) []ScanPath {
	if len(t.choices) == 0 {
		return nil
	}
	if seed == nil {
		seed = initialMeters()
	}
	var out []ScanPath
	t.descend(0, 0, "", seed, &out)
	return out
}

func (t *CodeTree) descend(parent int32, word int, partial string, alive []int, out *[]ScanPath) {
	if t.partial {
		return
	}
	for ref, code := range t.choices[word] {
		if len(t.nodes) >= t.budget {
			t.partial = true
			return
		}
		t.nodes = append(t.nodes, treeNode{code: code, wordRef: word, codeRef: ref, parent: parent})
		idx := int32(len(t.nodes) - 1)

		survivors := filterMeters(alive, partial, code)
		if len(survivors) == 0 {
			continue
		}
		next := partial + code

		if word == len(t.choices)-1 {
			final := checkCodeLength(next, survivors)
			if len(final) > 0 {
				*out = append(*out, ScanPath{Nodes: t.pathTo(idx), Meters: final})
			}
			continue
		}
		t.descend(idx, word+1, next, survivors, out)
	}
}

// pathTo reconstructs the per-word choices from the arena.
func (t *CodeTree) pathTo(idx int32) []PathNode {
	var rev []PathNode
	for i := idx; i > 0; i = t.nodes[i].parent {
		n := t.nodes[i]
		rev = append(rev, PathNode{Code: n.code, WordRef: n.wordRef, CodeRef: n.codeRef})
	}
	for l, r := 0, len(rev)-1; l < r; l, r = l+1, r-1 {
		rev[l], rev[r] = rev[r], rev[l]
	}
	return rev
}

func filterMeters(alive []int, partial, code string) []int {
	var out []int
	for _, m := range alive {
		if isMatch(meter.Pattern(m), partial, code) {
			out = append(out, m)
		}
	}
	return out
}

// isMatch tests whether appending wordCode to the partial code keeps the
// meter viable under any of its four variant forms. A caesura ('+') lying
// at the word's final position additionally requires the word to end in a
// short — the hemistich boundary must coincide with a word boundary.
func isMatch(pattern, partial, wordCode string) bool {
	if len(partial)+len(wordCode) == 0 {
		return false
	}
	withCaesura := strings.ReplaceAll(pattern, "/", "")

	if len(withCaesura) > len(partial)+len(wordCode) {
		pos := len(partial) + len(wordCode) - 1
		if pos >= 0 && pos < len(withCaesura) && withCaesura[pos] == '+' {
			if len(wordCode) >= 2 && wordCode[len(wordCode)-1] != '-' {
				return false
			}
		}
	}

	v := meter.Variants(pattern)
	// Variants 1 and 2 append a trailing short; they only admit word codes
	// that themselves end short.
	return matchAgainst(v[0], partial, wordCode, false) ||
		matchAgainst(v[1], partial, wordCode, true) ||
		matchAgainst(v[2], partial, wordCode, true) ||
		matchAgainst(v[3], partial, wordCode, false)
}

func matchAgainst(variant, partial, wordCode string, needShortEnd bool) bool {
	if len(variant) < len(partial)+len(wordCode) {
		return false
	}
	rest := variant[len(partial):]
	for i := 0; i < len(wordCode); i++ {
		cd := wordCode[i]
		if needShortEnd && i == len(wordCode)-1 && cd != '-' {
			return false
		}
		met := rest[i]
		switch met {
		case '-':
			if cd != '-' && cd != 'x' {
				return false
			}
		case '=':
			if cd != '=' && cd != 'x' {
				return false
			}
		}
	}
	return true
}

// checkCodeLength keeps only the meters one of whose variants equals the
// full code in length and matches it symbol for symbol ('x' substitutes
// at symbol level, never at length level).
func checkCodeLength(code string, alive []int) []int {
	var out []int
	for _, m := range alive {
		v := meter.VariantsOf(m)
		for k := 0; k < 4; k++ {
			if matchExact(v[k], code) {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

func matchExact(variant, code string) bool {
	if len(variant) != len(code) {
		return false
	}
	for i := 0; i < len(code); i++ {
		switch variant[i] {
		case '-':
			if code[i] != '-' && code[i] != 'x' {
				return false
			}
		case '=':
			if code[i] != '=' && code[i] != 'x' {
				return false
			}
		}
	}
	return true
}
