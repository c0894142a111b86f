// Package meter holds the immutable bahr catalogue: meter patterns, their
// Urdu names, rukn (foot) templates, and the pattern-variant policy used
// for matching.
package meter

import (
	"fmt"
	"strings"
)

// Catalogue index ranges. Standard meters come first, then the rubai
// family, then the Hindi/Zamzama special meters.
func NumStandard() int { return len(meters) }
func NumRubai() int    { return len(rubaiMeters) }
func NumSpecial() int  { return len(specialMeters) }

// Total is the number of addressable catalogue indices.
func Total() int { return len(meters) + len(rubaiMeters) + len(specialMeters) }

// IsSpecial reports whether index i addresses a Hindi/Zamzama meter.
func IsSpecial(i int) bool {
	return i >= len(meters)+len(rubaiMeters) && i < Total()
}

// IsRubai reports whether index i addresses a rubai meter.
func IsRubai(i int) bool {
	return i >= len(meters) && i < len(meters)+len(rubaiMeters)
}

// Pattern returns the raw pattern of catalogue index i ('/' and '+'
// retained). Panics on an out-of-range index; callers hold indices that
// the traversal produced, so a bad index is a programming error.
func Pattern(i int) string {
	switch {
	case i < len(meters):
		return meters[i].Pattern
	case i < len(meters)+len(rubaiMeters):
		return rubaiMeters[i-len(meters)].Pattern
	case i < Total():
		return specialMeters[i-len(meters)-len(rubaiMeters)].Pattern
	}
	panic(fmt.Sprintf("meter: index %d out of range", i))
}

// Name returns the Urdu display name of catalogue index i. Rubai meters
// carry the (رباعی) suffix in their reported name.
func Name(i int) string {
	switch {
	case i < len(meters):
		return meters[i].Name
	case i < len(meters)+len(rubaiMeters):
		return rubaiMeters[i-len(meters)].Name + " (رباعی)"
	case i < Total():
		return specialMeters[i-len(meters)-len(rubaiMeters)].Name
	}
	panic(fmt.Sprintf("meter: index %d out of range", i))
}

// Usable reports whether standard index i participates in matching.
func Usable(i int) bool {
	if i < len(meters) && i < len(usage) {
		return usage[i] == 1
	}
	return true
}

// IndexByName returns every catalogue index whose display name equals
// name; a bahr may have several pattern variants under one name.
func IndexByName(name string) []int {
	var idx []int
	for i := range meters {
		if meters[i].Name == name {
			idx = append(idx, i)
		}
	}
	return idx
}

// footName returns the rukn name for an exact foot pattern, or "".
func footName(pattern string) string {
	for _, f := range feet {
		if f.Pattern == pattern {
			return f.Name
		}
	}
	return ""
}

// Afail renders a meter pattern as its space-separated foot names.
// Unknown segments are skipped, matching the catalogue's own rendering.
func Afail(pattern string) string {
	var b strings.Builder
	for _, part := range strings.Split(pattern, "+") {
		for _, fp := range strings.Split(part, "/") {
			if name := footName(fp); name != "" {
				if b.Len() > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(name)
			}
		}
	}
	return b.String()
}

// AfailList decomposes a meter pattern into its named feet.
func AfailList(pattern string) []Foot {
	var out []Foot
	for _, part := range strings.Split(pattern, "+") {
		for _, fp := range strings.Split(part, "/") {
			if name := footName(fp); name != "" {
				out = append(out, Foot{Pattern: fp, Name: name})
			}
		}
	}
	return out
}

// AfailSpecial returns the canonical afail rendering of a special meter
// by display name, or "".
func AfailSpecial(name string) string {
	for i, m := range specialMeters {
		if m.Name == name {
			return specialAfail[i]
		}
	}
	return ""
}

// Rukn returns the foot name for a weight code, or "".
func Rukn(code string) string { return footName(code) }

// Variants returns the four matching forms of a pattern. This four-way
// policy is the compatibility mechanism with classical zihaf/illat
// modifications and must not change:
//
//	v0: '+' dropped                      (base form)
//	v1: '+' dropped, trailing '-' added  (extra final short)
//	v2: '+' → '-', trailing '-' added    (caesura filled and extended)
//	v3: '+' → '-'                        (caesura filled)
func Variants(pattern string) [4]string {
	p := strings.ReplaceAll(pattern, "/", "")
	base := strings.ReplaceAll(p, "+", "")
	filled := strings.ReplaceAll(p, "+", "-")
	return [4]string{base, base + "-", filled + "-", filled}
}

// variantsCache holds the precomputed four forms per catalogue index.
var variantsCache = map[int][4]string{}

// VariantsOf returns the cached variant forms for catalogue index i.
// The cache is populated by Validate at startup; lookups after that are
// read-only and safe to share.
func VariantsOf(i int) [4]string {
	if v, ok := variantsCache[i]; ok {
		return v
	}
	return Variants(Pattern(i))
}

// Validate self-checks the catalogue and warms the variant cache. It is
// called once at startup; a failure means the tables themselves are
// corrupt and the process must not continue.
func Validate() error {
	if len(meters) != 129 {
		return fmt.Errorf("meter: expected 129 standard meters, have %d", len(meters))
	}
	if len(feet) != 32 {
		return fmt.Errorf("meter: expected 32 feet, have %d", len(feet))
	}
	if len(specialMeters) != len(specialAfail) {
		return fmt.Errorf("meter: special meters/afail length mismatch: %d vs %d",
			len(specialMeters), len(specialAfail))
	}
	for i := 0; i < len(meters)+len(rubaiMeters); i++ {
		p := Pattern(i)
		if p == "" || Name(i) == "" {
			return fmt.Errorf("meter: empty pattern or name at index %d", i)
		}
		for _, r := range p {
			switch r {
			case '=', '-', 'x', '+', '/':
			default:
				return fmt.Errorf("meter: pattern %q at index %d has invalid symbol %q", p, i, r)
			}
		}
		variantsCache[i] = Variants(p)
	}
	return nil
}
