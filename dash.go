package tikz

import (
	"fmt"
	"regexp"
	"strings"
)

// dashNames maps exact normalized dash pattern strings to TikZ dash style
// names. Patterns outside this table keep their normalized pair form.
var dashNames = map[string]string{
	"on 0.84pt off 2.51pt":                      "dotted",
	"on 1pt off 1pt":                            "densely dotted",
	"on 4.5pt off 4.5pt":                        "dashed",
	"on 4.5pt off 4.5pt on 4.5pt off 4.5pt":     "dashed",
	"on 5.63pt off 4.5pt":                       "dashed",
	"on 3.38pt off 2.81pt":                      "densely dashed",
	"on 7.88pt off 6.75pt":                      "loosely dashed",
	"on 0.84pt off 2.51pt on 0.84pt off 2.51pt": "dotted",
}

var dashPairRe = regexp.MustCompile(`on\s+([0-9]*\.?[0-9]+)pt\s+off\s+([0-9]*\.?[0-9]+)pt`)

// normalizeDashPattern rewrites a raw dash pattern with %g formatted
// lengths and single spacing, such as "on 4.50pt  off 4.5pt" to
// "on 4.5pt off 4.5pt".
func normalizeDashPattern(pattern string) string {
	var pairs []string
	for _, m := range dashPairRe.FindAllStringSubmatch(pattern, -1) {
		on, okOn := parseFloat(m[1])
		off, okOff := parseFloat(m[2])
		if !okOn || !okOff {
			continue
		}
		pairs = append(pairs, fmt.Sprintf("on %gpt off %gpt", on, off))
	}
	return strings.Join(pairs, " ")
}

// canonicalDashes rewrites dash patterns in every style block of the body:
// duplicate dash pattern keys collapse to the first, known patterns become
// their TikZ style name, and the rest keep a normalized pair form. A style
// name the block already carries is kept once.
func canonicalDashes(body string) string {
	return styleBlockRe.ReplaceAllStringFunc(body, func(block string) string {
		content := block[1 : len(block)-1]
		if !strings.Contains(content, "dash pattern") {
			return block
		}
		var out []string
		seen := make(map[string]bool)
		keep := func(part string) {
			if !seen[part] {
				seen[part] = true
				out = append(out, part)
			}
		}
		seenDash := false
		for _, part := range splitStyleParts(content) {
			m := dashKVRe.FindStringSubmatch(part)
			if m == nil {
				keep(part)
				continue
			}
			if seenDash {
				continue
			}
			seenDash = true
			normalized := normalizeDashPattern(m[1])
			if normalized == "" {
				continue
			}
			if name, ok := dashNames[normalized]; ok {
				keep(name)
			} else {
				keep("dash pattern = {" + normalized + "}")
			}
		}
		if len(out) == 0 {
			return "[]"
		}
		return "[" + strings.Join(out, ", ") + "]"
	})
}
