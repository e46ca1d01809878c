package tikz

import (
	"regexp"
	"strings"
)

var opacityPartRe = regexp.MustCompile(`^(?:draw\s+|fill\s+)?opacity\s*=\s*([0-9]*\.?[0-9]+)$`)

// normalizeOpacity removes redundant opacity attributes from every style
// block: an opacity of exactly 1 is the default and carries no information.
// Style blocks left empty disappear entirely.
func normalizeOpacity(body string) string {
	out := styleBlockRe.ReplaceAllStringFunc(body, func(block string) string {
		content := block[1 : len(block)-1]
		if !strings.Contains(content, "opacity") {
			return block
		}
		var kept []string
		for _, part := range splitStyleParts(content) {
			if m := opacityPartRe.FindStringSubmatch(part); m != nil {
				if v, ok := parseFloat(m[1]); ok && v == 1.0 {
					continue
				}
			}
			kept = append(kept, part)
		}
		if len(kept) == 0 {
			return "[]"
		}
		return "[" + strings.Join(kept, ", ") + "]"
	})
	out = strings.ReplaceAll(out, `\draw [] `, `\draw `)
	out = strings.ReplaceAll(out, `\draw []`, `\draw`)
	return out
}
