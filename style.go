package tikz

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	styleBlockRe = regexp.MustCompile(`\[([^\]]*)\]`)
	colorKVRe    = regexp.MustCompile(`(?:^|[\s,\[])color\s*=\s*(\{[^}]*\}|[^,\]]+)`)
	opacityKVRe  = regexp.MustCompile(`draw\s+opacity\s*=\s*([0-9]*\.?[0-9]+)`)
	dashKVRe     = regexp.MustCompile(`dash\s+pattern\s*=\s*\{([^}]*)\}`)
	lineWidthRe  = regexp.MustCompile(`line\s+width\s*=\s*([0-9]*\.?[0-9]+)`)
)

// Style holds the attributes shared by all shapes: stroke color, draw
// opacity and dash pattern. Zero values mean the attribute is absent.
type Style struct {
	Color       string
	Opacity     float64
	HasOpacity  bool
	DashPattern string
}

// parseStyle extracts the shared style attributes from a draw command.
func parseStyle(cmd string) Style {
	var s Style
	if m := colorKVRe.FindStringSubmatch(cmd); m != nil {
		s.Color = strings.TrimSpace(m[1])
	}
	if m := opacityKVRe.FindStringSubmatch(cmd); m != nil {
		if v, ok := parseFloat(m[1]); ok {
			s.Opacity = v
			s.HasOpacity = true
		}
	}
	if m := dashKVRe.FindStringSubmatch(cmd); m != nil {
		s.DashPattern = strings.TrimSpace(m[1])
	}
	return s
}

// tokens returns the style's canonical key = value parts.
func (s Style) tokens() []string {
	var parts []string
	if s.Color != "" {
		parts = append(parts, "color = "+s.Color)
	}
	if s.HasOpacity {
		parts = append(parts, "draw opacity = "+formatNum(s.Opacity))
	}
	if s.DashPattern != "" {
		parts = append(parts, "dash pattern = {"+s.DashPattern+"}")
	}
	return parts
}

// splitStyleParts splits a style string on top-level commas, leaving commas
// inside braces untouched.
func splitStyleParts(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				if p := strings.TrimSpace(s[start:i]); p != "" {
					parts = append(parts, p)
				}
				start = i + 1
			}
		}
	}
	if p := strings.TrimSpace(s[start:]); p != "" {
		parts = append(parts, p)
	}
	return parts
}

// styleKey returns the lowercased key of a key = value style part, or the
// whole part for bare flags.
func styleKey(part string) string {
	depth := 0
	for i := 0; i < len(part); i++ {
		switch part[i] {
		case '{':
			depth++
		case '}':
			depth--
		case '=':
			if depth == 0 {
				return strings.ToLower(strings.TrimSpace(part[:i]))
			}
		}
	}
	return strings.ToLower(strings.TrimSpace(part))
}

// normalizeStylePart rewrites a key = value part with canonical spacing.
// Bare flags pass through untouched.
func normalizeStylePart(part string) string {
	depth := 0
	for i := 0; i < len(part); i++ {
		switch part[i] {
		case '{':
			depth++
		case '}':
			depth--
		case '=':
			if depth == 0 {
				key := strings.TrimSpace(part[:i])
				val := strings.TrimSpace(part[i+1:])
				return key + " = " + val
			}
		}
	}
	return strings.TrimSpace(part)
}

// isArrowToken reports whether a style part is an arrow marker such as
// "->", "<-" or "<->".
func isArrowToken(part string) bool {
	if part == "" {
		return false
	}
	for i := 0; i < len(part); i++ {
		switch part[i] {
		case '<', '>', '-':
		default:
			return false
		}
	}
	return true
}

// mergeStyle merges additional parts into an existing style string, skipping
// parts whose key is already present. Arrow markers sort to the front and
// every part gets canonical spacing.
func mergeStyle(style string, extra ...string) string {
	var parts []string
	seen := make(map[string]bool)
	for _, p := range splitStyleParts(style) {
		if seen[styleKey(p)] {
			continue
		}
		parts = append(parts, p)
		seen[styleKey(p)] = true
	}
	for _, p := range extra {
		if p == "" || seen[styleKey(p)] {
			continue
		}
		parts = append(parts, p)
		seen[styleKey(p)] = true
	}
	var arrows, rest []string
	for _, p := range parts {
		if isArrowToken(p) {
			arrows = append(arrows, p)
		} else {
			rest = append(rest, normalizeStylePart(p))
		}
	}
	return strings.Join(append(arrows, rest...), ", ")
}

// arrowMarker returns the style token for the start and end arrows, or ""
// when the shape has no arrows.
func arrowMarker(start, end Arrow) string {
	if start == "" && end == "" {
		return ""
	}
	return string(start) + "-" + string(end)
}

// midArrowParts returns the decoration parts that place arrowheads along
// the path interior.
func midArrowParts(mids []MidArrow) []string {
	if len(mids) == 0 {
		return nil
	}
	marks := make([]string, len(mids))
	for i, m := range mids {
		marks[i] = fmt.Sprintf(`mark = at position %.2f with {\arrow{%s}}`, m.Position, m.Direction)
	}
	decoration := "decoration = {markings, " + strings.Join(marks, ", ") + "}"
	return []string{decoration, "postaction = {decorate}"}
}

// applyArrows merges arrow markers and mid-path decorations into a style
// string. Existing arrow markers are only replaced when new arrows were
// detected, so an already converted command keeps its markers on a second
// pass.
func applyArrows(style string, start, end Arrow, mids []MidArrow) string {
	if start == "" && end == "" && len(mids) == 0 {
		return mergeStyle(style)
	}
	var kept []string
	for _, p := range splitStyleParts(style) {
		if !isArrowToken(p) {
			kept = append(kept, p)
		}
	}
	extra := []string{arrowMarker(start, end)}
	extra = append(extra, midArrowParts(mids)...)
	return mergeStyle(strings.Join(kept, ", "), extra...)
}

// formatNum formats a coordinate or length with at most two decimals,
// trimming trailing zeros.
func formatNum(v float64) string {
	if math.Abs(v-math.Round(v)) < 5e-3 {
		return strconv.Itoa(int(math.Round(v)))
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// formatPoint formats a coordinate pair as "(x, y)".
func formatPoint(p Point) string {
	return "(" + formatNum(p.X) + ", " + formatNum(p.Y) + ")"
}

// idHeader builds the annotation comment placed above a rendered shape,
// preserving a trailing note the author left after the identifier.
func idHeader(label, id, annotation string) string {
	header := "%" + label
	if id != "" {
		header += " [id:" + id + "]"
	}
	if i := strings.Index(annotation, "]"); i >= 0 {
		if rest := strings.TrimSpace(annotation[i+1:]); strings.HasPrefix(rest, "%") {
			note := strings.TrimSpace(strings.TrimPrefix(rest, "%"))
			if note != "" {
				header += " % " + note
			}
		}
	}
	return header
}
