package tikz

import (
	"regexp"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

var (
	coordRe = regexp.MustCompile(`\(\s*\{?\s*([-+]?[0-9]*\.?[0-9]+)\s*\}?\s*,\s*\{?\s*([-+]?[0-9]*\.?[0-9]+)\s*\}?\s*\)`)
	idRe    = regexp.MustCompile(`\[id:([^\]]+)\]`)
)

// parseFloat parses a full decimal number, returning false when s is not
// entirely a number.
func parseFloat(s string) (float64, bool) {
	v, n := strconv.ParseFloat([]byte(s))
	return v, n == len(s)
}

// parsePoints extracts all coordinate pairs "(x,y)" from a draw command,
// tolerating the exporter's brace-wrapped "({x},{y})" form.
func parsePoints(s string) []Point {
	var points []Point
	for _, m := range coordRe.FindAllStringSubmatch(s, -1) {
		x, okx := parseFloat(m[1])
		y, oky := parseFloat(m[2])
		if okx && oky {
			points = append(points, Point{x, y})
		}
	}
	return points
}

// drawCommands extracts the \draw statements from a block. Statements are
// terminated by a semicolon and may span multiple physical lines; interior
// whitespace is collapsed to single spaces.
func drawCommands(raw string) []string {
	var cmds []string
	for i := 0; i < len(raw); {
		j := strings.Index(raw[i:], `\draw`)
		if j < 0 {
			break
		}
		start := i + j
		end := strings.IndexByte(raw[start:], ';')
		var cmd string
		if end < 0 {
			cmd = raw[start:]
			i = len(raw)
		} else {
			cmd = raw[start : start+end+1]
			i = start + end + 1
		}
		cmds = append(cmds, strings.Join(strings.Fields(cmd), " "))
	}
	return cmds
}

// hasBezier reports whether a draw command uses cubic Bézier control points.
func hasBezier(cmd string) bool {
	return strings.Contains(cmd, "controls") && strings.Contains(cmd, "and")
}

// isClosed reports whether a draw command closes its path.
func isClosed(cmd string) bool {
	return strings.Contains(cmd, "cycle")
}

// shapeID extracts the "[id:...]" identifier from an annotation comment.
func shapeID(annotation string) string {
	if m := idRe.FindStringSubmatch(annotation); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
