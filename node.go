package tikz

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
)

var (
	nodeAtRe   = regexp.MustCompile(`^\\node\s*(?:\[[^\]]*\]\s*)*at\s*\(\s*([-+]?[0-9]*\.?[0-9]+)\s*,\s*([-+]?[0-9]*\.?[0-9]+)\s*\)\s*(?:\[[^\]]*\]\s*)*\{(.*)\}\s*;\s*$`)
	drawNodeRe = regexp.MustCompile(`^\\draw\s*\(\s*([-+]?[0-9]*\.?[0-9]+)\s*,\s*([-+]?[0-9]*\.?[0-9]+)\s*\)\s*node\s*(?:\[[^\]]*\]\s*)*\{(.*)\}\s*;\s*$`)

	// a node clause riding on a path, such as "node[above] {A}"
	nodeClauseRe = regexp.MustCompile(`node\s*(?:\[[^\]]*\]\s*)*\{[^{}]*(?:\{[^{}]*\}[^{}]*)*\}`)
)

// docNode is a standalone text label found in the document body.
type docNode struct {
	at      Point
	content string
	line    int
	dup     bool
}

// parseNodeLine recognizes the two standalone label forms the exporter
// emits: "\node ... at (x,y) {text};" and "\draw (x,y) node ... {text};".
func parseNodeLine(line string) (docNode, bool) {
	trimmed := strings.TrimSpace(line)
	if m := nodeAtRe.FindStringSubmatch(trimmed); m != nil {
		x, _ := parseFloat(m[1])
		y, _ := parseFloat(m[2])
		return docNode{at: Point{x, y}, content: strings.TrimSpace(m[3])}, true
	}
	if m := drawNodeRe.FindStringSubmatch(trimmed); m != nil {
		x, _ := parseFloat(m[1])
		y, _ := parseFloat(m[2])
		return docNode{at: Point{x, y}, content: strings.TrimSpace(m[3])}, true
	}
	return docNode{}, false
}

var sectorLabels = [8]string{
	"right", "above right", "above", "above left",
	"left", "below left", "below", "below right",
}

// compassKeyword maps the direction from an attachment point toward a label
// to one of the eight TikZ placement keywords. The y axis is flipped to
// match the yscale = -1 wrapper.
func compassKeyword(d Point) string {
	if equal(d.Length(), 0.0) {
		return sectorLabels[0]
	}
	ang := angleNorm(math.Atan2(-d.Y, d.X) * 180.0 / math.Pi)
	return sectorLabels[int(math.Floor((ang+22.5)/45.0))%8]
}

// anchorSite is a candidate attachment for a label: a coordinate on a drawn
// line, scored by how prominent the line is.
type anchorSite struct {
	point Point
	line  int
	score int
}

// lineScore ranks a drawn line as a label attachment target. Closed shapes
// beat open paths beat everything else, and visually emphasized lines get a
// bonus per style attribute.
func lineScore(line string) int {
	score := 1
	switch {
	case strings.Contains(line, "circle") || strings.Contains(line, "ellipse") ||
		strings.Contains(line, "cycle"):
		score = 3
	case strings.Contains(line, "--") || strings.Contains(line, "controls") ||
		strings.Contains(line, "arc ("):
		score = 2
	}
	if colorKVRe.MatchString(line) {
		score++
	}
	if strings.Contains(line, "dash") {
		score++
	}
	if m := lineWidthRe.FindStringSubmatch(line); m != nil {
		if w, ok := parseFloat(m[1]); ok && w >= 1.0 {
			score++
		}
	}
	return score
}

// skipAnchorLine reports whether a line contributes no anchors: comments,
// blanks, labels themselves and shift-transformed helper paths.
func skipAnchorLine(trimmed string) bool {
	if trimmed == "" || strings.HasPrefix(trimmed, "%") {
		return true
	}
	if shiftRe.MatchString(trimmed) {
		return true
	}
	if _, isNode := parseNodeLine(trimmed); isNode {
		return true
	}
	return strings.Contains(trimmed, "node")
}

// nodePlacement is a label attached to a drawn line.
type nodePlacement struct {
	line    int
	snippet string
}

// placeNodes attaches standalone text labels to the nearest drawn lines and
// splices them in as node clauses. Labels farther than maxDist from every
// line stay standalone. Consumed label lines are removed together with
// their annotation comment.
func placeNodes(lines []string, maxDist float64) []string {
	var nodes []docNode
	seen := make(map[string]bool)
	for i, line := range lines {
		n, ok := parseNodeLine(line)
		if !ok {
			continue
		}
		n.line = i
		key := fmt.Sprintf("%v|%s", n.at, n.content)
		// duplicate labels collapse to the first occurrence
		n.dup = seen[key]
		seen[key] = true
		nodes = append(nodes, n)
	}
	if len(nodes) == 0 {
		return lines
	}

	var anchors []anchorSite
	lineCoords := make(map[int][]Point)
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if skipAnchorLine(trimmed) {
			continue
		}
		coords := parsePoints(nodeClauseRe.ReplaceAllString(trimmed, ""))
		if len(coords) == 0 {
			continue
		}
		lineCoords[i] = coords
		score := lineScore(trimmed)
		for _, c := range coords {
			if isNodeCoord(nodes, c) {
				continue
			}
			anchors = append(anchors, anchorSite{point: c, line: i, score: score})
		}
	}

	consumed := make(map[int]bool)
	var placements []nodePlacement
	for _, n := range nodes {
		if n.dup {
			consumed[n.line] = true
			continue
		}
		if n.content == "" {
			// an empty label can still draw, keep it standalone
			continue
		}
		p, ok := bestPlacement(n, lines, lineCoords, anchors, maxDist)
		if !ok {
			continue
		}
		placements = append(placements, p)
		consumed[n.line] = true
	}
	return spliceNodes(lines, placements, consumed)
}

func isNodeCoord(nodes []docNode, c Point) bool {
	for _, n := range nodes {
		if n.at.Equals(c) {
			return true
		}
	}
	return false
}

// bestPlacement finds the drawn line closest to the label: segment
// projection against every multi-point line first, nearest anchor as the
// fallback. Ties in distance go to the higher scored line.
func bestPlacement(n docNode, lines []string, lineCoords map[int][]Point,
	anchors []anchorSite, maxDist float64) (nodePlacement, bool) {

	bestLine, bestScore := -1, 0
	bestDist := math.Inf(1)
	bestFrac := 1.0
	var bestFoot Point

	candidates := make([]int, 0, len(lineCoords))
	for i := range lineCoords {
		candidates = append(candidates, i)
	}
	sort.Ints(candidates)
	for _, i := range candidates {
		coords := lineCoords[i]
		if len(coords) < 2 {
			continue
		}
		seg, frac := projectOnPolyline(coords, n.at)
		if seg < 0 {
			continue
		}
		foot, _ := projectOnSegment(n.at, coords[seg], coords[seg+1])
		d := n.at.Sub(foot).Length()
		score := lineScore(strings.TrimSpace(lines[i]))
		if d < bestDist-Epsilon || (math.Abs(d-bestDist) <= Epsilon && score > bestScore) {
			bestLine, bestScore, bestDist, bestFrac, bestFoot = i, score, d, frac, foot
		}
	}
	if bestLine < 0 {
		for _, a := range anchors {
			d := n.at.Sub(a.point).Length()
			if d < bestDist-Epsilon || (math.Abs(d-bestDist) <= Epsilon && a.score > bestScore) {
				bestLine, bestScore, bestDist, bestFoot = a.line, a.score, d, a.point
				bestFrac = 1.0
			}
		}
	}
	if bestLine < 0 || bestDist > maxDist {
		return nodePlacement{}, false
	}

	attrs := compassKeyword(n.at.Sub(bestFoot))
	if bestFrac < 0.99 {
		attrs += fmt.Sprintf(", pos = %.2f", bestFrac)
	}
	return nodePlacement{
		line:    bestLine,
		snippet: "node[" + attrs + "] {" + n.content + "}",
	}, true
}

// spliceNodes inserts node clauses before each target statement's closing
// semicolon and drops consumed label lines plus their leading comment.
func spliceNodes(lines []string, placements []nodePlacement, consumed map[int]bool) []string {
	snippets := make(map[int][]string)
	for _, p := range placements {
		end := statementEnd(lines, p.line)
		snippets[end] = append(snippets[end], p.snippet)
	}

	drop := make(map[int]bool)
	for i := range consumed {
		drop[i] = true
		if i > 0 && strings.HasPrefix(strings.TrimSpace(lines[i-1]), "%") {
			drop[i-1] = true
		}
	}

	var out []string
	for i, line := range lines {
		if drop[i] {
			continue
		}
		if add, ok := snippets[i]; ok {
			if j := strings.LastIndexByte(line, ';'); j >= 0 {
				line = line[:j] + " " + strings.Join(add, " ") + line[j:]
			}
		}
		out = append(out, line)
	}
	return out
}

// statementEnd returns the index of the line holding the statement's
// closing semicolon, starting the search at line i.
func statementEnd(lines []string, i int) int {
	for j := i; j < len(lines); j++ {
		if strings.Contains(lines[j], ";") {
			return j
		}
	}
	return i
}
