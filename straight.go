package tikz

import "strings"

// commandStyle returns the style directly following \draw, or "" when the
// command has none. The exporter may emit several adjacent blocks, such as
// "[color=...][line width=1.5]"; their contents are joined.
func commandStyle(cmd string) string {
	rest, ok := strings.CutPrefix(strings.TrimSpace(cmd), `\draw`)
	if !ok {
		return ""
	}
	var parts []string
	for {
		rest = strings.TrimLeft(rest, " \t")
		if !strings.HasPrefix(rest, "[") {
			break
		}
		i := strings.IndexByte(rest, ']')
		if i < 0 {
			break
		}
		if c := strings.TrimSpace(rest[1:i]); c != "" {
			parts = append(parts, c)
		}
		rest = rest[i+1:]
	}
	return strings.Join(parts, ", ")
}

// StraightPayload is a recovered polyline: two or more vertices joined by
// straight segments.
type StraightPayload struct {
	StyleStr   string
	Style      Style
	Points     []Point
	StartArrow Arrow
	EndArrow   Arrow
	MidArrows  []MidArrow
	Trailing   []string
}

func (StraightPayload) Kind() Kind { return KindStraight }

// projection fractions below/above which a mid-path arrowhead snaps to the
// nearest endpoint
const projectionEps = 0.05

type straightProcessor struct {
	cfg *Config
}

func (p *straightProcessor) Process(s Shape) (Result, error) {
	cmds, arrows := splitCommands(s)
	main := pickMain(cmds, mainFilter{needSegments: true, forbidBezier: true})
	if main == "" {
		return degraded(s), nil
	}
	trailing := nodeClauseRe.FindAllString(main, -1)
	points := parsePoints(nodeClauseRe.ReplaceAllString(main, ""))
	if len(points) < 2 {
		return degraded(s), nil
	}

	pl := &StraightPayload{
		StyleStr: commandStyle(main),
		Style:    parseStyle(main),
		Points:   points,
		Trailing: trailing,
	}
	if p.cfg.enabled("arrows") {
		for _, cmd := range arrows {
			if info, ok := arrowAnchor(cmd); ok {
				p.assignArrow(pl, info)
			}
		}
	}
	return Result{Shape: s, Payload: pl}, nil
}

// assignArrow attaches one arrowhead to the polyline: to an endpoint when
// the anchor lies within the endpoint threshold, otherwise to the interior
// at its fractional arc length position.
func (p *straightProcessor) assignArrow(pl *StraightPayload, info anchorInfo) {
	pts := pl.Points
	start, end := pts[0], pts[len(pts)-1]
	tol := p.cfg.ArrowTolerance

	// the closer endpoint claims the anchor
	dStart := info.pos.Sub(start).Length()
	dEnd := info.pos.Sub(end).Length()
	if dStart <= p.cfg.EndpointThreshold && dStart <= dEnd {
		if dir, ok := arrowDirection(pts[1].Sub(start), info.rotation, tol); ok {
			pl.StartArrow = dir
		}
		return
	}
	if dEnd <= p.cfg.EndpointThreshold {
		if dir, ok := arrowDirection(end.Sub(pts[len(pts)-2]), info.rotation, tol); ok {
			pl.EndArrow = dir
		}
		return
	}

	// interior anchor: project onto the polyline
	seg, frac := projectOnPolyline(pts, info.pos)
	if seg < 0 {
		return
	}
	dir, ok := arrowDirection(pts[seg+1].Sub(pts[seg]), info.rotation, tol)
	if !ok {
		return
	}
	switch {
	case frac <= projectionEps:
		pl.StartArrow = dir
	case frac >= 1.0-projectionEps:
		pl.EndArrow = dir
	default:
		pl.MidArrows = append(pl.MidArrows, MidArrow{Position: frac, Direction: dir})
	}
}

// projectOnPolyline finds the segment of the polyline closest to p and the
// overall arc length fraction of the projection foot.
func projectOnPolyline(pts []Point, p Point) (int, float64) {
	total := 0.0
	lengths := make([]float64, len(pts)-1)
	for i := 0; i+1 < len(pts); i++ {
		lengths[i] = pts[i+1].Sub(pts[i]).Length()
		total += lengths[i]
	}
	if equal(total, 0.0) {
		return -1, 0.0
	}
	bestSeg, bestDist, bestFrac := -1, 0.0, 0.0
	prefix := 0.0
	for i := 0; i+1 < len(pts); i++ {
		foot, t := projectOnSegment(p, pts[i], pts[i+1])
		if d := p.Sub(foot).Length(); bestSeg < 0 || d < bestDist {
			bestSeg, bestDist = i, d
			bestFrac = (prefix + t*lengths[i]) / total
		}
		prefix += lengths[i]
	}
	return bestSeg, bestFrac
}

type straightRenderer struct{}

func (straightRenderer) Render(res Result) (string, error) {
	pl, ok := res.Payload.(*StraightPayload)
	if !ok {
		return "", &RenderError{ShapeID: res.Shape.ID, Kind: KindStraight, Err: errBadPayload}
	}
	style := mergeStyle(pl.StyleStr, pl.Style.tokens()...)
	style = applyArrows(style, pl.StartArrow, pl.EndArrow, pl.MidArrows)

	coords := make([]string, len(pl.Points))
	for i, pt := range pl.Points {
		coords[i] = formatPoint(pt)
	}
	path := strings.Join(coords, " -- ")
	for _, clause := range pl.Trailing {
		path += " " + clause
	}
	header := idHeader(KindStraight.Label(), res.Shape.ID, res.Shape.Annotation)
	return header + "\n" + drawPrefix(style) + path + ";", nil
}

// drawPrefix returns "\draw [style] " or "\draw " for an empty style.
func drawPrefix(style string) string {
	if style == "" {
		return `\draw `
	}
	return `\draw [` + style + `] `
}
