package tikz

import "strings"

// CurvePayload is a recovered chain of cubic Bézier segments.
type CurvePayload struct {
	StyleStr   string
	Style      Style
	Segments   []Bezier
	Closed     bool
	StartArrow Arrow
	EndArrow   Arrow
	MidArrows  []MidArrow
	Trailing   []string
}

func (CurvePayload) Kind() Kind { return KindCurve }

type curveProcessor struct {
	cfg *Config
}

func (p *curveProcessor) Process(s Shape) (Result, error) {
	cmds, arrows := splitCommands(s)
	main := pickMain(cmds, mainFilter{needBezier: true, skipOpacityZero: true})
	if main == "" {
		return degraded(s), nil
	}
	trailing := nodeClauseRe.FindAllString(main, -1)
	segs := splitSegments(parsePoints(nodeClauseRe.ReplaceAllString(main, "")))
	if len(segs) == 0 {
		return degraded(s), nil
	}

	pl := &CurvePayload{
		StyleStr: commandStyle(main),
		Style:    parseStyle(main),
		Segments: segs,
		Closed:   isClosed(main),
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

// assignArrow attaches one arrowhead to the curve, either at an endpoint or
// at the fractional arc length of the nearest segment midpoint.
func (p *curveProcessor) assignArrow(pl *CurvePayload, info anchorInfo) {
	segs := pl.Segments
	first, last := segs[0], segs[len(segs)-1]
	tol := p.cfg.ArrowTolerance

	// the closer endpoint claims the anchor
	dStart := info.pos.Sub(first.Start).Length()
	dEnd := info.pos.Sub(last.End).Length()
	if dStart <= p.cfg.EndpointThreshold && dStart <= dEnd {
		if dir, ok := arrowDirection(first.Deriv(0.0), info.rotation, tol); ok {
			pl.StartArrow = dir
		}
		return
	}
	if dEnd <= p.cfg.EndpointThreshold {
		if dir, ok := arrowDirection(last.Deriv(1.0), info.rotation, tol); ok {
			pl.EndArrow = dir
		}
		return
	}

	seg, _ := nearestSegment(segs, info.pos)
	if seg < 0 {
		return
	}
	dir, ok := arrowDirection(segs[seg].Deriv(0.5), info.rotation, tol)
	if !ok {
		return
	}
	cum, total := chainLengths(segs)
	if equal(total, 0.0) {
		return
	}
	frac := (cum[seg] - segs[seg].Length()/2.0) / total
	switch {
	case frac <= projectionEps:
		pl.StartArrow = dir
	case frac >= 1.0-projectionEps:
		pl.EndArrow = dir
	default:
		pl.MidArrows = append(pl.MidArrows, MidArrow{Position: frac, Direction: dir})
	}
}

type curveRenderer struct{}

func (curveRenderer) Render(res Result) (string, error) {
	pl, ok := res.Payload.(*CurvePayload)
	if !ok {
		return "", &RenderError{ShapeID: res.Shape.ID, Kind: KindCurve, Err: errBadPayload}
	}
	style := mergeStyle(pl.StyleStr, pl.Style.tokens()...)
	style = applyArrows(style, pl.StartArrow, pl.EndArrow, pl.MidArrows)

	var b strings.Builder
	b.WriteString(idHeader(KindCurve.Label(), res.Shape.ID, res.Shape.Annotation))
	b.WriteString("\n")
	b.WriteString(drawPrefix(style))
	b.WriteString(formatPoint(pl.Segments[0].Start))
	for i, seg := range pl.Segments {
		if i > 0 {
			b.WriteString("\n    ")
		}
		b.WriteString(" .. controls ")
		b.WriteString(formatPoint(seg.CP1))
		b.WriteString(" and ")
		b.WriteString(formatPoint(seg.CP2))
		b.WriteString(" .. ")
		b.WriteString(formatPoint(seg.End))
	}
	if pl.Closed {
		b.WriteString(" -- cycle")
	}
	for _, clause := range pl.Trailing {
		b.WriteString(" ")
		b.WriteString(clause)
	}
	b.WriteString(";")
	return b.String(), nil
}
