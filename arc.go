package tikz

import "math"

// ArcPayload is a recovered elliptical arc: an underlying ellipse plus the
// parametric angle span actually drawn.
type ArcPayload struct {
	StyleStr   string
	Style      Style
	Ellipse    Ellipse
	StartAngle float64
	EndAngle   float64
	StartArrow Arrow
	EndArrow   Arrow
}

func (ArcPayload) Kind() Kind { return KindArc }

type arcProcessor struct {
	cfg *Config
}

func (p *arcProcessor) Process(s Shape) (Result, error) {
	cmds, arrows := splitCommands(s)
	main := pickMain(cmds, mainFilter{needBezier: true, skipOpacityZero: true})
	if main == "" {
		return degraded(s), nil
	}
	segs := splitSegments(dedupePoints(parsePoints(main)))
	samples := conicSamples(segs)
	if len(samples) < 5 {
		return degraded(s), nil
	}
	e, ok := fitEllipse(samples)
	if !ok {
		return degraded(s), nil
	}

	first, last := segs[0], segs[len(segs)-1]
	start := e.parametricAngle(first.Start)
	end := e.parametricAngle(last.End)
	if first.Start.Equals(last.End) {
		end = start + 360.0
	}
	start, end, rotation := normalizeArcAngles(start, end, e.Rotation)
	e.Rotation = rotation

	pl := &ArcPayload{
		StyleStr:   commandStyle(main),
		Style:      parseStyle(main),
		Ellipse:    e,
		StartAngle: start,
		EndAngle:   end,
	}
	tol := p.cfg.ArrowTolerance
	if !p.cfg.enabled("arrows") {
		arrows = nil
	}
	for _, cmd := range arrows {
		info, ok := arrowAnchor(cmd)
		if !ok {
			continue
		}
		dStart := info.pos.Sub(first.Start).Length()
		dEnd := info.pos.Sub(last.End).Length()
		if dStart <= p.cfg.EndpointThreshold && dStart <= dEnd {
			if dir, ok := arrowDirection(first.Deriv(0.0), info.rotation, tol); ok {
				pl.StartArrow = dir
			}
		} else if dEnd <= p.cfg.EndpointThreshold {
			if dir, ok := arrowDirection(last.Deriv(1.0), info.rotation, tol); ok {
				pl.EndArrow = dir
			}
		}
	}
	return Result{Shape: s, Payload: pl}, nil
}

type arcRenderer struct{}

func (arcRenderer) Render(res Result) (string, error) {
	pl, ok := res.Payload.(*ArcPayload)
	if !ok {
		return "", &RenderError{ShapeID: res.Shape.ID, Kind: KindArc, Err: errBadPayload}
	}
	e := pl.Ellipse
	style := mergeStyle(pl.StyleStr, pl.Style.tokens()...)
	style = applyArrows(style, pl.StartArrow, pl.EndArrow, nil)
	if math.Abs(e.Rotation) >= minEllipseRotation {
		rotate := "rotate around = {" + formatNum(e.Rotation) + " : " + formatPoint(e.Center) + "}"
		style = mergeStyle(style, rotate)
	}

	radii := formatNum(e.Major)
	if !e.IsCircle {
		radii = formatNum(e.Major) + " and " + formatNum(e.Minor)
	}
	s, en := formatNum(pl.StartAngle), formatNum(pl.EndAngle)
	header := idHeader(KindArc.Label(), res.Shape.ID, res.Shape.Annotation)
	return header + "\n" + drawPrefix(style) +
		"([shift = {" + formatPoint(e.Center) + "}] " + s + ":" + radii + ") " +
		"arc (" + s + ":" + en + ":" + radii + ");", nil
}
