package tikz

import "math"

// EllipsePayload is a recovered ellipse or circle.
type EllipsePayload struct {
	StyleStr string
	Style    Style
	Ellipse  Ellipse
}

func (p *EllipsePayload) Kind() Kind {
	if p.Ellipse.IsCircle {
		return KindCircle
	}
	return KindEllipse
}

// rotations below half a degree are dropped from ellipse output
const minEllipseRotation = 0.5

type ellipseProcessor struct {
	cfg *Config
}

func (p *ellipseProcessor) Process(s Shape) (Result, error) {
	cmds, _ := splitCommands(s)
	main := pickMain(cmds, mainFilter{needBezier: true, needClosed: true})
	if main == "" {
		return degraded(s), nil
	}
	points := dedupePoints(parsePoints(main))
	segs := splitSegments(points)
	samples := conicSamples(segs)
	if len(samples) < 5 {
		return degraded(s), nil
	}
	e, ok := fitEllipse(samples)
	if !ok {
		return degraded(s), nil
	}
	// the annotation is authoritative: a declared circle stays a circle
	// even when the Bézier approximation fits a hair off round
	if s.Kind == KindCircle && !e.IsCircle {
		r := (e.Major + e.Minor) / 2.0
		e.Major, e.Minor, e.Rotation, e.IsCircle = r, r, 0.0, true
	}

	pl := &EllipsePayload{
		StyleStr: commandStyle(main),
		Style:    parseStyle(main),
		Ellipse:  e,
	}
	return Result{Shape: s, Payload: pl}, nil
}

// dedupePoints removes consecutive duplicate points, which the exporter
// emits where a closed Bézier chain wraps around.
func dedupePoints(points []Point) []Point {
	var out []Point
	for _, p := range points {
		if len(out) == 0 || !out[len(out)-1].Equals(p) {
			out = append(out, p)
		}
	}
	return out
}

type ellipseRenderer struct{}

func (ellipseRenderer) Render(res Result) (string, error) {
	pl, ok := res.Payload.(*EllipsePayload)
	if !ok {
		return "", &RenderError{ShapeID: res.Shape.ID, Kind: KindEllipse, Err: errBadPayload}
	}
	e := pl.Ellipse
	style := mergeStyle(pl.StyleStr, pl.Style.tokens()...)
	header := idHeader(pl.Kind().Label(), res.Shape.ID, res.Shape.Annotation)

	if e.IsCircle {
		return header + "\n" + drawPrefix(style) +
			formatPoint(e.Center) + " circle (" + formatNum(e.Major) + ");", nil
	}
	if math.Abs(e.Rotation) >= minEllipseRotation {
		rotate := "rotate around = {" + formatNum(e.Rotation) + " : " + formatPoint(e.Center) + "}"
		style = mergeStyle(style, rotate)
	}
	return header + "\n" + drawPrefix(style) + formatPoint(e.Center) +
		" ellipse (" + formatNum(e.Major) + " and " + formatNum(e.Minor) + ");", nil
}
