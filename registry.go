package tikz

import (
	"strings"
)

// Payload is the geometric result of processing a shape. Each shape kind
// carries its own payload type; Kind tags the payload so dispatch never
// relies on type switches alone.
type Payload interface {
	Kind() Kind
}

// Result is the outcome of processing one shape. Degraded results carry no
// payload: the shape could not be recovered and Raw holds its original text
// for verbatim passthrough.
type Result struct {
	Shape    Shape
	Payload  Payload
	Degraded bool
	Raw      string
}

type processor interface {
	Process(Shape) (Result, error)
}

type renderer interface {
	Render(Result) (string, error)
}

// newProcessors builds the kind to processor dispatch table. The table is
// built once per converter and never mutated afterwards, so concurrent
// Convert calls can share it.
func newProcessors(cfg *Config) map[Kind]processor {
	ellipses := &ellipseProcessor{cfg: cfg}
	return map[Kind]processor{
		KindStraight: &straightProcessor{cfg: cfg},
		KindCurve:    &curveProcessor{cfg: cfg},
		KindArc:      &arcProcessor{cfg: cfg},
		KindEllipse:  ellipses,
		KindCircle:   ellipses,
		KindText:     passthroughProcessor{},
		KindUnknown:  passthroughProcessor{},
	}
}

// newRenderers builds the kind to renderer dispatch table.
func newRenderers() map[Kind]renderer {
	ellipses := ellipseRenderer{}
	return map[Kind]renderer{
		KindStraight: straightRenderer{},
		KindCurve:    curveRenderer{},
		KindArc:      arcRenderer{},
		KindEllipse:  ellipses,
		KindCircle:   ellipses,
		KindText:     passthroughRenderer{},
		KindUnknown:  passthroughRenderer{},
	}
}

// passthroughText reassembles a shape's original text, annotation included.
func passthroughText(s Shape) string {
	if s.Raw == "" {
		return s.Annotation
	}
	if s.Annotation == "" {
		return s.Raw
	}
	return s.Annotation + "\n" + s.Raw
}

// passthroughProcessor handles shapes that need no geometric recovery.
type passthroughProcessor struct{}

func (passthroughProcessor) Process(s Shape) (Result, error) {
	return Result{Shape: s, Raw: passthroughText(s)}, nil
}

// passthroughRenderer emits a shape's stored raw text unchanged.
type passthroughRenderer struct{}

func (passthroughRenderer) Render(res Result) (string, error) {
	return res.Raw, nil
}

// degraded builds the passthrough result for a shape whose geometry could
// not be recovered.
func degraded(s Shape) Result {
	return Result{Shape: s, Degraded: true, Raw: passthroughText(s)}
}

// mainFilter selects which draw commands qualify as a shape's main path.
type mainFilter struct {
	needSegments    bool
	needBezier      bool
	forbidBezier    bool
	needClosed      bool
	skipOpacityZero bool
}

// pickMain chooses the main path among a shape's draw commands: the longest
// command that passes the filter. Exporters emit overlay strokes alongside
// the real path, and the real path is reliably the most verbose.
func pickMain(cmds []string, f mainFilter) string {
	main := ""
	for _, cmd := range cmds {
		if f.needSegments && !strings.Contains(cmd, "--") {
			continue
		}
		if f.needBezier && !hasBezier(cmd) {
			continue
		}
		if f.forbidBezier && hasBezier(cmd) {
			continue
		}
		if f.needClosed && !isClosed(cmd) {
			continue
		}
		if f.skipOpacityZero {
			if st := parseStyle(cmd); st.HasOpacity && st.Opacity == 0.0 {
				continue
			}
		}
		if len(cmd) > len(main) {
			main = cmd
		}
	}
	return main
}

// splitCommands returns a shape's main path candidates and its arrowhead
// helper commands.
func splitCommands(s Shape) (shape, arrows []string) {
	if s.ShapeData != "" {
		shape = strings.Split(s.ShapeData, "\n")
	}
	if s.ArrowsData != "" {
		arrows = strings.Split(s.ArrowsData, "\n")
	}
	return shape, arrows
}
