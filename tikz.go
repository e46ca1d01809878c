// Package tikz converts the verbose TikZ export of vector diagramming tools
// into compact, canonical TikZ. The export encodes every shape as low-level
// drawing primitives: lines and curves as cubic Bézier control point chains,
// ellipses and arcs as closed Bézier approximations, arrowheads as small
// affine-transformed glyph paths, colors as RGB literals and dash styles as
// raw length lists. This package recovers the geometric intent behind those
// primitives and re-emits idiomatic TikZ: `--` segments, fitted `ellipse` and
// `arc` commands, `->` arrow markers, named colors and named dash styles.
package tikz

// Convert canonicalizes input with the default configuration.
func Convert(input string) (string, error) {
	c, err := NewConverter(Config{})
	if err != nil {
		return "", err
	}
	return c.Convert(input)
}
