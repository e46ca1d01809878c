package tikz

import "regexp"

// Arrow is an arrowhead direction marker. ArrowForward points along the
// path direction, ArrowBackward against it.
type Arrow string

const (
	ArrowForward  Arrow = ">"
	ArrowBackward Arrow = "<"
)

// MidArrow is an arrowhead placed in the interior of a path at a fractional
// arc length position.
type MidArrow struct {
	Position  float64
	Direction Arrow
}

var (
	shiftRe  = regexp.MustCompile(`shift\s*=\s*\{\(([^)]+)\)\}`)
	rotateRe = regexp.MustCompile(`rotate\s*=\s*([-+]?[0-9]*\.?[0-9]+)`)
)

// isArrowCommand reports whether a draw command is an arrowhead helper: a
// small glyph path positioned with an affine shift or rotate transform.
func isArrowCommand(cmd string) bool {
	return shiftRe.MatchString(cmd) || rotateRe.MatchString(cmd)
}

// anchorInfo is the placement of an arrowhead glyph: its anchor position
// and the rotation applied to the glyph.
type anchorInfo struct {
	pos      Point
	rotation float64
}

// arrowAnchor extracts the anchor of an arrowhead helper command. The
// anchor comes from the shift transform when present, otherwise from the
// glyph's first coordinate.
func arrowAnchor(cmd string) (anchorInfo, bool) {
	var info anchorInfo
	if m := rotateRe.FindStringSubmatch(cmd); m != nil {
		info.rotation, _ = parseFloat(m[1])
	}
	if m := shiftRe.FindStringSubmatch(cmd); m != nil {
		if pts := parsePoints("(" + m[1] + ")"); len(pts) == 1 {
			info.pos = pts[0]
			return info, true
		}
	}
	// transform strings look like coordinates, strip them before scanning
	rest := shiftRe.ReplaceAllString(cmd, "")
	if pts := parsePoints(rest); len(pts) > 0 {
		info.pos = pts[0]
		return info, true
	}
	return info, false
}

// arrowDirection decides the marker for an arrowhead whose glyph is rotated
// by rotation degrees, given the path tangent at the anchor pointing in the
// path's forward direction. It returns false when the glyph is not aligned
// with the tangent within the tolerance.
func arrowDirection(tangent Point, rotation, tolerance float64) (Arrow, bool) {
	ang := tangent.Angle()
	if angleDiff(ang, rotation) <= tolerance {
		return ArrowForward, true
	}
	if angleDiff(ang+180.0, rotation) <= tolerance {
		return ArrowBackward, true
	}
	return "", false
}
