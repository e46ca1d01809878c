package tikz

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Ellipse holds the parameters of a fitted ellipse. Rotation is in degrees,
// counter-clockwise in the exporter's y-down coordinate system. Major is
// always at least Minor.
type Ellipse struct {
	Center   Point
	Major    float64
	Minor    float64
	Rotation float64
	IsCircle bool
}

// fitConic fits a general conic x² + By² + Cxy + Dx + Ey + F = 0 through
// the sample points by least squares, normalizing the x² coefficient to 1.
// It returns the six coefficients (A,B,C,D,E,F).
func fitConic(points []Point) ([6]float64, bool) {
	var coeffs [6]float64
	if len(points) < 5 {
		return coeffs, false
	}
	n := len(points)
	M := mat.NewDense(n, 5, nil)
	rhs := mat.NewVecDense(n, nil)
	for i, p := range points {
		M.SetRow(i, []float64{p.Y * p.Y, p.X * p.Y, p.X, p.Y, 1.0})
		rhs.SetVec(i, -p.X*p.X)
	}

	var qr mat.QR
	qr.Factorize(M)
	var sol mat.VecDense
	if err := qr.SolveVecTo(&sol, false, rhs); err != nil {
		return coeffs, false
	}

	coeffs[0] = 1.0
	for i := 0; i < 5; i++ {
		v := sol.AtVec(i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return coeffs, false
		}
		coeffs[i+1] = v
	}
	return coeffs, true
}

// ellipseFromConic converts conic coefficients Ax² + By² + Cxy + Dx + Ey + F
// into center, axes and rotation. It returns false when the conic is not an
// ellipse or is degenerate.
func ellipseFromConic(c [6]float64) (Ellipse, bool) {
	A, B, C, D, E, F := c[0], c[1], c[2], c[3], c[4], c[5]

	// ellipses require C²-4AB < 0
	if C*C-4.0*A*B >= 1e-10 {
		return Ellipse{}, false
	}
	det := 4.0*A*B - C*C
	if equal(det, 0.0) {
		return Ellipse{}, false
	}
	cx := (-2.0*B*D + C*E) / det
	cy := (-2.0*A*E + C*D) / det

	// conic value at the center, must be negative for a real ellipse
	Fc := A*cx*cx + B*cy*cy + C*cx*cy + D*cx + E*cy + F
	if Fc >= 0.0 {
		return Ellipse{}, false
	}

	theta := 0.0
	if math.Abs(A-B) >= 1e-5 || math.Abs(C) >= 1e-5 {
		theta = 0.5 * math.Atan2(C, A-B)
	}
	sin, cos := math.Sincos(theta)
	Ap := A*cos*cos + C*cos*sin + B*sin*sin
	Bp := A*sin*sin - C*cos*sin + B*cos*cos
	if Ap <= 0.0 || Bp <= 0.0 {
		return Ellipse{}, false
	}

	a := math.Sqrt(-Fc / Ap)
	b := math.Sqrt(-Fc / Bp)
	if math.IsNaN(a) || math.IsNaN(b) {
		return Ellipse{}, false
	}
	if a < b {
		a, b = b, a
		theta += math.Pi / 2.0
	}

	e := Ellipse{
		Center:   Point{cx, cy},
		Major:    a,
		Minor:    b,
		Rotation: theta * 180.0 / math.Pi,
		IsCircle: math.Abs(a-b) < Epsilon,
	}
	if e.IsCircle {
		e.Rotation = 0.0
	}
	return e, true
}

// fitEllipse fits an ellipse through the sample points.
func fitEllipse(points []Point) (Ellipse, bool) {
	coeffs, ok := fitConic(points)
	if !ok {
		return Ellipse{}, false
	}
	return ellipseFromConic(coeffs)
}

// parametricAngle returns the parametric angle in degrees of point p on the
// ellipse, ie. the t for which p = center + (a cos t, b sin t) rotated by
// the ellipse rotation.
func (e Ellipse) parametricAngle(p Point) float64 {
	d := p.Sub(e.Center)
	phi := e.Rotation * math.Pi / 180.0
	sin, cos := math.Sincos(phi)
	u := d.X*cos + d.Y*sin
	v := -d.X*sin + d.Y*cos
	return math.Atan2(v/e.Minor, u/e.Major) * 180.0 / math.Pi
}

// normalizeArcAngles canonicalizes an arc's start angle, end angle and
// ellipse rotation. A rotation near ±180° is folded into the angles so the
// rotation collapses to zero, the start angle lands in (-180,180], and the
// end angle always exceeds the start angle. Spans within Epsilon of a full
// revolution snap to exactly 360°.
func normalizeArcAngles(start, end, rotation float64) (float64, float64, float64) {
	if math.Abs(math.Abs(rotation)-180.0) < Epsilon {
		start += rotation
		end += rotation
		rotation = 0.0
	}
	start = angleNorm(start)
	if start > 180.0 {
		start -= 360.0
	}
	end = angleNorm(end)
	if end > 180.0 {
		end -= 360.0
	}
	for end <= start {
		end += 360.0
	}
	if math.Abs(end-start-360.0) < Epsilon {
		end = start + 360.0
	}
	return start, end, rotation
}
