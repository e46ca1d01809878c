package tikz

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used for floating point comparisons on
// coordinates and fitted parameters.
const Epsilon = 1e-6

func equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// angleNorm returns the angle in degrees in the range of [0,360).
func angleNorm(theta float64) float64 {
	theta = math.Mod(theta, 360.0)
	if theta < 0.0 {
		theta += 360.0
	}
	return theta
}

// angleDiff returns the smallest absolute difference in degrees between two
// angles, accounting for wrap-around.
func angleDiff(a, b float64) float64 {
	d := math.Abs(angleNorm(a) - angleNorm(b))
	if d > 180.0 {
		d = 360.0 - d
	}
	return d
}

// Point is a coordinate in 2D space. The exporter uses a y-down coordinate
// system, which the tikzpicture wrapper undoes with yscale = -1.
type Point struct {
	X, Y float64
}

// IsZero returns true if both coordinates are zero.
func (p Point) IsZero() bool {
	return p.X == 0.0 && p.Y == 0.0
}

// Equals returns true if both points are equal within Epsilon.
func (p Point) Equals(q Point) bool {
	return equal(p.X, q.X) && equal(p.Y, q.Y)
}

// Add adds q to p.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts q from p.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies p by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Dot returns the dot product between p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// PerpDot returns the perp dot product between p and q.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of p.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Angle returns the angle in degrees between the x axis and the line p.
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X) * 180.0 / math.Pi
}

// Norm normalizes p to have a given length.
func (p Point) Norm(length float64) Point {
	d := p.Length()
	if equal(d, 0.0) {
		return Point{}
	}
	return Point{p.X / d * length, p.Y / d * length}
}

// Interpolate returns a point on the line segment between p and q at
// fraction t.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

// Rot rotates p by phi degrees around p0.
func (p Point) Rot(phi float64, p0 Point) Point {
	sinphi, cosphi := math.Sincos(phi * math.Pi / 180.0)
	return Point{
		p0.X + cosphi*(p.X-p0.X) - sinphi*(p.Y-p0.Y),
		p0.Y + sinphi*(p.X-p0.X) + cosphi*(p.Y-p0.Y),
	}
}

// String returns the string representation of a point, such as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// projectOnSegment returns the point on segment ab closest to p, together
// with the clamped parameter t in [0,1] along the segment.
func projectOnSegment(p, a, b Point) (Point, float64) {
	d := b.Sub(a)
	len2 := d.Dot(d)
	if equal(len2, 0.0) {
		return a, 0.0
	}
	t := p.Sub(a).Dot(d) / len2
	if t < 0.0 {
		t = 0.0
	} else if t > 1.0 {
		t = 1.0
	}
	return a.Add(d.Mul(t)), t
}

// Gauss-Legendre quadrature integration from a to b with n=5
func gaussLegendre5(f func(float64) float64, a, b float64) float64 {
	c := (b - a) / 2.0
	d := (a + b) / 2.0
	Qd1 := f(-0.90618*c + d)
	Qd2 := f(-0.538469*c + d)
	Qd3 := f(d)
	Qd4 := f(0.538469*c + d)
	Qd5 := f(0.90618*c + d)
	return c * ((0.236927 * (Qd1 + Qd5)) + (0.478629 * (Qd2 + Qd4)) + 0.568889*Qd3)
}
