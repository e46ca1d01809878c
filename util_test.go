package tikz

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestAngleNorm(t *testing.T) {
	test.Float(t, angleNorm(0.0), 0.0)
	test.Float(t, angleNorm(180.0), 180.0)
	test.Float(t, angleNorm(360.0), 0.0)
	test.Float(t, angleNorm(540.0), 180.0)
	test.Float(t, angleNorm(-90.0), 270.0)
	test.Float(t, angleNorm(-360.0), 0.0)
}

func TestAngleDiff(t *testing.T) {
	test.Float(t, angleDiff(10.0, 350.0), 20.0)
	test.Float(t, angleDiff(350.0, 10.0), 20.0)
	test.Float(t, angleDiff(90.0, 90.0), 0.0)
	test.Float(t, angleDiff(0.0, 180.0), 180.0)
	test.Float(t, angleDiff(-10.0, 10.0), 20.0)
}

func TestPoint(t *testing.T) {
	p := Point{3, 4}
	test.T(t, p.Add(Point{1, 1}), Point{4, 5})
	test.T(t, p.Sub(Point{1, 1}), Point{2, 3})
	test.T(t, p.Mul(2.0), Point{6, 8})
	test.Float(t, p.Length(), 5.0)
	test.Float(t, p.Dot(Point{4, -3}), 0.0)
	test.Float(t, p.PerpDot(Point{4, -3}), -25.0)
	test.Float(t, Point{1, 1}.Angle(), 45.0)
	test.T(t, p.Norm(10.0), Point{6, 8})
	test.T(t, Point{0, 0}.Norm(1.0), Point{0, 0})
	test.T(t, Point{0, 0}.Interpolate(Point{10, 20}, 0.5), Point{5, 10})
	test.T(t, p.Equals(Point{3, 4}), true)
	test.T(t, p.Equals(Point{3, 5}), false)
	test.T(t, Point{}.IsZero(), true)
}

func TestPointRot(t *testing.T) {
	p := Point{1, 0}.Rot(90.0, Point{})
	test.That(t, p.Equals(Point{0, 1}))
	p = Point{2, 1}.Rot(180.0, Point{1, 1})
	test.That(t, p.Equals(Point{0, 1}))
}

func TestProjectOnSegment(t *testing.T) {
	a, b := Point{0, 0}, Point{10, 0}
	foot, s := projectOnSegment(Point{3, 5}, a, b)
	test.T(t, foot, Point{3, 0})
	test.Float(t, s, 0.3)

	// clamps beyond the segment ends
	foot, s = projectOnSegment(Point{-5, 2}, a, b)
	test.T(t, foot, Point{0, 0})
	test.Float(t, s, 0.0)
	foot, s = projectOnSegment(Point{15, 2}, a, b)
	test.T(t, foot, Point{10, 0})
	test.Float(t, s, 1.0)

	// degenerate segment
	foot, s = projectOnSegment(Point{1, 1}, a, a)
	test.T(t, foot, a)
	test.Float(t, s, 0.0)
}

func TestGaussLegendre5(t *testing.T) {
	test.Float(t, gaussLegendre5(func(x float64) float64 { return x * x }, 0.0, 3.0), 9.0)
	v := gaussLegendre5(math.Cos, 0.0, math.Pi/2.0)
	test.That(t, math.Abs(v-1.0) < 1e-6)
}
