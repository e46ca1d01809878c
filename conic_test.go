package tikz

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func circleSamples(cx, cy, r float64, n int) []Point {
	points := make([]Point, n)
	for i := range points {
		a := 2.0 * math.Pi * float64(i) / float64(n)
		points[i] = Point{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}
	return points
}

func TestFitCircleAtOrigin(t *testing.T) {
	e, ok := fitEllipse(circleSamples(0, 0, 5, 8))
	test.That(t, ok)
	test.That(t, e.IsCircle)
	test.That(t, math.Abs(e.Major-5.0) < 1e-3)
	test.That(t, math.Abs(e.Minor-5.0) < 1e-3)
}

func TestFitCircle(t *testing.T) {
	e, ok := fitEllipse(circleSamples(100, 80, 5, 8))
	test.That(t, ok)
	test.That(t, e.IsCircle)
	test.That(t, math.Abs(e.Center.X-100.0) < 1e-6)
	test.That(t, math.Abs(e.Center.Y-80.0) < 1e-6)
	test.That(t, math.Abs(e.Major-5.0) < 1e-6)
	test.Float(t, e.Rotation, 0.0)
}

func TestFitEllipse(t *testing.T) {
	// axis-aligned ellipse a=40 b=20 at (10,-30)
	var points []Point
	for i := 0; i < 10; i++ {
		a := 2.0 * math.Pi * float64(i) / 10.0
		points = append(points, Point{10 + 40*math.Cos(a), -30 + 20*math.Sin(a)})
	}
	e, ok := fitEllipse(points)
	test.That(t, ok)
	test.That(t, !e.IsCircle)
	test.That(t, math.Abs(e.Center.X-10.0) < 1e-6)
	test.That(t, math.Abs(e.Center.Y+30.0) < 1e-6)
	test.That(t, math.Abs(e.Major-40.0) < 1e-6)
	test.That(t, math.Abs(e.Minor-20.0) < 1e-6)
	test.That(t, e.Major >= e.Minor)
}

func TestFitRotatedEllipse(t *testing.T) {
	// ellipse a=30 b=10 rotated by 30 degrees
	phi := 30.0 * math.Pi / 180.0
	var points []Point
	for i := 0; i < 12; i++ {
		a := 2.0 * math.Pi * float64(i) / 12.0
		x, y := 30*math.Cos(a), 10*math.Sin(a)
		points = append(points, Point{
			x*math.Cos(phi) - y*math.Sin(phi),
			x*math.Sin(phi) + y*math.Cos(phi),
		})
	}
	e, ok := fitEllipse(points)
	test.That(t, ok)
	test.That(t, math.Abs(e.Major-30.0) < 1e-6)
	test.That(t, math.Abs(e.Minor-10.0) < 1e-6)
	test.That(t, angleDiff(e.Rotation, 30.0) < 1e-6 || angleDiff(e.Rotation, 210.0) < 1e-6)
}

func TestFitConicDegenerate(t *testing.T) {
	_, ok := fitEllipse([]Point{{0, 0}, {1, 1}, {2, 2}})
	test.That(t, !ok)

	// collinear points have no ellipse through them
	_, ok = fitEllipse([]Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}})
	test.That(t, !ok)
}

func TestParametricAngle(t *testing.T) {
	e := Ellipse{Center: Point{100, 100}, Major: 50, Minor: 25}
	test.Float(t, e.parametricAngle(Point{150, 100}), 0.0)
	test.Float(t, e.parametricAngle(Point{100, 125}), 90.0)
	test.Float(t, e.parametricAngle(Point{50, 100}), 180.0)
	test.Float(t, e.parametricAngle(Point{100, 75}), -90.0)
}

func TestNormalizeArcAngles(t *testing.T) {
	var tests = []struct {
		start, end, rot     float64
		wantS, wantE, wantR float64
	}{
		{0, 90, 0, 0, 90, 0},
		{90, 0, 0, 90, 360, 0},
		{270, 300, 0, -90, -60, 0},
		{-30, -180, 0, -30, 180, 0},
		{0, 360, 0, 0, 360, 0},
		{10, 10, 0, 10, 370, 0},
		{30, 90, 180, -150, -90, 0},
		{30, 90, -180, -150, -90, 0},
	}
	for _, tt := range tests {
		s, e, r := normalizeArcAngles(tt.start, tt.end, tt.rot)
		test.Float(t, s, tt.wantS)
		test.Float(t, e, tt.wantE)
		test.Float(t, r, tt.wantR)
		test.That(t, -180.0 < s && s <= 180.0)
		test.That(t, e > s)
	}
}
