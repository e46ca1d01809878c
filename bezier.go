package tikz

import "math"

// Bezier is a cubic Bézier segment between Start and End with control
// points CP1 and CP2.
type Bezier struct {
	Start, CP1, CP2, End Point
}

// Pos returns the position at t in [0,1].
func (b Bezier) Pos(t float64) Point {
	p0 := b.Start.Mul((1 - t) * (1 - t) * (1 - t))
	p1 := b.CP1.Mul(3 * (1 - t) * (1 - t) * t)
	p2 := b.CP2.Mul(3 * (1 - t) * t * t)
	p3 := b.End.Mul(t * t * t)
	return p0.Add(p1).Add(p2).Add(p3)
}

// Deriv returns the derivative at t in [0,1].
func (b Bezier) Deriv(t float64) Point {
	p0 := b.CP1.Sub(b.Start).Mul(3 * (1 - t) * (1 - t))
	p1 := b.CP2.Sub(b.CP1).Mul(6 * (1 - t) * t)
	p2 := b.End.Sub(b.CP2).Mul(3 * t * t)
	return p0.Add(p1).Add(p2)
}

// Speed returns the speed, ie. the derivative magnitude, at t in [0,1].
func (b Bezier) Speed(t float64) float64 {
	return b.Deriv(t).Length()
}

// Length returns the arc length. A 50 step Riemann sum gives a first
// estimate while Gauss-Legendre quadrature refines it; the average of both
// is stable for the short, well behaved segments the exporter produces.
func (b Bezier) Length() float64 {
	const steps = 50
	riemann := 0.0
	for i := 0; i < steps; i++ {
		riemann += b.Speed(float64(i) / float64(steps))
	}
	riemann /= float64(steps)
	gauss := gaussLegendre5(b.Speed, 0.0, 1.0)
	return (riemann + gauss) / 2.0
}

// splitSegments splits a flat control point list into cubic Bézier segments.
// The list is laid out as start, cp1, cp2, end, cp1, cp2, end, ... so each
// segment after the first reuses the previous end point as its start.
func splitSegments(points []Point) []Bezier {
	if len(points) < 4 {
		return nil
	}
	var segs []Bezier
	start := points[0]
	for i := 1; i+2 < len(points); i += 3 {
		seg := Bezier{start, points[i], points[i+1], points[i+2]}
		segs = append(segs, seg)
		start = seg.End
	}
	return segs
}

// conicSamples returns sample points suited for conic fitting: the chain's
// end points plus each segment's midpoint at t=0.5.
func conicSamples(segs []Bezier) []Point {
	if len(segs) == 0 {
		return nil
	}
	samples := []Point{segs[0].Start}
	for _, seg := range segs {
		samples = append(samples, seg.Pos(0.5), seg.End)
	}
	return samples
}

// nearestSegment returns the index of the segment whose midpoint is closest
// to p, together with the distance.
func nearestSegment(segs []Bezier, p Point) (int, float64) {
	best, bestDist := -1, math.Inf(1)
	for i, seg := range segs {
		if d := seg.Pos(0.5).Sub(p).Length(); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, bestDist
}

// chainLengths returns the cumulative arc length at the end of each segment
// and the total length of the chain.
func chainLengths(segs []Bezier) ([]float64, float64) {
	cum := make([]float64, len(segs))
	total := 0.0
	for i, seg := range segs {
		total += seg.Length()
		cum[i] = total
	}
	return cum, total
}
