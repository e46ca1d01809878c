package tikz

import (
	"math"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestNearestColorExact(t *testing.T) {
	// a palette entry always resolves to itself
	for _, pc := range palette {
		test.String(t, NearestColor(pc.r, pc.g, pc.b), pc.name)
	}
}

func TestNearestColorTotal(t *testing.T) {
	// every input maps to some name, even far off palette
	test.That(t, NearestColor(1, 2, 3) != "")
	test.That(t, NearestColor(254, 254, 254) == "white")
	test.That(t, NearestColor(3, 1, 0) == "black")
}

func TestNearestColorMatchesLinearScan(t *testing.T) {
	probes := []struct{ r, g, b float64 }{
		{74, 144, 226}, {200, 30, 60}, {10, 120, 110}, {130, 130, 130}, {255, 200, 0},
	}
	for _, p := range probes {
		best, bestDist := "", math.Inf(1)
		for _, pc := range palette {
			if d := sqDist(pc, p.r, p.g, p.b); d < bestDist {
				best, bestDist = pc.name, d
			}
		}
		got := NearestColor(p.r, p.g, p.b)
		test.That(t, sqDist(*paletteByName(got), p.r, p.g, p.b) == bestDist)
		_ = best
	}
}

func TestColorPassRun(t *testing.T) {
	cp := newColorPass()
	body := `\draw [color = {rgb, 255:red, 0; green, 0; blue, 0 }, fill = {rgb, 255:red, 220; green, 20; blue, 60 }] (0,0) -- (1,1);`
	out := cp.run(body)
	test.That(t, strings.Contains(out, "color = black"))
	test.That(t, strings.Contains(out, "fill = crimson"))
	test.That(t, !strings.Contains(out, "rgb, 255"))

	defs := cp.definitions()
	test.That(t, strings.Contains(defs, `\definecolor{crimson}{rgb}{0.86, 0.08, 0.24}`))
	// base colors need no definition
	test.That(t, !strings.Contains(defs, "{black}"))
}

func TestColorPassCache(t *testing.T) {
	cp := newColorPass()
	a := cp.name(220, 20, 60)
	b := cp.name(220, 20, 60)
	test.String(t, a, "crimson")
	test.String(t, b, "crimson")
	test.T(t, len(cp.cache), 1)
}

func TestColorPassCacheFractional(t *testing.T) {
	// fractional channels on either side of a palette boundary must not
	// share a cache entry
	cp := newColorPass()
	test.String(t, cp.name(191.2, 191.2, 191.2), "lightgray")
	test.String(t, cp.name(191.7, 191.7, 191.7), "silver")
	test.T(t, len(cp.cache), 2)
}

func TestColorPassTracksExistingNames(t *testing.T) {
	// named colors survive reconversion: their definitions are re-emitted
	cp := newColorPass()
	cp.run(`\draw [color = crimson] (0,0) -- (1,1);`)
	test.That(t, strings.Contains(cp.definitions(), "crimson"))
}
