package tikz

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestNormalizeOpacity(t *testing.T) {
	in := `\draw [color = black, draw opacity = 1, line width = 1.5] (0,0) -- (1,1);`
	test.String(t, normalizeOpacity(in),
		`\draw [color = black, line width = 1.5] (0,0) -- (1,1);`)
}

func TestNormalizeOpacityKeepsPartial(t *testing.T) {
	in := `\draw [draw opacity = 0.5] (0,0) -- (1,1);`
	test.String(t, normalizeOpacity(in), in)

	in = `\draw [fill opacity = 0.35, draw opacity = 1] (0,0) -- (1,1);`
	test.String(t, normalizeOpacity(in),
		`\draw [fill opacity = 0.35] (0,0) -- (1,1);`)
}

func TestNormalizeOpacityDropsEmptyBlock(t *testing.T) {
	in := `\draw [opacity = 1] (0,0) -- (1,1);`
	test.String(t, normalizeOpacity(in), `\draw (0,0) -- (1,1);`)
}

func TestNormalizeOpacityNotOne(t *testing.T) {
	// 0.1 and 1.5 are not the default and stay
	in := `\draw [draw opacity = 0.1] (0,0) -- (1,1);`
	test.String(t, normalizeOpacity(in), in)
}
