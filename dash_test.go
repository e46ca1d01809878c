package tikz

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestNormalizeDashPattern(t *testing.T) {
	test.String(t, normalizeDashPattern("on 4.50pt off 4.5pt"), "on 4.5pt off 4.5pt")
	test.String(t, normalizeDashPattern("on 0.84pt  off 2.51pt"), "on 0.84pt off 2.51pt")
	test.String(t, normalizeDashPattern("garbage"), "")
}

func TestCanonicalDashesNamed(t *testing.T) {
	in := `\draw [color = black, dash pattern = {on 4.5pt off 4.5pt}] (0,0) -- (1,1);`
	test.String(t, canonicalDashes(in),
		`\draw [color = black, dashed] (0,0) -- (1,1);`)
}

func TestCanonicalDashesDuplicate(t *testing.T) {
	// the exporter sometimes emits the pattern twice, the first wins
	in := `\draw [dash pattern = {on 4.5pt off 4.5pt}, dash pattern = {on 1pt off 1pt}] (0,0) -- (1,1);`
	test.String(t, canonicalDashes(in), `\draw [dashed] (0,0) -- (1,1);`)
}

func TestCanonicalDashesDoublePair(t *testing.T) {
	in := `\draw [dash pattern = {on 4.5pt off 4.5pt on 4.5pt off 4.5pt}, dash pattern = {on 4.5pt off 4.5pt on 4.5pt off 4.5pt}] (0,0) -- (1,1);`
	out := canonicalDashes(in)
	test.String(t, out, `\draw [dashed] (0,0) -- (1,1);`)
}

func TestCanonicalDashesExistingName(t *testing.T) {
	// a raw pattern next to its own style name must not double the name
	in := `\draw [dashed, dash pattern = {on 4.5pt off 4.5pt}] (0,0) -- (1,1);`
	test.String(t, canonicalDashes(in), `\draw [dashed] (0,0) -- (1,1);`)
}

func TestCanonicalDashesUnknownPattern(t *testing.T) {
	in := `\draw [dash pattern = {on 2.00pt off 3.00pt}] (0,0) -- (1,1);`
	test.String(t, canonicalDashes(in),
		`\draw [dash pattern = {on 2pt off 3pt}] (0,0) -- (1,1);`)
}

func TestCanonicalDashesLeavesOthers(t *testing.T) {
	in := `%Straight Lines [id:da1]
\draw [color = black] (0,0) -- (1,1);`
	test.String(t, canonicalDashes(in), in)
}
