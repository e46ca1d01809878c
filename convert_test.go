package tikz

import (
	"errors"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestConvertStraight(t *testing.T) {
	input := `\begin{tikzpicture}[x=0.75pt,y=0.75pt,yscale=-1,xscale=1]
%Straight Lines [id:da1]
\draw [color={rgb, 255:red, 0; green, 0; blue, 0 }  ,draw opacity=1 ][line width=1.5]    (220,60) -- (220,140) ;
\end{tikzpicture}`
	out, err := Convert(input)
	test.Error(t, err)
	test.That(t, strings.Contains(out, "%Straight Lines [id:da1]"))
	test.That(t, strings.Contains(out, `\draw [color = black, line width = 1.5] (220, 60) -- (220, 140);`))
	test.That(t, !strings.Contains(out, "rgb, 255"))
	test.That(t, !strings.Contains(out, "draw opacity = 1"))
	test.That(t, strings.Contains(out, `\begin{tikzpicture}`))
	test.That(t, strings.Contains(out, "% copy to preamble"))
}

func TestConvertPlainMode(t *testing.T) {
	c, err := NewConverter(Config{Mode: ModePlain})
	test.Error(t, err)
	out, err := c.Convert("%Straight Lines [id:da1]\n\\draw    (0,0) -- (10,10) ;")
	test.Error(t, err)
	test.That(t, strings.HasPrefix(out, `\usetikzlibrary{arrows.meta, decorations.markings, bending}`))
	test.That(t, !strings.Contains(out, "% copy to preamble"))
}

func TestConvertArrow(t *testing.T) {
	input := `%Straight Lines [id:da1]
\draw    (220,60) -- (220,140) ;
\draw [shift={(220,140)}, rotate = 90]    (0,0) -- (5.59,-2.07) ;`
	out, err := Convert(input)
	test.Error(t, err)
	test.That(t, strings.Contains(out, `\draw [->] (220, 60) -- (220, 140);`))
	// the glyph helper is consumed
	test.That(t, !strings.Contains(out, "shift={(220,140)}"))
}

func TestConvertHorizontalArrow(t *testing.T) {
	input := `%Straight Lines [id:da1]
\draw [color={rgb, 255:red, 0; green, 0; blue, 0 }  ,draw opacity=1 ]    (0,0) -- (10,0) ;
\draw [shift={(10,0)}, rotate = 0]    (0,0) -- (5.59,-2.07) ;`
	out, err := Convert(input)
	test.Error(t, err)
	test.That(t, strings.Contains(out, `\draw [->, color = black] (0, 0) -- (10, 0);`))
	test.That(t, !strings.Contains(out, "draw opacity"))
}

func TestConvertDashNames(t *testing.T) {
	input := `%Straight Lines [id:da1]
\draw [dash pattern={on 4.5pt off 4.5pt}][dash pattern={on 4.5pt off 4.5pt}]    (0,0) -- (100,0) ;`
	out, err := Convert(input)
	test.Error(t, err)
	test.That(t, strings.Contains(out, "dashed"))
	test.That(t, !strings.Contains(out, "dash pattern"))
}

func TestConvertColorDefinitions(t *testing.T) {
	input := `%Straight Lines [id:da1]
\draw [color={rgb, 255:red, 220; green, 20; blue, 60 }  ,draw opacity=1 ]    (0,0) -- (100,0) ;`
	out, err := Convert(input)
	test.Error(t, err)
	test.That(t, strings.Contains(out, "% Color definitions"))
	test.That(t, strings.Contains(out, `\definecolor{crimson}`))
	test.That(t, strings.Contains(out, "color = crimson"))
}

func TestConvertNodePlacement(t *testing.T) {
	input := `%Straight Lines [id:da1]
\draw    (220,60) -- (220,140) ;
%Shape: Text Node
\draw (228,90) node [anchor=north west][inner sep=0.75pt]   {$A$};`
	out, err := Convert(input)
	test.Error(t, err)
	test.That(t, strings.Contains(out, `node[right, pos = 0.38] {$A$}`))
	test.That(t, !strings.Contains(out, "anchor=north west"))
}

func TestConvertCircle(t *testing.T) {
	input := bezierEllipseBlock("%Shape: Circle [id:da3]", 100, 100, 50, 50, true)
	out, err := Convert(input)
	test.Error(t, err)
	test.That(t, strings.Contains(out, "%Circle [id:da3]"))
	test.That(t, strings.Contains(out, "circle ("))
	test.That(t, !strings.Contains(out, "controls"))
}

func TestConvertUnknownPassesThrough(t *testing.T) {
	input := `%Mystery Shape [id:zz1]
\draw (0,0) rectangle (10,10) ;`
	out, err := Convert(input)
	test.Error(t, err)
	test.That(t, strings.Contains(out, "rectangle (10,10)"))
}

func TestConvertPreservesAnnotationNote(t *testing.T) {
	input := `%Straight Lines [id:da1] % baseline
\draw    (0,0) -- (100,0) ;`
	out, err := Convert(input)
	test.Error(t, err)
	test.That(t, strings.Contains(out, "%Straight Lines [id:da1] % baseline"))
}

func TestConvertIdempotent(t *testing.T) {
	inputs := []string{
		`%Straight Lines [id:da1]
\draw [color={rgb, 255:red, 0; green, 0; blue, 0 }  ,draw opacity=1 ][line width=1.5]    (220,60) -- (220,140) ;
\draw [shift={(220,140)}, rotate = 90]    (0,0) -- (5.59,-2.07) ;
%Shape: Text Node
\draw (228,90) node [anchor=north west][inner sep=0.75pt]   {$A$};`,
		bezierEllipseBlock("%Shape: Circle [id:da3]", 100, 100, 50, 50, true),
		`%Curve Lines [id:da2]
\draw [dash pattern={on 4.5pt off 4.5pt}]    (300,60) .. controls (340,60) and (340,100) .. (300,100) ;`,
		halfArcBlock,
		rotatedEllipseBlock("%Shape: Ellipse [id:da5]", 200, 150, 80, 40, 30),
	}
	for _, input := range inputs {
		once, err := Convert(input)
		test.Error(t, err)
		twice, err := Convert(once)
		test.Error(t, err)
		test.String(t, twice, once)
	}
}

func TestConvertErrors(t *testing.T) {
	_, err := Convert("")
	test.That(t, err != nil)
	var perr *ParseError
	test.That(t, errors.As(err, &perr))
	test.That(t, errors.Is(err, ErrNoBlocks))

	_, err = Convert("no tikz content at all")
	test.That(t, err != nil)
}

func TestNewConverterConfig(t *testing.T) {
	_, err := NewConverter(Config{Mode: "fancy"})
	var cerr *ConfigError
	test.That(t, errors.As(err, &cerr))

	_, err = NewConverter(Config{MaxNodeDistance: -1})
	test.That(t, errors.As(err, &cerr))

	c, err := NewConverter(Config{})
	test.Error(t, err)
	test.T(t, c.cfg.Mode, ModeClassic)
	test.Float(t, c.cfg.MaxNodeDistance, DefaultMaxNodeDistance)
	test.Float(t, c.cfg.EndpointThreshold, DefaultEndpointThreshold)
	test.Float(t, c.cfg.ArrowTolerance, DefaultArrowTolerance)
}

func TestConvertModuleToggles(t *testing.T) {
	c, err := NewConverter(Config{Modules: map[string]bool{"nodes": false, "colors": false}})
	test.Error(t, err)
	input := `%Straight Lines [id:da1]
\draw [color={rgb, 255:red, 0; green, 0; blue, 0 }]    (220,60) -- (220,140) ;
%Shape: Text Node
\draw (228,90) node [anchor=north west]   {$A$};`
	out, err := c.Convert(input)
	test.Error(t, err)
	// with both modules off the label stays standalone and the literal keeps
	// its RGB form
	test.That(t, strings.Contains(out, "anchor=north west"))
	test.That(t, strings.Contains(out, "rgb, 255"))
}
