package tikz

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// paletteColor is a named color with channels in [0,255].
type paletteColor struct {
	name    string
	r, g, b float64
}

// palette holds the colors RGB literals canonicalize to: the xcolor base
// names plus a set of common CSS names for finer matches.
var palette = []paletteColor{
	{"black", 0, 0, 0},
	{"blue", 0, 0, 255},
	{"brown", 191, 128, 64},
	{"cyan", 0, 255, 255},
	{"darkgray", 64, 64, 64},
	{"gray", 128, 128, 128},
	{"green", 0, 255, 0},
	{"lightgray", 191, 191, 191},
	{"lime", 191, 255, 0},
	{"magenta", 255, 0, 255},
	{"olive", 128, 128, 0},
	{"orange", 255, 128, 0},
	{"pink", 255, 191, 191},
	{"purple", 191, 0, 64},
	{"red", 255, 0, 0},
	{"teal", 0, 128, 128},
	{"violet", 128, 0, 128},
	{"white", 255, 255, 255},
	{"yellow", 255, 255, 0},

	{"crimson", 220, 20, 60},
	{"darkblue", 0, 0, 139},
	{"darkgreen", 0, 100, 0},
	{"darkorange", 255, 140, 0},
	{"darkred", 139, 0, 0},
	{"dodgerblue", 30, 144, 255},
	{"forestgreen", 34, 139, 34},
	{"gold", 255, 215, 0},
	{"indigo", 75, 0, 130},
	{"lightblue", 173, 216, 230},
	{"lightgreen", 144, 238, 144},
	{"navy", 0, 0, 128},
	{"royalblue", 65, 105, 225},
	{"salmon", 250, 128, 114},
	{"seagreen", 46, 139, 87},
	{"silver", 192, 192, 192},
	{"skyblue", 135, 206, 235},
	{"steelblue", 70, 130, 180},
	{"tomato", 255, 99, 71},
	{"turquoise", 64, 224, 208},
}

// baseColors are known to xcolor and need no \definecolor line.
var baseColors = map[string]bool{
	"black": true, "blue": true, "brown": true, "cyan": true,
	"darkgray": true, "gray": true, "green": true, "lightgray": true,
	"lime": true, "magenta": true, "olive": true, "orange": true,
	"pink": true, "purple": true, "red": true, "teal": true,
	"violet": true, "white": true, "yellow": true,
}

// kdNode is a node of a k-d tree over RGB space, cycling axes R, G, B by
// depth.
type kdNode struct {
	color       paletteColor
	axis        int
	left, right *kdNode
}

func channel(c paletteColor, axis int) float64 {
	switch axis {
	case 0:
		return c.r
	case 1:
		return c.g
	}
	return c.b
}

func buildKDTree(colors []paletteColor, depth int) *kdNode {
	if len(colors) == 0 {
		return nil
	}
	axis := depth % 3
	sorted := make([]paletteColor, len(colors))
	copy(sorted, colors)
	sort.Slice(sorted, func(i, j int) bool {
		return channel(sorted[i], axis) < channel(sorted[j], axis)
	})
	mid := len(sorted) / 2
	return &kdNode{
		color: sorted[mid],
		axis:  axis,
		left:  buildKDTree(sorted[:mid], depth+1),
		right: buildKDTree(sorted[mid+1:], depth+1),
	}
}

func sqDist(c paletteColor, r, g, b float64) float64 {
	dr, dg, db := c.r-r, c.g-g, c.b-b
	return dr*dr + dg*dg + db*db
}

// nearest finds the palette color closest to (r,g,b) by Euclidean distance,
// pruning branches that cannot beat the best distance found so far.
func (n *kdNode) nearest(r, g, b float64, best *paletteColor, bestDist *float64) {
	if n == nil {
		return
	}
	if d := sqDist(n.color, r, g, b); d < *bestDist {
		*best, *bestDist = n.color, d
	}
	target := [3]float64{r, g, b}[n.axis]
	diff := target - channel(n.color, n.axis)
	near, far := n.left, n.right
	if diff > 0 {
		near, far = n.right, n.left
	}
	near.nearest(r, g, b, best, bestDist)
	if diff*diff < *bestDist {
		far.nearest(r, g, b, best, bestDist)
	}
}

// colorTree is built once at startup and shared by all conversions.
var colorTree = buildKDTree(palette, 0)

// NearestColor returns the palette name closest to the RGB triple with
// channels in [0,255]. The match is total: every input maps to some name.
func NearestColor(r, g, b float64) string {
	best := palette[0]
	bestDist := sqDist(best, r, g, b)
	colorTree.nearest(r, g, b, &best, &bestDist)
	return best.name
}

var (
	rgbLiteralRe = regexp.MustCompile(`\{\s*rgb,\s*255\s*:\s*red,\s*([0-9]*\.?[0-9]+)\s*;\s*green,\s*([0-9]*\.?[0-9]+)\s*;\s*blue,\s*([0-9]*\.?[0-9]+)\s*\}`)
	colorNameRe  = regexp.MustCompile(`(color|fill)\s*=\s*([A-Za-z]+)`)
)

// colorPass canonicalizes RGB literals in a document body to named palette
// colors, caching repeated literals and tracking which names the body uses
// so definitions can be emitted for them.
type colorPass struct {
	cache map[[3]float64]string
	used  map[string]bool
}

func newColorPass() *colorPass {
	return &colorPass{
		cache: make(map[[3]float64]string),
		used:  make(map[string]bool),
	}
}

func (c *colorPass) name(r, g, b float64) string {
	key := [3]float64{r, g, b}
	if n, ok := c.cache[key]; ok {
		return n
	}
	n := NearestColor(r, g, b)
	c.cache[key] = n
	return n
}

// run replaces every RGB literal in the body with its nearest palette name
// and records all palette names the body references.
func (c *colorPass) run(body string) string {
	out := rgbLiteralRe.ReplaceAllStringFunc(body, func(m string) string {
		sub := rgbLiteralRe.FindStringSubmatch(m)
		r, okr := parseFloat(sub[1])
		g, okg := parseFloat(sub[2])
		b, okb := parseFloat(sub[3])
		if !okr || !okg || !okb {
			return m
		}
		return c.name(r, g, b)
	})
	// names already present survive reconversion with their definitions
	for _, m := range colorNameRe.FindAllStringSubmatch(out, -1) {
		c.used[strings.ToLower(m[2])] = true
	}
	return out
}

// definitions returns the \definecolor block for the used non-base palette
// names, sorted for stable output, or "" when none are needed.
func (c *colorPass) definitions() string {
	var names []string
	for name := range c.used {
		if !baseColors[name] && paletteByName(name) != nil {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return ""
	}
	sort.Strings(names)
	var b strings.Builder
	b.WriteString("% Color definitions\n")
	for _, name := range names {
		pc := paletteByName(name)
		fmt.Fprintf(&b, "\\definecolor{%s}{rgb}{%s, %s, %s}\n",
			name, formatNum(pc.r/255.0), formatNum(pc.g/255.0), formatNum(pc.b/255.0))
	}
	return b.String()
}

func paletteByName(name string) *paletteColor {
	for i := range palette {
		if palette[i].name == name {
			return &palette[i]
		}
	}
	return nil
}
