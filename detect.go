package tikz

import (
	"regexp"
	"strings"
)

// Kind identifies the geometric type of a shape.
type Kind int

const (
	KindUnknown Kind = iota
	KindStraight
	KindCurve
	KindArc
	KindEllipse
	KindCircle
	KindText
)

// Label returns the annotation name used for the kind.
func (k Kind) Label() string {
	switch k {
	case KindStraight:
		return "Straight Lines"
	case KindCurve:
		return "Curve Lines"
	case KindArc:
		return "Arc"
	case KindEllipse:
		return "Ellipse"
	case KindCircle:
		return "Circle"
	case KindText:
		return "Text Node"
	}
	return "Shape"
}

func (k Kind) String() string { return k.Label() }

// kindAliases maps normalized exporter names to kinds. Normalization
// lowercases and collapses whitespace and hyphens to underscores, so both
// "Straight Lines" and "straight-lines" resolve.
var kindAliases = map[string]Kind{
	"straight_lines": KindStraight,
	"straight_line":  KindStraight,
	"straight":       KindStraight,
	"line":           KindStraight,
	"lines":          KindStraight,
	"curve_lines":    KindCurve,
	"curve_line":     KindCurve,
	"curve":          KindCurve,
	"curves":         KindCurve,
	"arc":            KindArc,
	"arcs":           KindArc,
	"ellipse":        KindEllipse,
	"ellipses":       KindEllipse,
	"circle":         KindCircle,
	"circles":        KindCircle,
	"text_node":      KindText,
	"text":           KindText,
	"node":           KindText,
}

var collapseRe = regexp.MustCompile(`[\s\-]+`)

func normalizeKindName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return collapseRe.ReplaceAllString(name, "_")
}

// KindFromName resolves an exporter shape name to a Kind, tolerating case,
// plural and separator variations. Unrecognized names map to KindUnknown.
func KindFromName(name string) Kind {
	if k, ok := kindAliases[normalizeKindName(name)]; ok {
		return k
	}
	return KindUnknown
}

// Shape is a detected shape block: the block's content tagged with its
// geometric kind.
type Shape struct {
	ID         string
	Kind       Kind
	Annotation string
	Raw        string
	ShapeData  string
	ArrowsData string
}

var annotationNameRe = regexp.MustCompile(`%\s*(?:Shape:)?\s*([^\[\n]+)`)

// DetectShape resolves a block's kind. The explicit type hint wins; failing
// that the annotation text is tried in a few progressively looser forms.
// Detection never fails: an unresolvable block becomes KindUnknown and is
// passed through untouched downstream.
func DetectShape(b ShapeBlock) Shape {
	s := Shape{
		ID:         b.ID,
		Annotation: b.Annotation,
		Raw:        b.Raw,
		ShapeData:  b.ShapeData,
		ArrowsData: b.ArrowsData,
	}
	candidates := []string{b.TypeHint}
	if m := annotationNameRe.FindStringSubmatch(b.Annotation); m != nil {
		name := strings.TrimSpace(m[1])
		candidates = append(candidates, name)
		if i := strings.IndexByte(name, ':'); i >= 0 {
			candidates = append(candidates, strings.TrimSpace(name[i+1:]))
		}
	}
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if k := KindFromName(c); k != KindUnknown {
			s.Kind = k
			return s
		}
	}
	return s
}
