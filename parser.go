package tikz

import "strings"

// ShapeBlock is one annotated shape from the exporter: the annotation
// comment, the drawing statements that realize the shape, and any arrowhead
// helper statements that accompany it.
type ShapeBlock struct {
	Annotation string
	TypeHint   string
	ID         string
	Raw        string
	ShapeData  string
	ArrowsData string
}

// annotation keywords that start a shape block
var shapeKeywords = []string{
	"straight lines",
	"curve lines",
	"ellipse",
	"circle",
	"arc",
	"text node",
}

// isAnnotation reports whether a comment line announces a shape block.
func isAnnotation(line string) bool {
	if !strings.HasPrefix(line, "%") {
		return false
	}
	if strings.Contains(line, "[id:") {
		return true
	}
	lower := strings.ToLower(line)
	if strings.Contains(lower, "shape:") {
		return true
	}
	for _, kw := range shapeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// typeHint extracts the shape name from an annotation comment, such as
// "Straight Lines" from "%Straight Lines [id:da1]".
func typeHint(annotation string) string {
	s := strings.TrimLeft(annotation, "% \t")
	if i := strings.Index(strings.ToLower(s), "shape:"); i >= 0 {
		s = s[i+len("shape:"):]
	}
	if i := strings.IndexByte(s, '['); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// ParseBlocks segments the exporter output into shape blocks. A block opens
// at an annotation comment and collects the statements that follow; it
// closes at the next annotation, at \end{tikzpicture}, or at end of input.
// Content outside any block is ignored.
func ParseBlocks(input string) ([]ShapeBlock, error) {
	if strings.TrimSpace(input) == "" {
		return nil, &ParseError{Err: ErrNoBlocks}
	}

	var blocks []ShapeBlock
	var annotation string
	var body []string
	inBlock := false
	inStmt := false

	flush := func() {
		if !inBlock {
			return
		}
		raw := strings.TrimRight(strings.Join(body, "\n"), "\n")
		b := ShapeBlock{
			Annotation: annotation,
			TypeHint:   typeHint(annotation),
			ID:         shapeID(annotation),
			Raw:        raw,
		}
		var shape, arrows []string
		for _, cmd := range drawCommands(raw) {
			if isArrowCommand(cmd) {
				arrows = append(arrows, cmd)
			} else {
				shape = append(shape, cmd)
			}
		}
		b.ShapeData = strings.Join(shape, "\n")
		b.ArrowsData = strings.Join(arrows, "\n")
		blocks = append(blocks, b)
		inBlock = false
		inStmt = false
		body = body[:0]
	}

	for _, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case isAnnotation(trimmed):
			flush()
			annotation = trimmed
			inBlock = true
		case strings.Contains(trimmed, `\end{tikzpicture}`):
			flush()
		case !inBlock:
			// content before the first annotation
		case inStmt || strings.HasPrefix(trimmed, `\`) ||
			strings.HasPrefix(trimmed, "%") || trimmed == "":
			body = append(body, line)
			if strings.HasPrefix(trimmed, `\`) || inStmt {
				inStmt = trimmed != "" && !strings.HasSuffix(trimmed, ";")
			}
		default:
			flush()
		}
	}
	flush()

	if len(blocks) == 0 {
		return nil, &ParseError{Err: ErrNoBlocks}
	}
	return blocks, nil
}
