package tikz

import (
	"errors"
	"strings"

	"github.com/rs/zerolog"
)

// Mode selects the output layout.
type Mode string

const (
	// ModeClassic emits the color definitions and a commented preamble
	// above the tikzpicture, ready to paste into a LaTeX document.
	ModeClassic Mode = "classic"

	// ModePlain emits uncommented preamble lines for environments that
	// render TikZ directly.
	ModePlain Mode = "plain"
)

// defaults for the geometric thresholds, in exporter coordinate units and
// degrees
const (
	DefaultMaxNodeDistance   = 30.0
	DefaultEndpointThreshold = 10.0
	DefaultArrowTolerance    = 15.0
)

// Config controls a Converter. The zero value selects classic mode with
// default thresholds, all modules enabled and no logging.
type Config struct {
	// Mode selects the output layout, classic by default.
	Mode Mode

	// MaxNodeDistance is how far a text label may sit from a drawn line
	// and still be attached to it.
	MaxNodeDistance float64

	// EndpointThreshold is how close an arrowhead anchor must be to a
	// path endpoint to count as a start or end arrow.
	EndpointThreshold float64

	// ArrowTolerance is the maximum angle in degrees between an
	// arrowhead's rotation and the path tangent.
	ArrowTolerance float64

	// Modules disables optional passes by name: "arrows", "colors",
	// "dashes", "opacity", "nodes". Missing names are enabled.
	Modules map[string]bool

	// Logger receives progress and degradation warnings. Nil disables
	// logging.
	Logger *zerolog.Logger
}

func (c *Config) enabled(name string) bool {
	if c.Modules == nil {
		return true
	}
	v, ok := c.Modules[name]
	return !ok || v
}

func (c *Config) setDefaults() error {
	if c.Mode == "" {
		c.Mode = ModeClassic
	}
	if c.Mode != ModeClassic && c.Mode != ModePlain {
		return &ConfigError{Field: "Mode", Err: errors.New("must be classic or plain")}
	}
	if c.MaxNodeDistance == 0.0 {
		c.MaxNodeDistance = DefaultMaxNodeDistance
	}
	if c.EndpointThreshold == 0.0 {
		c.EndpointThreshold = DefaultEndpointThreshold
	}
	if c.ArrowTolerance == 0.0 {
		c.ArrowTolerance = DefaultArrowTolerance
	}
	if c.MaxNodeDistance < 0.0 {
		return &ConfigError{Field: "MaxNodeDistance", Err: errors.New("must be positive")}
	}
	if c.EndpointThreshold < 0.0 {
		return &ConfigError{Field: "EndpointThreshold", Err: errors.New("must be positive")}
	}
	if c.ArrowTolerance < 0.0 {
		return &ConfigError{Field: "ArrowTolerance", Err: errors.New("must be positive")}
	}
	return nil
}

// Converter canonicalizes exporter output. A Converter is immutable after
// construction and safe for concurrent use.
type Converter struct {
	cfg   Config
	log   zerolog.Logger
	procs map[Kind]processor
	rends map[Kind]renderer
}

// NewConverter validates the configuration and builds a Converter.
func NewConverter(cfg Config) (*Converter, error) {
	if err := cfg.setDefaults(); err != nil {
		return nil, err
	}
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	return &Converter{
		cfg:   cfg,
		log:   log,
		procs: newProcessors(&cfg),
		rends: newRenderers(),
	}, nil
}

// document is the conversion state threaded through the postprocessing
// stages.
type document struct {
	body      string
	colorDefs string
}

// stage is one postprocessing pass. Optional stages that fail are skipped
// with a warning, leaving the document as it was; required stages abort the
// conversion.
type stage struct {
	name     string
	required bool
	run      func(*document) error
}

// Convert canonicalizes one exporter document and returns the compact TikZ
// output.
func (c *Converter) Convert(input string) (string, error) {
	blocks, err := ParseBlocks(input)
	if err != nil {
		return "", err
	}
	c.log.Debug().Int("blocks", len(blocks)).Msg("input segmented")

	var results []Result
	for _, b := range blocks {
		shape := DetectShape(b)
		proc, ok := c.procs[shape.Kind]
		if !ok {
			proc = passthroughProcessor{}
		}
		res, err := proc.Process(shape)
		if err != nil {
			var perr *ProcessError
			if errors.As(err, &perr) {
				c.log.Warn().Err(err).Str("id", shape.ID).Msg("shape failed, passing through")
				res = degraded(shape)
			} else {
				return "", err
			}
		}
		if res.Degraded {
			c.log.Debug().Str("id", shape.ID).Stringer("kind", shape.Kind).
				Msg("geometry not recovered, passing through")
		}
		results = append(results, res)
	}

	outputs := make([]string, len(results))
	for i, res := range results {
		kind := res.Shape.Kind
		if res.Payload != nil {
			kind = res.Payload.Kind()
		}
		rend, ok := c.rends[kind]
		if !ok || res.Payload == nil {
			rend = passthroughRenderer{}
		}
		out, err := rend.Render(res)
		if err != nil {
			return "", err
		}
		outputs[i] = out
	}

	doc := &document{body: strings.Join(outputs, "\n")}
	cp := newColorPass()
	stages := []stage{
		{name: "colors", run: func(d *document) error {
			d.body = cp.run(d.body)
			d.colorDefs = cp.definitions()
			return nil
		}},
		{name: "dashes", run: func(d *document) error {
			d.body = canonicalDashes(d.body)
			return nil
		}},
		{name: "opacity", run: func(d *document) error {
			d.body = normalizeOpacity(d.body)
			return nil
		}},
	}
	for _, st := range stages {
		if !c.cfg.enabled(st.name) {
			continue
		}
		prev := *doc
		if err := st.run(doc); err != nil {
			if st.required {
				return "", err
			}
			c.log.Warn().Err(err).Str("stage", st.name).Msg("stage failed, output unchanged")
			*doc = prev
		}
	}

	if c.cfg.enabled("nodes") {
		lines := placeNodes(strings.Split(doc.body, "\n"), c.cfg.MaxNodeDistance)
		doc.body = strings.Join(lines, "\n")
	}
	return composeOutput(doc, c.cfg.Mode), nil
}

// composeOutput wraps the processed body in the mode's preamble and the
// tikzpicture environment.
func composeOutput(doc *document, mode Mode) string {
	var b strings.Builder
	if mode == ModePlain {
		b.WriteString("\\usetikzlibrary{arrows.meta, decorations.markings, bending}\n")
		b.WriteString("\\tikzset{>={Stealth[length=6pt, width=4pt, bend]}}\n\n")
		if doc.colorDefs != "" {
			b.WriteString(doc.colorDefs)
			b.WriteString("\n")
		}
	} else {
		if doc.colorDefs != "" {
			b.WriteString(doc.colorDefs)
			b.WriteString("\n")
		}
		b.WriteString("% copy to preamble\n")
		b.WriteString("% \\usetikzlibrary{arrows.meta, decorations.markings, bending}\n")
		b.WriteString("% \\tikzset{>={Stealth[length=6pt, width=4pt, bend]}}\n")
		b.WriteString("% Classic Mode - Optimized TikZ Output\n\n")
	}
	b.WriteString("\\begin{tikzpicture}[x = 0.75pt, y = 0.75pt, yscale = -1, line width = 0.75pt]\n")
	b.WriteString(doc.body)
	b.WriteString("\n\\end{tikzpicture}\n")
	return b.String()
}
