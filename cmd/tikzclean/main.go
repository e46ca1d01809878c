package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/tdewolff/argp"
	"github.com/tikzclean/tikz"
)

// Main is the command that reads an exported TikZ document and writes its
// canonical form.
type Main struct {
	Mode         string  `short:"m" default:"classic" desc:"Output mode: classic or plain"`
	NodeDistance float64 `name:"node-distance" default:"30" desc:"Maximum distance for attaching text labels to lines"`
	Output       string  `short:"o" desc:"Output filename, stdout when empty"`
	Verbose      bool    `short:"v" desc:"Print progress and warnings to stderr"`
	Input        string  `index:"0" desc:"Input filename, stdin when empty"`
}

func main() {
	root := argp.NewCmd(&Main{}, "Canonicalize exported TikZ diagrams")
	root.Parse()
}

func (cmd *Main) Run() error {
	var input []byte
	var err error
	if cmd.Input == "" || cmd.Input == "-" {
		input, err = io.ReadAll(os.Stdin)
	} else {
		input, err = os.ReadFile(cmd.Input)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	cfg := tikz.Config{
		Mode:            tikz.Mode(cmd.Mode),
		MaxNodeDistance: cmd.NodeDistance,
	}
	if cmd.Verbose {
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).With().Timestamp().Logger()
		cfg.Logger = &log
	}
	c, err := tikz.NewConverter(cfg)
	if err != nil {
		return err
	}
	output, err := c.Convert(string(input))
	if err != nil {
		return err
	}

	w := os.Stdout
	if cmd.Output != "" && cmd.Output != "-" {
		f, err := os.Create(cmd.Output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}
	_, err = io.WriteString(w, output)
	return err
}
