package tikz

import (
	"errors"
	"fmt"
)

var (
	// ErrNoBlocks means the input contained no recognizable shape blocks.
	ErrNoBlocks = errors.New("no shape blocks found")

	errBadPayload = errors.New("payload type does not match shape kind")
)

// ConfigError reports an invalid configuration value.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ParseError reports a failure to segment the input into shape blocks.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ProcessError reports a failure while recovering the geometry of a shape.
// During conversion the affected shape is passed through in raw form and a
// warning is logged.
type ProcessError struct {
	ShapeID string
	Kind    Kind
	Err     error
}

func (e *ProcessError) Error() string {
	if e.ShapeID != "" {
		return fmt.Sprintf("process %s [id:%s]: %v", e.Kind, e.ShapeID, e.Err)
	}
	return fmt.Sprintf("process %s: %v", e.Kind, e.Err)
}

func (e *ProcessError) Unwrap() error { return e.Err }

// RenderError reports a failure to emit canonical TikZ for a processed
// shape. Rendering a valid payload never fails, so a RenderError indicates
// an internal inconsistency and is fatal.
type RenderError struct {
	ShapeID string
	Kind    Kind
	Err     error
}

func (e *RenderError) Error() string {
	if e.ShapeID != "" {
		return fmt.Sprintf("render %s [id:%s]: %v", e.Kind, e.ShapeID, e.Err)
	}
	return fmt.Sprintf("render %s: %v", e.Kind, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
