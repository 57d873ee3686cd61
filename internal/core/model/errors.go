package model

import (
	"errors"
	"fmt"
)

// ErrNoEvents indicates an entity had no parseable timestamps to render.
var ErrNoEvents = errors.New("no renderable events")

// ConfigError reports invalid input configuration. It is fatal and aborts a
// run before any entity is processed.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return e.Msg
}

// NewConfigErrorf builds a ConfigError from a format string.
func NewConfigErrorf(format string, args ...interface{}) *ConfigError {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// ParseError reports a cell value that could not be parsed as a timestamp.
// It is recovered locally by dropping the event.
type ParseError struct {
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("column %s: cannot parse %q: %v", e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RenderError reports a failure to draw or persist a timeline image. In batch
// mode it is fatal only for the affected entity.
type RenderError struct {
	Destination string
	Err         error
}

func (e *RenderError) Error() string {
	if e.Destination == "" {
		return fmt.Sprintf("render failed: %v", e.Err)
	}
	return fmt.Sprintf("render to %s failed: %v", e.Destination, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
