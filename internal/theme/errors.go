package theme

import (
	"encoding/json"
	"errors"
	"fmt"
)

// IOError means a theme file was missing or unreadable.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError means a file was still not valid JSON after lenient cleanup.
// The wrapped error keeps the parser's position info when it has any.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	var syn *json.SyntaxError
	if errors.As(e.Err, &syn) {
		return fmt.Sprintf("parsing %s: %v (offset %d)", e.Path, e.Err, syn.Offset)
	}
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FormatError means the JSON was well-formed but violates the theme schema:
// wrong type for scope or include, a bad hex color, or an include cycle.
type FormatError struct {
	Path string
	Msg  string
	Err  error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Msg)
}

func (e *FormatError) Unwrap() error { return e.Err }
