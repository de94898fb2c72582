package rpsl

import (
	"errors"
	"fmt"
)

// Errors returned by NewName.
var (
	ErrNameEmpty     = errors.New("attribute name is empty")
	ErrNameNonASCII  = errors.New("attribute name contains non-ASCII characters")
	ErrNameFirstChar = errors.New("attribute name must begin with an ASCII letter")
	ErrNameLastChar  = errors.New("attribute name must end with an ASCII letter or digit")
)

// Errors returned by NewValue and NewValueFromLines.
var (
	ErrValueNonASCII    = errors.New("attribute value contains non-ASCII characters")
	ErrValueControlChar = errors.New("attribute value contains ASCII control characters")
)

// ParseError is the base error type for grammar failures.
type ParseError struct {
	Message string
	Pos     Position
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Cause }

// SyntaxError reports input that does not match the grammar at a position.
type SyntaxError struct {
	ParseError
	Expected string
	Got      string
}

func (e *SyntaxError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: expected %s, got %s", e.Pos.Line, e.Pos.Column, e.Expected, e.Got)
	}
	return fmt.Sprintf("expected %s, got %s", e.Expected, e.Got)
}
