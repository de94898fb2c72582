package rpsl

import (
	"fmt"
	"unicode/utf8"
)

// Position tracks a source location for error messages.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset into source
}

// scanner walks the input byte by byte, tracking line and column.
// All grammar rules operate on it; parsed tokens are slices of src.
type scanner struct {
	src  string
	pos  int // current byte offset
	line int // current line (1-based)
	col  int // current column (1-based)
}

func newScanner(src string) *scanner {
	return &scanner{src: src, line: 1, col: 1}
}

func (s *scanner) currentPos() Position {
	return Position{Line: s.line, Column: s.col, Offset: s.pos}
}

func (s *scanner) atEnd() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) advance() byte {
	ch := s.src[s.pos]
	s.pos++
	if ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return ch
}

// rest returns the unconsumed remainder of the input.
func (s *scanner) rest() string {
	return s.src[s.pos:]
}

// takeWhile consumes bytes matching pred and returns them as a slice of src.
func (s *scanner) takeWhile(pred func(byte) bool) string {
	start := s.pos
	for !s.atEnd() && pred(s.peek()) {
		s.advance()
	}
	return s.src[start:s.pos]
}

// skipHorizontalSpace consumes spaces and tabs.
func (s *scanner) skipHorizontalSpace() {
	for !s.atEnd() && isHorizontalSpace(s.peek()) {
		s.advance()
	}
}

func (s *scanner) expectNewline() error {
	if s.atEnd() || s.peek() != '\n' {
		return &SyntaxError{
			ParseError: ParseError{Pos: s.currentPos()},
			Expected:   "line terminator",
			Got:        s.describeNext(),
		}
	}
	s.advance()
	return nil
}

// describeNext renders the next input character for error messages.
func (s *scanner) describeNext() string {
	if s.atEnd() {
		return "end of input"
	}
	r, _ := utf8.DecodeRuneInString(s.src[s.pos:])
	return fmt.Sprintf("%q", r)
}

func isASCIILetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isASCIIDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isASCIIAlphanumeric(ch byte) bool {
	return isASCIILetter(ch) || isASCIIDigit(ch)
}

// isNameByte reports bytes allowed anywhere in an attribute name token.
// First/last character constraints are checked separately.
func isNameByte(ch byte) bool {
	return isASCIIAlphanumeric(ch) || ch == '-' || ch == '_'
}

// isValueByte reports bytes allowed in an attribute value: printable
// ASCII, no control characters (%x20-7E).
func isValueByte(ch byte) bool {
	return ch >= 0x20 && ch <= 0x7e
}

func isHorizontalSpace(ch byte) bool {
	return ch == ' ' || ch == '\t'
}

// isContinuationByte reports the markers that extend an attribute value
// onto the next physical line.
func isContinuationByte(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '+'
}
