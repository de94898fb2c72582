package rpsl

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// ParseAttribute parses one attribute from the start of input and returns
// it together with the unconsumed remainder. Continuation lines beginning
// with a space, tab or "+" are merged into a multi line value; the first
// line that carries no continuation marker is left unconsumed.
//
// On failure the remainder is empty and the error is a *SyntaxError
// describing the pattern that failed to match.
func ParseAttribute(input string) (Attribute, string, error) {
	s := newScanner(input)
	attr, err := s.attribute()
	if err != nil {
		return Attribute{}, "", err
	}
	return attr, s.rest(), nil
}

// ParseServerMessage parses a %-prefixed server message from the start of
// input and returns its text together with the unconsumed remainder. The
// leading "%" and any horizontal space after it are stripped; trailing
// content is kept as-is. Unlike attribute values, message text may contain
// non-ASCII characters.
func ParseServerMessage(input string) (string, string, error) {
	s := newScanner(input)
	msg, err := s.serverMessage()
	if err != nil {
		return "", "", err
	}
	return msg, s.rest(), nil
}

// attribute = name ":" *SP value NL *continuation
func (s *scanner) attribute() (Attribute, error) {
	name, err := s.attributeName()
	if err != nil {
		return Attribute{}, err
	}

	if s.atEnd() || s.peek() != ':' {
		return Attribute{}, &SyntaxError{
			ParseError: ParseError{Pos: s.currentPos()},
			Expected:   "':'",
			Got:        s.describeNext(),
		}
	}
	s.advance()
	s.skipHorizontalSpace()

	first := s.valueToken()
	if err := s.expectNewline(); err != nil {
		return Attribute{}, err
	}

	if !isContinuationByte(s.peek()) {
		return uncheckedSingle(name, first), nil
	}

	values := []string{first}
	for isContinuationByte(s.peek()) {
		s.advance() // continuation marker, discarded
		s.skipHorizontalSpace()
		values = append(values, s.valueToken())
		if err := s.expectNewline(); err != nil {
			return Attribute{}, err
		}
	}
	return uncheckedMulti(name, values), nil
}

// attributeName matches two or more characters from {A-Z, a-z, 0-9, -, _}
// where the first is a letter and the last a letter or digit. The two
// character minimum is a structural rule of the grammar; NewName accepts
// some single character names that the grammar rejects.
func (s *scanner) attributeName() (string, error) {
	pos := s.currentPos()
	matched := s.takeWhile(isNameByte)

	if len(matched) < 2 {
		got := s.describeNext()
		if matched != "" {
			got = fmt.Sprintf("%q", matched)
		}
		return "", &SyntaxError{
			ParseError: ParseError{Pos: pos},
			Expected:   "attribute name of at least two characters",
			Got:        got,
		}
	}
	if !isASCIILetter(matched[0]) {
		return "", &SyntaxError{
			ParseError: ParseError{Pos: pos},
			Expected:   "attribute name beginning with a letter",
			Got:        fmt.Sprintf("%q", matched),
		}
	}
	if !isASCIIAlphanumeric(matched[len(matched)-1]) {
		return "", &SyntaxError{
			ParseError: ParseError{Pos: pos},
			Expected:   "attribute name ending with a letter or digit",
			Got:        fmt.Sprintf("%q", matched),
		}
	}
	return matched, nil
}

// valueToken matches zero or more printable ASCII characters up to a line
// terminator. An empty match is valid: "name:" followed by a newline is an
// attribute with absent content.
func (s *scanner) valueToken() string {
	return s.takeWhile(isValueByte)
}

// serverMessage = "%" *SP *(not-control) NL
func (s *scanner) serverMessage() (string, error) {
	if s.atEnd() || s.peek() != '%' {
		return "", &SyntaxError{
			ParseError: ParseError{Pos: s.currentPos()},
			Expected:   "'%'",
			Got:        s.describeNext(),
		}
	}
	s.advance()
	s.skipHorizontalSpace()

	start := s.pos
	for !s.atEnd() {
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		if unicode.IsControl(r) {
			break
		}
		for i := 0; i < size; i++ {
			s.advance()
		}
	}
	msg := s.src[start:s.pos]

	if err := s.expectNewline(); err != nil {
		return "", err
	}
	return msg, nil
}
