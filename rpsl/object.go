package rpsl

import "strings"

// Object is an ordered sequence of attributes, terminated in source text
// by a blank line.
type Object struct {
	attributes []Attribute
}

// NewObject creates an object from a sequence of attributes.
func NewObject(attributes []Attribute) Object {
	attrs := make([]Attribute, len(attributes))
	copy(attrs, attributes)
	return Object{attributes: attrs}
}

// Len is the number of attributes in the object.
func (o Object) Len() int { return len(o.attributes) }

// Attributes returns the attributes in order.
func (o Object) Attributes() []Attribute {
	attrs := make([]Attribute, len(o.attributes))
	copy(attrs, o.attributes)
	return attrs
}

// Get returns the values of all attributes with the given name, in order.
// Objects routinely repeat attributes such as "address" or "remarks".
func (o Object) Get(name string) []Value {
	var values []Value
	for _, attr := range o.attributes {
		if attr.Name.String() == name {
			values = append(values, attr.Value)
		}
	}
	return values
}

// String renders the object as RPSL text: each attribute in registry
// layout followed by the terminating blank line.
func (o Object) String() string {
	var sb strings.Builder
	for _, attr := range o.attributes {
		sb.WriteString(attr.String())
	}
	sb.WriteByte('\n')
	return sb.String()
}

// ParseObject parses a string containing exactly one object: optional
// leading newlines, one or more attributes, then a blank line or the end
// of input. Content after the terminating newlines is an error.
func ParseObject(input string) (Object, error) {
	s := newScanner(input)
	for s.peek() == '\n' {
		s.advance()
	}

	var attributes []Attribute
	for !s.atEnd() && s.peek() != '\n' {
		attr, err := s.attribute()
		if err != nil {
			return Object{}, err
		}
		attributes = append(attributes, attr)
	}

	if len(attributes) == 0 {
		return Object{}, &SyntaxError{
			ParseError: ParseError{Pos: s.currentPos()},
			Expected:   "at least one attribute",
			Got:        s.describeNext(),
		}
	}

	for s.peek() == '\n' {
		s.advance()
	}
	if !s.atEnd() {
		return Object{}, &SyntaxError{
			ParseError: ParseError{Pos: s.currentPos()},
			Expected:   "end of input",
			Got:        s.describeNext(),
		}
	}
	return NewObject(attributes), nil
}

// ParseWhoisResponse parses a whois server response into the objects it
// contains. Blank lines terminate objects, and %-prefixed server messages
// between objects are recognized and discarded.
func ParseWhoisResponse(input string) ([]Object, error) {
	s := newScanner(input)
	var objects []Object
	var current []Attribute

	for !s.atEnd() {
		switch {
		case s.peek() == '\n':
			s.advance()
			if len(current) > 0 {
				objects = append(objects, NewObject(current))
				current = nil
			}
		case s.peek() == '%':
			if _, err := s.serverMessage(); err != nil {
				return nil, err
			}
		default:
			attr, err := s.attribute()
			if err != nil {
				return nil, err
			}
			current = append(current, attr)
		}
	}
	if len(current) > 0 {
		objects = append(objects, NewObject(current))
	}
	return objects, nil
}
