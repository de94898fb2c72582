package rpsl

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// nameWidth is the column at which attribute values start when rendering,
// matching the fixed-width layout used by registry whois output.
const nameWidth = 16

// Name is a validated attribute identifier.
type Name struct {
	name string
}

// NewName validates s as an attribute name.
//
// A valid name consists of ASCII letters, digits and the characters "-"
// and "_", beginning with a letter and ending with a letter or a digit.
// Checks run in a fixed order: ErrNameEmpty, ErrNameNonASCII,
// ErrNameFirstChar, ErrNameLastChar.
func NewName(s string) (Name, error) {
	if strings.TrimSpace(s) == "" {
		return Name{}, ErrNameEmpty
	}
	if !isASCII(s) {
		return Name{}, ErrNameNonASCII
	}
	if !isASCIILetter(s[0]) {
		return Name{}, ErrNameFirstChar
	}
	if !isASCIIAlphanumeric(s[len(s)-1]) {
		return Name{}, ErrNameLastChar
	}
	return Name{name: s}, nil
}

// uncheckedName constructs a Name without validation. Only the grammar may
// call it: the name token rule already restricts input to the valid
// character class, so revalidation is skipped.
func uncheckedName(s string) Name {
	return Name{name: s}
}

func (n Name) String() string { return n.name }

// ValueKind discriminates the Value union.
type ValueKind string

const (
	SingleLine ValueKind = "single_line"
	MultiLine  ValueKind = "multi_line"
)

// Value is the content of an attribute: a single line, or an ordered
// sequence of continuation lines. A line that is empty or whitespace-only
// in the source is stored as absent. Since every present line is non-empty
// after trimming, absent lines are represented by the empty string.
type Value struct {
	kind  ValueKind
	lines []string // one element per physical line, "" marks an absent line
}

// NewValue validates s as a single line value.
//
// A valid value consists of ASCII characters excluding control characters.
// Empty or whitespace-only input yields a value with absent content;
// anything else is stored untrimmed.
func NewValue(s string) (Value, error) {
	if err := validateValue(s); err != nil {
		return Value{}, err
	}
	return singleLineValue(s), nil
}

// NewValueFromLines validates an ordered list of value lines.
//
// A one-element list collapses to a single line value. Validation stops
// at the first invalid element in list order.
func NewValueFromLines(lines []string) (Value, error) {
	if len(lines) == 1 {
		return NewValue(lines[0])
	}
	for _, line := range lines {
		if err := validateValue(line); err != nil {
			return Value{}, err
		}
	}
	return multiLineValue(lines), nil
}

// singleLineValue constructs a single line Value without character
// validation, only coercing empty content to absent. Grammar use only.
func singleLineValue(s string) Value {
	return Value{kind: SingleLine, lines: []string{coerceEmpty(s)}}
}

// multiLineValue constructs a multi line Value without character
// validation, only coercing empty lines to absent. Grammar use only.
func multiLineValue(lines []string) Value {
	coerced := make([]string, len(lines))
	for i, line := range lines {
		coerced[i] = coerceEmpty(line)
	}
	return Value{kind: MultiLine, lines: coerced}
}

// Kind reports whether the value is single or multi line.
func (v Value) Kind() ValueKind { return v.kind }

// Len is the number of individual lines contained: 1 for a single line
// value, the line count otherwise.
func (v Value) Len() int {
	if v.kind == MultiLine {
		return len(v.lines)
	}
	return 1
}

// Lines returns the per-line content in order, with "" for absent lines.
func (v Value) Lines() []string {
	out := make([]string, len(v.lines))
	copy(out, v.lines)
	return out
}

// WithContent returns only the lines that carry content, in order.
func (v Value) WithContent() []string {
	var out []string
	for _, line := range v.lines {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// EqualString reports whether the value is a single line value whose
// content equals s under the empty-to-absent coercion: an absent value
// equals any empty or whitespace-only string.
func (v Value) EqualString(s string) bool {
	if v.kind == MultiLine {
		return false
	}
	var content string
	if len(v.lines) > 0 {
		content = v.lines[0]
	}
	return content == coerceEmpty(s)
}

// EqualLines reports whether the value is a multi line value matching
// lines position by position, coercing empty elements to absent.
func (v Value) EqualLines(lines []string) bool {
	if v.kind != MultiLine || len(v.lines) != len(lines) {
		return false
	}
	for i, line := range lines {
		if v.lines[i] != coerceEmpty(line) {
			return false
		}
	}
	return true
}

func validateValue(s string) error {
	if !isASCII(s) {
		return ErrValueNonASCII
	}
	for i := 0; i < len(s); i++ {
		if isASCIIControl(s[i]) {
			return ErrValueControlChar
		}
	}
	return nil
}

// coerceEmpty maps whitespace-only content to the absent marker and keeps
// everything else untrimmed.
func coerceEmpty(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func isASCIIControl(ch byte) bool {
	return ch < 0x20 || ch == 0x7f
}

// Attribute pairs a Name with a Value. Both fields are set at
// construction and never mutated.
type Attribute struct {
	Name  Name
	Value Value
}

// NewAttribute creates an attribute from a validated name and value.
func NewAttribute(name Name, value Value) Attribute {
	return Attribute{Name: name, Value: value}
}

func uncheckedSingle(name, value string) Attribute {
	return Attribute{Name: uncheckedName(name), Value: singleLineValue(value)}
}

func uncheckedMulti(name string, values []string) Attribute {
	return Attribute{Name: uncheckedName(name), Value: multiLineValue(values)}
}

// String renders the attribute in registry layout: the name left-justified
// in a fixed-width field followed by ":" and the first value line, with
// each continuation line indented to align under the first. Absent lines
// render empty.
func (a Attribute) String() string {
	var first string
	if len(a.Value.lines) > 0 {
		first = a.Value.lines[0]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%-*s%s\n", nameWidth, a.Name.String()+":", first)
	if a.Value.kind == MultiLine {
		for _, line := range a.Value.lines[1:] {
			fmt.Fprintf(&sb, "%-*s%s\n", nameWidth, "", line)
		}
	}
	return sb.String()
}
