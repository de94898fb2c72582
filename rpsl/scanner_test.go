package rpsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScannerPositionTracking(t *testing.T) {
	s := newScanner("ab\ncd")

	assert.Equal(t, Position{Line: 1, Column: 1, Offset: 0}, s.currentPos())
	s.advance() // a
	s.advance() // b
	assert.Equal(t, Position{Line: 1, Column: 3, Offset: 2}, s.currentPos())
	s.advance() // newline
	assert.Equal(t, Position{Line: 2, Column: 1, Offset: 3}, s.currentPos())
}

func TestScannerTakeWhile(t *testing.T) {
	s := newScanner("aut-num: AS1")
	assert.Equal(t, "aut-num", s.takeWhile(isNameByte))
	assert.Equal(t, ": AS1", s.rest())
}

func TestScannerSkipHorizontalSpace(t *testing.T) {
	s := newScanner(" \t value")
	s.skipHorizontalSpace()
	assert.Equal(t, "value", s.rest())

	// Newlines are not horizontal space.
	s = newScanner("\nvalue")
	s.skipHorizontalSpace()
	assert.Equal(t, "\nvalue", s.rest())
}

func TestScannerExpectNewline(t *testing.T) {
	s := newScanner("\nrest")
	require.NoError(t, s.expectNewline())
	assert.Equal(t, "rest", s.rest())

	s = newScanner("x")
	err := s.expectNewline()
	require.Error(t, err)
	assert.IsType(t, &SyntaxError{}, err)
}

func TestScannerDescribeNext(t *testing.T) {
	assert.Equal(t, "end of input", newScanner("").describeNext())
	assert.Equal(t, `'x'`, newScanner("x").describeNext())
	assert.Equal(t, `'Ü'`, newScanner("Ünïcode").describeNext())
}

func TestValueByteClass(t *testing.T) {
	assert.True(t, isValueByte(' '))
	assert.True(t, isValueByte('~'))
	assert.False(t, isValueByte('\n'))
	assert.False(t, isValueByte('\x1f'))
	assert.False(t, isValueByte(0x7f))
	assert.False(t, isValueByte(0x80))
}
