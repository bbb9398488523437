package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorsImplementErrorInterface(t *testing.T) {
	var _ error = &SyntaxError{}
	var _ error = &EditError{}
	var _ error = &ExpectedIntError{}
	var _ error = &IOError{}
	var _ error = &NotFoundError{}
	var _ error = &InvalidArgumentError{}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindUnspecified:     "UnspecifiedError",
		KindUnparseableLine: "UnparseableLine",
		KindIOError:         "IOError",
		KindBufferTooSmall:  "BufferTooSmall",
		KindInvalidArgument: "InvalidArgument",
		KindEditFailed:      "EditFailed",
		KindExpectedInt:     "ExpectedInt",
		KindNotFound:        "NotFound",
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.String())
	}
}

func TestSyntaxErrorAccumulates(t *testing.T) {
	err := NewSyntaxError("Makefile")
	assert.False(t, err.HasErrors())

	err.Add(3, "missing name in assignment")
	err.Add(9, "unclosed .if")

	assert.True(t, err.HasErrors())
	assert.Len(t, err.Entries, 2)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), "and 1 more")
}

func TestSyntaxErrorEmpty(t *testing.T) {
	err := NewSyntaxError("Makefile")
	assert.Contains(t, err.Error(), "Makefile")
	assert.Contains(t, err.Error(), "UnparseableLine")
}

func TestExpectedIntError(t *testing.T) {
	err := NewExpectedIntError("PORTREVISION", "abc")
	assert.Contains(t, err.Error(), "PORTREVISION")
	assert.Contains(t, err.Error(), `"abc"`)
	assert.Equal(t, KindExpectedInt, err.Kind())
}

func TestIOErrorUnwrap(t *testing.T) {
	inner := NewNotFoundError("file", "Makefile")
	err := NewIOError("Makefile", inner)
	assert.ErrorIs(t, err, inner)
}

func TestFormat(t *testing.T) {
	err := NewExpectedIntError("PORTEPOCH", "x")
	msg := Format("portfmt", "Makefile", err)
	assert.Equal(t, "portfmt: Makefile: "+err.Error(), msg)
}

func TestFormatNoFile(t *testing.T) {
	err := NewInvalidArgumentError("-w", "must be positive")
	msg := Format("portfmt", "", err)
	assert.Equal(t, "portfmt: "+err.Error(), msg)
}
