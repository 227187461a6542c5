package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiErrorEmpty(t *testing.T) {
	t.Parallel()
	e := NewMultiError()
	assert.Equal(t, 0, e.Len())
	assert.NoError(t, e.ErrorOrNil())
	assert.Equal(t, "", e.Error())
}

func TestMultiErrorAppend(t *testing.T) {
	t.Parallel()
	e := NewMultiError()
	e.Append(New("first"))
	e.Append(nil)
	e.Append(New("second"), New("third"))
	assert.Equal(t, 3, e.Len())
	assert.Equal(t, "first\nsecond\nthird", e.Error())
}

func TestMultiErrorFlattensNested(t *testing.T) {
	t.Parallel()
	sub := NewMultiError()
	sub.Append(New("a"))
	sub.Append(New("b"))

	e := NewMultiError()
	e.Append(sub)
	assert.Equal(t, 2, e.Len())
}

func TestMultiErrorPrefix(t *testing.T) {
	t.Parallel()
	e := NewMultiError()
	e.Append(New("- one"))
	e.SetPrefix("invalid ratios")
	assert.Equal(t, "invalid ratios:\n- one", e.Error())
}

func TestPrefixError(t *testing.T) {
	t.Parallel()
	err := PrefixError("cannot load state", New("file not found"))
	assert.Equal(t, "cannot load state:\n\t- file not found", err.Error())
}

func TestUserError(t *testing.T) {
	t.Parallel()
	err := NewUserErrorWithCode(64, "bad usage")
	assert.Equal(t, "bad usage", err.Error())
	assert.Equal(t, 64, err.ExitCode)
}
