// Package errors provides error helpers for the whole project:
// formatted errors, prefixed errors and a multi error with bullet-list rendering.
package errors

import (
	"errors"
	"fmt"
)

func New(text string) error {
	return errors.New(text)
}

func Errorf(format string, a ...any) error {
	return fmt.Errorf(format, a...)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// PrefixError adds a prefix before the error message.
// Multi error messages are indented under the prefix.
func PrefixError(prefix string, err error) error {
	e := NewMultiError()
	e.AppendWithPrefix(prefix, err)
	return e
}

func PrefixErrorf(err error, format string, a ...any) error {
	return PrefixError(fmt.Sprintf(format, a...), err)
}
