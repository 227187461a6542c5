package errors

import (
	"regexp"
	"strings"
)

// subErrorPrefix is used to indent nested multi errors.
var subErrorPrefix = regexp.MustCompile(`((^|\n)\s*-*\s*)`) // nolint: gochecknoglobals

// MultiError accumulates errors, eg. from a batch operation.
// Zero errors -> ErrorOrNil returns nil.
type MultiError struct {
	prefix string
	errs   []error
}

func NewMultiError() *MultiError {
	return &MultiError{}
}

func (e *MultiError) SetPrefix(prefix string) {
	e.prefix = strings.TrimRight(prefix, ".,:") + ":"
}

func (e *MultiError) Len() int {
	return len(e.errs)
}

func (e *MultiError) Append(errs ...error) {
	for _, err := range errs {
		if err == nil {
			continue
		}
		if v, ok := err.(*MultiError); ok && v.prefix == "" { // nolint: errorlint
			e.errs = append(e.errs, v.errs...)
		} else {
			e.errs = append(e.errs, err)
		}
	}
}

// AppendWithPrefix adds an error indented under the prefix.
func (e *MultiError) AppendWithPrefix(prefix string, err error) {
	if err == nil {
		return
	}
	msg := subErrorPrefix.ReplaceAllString(err.Error(), "${2}\t- ")
	e.errs = append(e.errs, Errorf("%s:\n%s", strings.TrimRight(prefix, ".,:"), msg))
}

func (e *MultiError) AppendWithPrefixf(err error, format string, a ...any) {
	e.AppendWithPrefix(Errorf(format, a...).Error(), err)
}

func (e *MultiError) WrappedErrors() []error {
	out := make([]error, len(e.errs))
	copy(out, e.errs)
	return out
}

func (e *MultiError) Unwrap() []error {
	return e.WrappedErrors()
}

func (e *MultiError) ErrorOrNil() error {
	if len(e.errs) == 0 {
		return nil
	}
	return e
}

func (e *MultiError) Error() string {
	if len(e.errs) == 0 {
		return ""
	}

	var messages []string
	for _, err := range e.errs {
		messages = append(messages, err.Error())
	}

	msg := strings.Join(messages, "\n")
	if e.prefix != "" {
		return e.prefix + "\n" + msg
	}
	return msg
}
