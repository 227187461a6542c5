package annotation

import (
	"fmt"
)

// DocumentNotFoundError - the annotation file is missing or unreadable.
type DocumentNotFoundError struct {
	path string
}

func NewDocumentNotFoundError(path string) *DocumentNotFoundError {
	return &DocumentNotFoundError{path: path}
}

func (e *DocumentNotFoundError) Error() string {
	return fmt.Sprintf(`annotation file "%s" not found`, e.path)
}

// DocumentMalformedError - the annotation file is not valid JSON.
type DocumentMalformedError struct {
	path string
	err  error
}

func NewDocumentMalformedError(path string, err error) *DocumentMalformedError {
	return &DocumentMalformedError{path: path, err: err}
}

func (e *DocumentMalformedError) Error() string {
	return fmt.Sprintf(`annotation file "%s" is not valid JSON: %s`, e.path, e.err)
}

func (e *DocumentMalformedError) Unwrap() error {
	return e.err
}
