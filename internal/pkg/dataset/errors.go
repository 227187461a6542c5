package dataset

import (
	"fmt"
)

// InvalidRatioError - a split ratio is out of range or ratios do not sum to 1.
type InvalidRatioError struct {
	reason string
}

func NewInvalidRatioError(format string, a ...any) *InvalidRatioError {
	return &InvalidRatioError{reason: fmt.Sprintf(format, a...)}
}

func (e *InvalidRatioError) Error() string {
	return e.reason
}

// InsufficientSamplesError - too few pairs to give every split at least one sample.
type InsufficientSamplesError struct {
	Total  int
	Splits int
}

func (e *InsufficientSamplesError) Error() string {
	return fmt.Sprintf("cannot split %d samples into %d non-empty subsets", e.Total, e.Splits)
}

// NoValidPairsError - no image has a matching label file.
type NoValidPairsError struct {
	ImagesDir string
	LabelsDir string
}

func (e *NoValidPairsError) Error() string {
	return fmt.Sprintf(`no valid image-label pair found in "%s" and "%s"`, e.ImagesDir, e.LabelsDir)
}
