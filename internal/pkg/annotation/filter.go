package annotation

import (
	"fmt"
	"sort"
	"strings"
)

// AllLabels - the CLI sentinel for an unrestricted filter.
const AllLabels = "all"

// LabelFilter restricts extraction to the given labels.
// An empty filter is unrestricted. Matching is exact and case-sensitive.
type LabelFilter struct {
	labels map[string]bool
}

// NewLabelFilter creates a filter from CLI arguments.
// No labels, or a single "all" (any case), means no filtering.
func NewLabelFilter(labels ...string) LabelFilter {
	if len(labels) == 0 {
		return LabelFilter{}
	}
	if len(labels) == 1 && strings.EqualFold(labels[0], AllLabels) {
		return LabelFilter{}
	}

	out := LabelFilter{labels: make(map[string]bool)}
	for _, label := range labels {
		out.labels[label] = true
	}
	return out
}

func (f LabelFilter) Unrestricted() bool {
	return f.labels == nil
}

func (f LabelFilter) Match(label string) bool {
	return f.labels == nil || f.labels[label]
}

func (f LabelFilter) String() string {
	if f.Unrestricted() {
		return "all labels"
	}

	labels := make([]string, 0, len(f.labels))
	for label := range f.labels {
		labels = append(labels, fmt.Sprintf(`"%s"`, label))
	}
	sort.Strings(labels)
	return strings.Join(labels, ", ")
}
