// Package annotation extracts point coordinates from JSON annotation documents,
// eg. produced by the LabelMe tool.
package annotation

import (
	"strconv"
	"strings"

	"github.com/cropsight/pointset/internal/pkg/encoding/json"
	"github.com/cropsight/pointset/internal/pkg/filesystem"
)

// ShapeTypePoint - only shapes of this type carry point coordinates.
const ShapeTypePoint = "point"

// Document is one annotation file.
// A missing "shapes" key is treated as zero shapes.
type Document struct {
	Shapes []Shape `json:"shapes"`
}

// Shape is one annotation record within a document.
type Shape struct {
	Label     string      `json:"label"`
	ShapeType string      `json:"shape_type"`
	Points    [][]float64 `json:"points"`
}

// Coordinate is one 2D point, persisted as integers truncated toward zero.
type Coordinate struct {
	X float64
	Y float64
}

// LoadDocument reads and decodes an annotation document.
func LoadDocument(fs filesystem.Fs, path string) (*Document, error) {
	file, err := fs.ReadFile(path, "annotation")
	if err != nil {
		if !fs.Exists(path) {
			return nil, NewDocumentNotFoundError(path)
		}
		return nil, err
	}

	doc := &Document{}
	if err := json.DecodeString(file.Content, doc); err != nil {
		return nil, NewDocumentMalformedError(path, err)
	}

	return doc, nil
}

// ExtractPoints returns coordinates of all point shapes matching the filter,
// in document order, duplicates preserved.
// A point shape without coordinates is skipped.
func ExtractPoints(doc *Document, filter LabelFilter) []Coordinate {
	var out []Coordinate
	for _, shape := range doc.Shapes {
		if shape.ShapeType != ShapeTypePoint {
			continue
		}

		if !filter.Match(shape.Label) {
			continue
		}

		if len(shape.Points) == 0 || len(shape.Points[0]) < 2 {
			continue
		}

		// A point shape carries one coordinate, take the first pair
		out = append(out, Coordinate{X: shape.Points[0][0], Y: shape.Points[0][1]})
	}
	return out
}

// WriteCoordinates writes one "<x> <y>" line per coordinate,
// values truncated toward zero. Existing content is overwritten.
func WriteCoordinates(fs filesystem.Fs, path string, coordinates []Coordinate) error {
	var content strings.Builder
	for _, c := range coordinates {
		content.WriteString(formatCoordinate(c))
		content.WriteString("\n")
	}

	file := filesystem.NewRawFile(path, content.String()).SetDescription("coordinates")
	return fs.WriteFile(file)
}

// formatCoordinate truncates toward zero: 3.9 -> "3", -3.9 -> "-3".
func formatCoordinate(c Coordinate) string {
	return strconv.Itoa(int(c.X)) + " " + strconv.Itoa(int(c.Y))
}
