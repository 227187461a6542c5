package cli

import (
	"github.com/spf13/cobra"

	"github.com/cropsight/pointset/internal/pkg/annotation"
	"github.com/cropsight/pointset/internal/pkg/filesystem"
)

const (
	extractShortDescription = `Extract point coordinates from one annotation file`
	extractLongDescription  = `Command "extract"

Extract point coordinates from a single JSON annotation file.
Coordinates are saved to a "<name>.txt" file next to the annotation,
one "<x> <y>" pair per line.

Labels to extract can be listed after the file path.
No label, or the single value "all", means all labels.
`
)

func extractCommand(root *rootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "extract <annotation.json> [label ...]",
		Short: extractShortDescription,
		Long:  extractLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docPath := args[0]
			filter := annotation.NewLabelFilter(args[1:]...)

			doc, err := annotation.LoadDocument(root.fs, docPath)
			if err != nil {
				return err
			}

			coordinates := annotation.ExtractPoints(doc, filter)
			if len(coordinates) == 0 {
				root.logger.Warnf(`No matching point annotation in "%s"`, docPath)
				return nil
			}

			outPath := filesystem.Join(filesystem.Dir(docPath), filesystem.Stem(docPath)+".txt")
			if err := annotation.WriteCoordinates(root.fs, outPath, coordinates); err != nil {
				return err
			}

			root.logger.Infof(`Extracted %d points from "%s" to "%s"`, len(coordinates), docPath, outPath)
			return nil
		},
	}
}
