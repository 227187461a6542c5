package cli

import (
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cropsight/pointset/internal/pkg/annotation"
)

const (
	extractBatchShortDescription = `Extract point coordinates from a directory of annotations`
	extractBatchLongDescription  = `Command "extract-batch"

Extract point coordinates from all "*.json" annotation files
in a directory, non-recursively. One "<name>.txt" coordinate file
is saved to the output directory per annotation with matching points.

A missing or malformed annotation is reported and skipped,
it never aborts the run. The final tally is always printed.

Labels to extract can be listed after the directories.
No label, or the single value "all", means all labels.
`
)

func extractBatchCommand(root *rootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "extract-batch <json-dir> <output-dir> [label ...]",
		Short: extractBatchShortDescription,
		Long:  extractBatchLongDescription,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := annotation.NewLabelFilter(args[2:]...)

			// Per-file debug lines replace the progress bar in verbose mode
			var progressOut io.Writer
			if !root.options.Verbose {
				progressOut = root.stdout
			}

			batch := annotation.NewBatch(root.fs, root.logger, filter, progressOut)
			result, err := batch.Run(args[0], args[1])
			if err != nil {
				return err
			}

			summary := result.Summary()
			if result.Errored > 0 {
				root.logger.Info(color.YellowString("%s", summary))
			} else {
				root.logger.Info(color.GreenString("%s", summary))
			}
			return nil
		},
	}
}
