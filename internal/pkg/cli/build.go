package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cropsight/pointset/internal/pkg/dataset"
	"github.com/cropsight/pointset/internal/pkg/utils/errors"
)

const (
	buildShortDescription = `Build a partitioned dataset from image/label pairs`
	buildLongDescription  = `Command "build"

Pair images with their "<name>.txt" label files and partition
the pairs into train/test subsets, or train/val/test
when both "--val-ratio" and "--test-ratio" are given.

The shuffle is driven by the "--seed" flag, repeated runs
over the same input produce the same partition. Each sample
is copied to "<output-root>/<subset>/<name>/" and listed
in the "<output-root>/<subset>.list" manifest.
`
)

func buildCommand(root *rootCommand) *cobra.Command {
	var trainRatio, valRatio, testRatio float64
	var seed int64

	cmd := &cobra.Command{
		Use:   "build <images-dir> <labels-dir> <output-root>",
		Short: buildShortDescription,
		Long:  buildLongDescription,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			imagesDir, labelsDir, outRoot := args[0], args[1], args[2]

			// Validate ratios and input directories before touching the output
			ratios, err := splitRatios(cmd, trainRatio, valRatio, testRatio)
			if err != nil {
				return err
			}

			pairs, err := dataset.CollectPairs(root.fs, root.logger, imagesDir, labelsDir)
			if err != nil {
				return err
			}

			splits, err := dataset.Partition(pairs, ratios, seed)
			if err != nil {
				return err
			}

			builder := dataset.NewBuilder(root.fs, root.logger)
			if err := builder.Build(splits, outRoot); err != nil {
				return err
			}

			logSplitSummary(root.logger, splits, len(pairs))
			return nil
		},
	}

	cmd.Flags().SortFlags = true
	cmd.Flags().Float64Var(&trainRatio, "train-ratio", 0.8, "fraction of samples for the train subset")
	cmd.Flags().Float64Var(&valRatio, "val-ratio", 0, "fraction of samples for the val subset")
	cmd.Flags().Float64Var(&testRatio, "test-ratio", 0, "fraction of samples for the test subset")
	cmd.Flags().Int64Var(&seed, "seed", dataset.DefaultSeed, "seed for the deterministic shuffle")

	return cmd
}

// splitRatios selects the 2-way or 3-way form from the used flags.
func splitRatios(cmd *cobra.Command, train, val, test float64) (dataset.Ratios, error) {
	valSet := cmd.Flags().Changed("val-ratio")
	testSet := cmd.Flags().Changed("test-ratio")
	switch {
	case !valSet && !testSet:
		return dataset.NewTwoWayRatios(train)
	case valSet && testSet:
		return dataset.NewThreeWayRatios(train, val, test)
	default:
		return dataset.Ratios{}, errors.New(`flags "--val-ratio" and "--test-ratio" must be used together`)
	}
}

// logSplitSummary prints per-subset counts and realized proportions.
func logSplitSummary(logger *zap.SugaredLogger, splits []dataset.Split, total int) {
	logger.Infof("Dataset built: %d samples", total)
	for _, split := range splits {
		share := 100 * float64(len(split.Pairs)) / float64(total)
		logger.Infof("  %s: %s samples (%.1f %%)", split.Name, color.GreenString("%d", len(split.Pairs)), share)
	}
}
