// Package dataset pairs images with coordinate label files and partitions
// them into train/validation/test subsets for a point-detection model.
package dataset

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/cropsight/pointset/internal/pkg/filesystem"
)

// LabelFileExt is the extension of coordinate label files.
const LabelFileExt = ".txt"

// imageExtensions are recognized image file extensions, lowercase.
var imageExtensions = map[string]bool{ // nolint: gochecknoglobals
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".tiff": true,
	".tif":  true,
}

// IsImageFile returns true if the path has a recognized image extension.
func IsImageFile(path string) bool {
	return imageExtensions[strings.ToLower(filesystem.Ext(path))]
}

// SamplePair is an image and its coordinate label file, joined by the filename stem.
type SamplePair struct {
	Stem      string
	ImagePath string
	LabelPath string
}

// CollectPairs lists images in imagesDir and joins each with "<stem>.txt" in labelsDir.
// Images without a label file are dropped with a warning.
// Label files without an image are reported, but do not abort the run.
func CollectPairs(fs filesystem.Fs, logger *zap.SugaredLogger, imagesDir, labelsDir string) ([]SamplePair, error) {
	// Validate directories before any processing
	if err := filesystem.CheckDir(fs, imagesDir); err != nil {
		return nil, err
	}
	if err := filesystem.CheckDir(fs, labelsDir); err != nil {
		return nil, err
	}

	// Collect label file stems, to report extra label files below
	labelItems, err := fs.ReadDir(labelsDir)
	if err != nil {
		return nil, err
	}
	labelStems := make(map[string]bool)
	for _, item := range labelItems {
		if !item.IsDir() && strings.EqualFold(filesystem.Ext(item.Name()), LabelFileExt) {
			labelStems[filesystem.Stem(item.Name())] = true
		}
	}

	imageItems, err := fs.ReadDir(imagesDir)
	if err != nil {
		return nil, err
	}

	var pairs []SamplePair
	missingLabel := 0
	matchedStems := make(map[string]bool)
	for _, item := range imageItems {
		if item.IsDir() || !IsImageFile(item.Name()) {
			continue
		}

		stem := filesystem.Stem(item.Name())
		labelPath := filesystem.Join(labelsDir, stem+LabelFileExt)
		if !fs.IsFile(labelPath) {
			logger.Warnf(`Image "%s" has no matching "%s%s", skipped`, item.Name(), stem, LabelFileExt)
			missingLabel++
			continue
		}

		matchedStems[stem] = true
		pairs = append(pairs, SamplePair{
			Stem:      stem,
			ImagePath: filesystem.Join(imagesDir, item.Name()),
			LabelPath: labelPath,
		})
	}

	// Report label files without an image
	var extraLabels []string
	for stem := range labelStems {
		if !matchedStems[stem] {
			extraLabels = append(extraLabels, stem)
		}
	}
	sort.Strings(extraLabels)
	if len(extraLabels) > 0 {
		examples := extraLabels
		if len(examples) > 5 {
			examples = examples[:5]
		}
		logger.Warnf(
			"%d label files have no matching image, eg. %s",
			len(extraLabels), strings.Join(examples, ", "),
		)
	}

	logger.Infof("Valid image-label pairs: %d", len(pairs))
	if missingLabel > 0 {
		logger.Infof("Images without a label file: %d", missingLabel)
	}

	if len(pairs) == 0 {
		return nil, &NoValidPairsError{ImagesDir: imagesDir, LabelsDir: labelsDir}
	}

	return pairs, nil
}
