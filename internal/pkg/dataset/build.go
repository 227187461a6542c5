package dataset

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cropsight/pointset/internal/pkg/filesystem"
)

// ManifestFileExt is the extension of per-split manifest files.
const ManifestFileExt = ".list"

// Builder materializes partitioned splits as a directory tree:
//
//	<outRoot>/<split>/<stem>/<stem>.<image-ext>
//	<outRoot>/<split>/<stem>/<stem>.txt
//	<outRoot>/<split>.list
type Builder struct {
	fs     filesystem.Fs
	logger *zap.SugaredLogger
}

func NewBuilder(fs filesystem.Fs, logger *zap.SugaredLogger) *Builder {
	return &Builder{fs: fs, logger: logger}
}

// Build copies every pair into its per-sample directory and writes
// one manifest per non-empty split. Source files are kept.
func (b *Builder) Build(splits []Split, outRoot string) error {
	if err := b.fs.Mkdir(outRoot); err != nil {
		return err
	}

	for _, split := range splits {
		if err := b.buildSubset(split, outRoot); err != nil {
			return err
		}
	}

	return nil
}

func (b *Builder) buildSubset(split Split, outRoot string) error {
	if len(split.Pairs) == 0 {
		b.logger.Warnf(`Split "%s" has no samples, manifest not generated`, split.Name)
		return nil
	}

	b.logger.Infof(`Building subset "%s": %d samples`, split.Name, len(split.Pairs))

	// Manifest lines are appended in materialization order, never sorted
	var manifest strings.Builder
	for _, pair := range split.Pairs {
		sampleDir := filesystem.Join(outRoot, split.Name, pair.Stem)
		dstImage := filesystem.Join(sampleDir, filesystem.Base(pair.ImagePath))
		dstLabel := filesystem.Join(sampleDir, filesystem.Base(pair.LabelPath))

		if err := b.fs.CopyForce(pair.ImagePath, dstImage); err != nil {
			return err
		}
		if err := b.fs.CopyForce(pair.LabelPath, dstLabel); err != nil {
			return err
		}

		// Manifest paths are relative to the dataset root, always slash-separated
		manifest.WriteString(fmt.Sprintf(
			"%s %s\n",
			filesystem.ToSlash(filesystem.Rel(outRoot, dstImage)),
			filesystem.ToSlash(filesystem.Rel(outRoot, dstLabel)),
		))
	}

	manifestPath := filesystem.Join(outRoot, split.Name+ManifestFileExt)
	file := filesystem.NewRawFile(manifestPath, manifest.String()).SetDescription("manifest")
	if err := b.fs.WriteFile(file); err != nil {
		return err
	}

	b.logger.Infof(`Saved manifest "%s"`, manifestPath)
	return nil
}
