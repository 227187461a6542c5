package annotation

import (
	"fmt"
	"io"
	"sort"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/cropsight/pointset/internal/pkg/filesystem"
)

// BatchResult accumulates per-document outcomes of a batch run.
type BatchResult struct {
	Total     int // number of found annotation files
	Succeeded int // coordinates extracted and saved
	Skipped   int // no matching point annotations
	Errored   int // document missing or malformed
}

func (r *BatchResult) Summary() string {
	return fmt.Sprintf(
		"Processed %d files | success %d | skipped %d | error %d",
		r.Total, r.Succeeded, r.Skipped, r.Errored,
	)
}

// Batch extracts coordinates from all annotation files in a directory.
// Documents are processed sequentially, a failed document never aborts the run.
type Batch struct {
	fs          filesystem.Fs
	logger      *zap.SugaredLogger
	filter      LabelFilter
	progressOut io.Writer // progress bar target, nil = no progress bar
}

func NewBatch(fs filesystem.Fs, logger *zap.SugaredLogger, filter LabelFilter, progressOut io.Writer) *Batch {
	return &Batch{fs: fs, logger: logger, filter: filter, progressOut: progressOut}
}

// Run extracts coordinates from every "*.json" file in jsonDir (non-recursive)
// into "<stem>.txt" files in outDir.
func (b *Batch) Run(jsonDir, outDir string) (*BatchResult, error) {
	// Validate the input directory before any processing
	if err := filesystem.CheckDir(b.fs, jsonDir); err != nil {
		return nil, err
	}

	if err := b.fs.Mkdir(outDir); err != nil {
		return nil, err
	}

	files, err := b.fs.Glob(filesystem.Join(jsonDir, "*.json"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	result := &BatchResult{Total: len(files)}
	if len(files) == 0 {
		b.logger.Warnf(`No JSON file found in "%s"`, jsonDir)
		return result, nil
	}

	b.logger.Infof(`Found %d annotation files in "%s"`, len(files), jsonDir)
	b.logger.Infof("Label filter: %s", b.filter)

	bar := b.newProgressBar(len(files))
	for _, path := range files {
		b.processDocument(path, outDir, result)
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	return result, nil
}

// processDocument handles one annotation file, outcome goes to the result.
func (b *Batch) processDocument(path, outDir string, result *BatchResult) {
	doc, err := LoadDocument(b.fs, path)
	if err != nil {
		b.logger.Warnf(`Cannot process "%s": %s`, path, err)
		result.Errored++
		return
	}

	coordinates := ExtractPoints(doc, b.filter)
	if len(coordinates) == 0 {
		b.logger.Debugf(`No matching point annotation in "%s", skipped`, path)
		result.Skipped++
		return
	}

	outPath := filesystem.Join(outDir, filesystem.Stem(path)+".txt")
	if err := WriteCoordinates(b.fs, outPath, coordinates); err != nil {
		b.logger.Warnf(`Cannot write "%s": %s`, outPath, err)
		result.Errored++
		return
	}

	b.logger.Debugf(`Extracted %d points: "%s" -> "%s"`, len(coordinates), path, outPath)
	result.Succeeded++
}

func (b *Batch) newProgressBar(total int) *progressbar.ProgressBar {
	if b.progressOut == nil {
		return progressbar.DefaultSilent(int64(total))
	}
	return progressbar.NewOptions(
		total,
		progressbar.OptionSetWriter(b.progressOut),
		progressbar.OptionSetDescription("extracting"),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() { _, _ = fmt.Fprintln(b.progressOut) }),
	)
}
