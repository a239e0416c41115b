package retag

import (
	"fmt"
	"path/filepath"

	"github.com/handiism/podcast-tagger/internal/audio"
	ioutils "github.com/handiism/podcast-tagger/internal/io"
	"github.com/handiism/podcast-tagger/internal/model"
	"github.com/handiism/podcast-tagger/internal/progress"
	"github.com/handiism/podcast-tagger/internal/tui"
)

// TagStore reads and writes file tags.
type TagStore interface {
	Read(path string) (map[string][]string, error)
	Write(path string, tags model.TagSet, mode audio.WriteMode) error
}

// Result counts what happened to the files of a run.
type Result struct {
	Updated int
	Skipped int
	Failed  int
}

// Add accumulates another result.
func (r *Result) Add(other Result) {
	r.Updated += other.Updated
	r.Skipped += other.Skipped
	r.Failed += other.Failed
}

// Fixer applies a Provider's tags to directories of files.
type Fixer struct {
	tags     TagStore
	provider Provider
	prompter tui.Prompter
	opts     Options

	onProgress progress.Func
}

// NewFixer creates a Fixer.
func NewFixer(tags TagStore, provider Provider, prompter tui.Prompter, opts Options, onProgress progress.Func) *Fixer {
	return &Fixer{
		tags:       tags,
		provider:   provider,
		prompter:   prompter,
		opts:       opts,
		onProgress: onProgress,
	}
}

// Run asks whether to work on each directory and fixes the accepted ones.
func (f *Fixer) Run(dirs []string) (Result, error) {
	var total Result
	for _, dir := range dirs {
		ok, err := f.prompter.Confirm(fmt.Sprintf("Work on directory %q?", dir), true)
		if err != nil {
			return total, err
		}
		if !ok {
			continue
		}

		if err := f.provider.Prepare(dir); err != nil {
			return total, err
		}
		result, err := f.FixDirectory(dir)
		total.Add(result)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// FixDirectory merges the provider's tags into every file of dir. The
// provider must have been prepared for dir.
//
// Files that cannot be read or written are reported and skipped. Only
// failing to list dir or to prompt is returned as an error.
func (f *Fixer) FixDirectory(dir string) (Result, error) {
	files, err := ioutils.ListFiles(dir)
	if err != nil {
		return Result{}, err
	}

	var result Result
	for i, name := range files {
		path := filepath.Join(dir, name)
		outcome, err := f.fixFile(path, name)
		if err != nil {
			return result, err
		}

		switch outcome {
		case fileUpdated:
			result.Updated++
			f.onProgress.Step(progress.LevelSuccess, i+1, len(files), "Updated %s", name)
		case fileSkipped:
			result.Skipped++
			f.onProgress.Step(progress.LevelInfo, i+1, len(files), "Skipped %s", name)
		case fileFailed:
			result.Failed++
		}
	}
	return result, nil
}

type fileOutcome int

const (
	fileUpdated fileOutcome = iota
	fileSkipped
	fileFailed
)

func (f *Fixer) fixFile(path, name string) (fileOutcome, error) {
	original, err := f.tags.Read(path)
	if err != nil {
		f.onProgress.Emit(progress.LevelWarning, "Ignoring %q because of %v", path, err)
		return fileFailed, nil
	}

	update := f.provider.TagsForFile(name)

	if f.opts.ConfirmEachFile {
		f.onProgress.Emit(progress.LevelInfo, "File %q:", path)
		f.onProgress.Emit(progress.LevelInfo, "  Original tags: %s", model.FormatTags(original))
		f.onProgress.Emit(progress.LevelInfo, "  Proposed changes: %s", update)

		ok, err := f.prompter.Confirm(fmt.Sprintf("Update file %q?", path), false)
		if err != nil {
			return fileFailed, err
		}
		if !ok {
			return fileSkipped, nil
		}
	}

	if err := f.tags.Write(path, update, audio.ModeMerge); err != nil {
		f.onProgress.Emit(progress.LevelWarning, "Ignoring %q because of %v", path, err)
		return fileFailed, nil
	}

	if f.opts.Verbose {
		now, err := f.tags.Read(path)
		if err != nil {
			f.onProgress.Emit(progress.LevelWarning, "Cannot re-read %q: %v", path, err)
		} else {
			f.onProgress.Emit(progress.LevelInfo, "Tags for %q are now: %s", path, model.FormatTags(now))
		}
	}
	return fileUpdated, nil
}
