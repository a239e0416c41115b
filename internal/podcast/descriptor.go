package podcast

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	ioutils "github.com/handiism/podcast-tagger/internal/io"
	"github.com/handiism/podcast-tagger/internal/model"
	"github.com/handiism/podcast-tagger/internal/progress"
)

// DescriptorFileName marks a directory as a podcast subscription.
const DescriptorFileName = "PODCAST_METADATA"

var (
	// ErrNoDescriptor means the directory is not a subscription.
	ErrNoDescriptor = errors.New("no podcast descriptor")

	// ErrMissingField means the descriptor lacks a required key.
	ErrMissingField = errors.New("descriptor missing required key")
)

// descriptor mirrors the JSON file. Pointers tell absent keys apart from
// empty ones.
type descriptor struct {
	Title      *string `json:"title"`
	RSSFeedURL *string `json:"rss_feed_url"`
}

// LoadDescriptor reads the subscription descriptor of dir.
//
// Returns an error wrapping ErrNoDescriptor if the file does not exist,
// ErrMissingField if a required key is absent, or the JSON decoding error.
func LoadDescriptor(dir string) (*model.PodcastMetadata, error) {
	path := filepath.Join(dir, DescriptorFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", dir, ErrNoDescriptor)
		}
		return nil, err
	}

	var d descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse %q as metadata: %w", path, err)
	}

	switch {
	case d.Title == nil:
		return nil, fmt.Errorf("%q: %w: title", path, ErrMissingField)
	case d.RSSFeedURL == nil:
		return nil, fmt.Errorf("%q: %w: rss_feed_url", path, ErrMissingField)
	}

	return &model.PodcastMetadata{
		Title:      *d.Title,
		RSSFeedURL: *d.RSSFeedURL,
		PodcastDir: dir,
	}, nil
}

// ListPodcasts returns the subscriptions directly below workingDir, in
// directory name order.
//
// Directories without a descriptor are skipped silently; broken
// descriptors are reported as warnings and skipped.
func ListPodcasts(workingDir string, report progress.Func) ([]model.PodcastMetadata, error) {
	dirs, err := ioutils.ListDirs(workingDir)
	if err != nil {
		return nil, err
	}

	var podcasts []model.PodcastMetadata
	for _, name := range dirs {
		meta, err := LoadDescriptor(filepath.Join(workingDir, name))
		if err != nil {
			if !errors.Is(err, ErrNoDescriptor) {
				report.Emit(progress.LevelWarning, "%v", err)
			}
			continue
		}
		podcasts = append(podcasts, *meta)
	}
	return podcasts, nil
}
