package podcast

import (
	"path/filepath"

	ioutils "github.com/handiism/podcast-tagger/internal/io"
	"github.com/handiism/podcast-tagger/internal/model"
	"github.com/handiism/podcast-tagger/internal/progress"
)

// InProgressSuffix marks a download that has not been published yet.
const InProgressSuffix = ".inprogress"

// EpisodeExt is the extension of downloaded episodes.
const EpisodeExt = ".mp3"

// TagReader reads the tags of an audio file.
type TagReader interface {
	Read(path string) (map[string][]string, error)
}

// IDSet holds the entry IDs already present in a podcast directory.
type IDSet map[string]struct{}

// Add inserts id into the set.
func (s IDSet) Add(id string) {
	s[id] = struct{}{}
}

// Has reports whether id is in the set.
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// ExistingIDs reads the RSS_ID tag of every file in dir.
//
// Files whose tags cannot be read are reported as warnings and skipped.
// The descriptor and in-progress artifacts are ignored: they are not
// completed downloads.
// Only a failure to list dir itself is returned as an error.
func ExistingIDs(dir string, tags TagReader, report progress.Func) (IDSet, error) {
	files, err := ioutils.ListFiles(dir)
	if err != nil {
		return nil, err
	}

	ids := make(IDSet)
	for _, name := range files {
		if name == DescriptorFileName {
			continue
		}
		if ioutils.IsInProgress(name, InProgressSuffix, EpisodeExt) {
			report.Emit(progress.LevelVerbose, "Ignoring in-progress download %s", name)
			continue
		}

		path := filepath.Join(dir, name)
		values, err := tags.Read(path)
		if err != nil {
			report.Emit(progress.LevelWarning, "Ignoring %s because of %v", path, err)
			continue
		}
		if id := values[model.IDTagLabel]; len(id) > 0 && id[0] != "" {
			ids.Add(id[0])
		}
	}
	return ids, nil
}
