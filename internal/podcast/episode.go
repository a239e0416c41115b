package podcast

import (
	"errors"
	"fmt"
	"strings"

	"github.com/handiism/podcast-tagger/internal/feed"
	"github.com/handiism/podcast-tagger/internal/model"
)

var (
	// ErrMissingPublished is returned for audio entries without a publication date.
	ErrMissingPublished = errors.New("entry has no published date")

	// ErrMissingID is returned for audio entries with neither a GUID nor a
	// link. Such an episode could not be recognized on the next run.
	ErrMissingID = errors.New("entry has no id")
)

// ParseEntry converts a feed entry into episode metadata.
//
// It returns nil without error when the entry has no enclosure or its first
// enclosure is not audio.
func ParseEntry(f *feed.Feed, e feed.Entry) (*model.EpisodeMetadata, error) {
	if len(e.Enclosures) == 0 {
		return nil, nil
	}
	enclosure := e.Enclosures[0]
	if !strings.HasPrefix(enclosure.Type, "audio") {
		return nil, nil
	}
	if e.ID == "" {
		return nil, fmt.Errorf("%q: %w", e.Title, ErrMissingID)
	}
	if e.Published == nil {
		return nil, fmt.Errorf("%q: %w", e.Title, ErrMissingPublished)
	}

	return &model.EpisodeMetadata{
		Title:        e.Title,
		Artist:       f.Author,
		Album:        f.Title,
		ID:           e.ID,
		DownloadLink: enclosure.Href,
		CoverArtLink: e.Image,
		CreationDate: e.Published.Format("2006-01-02"),
		Genre:        model.DefaultGenre,
	}, nil
}

// MissingEpisodes returns the audio entries of f whose ID is not in
// existing, in feed order.
func MissingEpisodes(f *feed.Feed, existing IDSet) ([]model.EpisodeMetadata, error) {
	var missing []model.EpisodeMetadata
	for _, entry := range f.Entries {
		ep, err := ParseEntry(f, entry)
		if err != nil {
			return nil, err
		}
		if ep == nil || existing.Has(ep.ID) {
			continue
		}
		missing = append(missing, *ep)
	}
	return missing, nil
}
