package retag

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/handiism/podcast-tagger/internal/model"
	"github.com/handiism/podcast-tagger/internal/naming"
	"github.com/handiism/podcast-tagger/internal/tui"
)

// Provider computes tag updates for the files of one directory.
type Provider interface {
	// Prepare sets up whatever the provider needs for dir. It may ask the
	// user for missing details.
	Prepare(dir string) error

	// TagsForFile returns the partial tag set to apply to filename.
	TagsForFile(filename string) model.TagSet
}

// Options configures a tag fixing run.
type Options struct {
	// Artist is used for every file. Asked for per directory when empty.
	Artist string
	// Album is used for every file. Defaults to the directory name.
	Album string
	// GuessTrackNumber extracts track numbers from filenames.
	GuessTrackNumber bool
	// ConfirmEachFile asks before updating each file.
	ConfirmEachFile bool
	// Verbose reports the resulting tags of each file.
	Verbose bool
}

// ManualProvider derives tags from filenames and fixed per-directory values.
type ManualProvider struct {
	opts     Options
	prompter tui.Prompter

	artist string
	album  string
}

// NewManualProvider creates a ManualProvider asking missing values through
// prompter.
func NewManualProvider(opts Options, prompter tui.Prompter) *ManualProvider {
	return &ManualProvider{opts: opts, prompter: prompter}
}

// Prepare implements Provider.
func (p *ManualProvider) Prepare(dir string) error {
	p.album = p.opts.Album
	if p.album == "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return err
		}
		p.album = filepath.Base(abs)
	}

	p.artist = p.opts.Artist
	if p.artist == "" {
		artist, err := p.prompter.Ask("What artist to use? [empty for none]", "")
		if err != nil {
			return fmt.Errorf("ask artist: %w", err)
		}
		p.artist = artist
	}
	return nil
}

// TagsForFile implements Provider. ARTIST is omitted when no artist was
// given, so the file keeps its own.
func (p *ManualProvider) TagsForFile(filename string) model.TagSet {
	var ts model.TagSet
	ts.Add(model.LabelAlbum, p.album)
	ts.Add(model.LabelTitle, naming.ParseTitle(filename))
	if p.artist != "" {
		ts.Add(model.LabelArtist, p.artist)
	}
	if p.opts.GuessTrackNumber {
		if n, ok := naming.ParseTrackNumber(filename); ok {
			ts.Add(model.LabelTrackNumber, strconv.Itoa(n))
		}
	}
	return ts
}
