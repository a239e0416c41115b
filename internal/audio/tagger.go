package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bogem/id3v2/v2"
	"github.com/dhowden/tag"
	"github.com/handiism/podcast-tagger/internal/model"
)

// ErrUnsupportedFormat is returned for files no tag library understands.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// ExtMP3 files are tagged with id3v2, everything else with TagLib.
const ExtMP3 = ".mp3"

// id3Magic is the magic bytes for ID3v2 header detection.
const id3Magic = "ID3"

// WriteMode selects what happens to tags that are not part of a write.
type WriteMode int

const (
	// ModeReplace removes every existing frame before writing.
	ModeReplace WriteMode = iota

	// ModeMerge keeps existing frames whose label is not being written.
	ModeMerge
)

// textFrames maps well-known labels to ID3v2.4 text frames. Any other
// label is stored as a TXXX frame with the label as description.
var textFrames = map[string]string{
	model.LabelTitle:       "TIT2",
	model.LabelArtist:      "TPE1",
	model.LabelAlbum:       "TALB",
	model.LabelDate:        "TDRC",
	model.LabelGenre:       "TCON",
	model.LabelTrackNumber: "TRCK",
	"ALBUMARTIST":          "TPE2",
	"COMMENT":              "COMM",
}

// multiValueSep joins several values of one label into a single ID3 text
// frame.
const multiValueSep = " / "

// Tagger reads and writes tags of audio files.
//
// Tagger uses the id3v2 library for MP3 files and dhowden/tag as a
// read-only fallback for other containers.
type Tagger struct {
	encoding id3v2.Encoding
}

// NewTagger creates a Tagger writing UTF-8 ID3v2.4 tags.
func NewTagger() *Tagger {
	return &Tagger{encoding: id3v2.EncodingUTF8}
}

// Read returns the tags of the file at path as label to values.
//
// Returns an error wrapping ErrUnsupportedFormat if no tag library can
// parse the file, or the underlying I/O error.
func (t *Tagger) Read(path string) (map[string][]string, error) {
	if isMP3(path) {
		return t.readID3(path)
	}
	return readOther(path)
}

// Write stores tags in the file at path. Labels with only empty values are
// not written.
func (t *Tagger) Write(path string, tags model.TagSet, mode WriteMode) error {
	if !isMP3(path) {
		return writeOther(path, tags.Map(), mode)
	}
	return t.edit(path, func(id3tag *id3v2.Tag) {
		if mode == ModeReplace {
			id3tag.DeleteAllFrames()
		}
		for label, values := range tags.Map() {
			t.setLabel(id3tag, label, values)
		}
	})
}

// Clear removes every tag from the file at path.
func (t *Tagger) Clear(path string) error {
	if !isMP3(path) {
		return writeOther(path, nil, ModeReplace)
	}
	return t.edit(path, func(id3tag *id3v2.Tag) {
		id3tag.DeleteAllFrames()
	})
}

// EmbedCoverArt replaces the front cover picture of the file at path.
// mimeType is only used for MP3; other formats detect it from the data.
func (t *Tagger) EmbedCoverArt(path string, picture []byte, mimeType string) error {
	if !isMP3(path) {
		return embedOther(path, picture)
	}
	return t.edit(path, func(id3tag *id3v2.Tag) {
		id3tag.DeleteFrames(id3tag.CommonID("Attached picture"))
		id3tag.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    t.encoding,
			MimeType:    mimeType,
			PictureType: id3v2.PTFrontCover,
			Description: "Cover",
			Picture:     picture,
		})
	})
}

// edit opens the tag of an MP3 file, applies fn and saves the result.
func (t *Tagger) edit(path string, fn func(*id3v2.Tag)) error {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if errors.Is(err, id3v2.ErrUnsupportedVersion) {
		// ID3v2.2 and older cannot be edited, drop them and start over.
		if stripErr := stripID3v2Tag(path); stripErr != nil {
			return fmt.Errorf("strip unsupported ID3v2 tag: %w", stripErr)
		}
		id3tag, err = id3v2.Open(path, id3v2.Options{Parse: true})
	}
	if err != nil {
		return fmt.Errorf("open tags: %w", err)
	}
	defer id3tag.Close()

	id3tag.SetVersion(4)
	id3tag.SetDefaultEncoding(t.encoding)

	fn(id3tag)

	if err := id3tag.Save(); err != nil {
		return fmt.Errorf("save tags: %w", err)
	}
	return nil
}

func (t *Tagger) setLabel(id3tag *id3v2.Tag, label string, values []string) {
	value := strings.Join(values, multiValueSep)
	if value == "" {
		return
	}

	frameID, ok := textFrames[label]
	switch {
	case ok && frameID == "COMM":
		id3tag.DeleteFrames(frameID)
		id3tag.AddCommentFrame(id3v2.CommentFrame{
			Encoding: t.encoding,
			Language: "eng",
			Text:     value,
		})
	case ok:
		id3tag.AddTextFrame(frameID, t.encoding, value)
	default:
		setUserDefined(id3tag, t.encoding, label, value)
	}
}

// setUserDefined replaces the TXXX frame with the given description and
// keeps the other TXXX frames.
func setUserDefined(id3tag *id3v2.Tag, enc id3v2.Encoding, description, value string) {
	var keep []id3v2.UserDefinedTextFrame
	for _, f := range id3tag.GetFrames("TXXX") {
		if udf, ok := f.(id3v2.UserDefinedTextFrame); ok && udf.Description != description {
			keep = append(keep, udf)
		}
	}

	id3tag.DeleteFrames("TXXX")
	for _, udf := range keep {
		id3tag.AddUserDefinedTextFrame(udf)
	}
	id3tag.AddUserDefinedTextFrame(id3v2.UserDefinedTextFrame{
		Encoding:    enc,
		Description: description,
		Value:       value,
	})
}

func (t *Tagger) readID3(path string) (map[string][]string, error) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		if errors.Is(err, id3v2.ErrUnsupportedVersion) {
			return nil, fmt.Errorf("%s: %w: %v", filepath.Base(path), ErrUnsupportedFormat, err)
		}
		return nil, err
	}
	defer id3tag.Close()

	labels := make(map[string]string, len(textFrames))
	for label, frameID := range textFrames {
		labels[frameID] = label
	}

	tags := make(map[string][]string)
	for frameID, frames := range id3tag.AllFrames() {
		for _, f := range frames {
			switch fr := f.(type) {
			case id3v2.UserDefinedTextFrame:
				tags[fr.Description] = append(tags[fr.Description], fr.Value)
			case id3v2.TextFrame:
				if label, ok := labels[frameID]; ok {
					tags[label] = append(tags[label], fr.Text)
				}
			case id3v2.CommentFrame:
				tags["COMMENT"] = append(tags["COMMENT"], fr.Text)
			}
		}
	}
	return tags, nil
}

// readGeneric reads tags through dhowden/tag, which identifies the
// container from its content rather than its extension.
func readGeneric(path string) (map[string][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", filepath.Base(path), ErrUnsupportedFormat, err)
	}

	tags := make(map[string][]string)
	add := func(label, value string) {
		if value != "" {
			tags[label] = append(tags[label], value)
		}
	}

	add(model.LabelTitle, m.Title())
	add(model.LabelArtist, m.Artist())
	add(model.LabelAlbum, m.Album())
	add(model.LabelGenre, m.Genre())
	add("ALBUMARTIST", m.AlbumArtist())
	if year := m.Year(); year > 0 {
		add(model.LabelDate, strconv.Itoa(year))
	}
	if track, _ := m.Track(); track > 0 {
		add(model.LabelTrackNumber, strconv.Itoa(track))
	}

	// Vorbis comments carry arbitrary labels such as RSS_ID.
	if m.Format() == tag.VORBIS {
		for key, raw := range m.Raw() {
			label := strings.ToUpper(key)
			if s, ok := raw.(string); ok {
				if _, seen := tags[label]; !seen {
					add(label, s)
				}
			}
		}
	}

	return tags, nil
}

func isMP3(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ExtMP3)
}

// stripID3v2Tag removes a leading ID3v2 tag from an MP3 file.
func stripID3v2Tag(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	if len(data) < 10 || string(data[:3]) != id3Magic {
		return nil
	}

	// Tag size is a synchsafe integer, 7 bits per byte.
	size := int(data[6])<<21 | int(data[7])<<14 | int(data[8])<<7 | int(data[9])
	tagSize := size + 10
	if data[5]&0x10 != 0 {
		tagSize += 10
	}

	if tagSize >= len(data) {
		return fmt.Errorf("ID3v2 tag size (%d) exceeds file size (%d)", tagSize, len(data))
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat file: %w", err)
	}

	return os.WriteFile(path, data[tagSize:], info.Mode())
}
