package audio

import (
	"fmt"
	"os"
	"path/filepath"

	"go.senan.xyz/taglib"
)

// Formats other than MP3 (WAV, FLAC, Ogg, M4A, ...) go through TagLib.
// Its property names are the labels used by model.TagSet, and labels it
// has no native field for (RSS_ID) are kept as custom properties.

// readOther reads a non-MP3 file with TagLib, falling back to
// dhowden/tag for files TagLib does not recognize by name.
func readOther(path string) (map[string][]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	props, err := taglib.ReadTags(absPath(path))
	if err != nil {
		return readGeneric(path)
	}

	tags := make(map[string][]string, len(props))
	for label, values := range props {
		if values = nonEmpty(values); len(values) > 0 {
			tags[label] = values
		}
	}
	return tags, nil
}

// writeOther writes tags to a non-MP3 file. ModeReplace removes the
// existing tags first; ModeMerge leaves labels absent from tags alone.
func writeOther(path string, tags map[string][]string, mode WriteMode) error {
	props := make(map[string][]string, len(tags))
	for label, values := range tags {
		if values = nonEmpty(values); len(values) > 0 {
			props[label] = values
		}
	}

	var opts taglib.WriteOption
	if mode == ModeReplace {
		opts = taglib.Clear
	}
	return taglibError(path, taglib.WriteTags(absPath(path), props, opts))
}

func embedOther(path string, picture []byte) error {
	return taglibError(path, taglib.WriteImage(absPath(path), picture))
}

// taglibError reports I/O problems as such and anything else TagLib
// rejects as ErrUnsupportedFormat.
func taglibError(path string, err error) error {
	if err == nil {
		return nil
	}
	if _, statErr := os.Stat(path); statErr != nil {
		return statErr
	}
	return fmt.Errorf("%s: %w: %v", filepath.Base(path), ErrUnsupportedFormat, err)
}

// absPath resolves path for TagLib, which only sees the directory of the
// file it is given.
func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

func nonEmpty(values []string) []string {
	out := values[:0:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
