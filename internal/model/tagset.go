package model

import (
	"fmt"
	"sort"
	"strings"
)

// Common tag labels. They follow the Vorbis comment naming used by most
// taggers and are mapped to ID3 frames by the audio package.
const (
	LabelTitle       = "TITLE"
	LabelArtist      = "ARTIST"
	LabelAlbum       = "ALBUM"
	LabelDate        = "DATE"
	LabelGenre       = "GENRE"
	LabelTrackNumber = "TRACKNUMBER"
)

// Tag is a single label/value pair.
type Tag struct {
	Label string
	Value string
}

// TagSet is an unordered collection of tags.
//
// Labels are not required to be unique; callers that need a single value
// per label must not add duplicates.
type TagSet struct {
	Tags []Tag
}

// Add appends a tag.
func (ts *TagSet) Add(label, value string) {
	ts.Tags = append(ts.Tags, Tag{Label: label, Value: value})
}

// Get returns the first value stored under label.
func (ts TagSet) Get(label string) (string, bool) {
	for _, t := range ts.Tags {
		if t.Label == label {
			return t.Value, true
		}
	}
	return "", false
}

// Len returns the number of tags in the set.
func (ts TagSet) Len() int {
	return len(ts.Tags)
}

// Map groups the tags by label, keeping insertion order of values.
func (ts TagSet) Map() map[string][]string {
	m := make(map[string][]string, len(ts.Tags))
	for _, t := range ts.Tags {
		m[t.Label] = append(m[t.Label], t.Value)
	}
	return m
}

// String renders the set sorted by label, for display in prompts.
func (ts TagSet) String() string {
	return FormatTags(ts.Map())
}

// FormatTags renders a label to values mapping sorted by label.
func FormatTags(tags map[string][]string) string {
	labels := make([]string, 0, len(tags))
	for label := range tags {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	parts := make([]string, 0, len(labels))
	for _, label := range labels {
		parts = append(parts, fmt.Sprintf("%s=%q", label, strings.Join(tags[label], ", ")))
	}
	return "{" + strings.Join(parts, " ") + "}"
}
