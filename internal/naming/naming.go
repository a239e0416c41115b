package naming

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var (
	trackNumberRe = regexp.MustCompile(`^Track ([0-9]+)\.(wav|mp3)`)
	titleNumberRe = regexp.MustCompile(`^(?P<no>[0-9]+)(\.| -)? (?P<name>.+)\.(wav|mp3)`)
)

// ParseTrackNumber extracts a track number from a filename.
//
// "Track <N>.<ext>" is tried first, then "<N><sep> <title>.<ext>".
// The second return value is false when neither pattern matches.
func ParseTrackNumber(filename string) (int, bool) {
	if m := trackNumberRe.FindStringSubmatch(filename); m != nil {
		return atoi(m[1])
	}
	if m := titleNumberRe.FindStringSubmatch(filename); m != nil {
		return atoi(m[titleNumberRe.SubexpIndex("no")])
	}
	return 0, false
}

// ParseTitle returns the title part of a numbered filename, or the
// filename without its extension.
func ParseTitle(filename string) string {
	if m := titleNumberRe.FindStringSubmatch(filename); m != nil {
		return m[titleNumberRe.SubexpIndex("name")]
	}
	return stripExt(filename)
}

// stripExt removes the extension of filename. Leading dots belong to the
// name, so ".hidden" has no extension.
func stripExt(filename string) string {
	rest := strings.TrimLeft(filename, ".")
	return strings.TrimSuffix(filename, filepath.Ext(rest))
}

func atoi(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		// Only reachable for digit runs that overflow int.
		return 0, false
	}
	return n, true
}
