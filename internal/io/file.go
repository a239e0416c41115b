package ioutils

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

var nonFileNameChars = regexp.MustCompile(`[^a-zA-Z0-9 ._-]`)

// EscapeFileName replaces every character outside [a-zA-Z0-9 ._-] with an
// underscore. Non-ASCII letters are replaced too, one underscore per rune.
//
// Example:
//
//	EscapeFileName("Episode: Q&A #1") // Returns "Episode_ Q_A _1"
func EscapeFileName(name string) string {
	return nonFileNameChars.ReplaceAllString(name, "_")
}

// DownloadPaths holds the two names a download goes through.
type DownloadPaths struct {
	// InProgress is where the file lives while it is downloaded and tagged.
	InProgress string

	// Final is the name the completed file is published under.
	Final string
}

// NewDownloadPaths computes the in-progress and final paths for a base name.
//
// The in-progress path keeps the audio extension last so tag libraries that
// dispatch on extension treat both files the same way.
func NewDownloadPaths(dir, base, inProgressSuffix, ext string) DownloadPaths {
	return DownloadPaths{
		InProgress: filepath.Join(dir, base+inProgressSuffix+ext),
		Final:      filepath.Join(dir, base+ext),
	}
}

// IsInProgress reports whether name is an in-progress artifact.
func IsInProgress(name, inProgressSuffix, ext string) bool {
	return strings.HasSuffix(name, inProgressSuffix+ext)
}

// Publish atomically renames the in-progress file to its final name.
func Publish(p DownloadPaths) error {
	return os.Rename(p.InProgress, p.Final)
}

// ListFiles returns the names of the regular files in dir, sorted.
func ListFiles(dir string) ([]string, error) {
	return listEntries(dir, func(e os.DirEntry) bool {
		return e.Type().IsRegular()
	})
}

// ListDirs returns the names of the subdirectories of dir, sorted.
func ListDirs(dir string) ([]string, error) {
	return listEntries(dir, func(e os.DirEntry) bool {
		return e.IsDir()
	})
}

func listEntries(dir string, keep func(os.DirEntry) bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if keep(e) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
