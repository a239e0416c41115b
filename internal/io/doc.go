// Package ioutils provides file system and image helpers.
//
// This package contains functions for:
//   - Escaping episode titles into safe file names
//   - Listing the files and subdirectories of a directory
//   - Publishing an in-progress download under its final name
//   - Resizing and converting cover art before embedding it in tags
//
// # File Names
//
//	ioutils.EscapeFileName("Episode: Q&A #1") // "Episode_ Q_A _1"
//
// # Publishing
//
// Downloads are written to an in-progress path first and renamed once they
// are complete, so a reader never sees a partial file under its final name:
//
//	p := ioutils.NewDownloadPaths(dir, "Pilot", ".inprogress", ".mp3")
//	// p.InProgress = dir/Pilot.inprogress.mp3, p.Final = dir/Pilot.mp3
//	err := ioutils.Publish(p)
package ioutils
