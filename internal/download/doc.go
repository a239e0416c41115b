// Package download fetches new podcast episodes and tags them.
//
// # Manager
//
// The Manager coordinates the work for one subscription:
//
//  1. Fetch and parse the RSS feed
//  2. Read the RSS_ID tag of every episode already on disk
//  3. Keep the audio entries whose ID is not on disk yet
//  4. For each of them, in order: download to "<title>.inprogress.mp3",
//     clear any tags the host embedded, write the normalized tags and
//     rename the file to "<title>.mp3"
//
// # Basic Usage
//
//	manager := download.NewManager(settings, func(event progress.Event) {
//	    fmt.Println(event.Message)
//	})
//
//	result, err := manager.ProcessPodcast(ctx, podcast)
//
// # Failures
//
// Episodes are processed one at a time. A failing episode is reported as a
// LevelError event and the next one is attempted. Its in-progress file is
// left on disk for inspection and is never mistaken for a finished episode.
package download
