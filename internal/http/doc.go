// Package http provides the HTTP client used to fetch feeds, episodes and
// cover art.
//
// The Client in this package handles:
//   - A configurable User-Agent header (some podcast hosts reject Go's default)
//   - Timeout handling
//   - Streaming downloads straight to disk with progress tracking
//
// # Basic Usage
//
//	client := http.NewClient("PodcastTagger", 5*time.Minute)
//
//	// Fetch a feed document
//	body, err := client.Get(ctx, "https://example.com/feed.xml")
//
//	// Download an episode
//	n, err := client.DownloadFile(ctx, mp3URL, "/podcasts/show/ep.inprogress.mp3", nil)
package http
