// Package podcast holds the episode bookkeeping of the podcast fetcher.
//
// # Subscriptions
//
// A directory is a subscription when it contains a PODCAST_METADATA file:
//
//	{"title": "The Show", "rss_feed_url": "https://example.com/feed.xml"}
//
// ListPodcasts finds every subscription directly below a working directory.
//
// # Episodes
//
// ParseEntry turns one feed entry into an EpisodeMetadata, or nothing if
// the entry has no audio enclosure. ExistingIDs reads the RSS_ID tag of
// every file already downloaded, and MissingEpisodes combines the two:
//
//	existing, _ := podcast.ExistingIDs(dir, tagger, report)
//	missing, err := podcast.MissingEpisodes(f, existing)
package podcast
