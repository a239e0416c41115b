package model

// IDTagLabel is the reserved tag used to persist a feed entry's unique ID
// inside the downloaded file. Re-runs skip entries whose ID is present.
const IDTagLabel = "RSS_ID"

// DefaultGenre is written to every downloaded episode.
const DefaultGenre = "podcast"

// EpisodeMetadata represents one downloadable podcast episode.
//
// An EpisodeMetadata is built from a single feed entry and is not modified
// afterwards. CoverArtLink is empty when the entry carries no image.
type EpisodeMetadata struct {
	// Title is the episode title, also used to derive the file name.
	Title string

	// Artist is the podcast author.
	Artist string

	// Album is the podcast title.
	Album string

	// ID is the stable unique identifier of the feed entry.
	ID string

	// DownloadLink is the URL of the audio enclosure.
	DownloadLink string

	// CoverArtLink is the URL of the per-episode image, if any.
	CoverArtLink string

	// CreationDate is the publication date formatted as YYYY-MM-DD.
	CreationDate string

	// Genre defaults to DefaultGenre.
	Genre string
}

// HasCoverArt returns true if the episode has its own cover image.
func (e *EpisodeMetadata) HasCoverArt() bool {
	return e.CoverArtLink != ""
}

// TagSet returns the full normalized tag set written to a downloaded episode.
func (e *EpisodeMetadata) TagSet() TagSet {
	var ts TagSet
	ts.Add(LabelTitle, e.Title)
	ts.Add(LabelArtist, e.Artist)
	ts.Add(LabelAlbum, e.Album)
	ts.Add(IDTagLabel, e.ID)
	ts.Add(LabelDate, e.CreationDate)
	ts.Add(LabelGenre, e.Genre)
	return ts
}

// PodcastMetadata describes one configured podcast subscription.
type PodcastMetadata struct {
	// Title is the human readable podcast name.
	Title string `json:"title"`

	// RSSFeedURL is the feed to poll for new episodes.
	RSSFeedURL string `json:"rss_feed_url"`

	// PodcastDir is the directory episodes are downloaded to.
	// It is not part of the descriptor file.
	PodcastDir string `json:"-"`
}
