// Package model defines the core data structures shared by the podcast
// fetcher and the tag fixer.
//
// # Episodes
//
// EpisodeMetadata is the normalized record built from one feed entry.
// It carries everything needed to name, download and tag an episode:
//
//	ep := model.EpisodeMetadata{Title: "Pilot", ID: "ep-1", ...}
//	tags := ep.TagSet() // TITLE, ARTIST, ALBUM, RSS_ID, DATE, GENRE
//
// # Podcasts
//
// PodcastMetadata describes one subscription directory, as loaded from its
// descriptor file.
//
// # Tag Sets
//
// TagSet is a flat, unordered collection of label/value pairs:
//
//	var ts model.TagSet
//	ts.Add(model.LabelAlbum, "Partitas")
//	ts.Add(model.LabelTitle, "Allemande")
//	ts.Map() // map[ALBUM:[Partitas] TITLE:[Allemande]]
package model
