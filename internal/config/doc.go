// Package config provides configuration management for podcast-tagger.
//
// Settings are read from a TOML file on top of built-in defaults. A missing
// file is not an error:
//
//	settings, err := config.Load("")            // ~/.config/podcast-tagger/config.toml
//	settings, err := config.Load("./my.toml")
//
// Example file:
//
//	user_agent = "PodcastTagger"
//	http_timeout_seconds = 0   # no timeout
//	embed_cover_art = true
//	cover_art_max_size = 600
//	convert_cover_art_to_jpg = true
//	guess_track_number = true
//
// Command line flags override loaded values.
package config
