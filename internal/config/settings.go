package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Settings holds all configuration options.
type Settings struct {
	// HTTP
	UserAgent          string `koanf:"user_agent"`
	HTTPTimeoutSeconds int    `koanf:"http_timeout_seconds"`

	// Podcast fetcher
	WorkingDir           string `koanf:"working_dir"`
	EmbedCoverArt        bool   `koanf:"embed_cover_art"`
	CoverArtMaxSize      int    `koanf:"cover_art_max_size"`
	ConvertCoverArtToJPG bool   `koanf:"convert_cover_art_to_jpg"`

	// Tag fixer
	GuessTrackNumber bool `koanf:"guess_track_number"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		UserAgent:          "PodcastTagger",
		HTTPTimeoutSeconds: 0,

		WorkingDir:           ".",
		EmbedCoverArt:        false,
		CoverArtMaxSize:      1000,
		ConvertCoverArtToJPG: true,

		GuessTrackNumber: true,
	}
}

// DefaultPath returns ~/.config/podcast-tagger/config.toml, or "" if the
// home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "podcast-tagger", "config.toml")
}

// Load reads settings from a TOML file. An empty path means DefaultPath.
// Defaults are returned when the file does not exist.
func Load(path string) (*Settings, error) {
	if path == "" {
		path = DefaultPath()
	}

	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return settings, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := k.Unmarshal("", settings); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return settings, nil
}

// Validate checks value ranges.
func (s *Settings) Validate() error {
	if s.HTTPTimeoutSeconds < 0 {
		return fmt.Errorf("http_timeout_seconds must not be negative, got %d", s.HTTPTimeoutSeconds)
	}
	if s.CoverArtMaxSize < 0 {
		return fmt.Errorf("cover_art_max_size must not be negative, got %d", s.CoverArtMaxSize)
	}
	return nil
}

// HTTPTimeout returns the request timeout, zero meaning none.
func (s *Settings) HTTPTimeout() time.Duration {
	return time.Duration(s.HTTPTimeoutSeconds) * time.Second
}
