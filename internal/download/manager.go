package download

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/handiism/podcast-tagger/internal/audio"
	"github.com/handiism/podcast-tagger/internal/config"
	"github.com/handiism/podcast-tagger/internal/feed"
	"github.com/handiism/podcast-tagger/internal/http"
	ioutils "github.com/handiism/podcast-tagger/internal/io"
	"github.com/handiism/podcast-tagger/internal/model"
	"github.com/handiism/podcast-tagger/internal/podcast"
	"github.com/handiism/podcast-tagger/internal/progress"
)

// Result summarizes a batch of episode downloads.
type Result struct {
	Downloaded int
	Failed     int
	Bytes      int64
}

// Add accumulates another result.
func (r *Result) Add(other Result) {
	r.Downloaded += other.Downloaded
	r.Failed += other.Failed
	r.Bytes += other.Bytes
}

// Manager coordinates podcast downloads.
type Manager struct {
	settings     *config.Settings
	httpClient   *http.Client
	feeds        *feed.Fetcher
	tagger       *audio.Tagger
	imageService *ioutils.ImageService

	onProgress progress.Func
}

// NewManager creates a new download Manager.
func NewManager(settings *config.Settings, onProgress progress.Func) *Manager {
	client := http.NewClient(settings.UserAgent, settings.HTTPTimeout())
	return &Manager{
		settings:     settings,
		httpClient:   client,
		feeds:        feed.NewFetcher(client),
		tagger:       audio.NewTagger(),
		imageService: ioutils.NewImageService(),
		onProgress:   onProgress,
	}
}

// ProcessPodcast downloads the episodes of p that are not on disk yet.
//
// Feed and directory errors abort this podcast only and are returned.
// Individual episode failures are reported and counted in the result.
func (m *Manager) ProcessPodcast(ctx context.Context, p model.PodcastMetadata) (Result, error) {
	m.onProgress.Emit(progress.LevelInfo, "Working on %q...", p.Title)

	f, err := m.feeds.Fetch(ctx, p.RSSFeedURL)
	if err != nil {
		return Result{}, err
	}

	existing, err := podcast.ExistingIDs(p.PodcastDir, m.tagger, m.onProgress)
	if err != nil {
		return Result{}, fmt.Errorf("scan %s: %w", p.PodcastDir, err)
	}

	missing, err := podcast.MissingEpisodes(f, existing)
	if err != nil {
		return Result{}, fmt.Errorf("read feed %s: %w", p.RSSFeedURL, err)
	}

	m.onProgress.Emit(progress.LevelInfo, "Downloading %d episodes...", len(missing))
	return m.DownloadEpisodes(ctx, p.PodcastDir, missing), nil
}

// DownloadEpisodes downloads and tags episodes into dir, one at a time.
//
// Processing stops early only when ctx is cancelled.
func (m *Manager) DownloadEpisodes(ctx context.Context, dir string, episodes []model.EpisodeMetadata) Result {
	var result Result
	for i, ep := range episodes {
		if ctx.Err() != nil {
			m.onProgress.Emit(progress.LevelWarning, "Cancelled, %d episodes not attempted", len(episodes)-i)
			break
		}

		path, n, err := m.downloadEpisode(ctx, dir, ep)
		result.Bytes += n
		if err != nil {
			result.Failed++
			m.onProgress.Step(progress.LevelError, i+1, len(episodes), "Error downloading %q: %v", ep.Title, err)
			continue
		}

		result.Downloaded++
		m.onProgress.Step(progress.LevelSuccess, i+1, len(episodes), "Downloaded: %s", filepath.Base(path))
	}
	return result
}

// downloadEpisode realizes one episode as a tagged file and returns its
// final path and the number of bytes downloaded.
func (m *Manager) downloadEpisode(ctx context.Context, dir string, ep model.EpisodeMetadata) (string, int64, error) {
	paths := ioutils.NewDownloadPaths(dir, m.fileBase(dir, ep), podcast.InProgressSuffix, podcast.EpisodeExt)

	m.onProgress.Emit(progress.LevelVerbose, "Fetching %s", ep.DownloadLink)
	n, err := m.httpClient.DownloadFile(ctx, ep.DownloadLink, paths.InProgress, nil)
	if err != nil {
		return "", n, fmt.Errorf("download: %w", err)
	}

	// Hosts embed their own tags, sometimes including a foreign RSS_ID.
	if err := m.tagger.Clear(paths.InProgress); err != nil {
		return "", n, fmt.Errorf("clear tags: %w", err)
	}
	if err := m.tagger.Write(paths.InProgress, ep.TagSet(), audio.ModeReplace); err != nil {
		return "", n, fmt.Errorf("write tags: %w", err)
	}

	if m.settings.EmbedCoverArt && ep.HasCoverArt() {
		if err := m.embedCoverArt(ctx, paths.InProgress, ep); err != nil {
			m.onProgress.Emit(progress.LevelWarning, "Cover art for %q skipped: %v", ep.Title, err)
		}
	}

	if err := ioutils.Publish(paths); err != nil {
		return "", n, fmt.Errorf("publish: %w", err)
	}
	return paths.Final, n, nil
}

func (m *Manager) embedCoverArt(ctx context.Context, path string, ep model.EpisodeMetadata) error {
	data, err := m.httpClient.Get(ctx, ep.CoverArtLink)
	if err != nil {
		return err
	}

	picture, mimeType, err := m.imageService.PrepareCoverArt(ctx, data, m.settings.CoverArtMaxSize, m.settings.ConvertCoverArtToJPG)
	if err != nil {
		return err
	}
	return m.tagger.EmbedCoverArt(path, picture, mimeType)
}

// fileBase returns the escaped episode title, numbered when a published
// episode already uses that name. Distinct episodes can share a title.
func (m *Manager) fileBase(dir string, ep model.EpisodeMetadata) string {
	base := ioutils.EscapeFileName(ep.Title)
	candidate := base
	for i := 2; exists(filepath.Join(dir, candidate+podcast.EpisodeExt)); i++ {
		candidate = base + "_" + strconv.Itoa(i)
	}
	return candidate
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
