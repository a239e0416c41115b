package podcast

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/handiism/podcast-tagger/internal/progress"
)

func writeDescriptor(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, DescriptorFileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDescriptor(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, `{"title": "The Show", "rss_feed_url": "http://example.com/feed", "extra": 1}`)

	meta, err := LoadDescriptor(dir)
	if err != nil {
		t.Fatalf("LoadDescriptor() error = %v", err)
	}
	if meta.Title != "The Show" || meta.RSSFeedURL != "http://example.com/feed" || meta.PodcastDir != dir {
		t.Errorf("LoadDescriptor() = %+v", meta)
	}
}

func TestLoadDescriptor_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"missing title", `{"rss_feed_url": "http://example.com"}`, ErrMissingField},
		{"missing url", `{"title": "x"}`, ErrMissingField},
		{"malformed", `{"title": `, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeDescriptor(t, dir, tt.content)

			_, err := LoadDescriptor(dir)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if errors.Is(err, ErrNoDescriptor) {
				t.Errorf("broken descriptor reported as missing: %v", err)
			}
		})
	}
}

func TestLoadDescriptor_Missing(t *testing.T) {
	if _, err := LoadDescriptor(t.TempDir()); !errors.Is(err, ErrNoDescriptor) {
		t.Errorf("error = %v, want ErrNoDescriptor", err)
	}
}

func TestListPodcasts(t *testing.T) {
	root := t.TempDir()
	writeDescriptor(t, filepath.Join(root, "b-show"), `{"title": "B", "rss_feed_url": "http://b"}`)
	writeDescriptor(t, filepath.Join(root, "a-show"), `{"title": "A", "rss_feed_url": "http://a"}`)
	writeDescriptor(t, filepath.Join(root, "broken"), `not json`)
	if err := os.Mkdir(filepath.Join(root, "music"), 0755); err != nil {
		t.Fatal(err)
	}
	// A descriptor file at the top level is not a subscription directory.
	writeDescriptor(t, root, `{"title": "root", "rss_feed_url": "http://root"}`)

	var rec progress.Recorder
	podcasts, err := ListPodcasts(root, rec.Func())
	if err != nil {
		t.Fatalf("ListPodcasts() error = %v", err)
	}

	if len(podcasts) != 2 || podcasts[0].Title != "A" || podcasts[1].Title != "B" {
		t.Fatalf("ListPodcasts() = %+v, want [A B]", podcasts)
	}
	if podcasts[0].PodcastDir != filepath.Join(root, "a-show") {
		t.Errorf("PodcastDir = %q", podcasts[0].PodcastDir)
	}
	if got := rec.Count(progress.LevelWarning); got != 1 {
		t.Errorf("warnings = %d, want 1 for the broken descriptor", got)
	}
}
