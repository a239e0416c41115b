package feed

import (
	"context"
	"errors"
	"testing"
)

type stubGetter struct {
	body []byte
	err  error
}

func (s stubGetter) Get(ctx context.Context, url string) ([]byte, error) {
	return s.body, s.err
}

const podcastRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd">
  <channel>
    <title>The Show</title>
    <author>ignored@example.com (Someone Else)</author>
    <itunes:author>The Host</itunes:author>
    <item>
      <title>Episode Two</title>
      <guid>ep-2</guid>
      <pubDate>Tue, 16 May 2023 08:00:00 +0000</pubDate>
      <enclosure url="http://example.com/2.mp3" length="100" type="audio/mpeg"/>
      <itunes:image href="http://example.com/2.jpg"/>
    </item>
    <item>
      <title>Trailer Art</title>
      <guid>ep-1</guid>
      <pubDate>Mon, 15 May 2023 08:00:00 +0000</pubDate>
      <enclosure url="http://example.com/1.png" length="100" type="image/png"/>
    </item>
    <item>
      <title>Show Notes</title>
      <guid>ep-0</guid>
    </item>
  </channel>
</rss>`

func TestFetcher_Fetch(t *testing.T) {
	f := NewFetcher(stubGetter{body: []byte(podcastRSS)})

	got, err := f.Fetch(context.Background(), "http://example.com/feed.xml")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if got.Title != "The Show" {
		t.Errorf("Title = %q, want %q", got.Title, "The Show")
	}
	if got.Author != "The Host" {
		t.Errorf("Author = %q, want itunes author %q", got.Author, "The Host")
	}
	if len(got.Entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(got.Entries))
	}

	first := got.Entries[0]
	if first.ID != "ep-2" || first.Title != "Episode Two" {
		t.Errorf("first entry = %+v", first)
	}
	if len(first.Enclosures) != 1 || first.Enclosures[0].Type != "audio/mpeg" || first.Enclosures[0].Href != "http://example.com/2.mp3" {
		t.Errorf("first enclosures = %+v", first.Enclosures)
	}
	if first.Image != "http://example.com/2.jpg" {
		t.Errorf("first image = %q", first.Image)
	}
	if first.Published == nil || first.Published.Format("2006-01-02") != "2023-05-16" {
		t.Errorf("first published = %v", first.Published)
	}

	if len(got.Entries[2].Enclosures) != 0 {
		t.Errorf("entry without enclosure should have none, got %+v", got.Entries[2].Enclosures)
	}
	if got.Entries[2].Published != nil {
		t.Errorf("entry without pubDate should have nil Published")
	}
}

func TestFetcher_FetchError(t *testing.T) {
	boom := errors.New("boom")
	f := NewFetcher(stubGetter{err: boom})

	if _, err := f.Fetch(context.Background(), "http://example.com"); !errors.Is(err, boom) {
		t.Errorf("Fetch() error = %v, want wrapped boom", err)
	}
}

func TestFetcher_ParseError(t *testing.T) {
	f := NewFetcher(stubGetter{body: []byte("not a feed")})

	if _, err := f.Fetch(context.Background(), "http://example.com"); err == nil {
		t.Error("expected parse error")
	}
}
