// Package feed fetches podcast feeds and flattens them into the small shape
// the episode logic works with.
package feed

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// Feed is a parsed podcast feed.
type Feed struct {
	// Author is the podcast author, used as the artist tag.
	Author string

	// Title is the podcast title, used as the album tag.
	Title string

	// Entries are the feed items in document order.
	Entries []Entry
}

// Entry is a single feed item.
type Entry struct {
	Title      string
	ID         string
	Enclosures []Enclosure

	// Image is the per-entry image URL, empty if the entry has none.
	Image string

	// Published is nil when the entry carries no parseable date.
	Published *time.Time
}

// Enclosure is a media reference attached to an entry.
type Enclosure struct {
	Href string
	Type string
}

// Getter fetches raw documents.
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Fetcher downloads and parses feeds.
type Fetcher struct {
	getter Getter
	parser *gofeed.Parser
}

// NewFetcher creates a Fetcher that downloads feeds through getter.
func NewFetcher(getter Getter) *Fetcher {
	return &Fetcher{
		getter: getter,
		parser: gofeed.NewParser(),
	}
}

// Fetch downloads and parses the feed at url.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Feed, error) {
	body, err := f.getter.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}

	parsed, err := f.parser.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", url, err)
	}
	return fromGofeed(parsed), nil
}

func fromGofeed(src *gofeed.Feed) *Feed {
	out := &Feed{
		Author:  feedAuthor(src),
		Title:   strings.TrimSpace(src.Title),
		Entries: make([]Entry, 0, len(src.Items)),
	}

	for _, item := range src.Items {
		if item == nil {
			continue
		}
		out.Entries = append(out.Entries, fromItem(item))
	}
	return out
}

func fromItem(item *gofeed.Item) Entry {
	e := Entry{
		Title:     strings.TrimSpace(item.Title),
		ID:        item.GUID,
		Published: item.PublishedParsed,
	}
	if e.ID == "" {
		// Feeds without <guid> identify entries by their link.
		e.ID = item.Link
	}

	for _, enc := range item.Enclosures {
		if enc == nil {
			continue
		}
		e.Enclosures = append(e.Enclosures, Enclosure{Href: enc.URL, Type: enc.Type})
	}

	switch {
	case item.Image != nil && item.Image.URL != "":
		e.Image = item.Image.URL
	case item.ITunesExt != nil && item.ITunesExt.Image != "":
		e.Image = item.ITunesExt.Image
	}

	return e
}

// feedAuthor prefers <itunes:author>, which podcast feeds fill reliably,
// over the generic channel author.
func feedAuthor(src *gofeed.Feed) string {
	if src.ITunesExt != nil && src.ITunesExt.Author != "" {
		return strings.TrimSpace(src.ITunesExt.Author)
	}
	for _, p := range src.Authors {
		if p != nil && p.Name != "" {
			return strings.TrimSpace(p.Name)
		}
	}
	if src.Author != nil {
		return strings.TrimSpace(src.Author.Name)
	}
	return ""
}
