package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
)

// Item is a feed entry reduced to the fields a post needs.
type Item struct {
	Link        string
	Title       string
	Summary     string
	Image       string
	Categories  []string
	PublishedAt time.Time
}

type Fetcher struct {
	parser  *gofeed.Parser
	client  *http.Client
	timeout time.Duration
}

func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	client := &http.Client{Timeout: timeout}
	parser := gofeed.NewParser()
	parser.Client = client
	parser.UserAgent = userAgent
	return &Fetcher{
		parser:  parser,
		client:  client,
		timeout: timeout,
	}
}

func (f *Fetcher) FetchFeed(ctx context.Context, feedURL string) ([]Item, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	parsed, err := f.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}
	return fromFeed(parsed), nil
}

// Parse reads an RSS, Atom or JSON feed document.
func Parse(r io.Reader) ([]Item, error) {
	parsed, err := gofeed.NewParser().Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}
	return fromFeed(parsed), nil
}

func fromFeed(parsed *gofeed.Feed) []Item {
	var items []Item
	for _, entry := range parsed.Items {
		item := Item{
			Link:       strings.TrimSpace(entry.Link),
			Title:      strings.TrimSpace(entry.Title),
			Categories: entry.Categories,
		}

		if entry.PublishedParsed != nil {
			item.PublishedAt = *entry.PublishedParsed
		} else if entry.UpdatedParsed != nil {
			item.PublishedAt = *entry.UpdatedParsed
		} else {
			item.PublishedAt = time.Now()
		}

		body := entry.Description
		if body == "" {
			body = entry.Content
		}
		text, img := summarize(body)
		item.Summary = text

		switch {
		case entry.Image != nil && entry.Image.URL != "":
			item.Image = entry.Image.URL
		case img != "":
			item.Image = img
		default:
			for _, enc := range entry.Enclosures {
				if strings.HasPrefix(enc.Type, "image/") {
					item.Image = enc.URL
					break
				}
			}
		}

		items = append(items, item)
	}
	return items
}

// summarize strips markup from an HTML fragment and returns its text and the
// first image source it contains.
func summarize(fragment string) (string, string) {
	if strings.TrimSpace(fragment) == "" {
		return "", ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment), ""
	}
	img, _ := doc.Find("img[src]").First().Attr("src")
	return strings.Join(strings.Fields(doc.Text()), " "), img
}
