package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var feedPatterns = []string{
	"/feed",
	"/feed.xml",
	"/atom.xml",
	"/rss.xml",
	"/rss",
	"/index.xml",
	"/feed/atom",
	"/feed/rss",
}

const feedLinkSelector = `link[type="application/rss+xml"], link[type="application/atom+xml"], link[type="application/feed+json"]`

// Discover finds the feed URL of a site, first from the alternate links in its
// home page, then by probing common feed paths.
func (f *Fetcher) Discover(ctx context.Context, siteURL string) (string, error) {
	base, err := url.Parse(siteURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse site url: %w", err)
	}

	if href, ok := f.feedLink(ctx, siteURL); ok {
		ref, err := url.Parse(href)
		if err == nil {
			return base.ResolveReference(ref).String(), nil
		}
	}

	root := strings.TrimSuffix(siteURL, "/")
	for _, pattern := range feedPatterns {
		candidate := root + pattern
		resp, err := f.do(ctx, http.MethodHead, candidate)
		if err != nil {
			continue
		}
		resp.Body.Close()
		if resp.StatusCode == http.StatusOK {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("could not discover feed for %s", siteURL)
}

func (f *Fetcher) feedLink(ctx context.Context, siteURL string) (string, bool) {
	resp, err := f.do(ctx, http.MethodGet, siteURL)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", false
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", false
	}
	href, ok := doc.Find(feedLinkSelector).First().Attr("href")
	return strings.TrimSpace(href), ok && strings.TrimSpace(href) != ""
}

func (f *Fetcher) do(ctx context.Context, method, target string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, err
	}
	if f.parser.UserAgent != "" {
		req.Header.Set("User-Agent", f.parser.UserAgent)
	}
	return f.client.Do(req)
}
