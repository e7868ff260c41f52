// Package catalog reads the static content catalog (site-authored blog posts
// and information articles) and flattens it into content items.
package catalog

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/julienpequegnot/wayfare/internal/content"
	"gopkg.in/yaml.v3"
)

// Catalog mirrors the catalog.yaml document.
type Catalog struct {
	Categories  map[string]content.Localized `yaml:"categories"`
	Sections    map[string]content.Localized `yaml:"sections"`
	Blog        []Entry                      `yaml:"blog"`
	Information []Entry                      `yaml:"information"`
}

// Entry is one catalog article. Blog posts reference a category, information
// articles reference a section; both are optional.
type Entry struct {
	Slug        string            `yaml:"slug"`
	Title       content.Localized `yaml:"title"`
	Excerpt     content.Localized `yaml:"excerpt"`
	Image       string            `yaml:"image,omitempty"`
	Category    string            `yaml:"category,omitempty"`
	Section     string            `yaml:"section,omitempty"`
	Tags        []string          `yaml:"tags,omitempty"`
	Keywords    []string          `yaml:"keywords,omitempty"`
	PageType    string            `yaml:"page_type,omitempty"`
	Published   *bool             `yaml:"published,omitempty"`
	PublishedAt *time.Time        `yaml:"published_at,omitempty"`
}

// Parse decodes a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return &c, nil
}

// Items flattens the catalog. Entries without a slug are dropped; a missing
// published flag means published.
func (c *Catalog) Items() []content.Item {
	items := make([]content.Item, 0, len(c.Blog)+len(c.Information))
	for _, e := range c.Blog {
		if it, ok := e.item(content.Blog, strings.TrimSpace(e.Category), c.Categories); ok {
			items = append(items, it)
		}
	}
	for _, e := range c.Information {
		if it, ok := e.item(content.Information, strings.TrimSpace(e.Section), c.Sections); ok {
			items = append(items, it)
		}
	}
	return items
}

func (e Entry) item(typ content.Type, categoryID string, names map[string]content.Localized) (content.Item, bool) {
	slug := strings.TrimSpace(e.Slug)
	if slug == "" {
		return content.Item{}, false
	}

	published := true
	if e.Published != nil {
		published = *e.Published
	}

	name, ok := names[categoryID]
	if !ok {
		name = content.Localized{EN: categoryID}
	}

	return content.Item{
		Slug:         slug,
		Type:         typ,
		CategoryID:   categoryID,
		Tags:         content.CleanList(e.Tags),
		Keywords:     content.CleanList(e.Keywords),
		PageType:     strings.TrimSpace(e.PageType),
		Published:    published,
		Title:        e.Title,
		Excerpt:      e.Excerpt,
		Image:        e.Image,
		CategoryName: name,
		PublishedAt:  e.PublishedAt,
	}, true
}

// Loader produces the static content pool.
type Loader interface {
	Load() ([]content.Item, error)
}

// FileLoader reads a catalog.yaml file on every Load.
type FileLoader struct {
	Path string
}

func (l FileLoader) Load() ([]content.Item, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return c.Items(), nil
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func() ([]content.Item, error)

func (f LoaderFunc) Load() ([]content.Item, error) {
	return f()
}
