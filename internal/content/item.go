// Package content holds the normalized model shared by the catalog, the
// posts database and the related-content engine.
package content

import (
	"fmt"
	"strings"
	"time"
)

type Type string

const (
	Blog        Type = "blog"
	Information Type = "information"
)

// ParseType accepts "blog" or "information" in any case.
func ParseType(s string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case Blog:
		return Blog, nil
	case Information:
		return Information, nil
	}
	return "", fmt.Errorf("unknown content type %q (valid: blog, information)", s)
}

// Opposite returns the other content type.
func (t Type) Opposite() Type {
	if t == Blog {
		return Information
	}
	return Blog
}

// Localized is a display string in the two site locales.
type Localized struct {
	EN string `yaml:"en" json:"en"`
	TH string `yaml:"th" json:"th"`
}

// Pick returns the text for locale, falling back to English.
func (l Localized) Pick(locale string) string {
	if strings.EqualFold(locale, "th") && l.TH != "" {
		return l.TH
	}
	return l.EN
}

// Key identifies an item. Slugs are only unique within a type.
type Key struct {
	Type Type
	Slug string
}

type Item struct {
	Slug       string
	Type       Type
	CategoryID string
	Tags       []string
	Keywords   []string
	PageType   string
	Published  bool

	Title        Localized
	Excerpt      Localized
	Image        string
	CategoryName Localized
	PublishedAt  *time.Time
}

func (it Item) Key() Key {
	return Key{Type: it.Type, Slug: it.Slug}
}

// Origin records where a related result came from.
type Origin string

const (
	OriginDB     Origin = "db"
	OriginStatic Origin = "static"
)

// Result is the display projection of an Item returned to page rendering.
type Result struct {
	Slug         string    `json:"slug"`
	Type         Type      `json:"type"`
	Title        Localized `json:"title"`
	Excerpt      Localized `json:"excerpt"`
	Image        string    `json:"image,omitempty"`
	CategoryName Localized `json:"categoryName"`
	Origin       Origin    `json:"origin"`
}

func (it Item) Result(origin Origin) Result {
	return Result{
		Slug:         it.Slug,
		Type:         it.Type,
		Title:        it.Title,
		Excerpt:      it.Excerpt,
		Image:        it.Image,
		CategoryName: it.CategoryName,
		Origin:       origin,
	}
}
