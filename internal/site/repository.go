package site

import (
	"fmt"
	"time"

	"github.com/julienpequegnot/wayfare/internal/database"
)

// Site is one of the travel blogs published from this installation.
type Site struct {
	ID        int64
	Name      string
	Domain    string
	FeedURL   string
	CreatedAt time.Time
}

type Repository struct {
	db *database.DB
}

func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Add(name, domain, feedURL string) (*Site, error) {
	result, err := r.db.Exec(
		`INSERT INTO sites (name, domain, feed_url) VALUES (?, ?, ?)`,
		name, domain, feedURL,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert site: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &Site{
		ID:      id,
		Name:    name,
		Domain:  domain,
		FeedURL: feedURL,
	}, nil
}

func (r *Repository) List() ([]Site, error) {
	rows, err := r.db.Query(`SELECT id, name, domain, COALESCE(feed_url, ''), created_at FROM sites ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sites []Site
	for rows.Next() {
		var s Site
		if err := rows.Scan(&s.ID, &s.Name, &s.Domain, &s.FeedURL, &s.CreatedAt); err != nil {
			return nil, err
		}
		sites = append(sites, s)
	}
	return sites, rows.Err()
}

func (r *Repository) GetByDomain(domain string) (*Site, error) {
	var s Site
	err := r.db.QueryRow(
		`SELECT id, name, domain, COALESCE(feed_url, ''), created_at FROM sites WHERE domain = ?`,
		domain,
	).Scan(&s.ID, &s.Name, &s.Domain, &s.FeedURL, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
