package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	conn *sql.DB
	path string
}

func New(path string) (*DB, error) {
	conn, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{conn: conn, path: path}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) Path() string {
	return db.path
}

func (db *DB) Exec(query string, args ...any) (sql.Result, error) {
	return db.conn.Exec(query, args...)
}

func (db *DB) Query(query string, args ...any) (*sql.Rows, error) {
	return db.conn.Query(query, args...)
}

func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.conn.QueryContext(ctx, query, args...)
}

func (db *DB) QueryRow(query string, args ...any) *sql.Row {
	return db.conn.QueryRow(query, args...)
}

func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sites (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		domain TEXT NOT NULL UNIQUE,
		feed_url TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS posts (
		id INTEGER PRIMARY KEY,
		site_id INTEGER NOT NULL REFERENCES sites(id),
		slug TEXT NOT NULL UNIQUE,
		title_en TEXT NOT NULL,
		title_th TEXT NOT NULL DEFAULT '',
		excerpt_en TEXT NOT NULL DEFAULT '',
		excerpt_th TEXT NOT NULL DEFAULT '',
		image TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		category_slug TEXT NOT NULL DEFAULT '',
		tags TEXT NOT NULL DEFAULT '',
		keywords TEXT NOT NULL DEFAULT '',
		page_type TEXT NOT NULL DEFAULT '',
		published BOOLEAN NOT NULL DEFAULT TRUE,
		published_at DATETIME,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		deleted_at DATETIME
	);

	CREATE INDEX IF NOT EXISTS idx_posts_site ON posts(site_id);
	CREATE INDEX IF NOT EXISTS idx_posts_published ON posts(published, deleted_at, published_at DESC);
	CREATE INDEX IF NOT EXISTS idx_posts_category_slug ON posts(category_slug);
	`

	_, err := db.conn.Exec(schema)
	return err
}
