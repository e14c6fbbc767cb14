package vectorsite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/timberio/vectorsite/content"
	"github.com/timberio/vectorsite/tags"
)

// ErrNotFound is returned when a requested post does not exist.
var ErrNotFound = errors.New("post not found")

// Store wraps a SQLite database indexing the loaded posts.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets readers proceed while a reload rewrites the index; the busy
	// timeout makes writers wait instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS posts (
    slug TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    title TEXT NOT NULL,
    fm_title TEXT NOT NULL,
    description TEXT NOT NULL,
    date TEXT NOT NULL,
    author_id TEXT NOT NULL,
    tags TEXT NOT NULL,
    tag_slugs TEXT NOT NULL,
    html TEXT NOT NULL,
    body_text TEXT NOT NULL,
    source_path TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_posts_position ON posts(position);
`)
	return err
}

const postColumns = `slug, title, fm_title, description, date, author_id, tags, html, body_text, source_path`

// ReplacePosts swaps the whole index for posts in one transaction. The
// order of posts is kept as the listing order.
func (s *Store) ReplacePosts(posts []content.Post) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM posts`); err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO posts (position, ` + postColumns + `, tag_slugs) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, p := range posts {
		tagJSON, err := encodeTags(p.Metadata.Tags)
		if err != nil {
			return fmt.Errorf("index %s: %w", p.Slug, err)
		}
		_, err = stmt.Exec(i, p.Slug, p.Metadata.Title, p.FrontMatter.Title, p.Metadata.Description,
			p.Metadata.DateString, p.FrontMatter.AuthorID, tagJSON, joinTagSlugs(p.Metadata.Tags),
			p.HTML, p.Text, p.SourcePath)
		if err != nil {
			return fmt.Errorf("index %s: %w", p.Slug, err)
		}
	}
	return tx.Commit()
}

// ListPosts returns posts in listing order. If tagSlug is non-empty, results
// are filtered to posts carrying a tag with that slug.
func (s *Store) ListPosts(tagSlug string) ([]content.Post, error) {
	var rows *sql.Rows
	var err error
	if tagSlug == "" {
		rows, err = s.db.Query(`SELECT ` + postColumns + ` FROM posts ORDER BY position`)
	} else {
		rows, err = s.db.Query(`SELECT `+postColumns+` FROM posts WHERE instr(tag_slugs, ',' || ? || ',') > 0 ORDER BY position`, tags.Slug(tagSlug))
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []content.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// ListTags returns every distinct tag label in listing order of first use.
// Labels that share a slug are reported once.
func (s *Store) ListTags() ([]string, error) {
	rows, err := s.db.Query(`SELECT tags FROM posts ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seen := make(map[string]struct{})
	var result []string
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		labels, err := decodeTags(raw)
		if err != nil {
			return nil, err
		}
		for _, t := range labels {
			slug := tags.Slug(t)
			if _, ok := seen[slug]; ok || slug == "" {
				continue
			}
			seen[slug] = struct{}{}
			result = append(result, t)
		}
	}
	return result, rows.Err()
}

// GetPost returns a single post by slug.
func (s *Store) GetPost(slug string) (content.Post, error) {
	row := s.db.QueryRow(`SELECT `+postColumns+` FROM posts WHERE slug = ?`, slug)
	p, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return content.Post{}, ErrNotFound
	}
	return p, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPost(row scanner) (content.Post, error) {
	var slug, title, fmTitle, description, date, authorID, tagString, html, text, source string
	if err := row.Scan(&slug, &title, &fmTitle, &description, &date, &authorID, &tagString, &html, &text, &source); err != nil {
		return content.Post{}, err
	}
	postTags, err := decodeTags(tagString)
	if err != nil {
		return content.Post{}, err
	}
	return content.Post{
		Slug:       slug,
		SourcePath: source,
		FrontMatter: content.FrontMatter{
			AuthorID:    authorID,
			Title:       fmTitle,
			Description: description,
			Date:        date,
			Tags:        postTags,
		},
		Metadata: content.Metadata{
			Title:       title,
			Description: description,
			DateString:  date,
			Permalink:   content.Permalink(slug),
			Tags:        postTags,
		},
		HTML: html,
		Text: text,
	}, nil
}

// encodeTags stores tag labels as a JSON array so labels containing commas
// survive the round trip.
func encodeTags(raw []string) (string, error) {
	labels := FilterEmpty(raw)
	if labels == nil {
		labels = []string{}
	}
	b, err := json.Marshal(labels)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeTags is the inverse of encodeTags. Empty input yields no tags.
func decodeTags(tagJSON string) ([]string, error) {
	if tagJSON == "" {
		return nil, nil
	}
	var labels []string
	if err := json.Unmarshal([]byte(tagJSON), &labels); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	if len(labels) == 0 {
		return nil, nil
	}
	return labels, nil
}

// joinTagSlugs builds the ",slug,slug," column matched by ListPosts. Slugs
// only contain [a-z0-9-], so the comma delimiter is unambiguous.
func joinTagSlugs(raw []string) string {
	slugs := make([]string, 0, len(raw))
	for _, t := range raw {
		slugs = append(slugs, tags.Slug(t))
	}
	return "," + strings.Join(FilterEmpty(slugs), ",") + ","
}
