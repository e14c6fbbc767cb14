package vectorsite

import (
	"sync"
	"time"

	"github.com/timberio/vectorsite/content"
	"github.com/timberio/vectorsite/tags"
)

// PostCache is an in-memory cache of indexed posts and tags with TTL. Cached
// posts carry their newer/older neighbor links.
type PostCache struct {
	mu      sync.RWMutex
	posts   []content.Post
	tags    []string
	fetched time.Time
	ttl     time.Duration
	store   *Store
}

// NewPostCache creates a PostCache backed by the given Store.
func NewPostCache(s *Store, ttl time.Duration) *PostCache {
	return &PostCache{store: s, ttl: ttl}
}

func (c *PostCache) valid() bool {
	return c.posts != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *PostCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.tags = nil
	c.mu.Unlock()
}

func (c *PostCache) load() error {
	if c.valid() {
		return nil
	}
	posts, err := c.store.ListPosts("")
	if err != nil {
		return err
	}
	postTags, err := c.store.ListTags()
	if err != nil {
		return err
	}
	c.posts = content.Paginate(posts)
	c.tags = postTags
	c.fetched = time.Now()
	return nil
}

// ensureLoaded returns cached posts and tags after ensuring the cache is fresh.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *PostCache) ensureLoaded() ([]content.Post, []string, error) {
	c.mu.RLock()
	if c.valid() {
		posts, postTags := c.posts, c.tags
		c.mu.RUnlock()
		return posts, postTags, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return nil, nil, err
	}
	return c.posts, c.tags, nil
}

// ListPosts returns posts newest first, optionally filtered by tag slug.
func (c *PostCache) ListPosts(tagSlug string) ([]content.Post, error) {
	posts, _, err := c.ensureLoaded()
	if err != nil {
		return nil, err
	}
	if tagSlug == "" {
		return posts, nil
	}
	normalized := tags.Slug(tagSlug)
	var filtered []content.Post
	for _, p := range posts {
		if _, ok := findTag(p.Metadata.Tags, normalized); ok {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// ListTags returns all distinct tag labels.
func (c *PostCache) ListTags() ([]string, error) {
	_, postTags, err := c.ensureLoaded()
	return postTags, err
}

// TagLabel resolves a tag slug to the label used in posts.
func (c *PostCache) TagLabel(tagSlug string) (string, bool) {
	_, postTags, err := c.ensureLoaded()
	if err != nil {
		return "", false
	}
	return findTag(postTags, tags.Slug(tagSlug))
}

// GetPost returns a single post by slug from the cache.
func (c *PostCache) GetPost(slug string) (content.Post, error) {
	posts, _, err := c.ensureLoaded()
	if err != nil {
		return content.Post{}, err
	}
	for _, p := range posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return content.Post{}, ErrNotFound
}

func findTag(labels []string, slug string) (string, bool) {
	for _, l := range labels {
		if tags.Slug(l) == slug {
			return l, true
		}
	}
	return "", false
}
