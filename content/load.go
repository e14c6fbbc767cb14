package content

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/timberio/vectorsite/datefmt"
)

// LoadDir loads every .md and .mdx file under dir. Files that fail to parse,
// drafts, and older posts reusing a slug are skipped. The result is sorted newest first and paginated.
func LoadDir(dir string) ([]Post, error) {
	return LoadFS(os.DirFS(dir))
}

// LoadFS is LoadDir over an fs.FS.
func LoadFS(fsys fs.FS) ([]Post, error) {
	var posts []Post
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isPostFile(path) {
			return nil
		}
		src, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		p, err := ParseBytes(path, src)
		if err != nil {
			logrus.WithError(err).WithField("file", path).Warn("skipping post")
			return nil
		}
		if p.FrontMatter.Draft {
			logrus.WithField("file", path).Debug("skipping draft")
			return nil
		}
		posts = append(posts, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load posts: %w", err)
	}
	Sort(posts)
	return Paginate(dedupe(posts)), nil
}

// dedupe drops posts whose slug is already taken by a newer post. posts must
// be sorted.
func dedupe(posts []Post) []Post {
	seen := make(map[string]string, len(posts))
	out := posts[:0]
	for _, p := range posts {
		if kept, ok := seen[p.Slug]; ok {
			logrus.WithFields(logrus.Fields{
				"file": p.SourcePath,
				"slug": p.Slug,
				"kept": kept,
			}).Warn("skipping post with duplicate slug")
			continue
		}
		seen[p.Slug] = p.SourcePath
		out = append(out, p)
	}
	return out
}

func isPostFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".mdx":
		return true
	}
	return false
}

// Sort orders posts newest first. Posts with unparseable dates sort last;
// ties break on slug.
func Sort(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		ti, erri := datefmt.Parse(posts[i].Metadata.DateString)
		tj, errj := datefmt.Parse(posts[j].Metadata.DateString)
		switch {
		case erri != nil && errj != nil:
			return posts[i].Slug < posts[j].Slug
		case erri != nil:
			return false
		case errj != nil:
			return true
		case !ti.Equal(tj):
			return ti.After(tj)
		}
		return posts[i].Slug < posts[j].Slug
	})
}

// Paginate returns a copy of posts, assumed newest first, with PrevItem set
// to the newer neighbor and NextItem to the older one.
func Paginate(posts []Post) []Post {
	out := make([]Post, len(posts))
	copy(out, posts)
	for i := range out {
		out[i].Metadata.PrevItem, out[i].Metadata.NextItem = neighbors(posts, i)
	}
	return out
}

func neighbors(posts []Post, i int) (prev, next *PostLink) {
	if i > 0 {
		l := posts[i-1].Link()
		prev = &l
	}
	if i+1 < len(posts) {
		l := posts[i+1].Link()
		next = &l
	}
	return prev, next
}
