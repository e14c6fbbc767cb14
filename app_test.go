package vectorsite

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/timberio/vectorsite/site"
)

var testContent = map[string]string{
	"2020-05-01-hello-world.md": `---
title: Hello World
author_id: ben
description: First post.
tags: ["type: announcement", "domain: logs"]
---

Vector is a **lightweight** and ultra-fast tool for building observability pipelines.
`,
	"2020-04-01-older-news.md": `---
title: Older News
author_id: luke
tags: ["type: guide"]
---

An older post about metrics.
`,
	"2020-03-01-draft.md": `---
title: Unfinished
draft: true
---

Not yet.
`,
}

func testSiteConfig() site.Config {
	cfg := site.Config{
		Title: "Vector",
		URL:   "https://vector.dev",
		CustomFields: site.CustomFields{Metadata: site.Metadata{Team: []site.TeamMember{
			{ID: "ben", Name: "Ben Johnson", Avatar: "https://github.com/binarylogic.png"},
			{ID: "luke", Name: "Luke Steensen", Avatar: "https://github.com/lukesteensen.png"},
		}}},
	}
	cfg.SetDefaults()
	return cfg
}

func writeContent(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// newTestApp returns an opened App over a temporary content directory.
func newTestApp(t *testing.T) *App {
	t.Helper()
	root := t.TempDir()
	contentDir := filepath.Join(root, "blog")
	writeContent(t, contentDir, testContent)

	a := New(Config{
		DatabasePath: filepath.Join(root, "data", "site.db"),
		ContentDir:   contentDir,
	}, testSiteConfig(), WithLogger(quietLogger()), WithStaticDir(filepath.Join(root, "static")))
	if err := a.Open(); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

func TestOpenLoadsContent(t *testing.T) {
	a := newTestApp(t)
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 published posts, got %d", len(posts))
	}
	if posts[0].Slug != "hello-world" || posts[1].Slug != "older-news" {
		t.Errorf("order = %s, %s", posts[0].Slug, posts[1].Slug)
	}
}

func TestOpenWithoutContentDir(t *testing.T) {
	root := t.TempDir()
	a := New(Config{
		DatabasePath: filepath.Join(root, "site.db"),
		ContentDir:   filepath.Join(root, "missing"),
	}, testSiteConfig(), WithLogger(quietLogger()))
	if err := a.Open(); err != nil {
		t.Fatalf("Open should tolerate a missing content dir: %v", err)
	}
	defer a.Close()
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 0 {
		t.Errorf("expected no posts, got %d", len(posts))
	}
}

func TestOpenWithDuplicateSlugs(t *testing.T) {
	root := t.TempDir()
	contentDir := filepath.Join(root, "blog")
	writeContent(t, contentDir, map[string]string{
		"2020-05-01-release.md": "---\ntitle: Old Release\n---\n\nOld.\n",
		"2021-05-01-release.md": "---\ntitle: New Release\n---\n\nNew.\n",
	})
	a := New(Config{
		DatabasePath: filepath.Join(root, "site.db"),
		ContentDir:   contentDir,
	}, testSiteConfig(), WithLogger(quietLogger()))
	if err := a.Open(); err != nil {
		t.Fatalf("Open should skip duplicate slugs: %v", err)
	}
	defer a.Close()

	post, err := a.Cache.GetPost("release")
	if err != nil {
		t.Fatal(err)
	}
	if post.Metadata.Title != "New Release" {
		t.Errorf("Title = %q, want the newest post", post.Metadata.Title)
	}
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 1 {
		t.Errorf("expected 1 post, got %d", len(posts))
	}
}

func TestReloadPicksUpNewPosts(t *testing.T) {
	a := newTestApp(t)
	a.Pages.Set("/blog/", []byte("stale"))

	writeContent(t, a.Config.ContentDir, map[string]string{
		"2020-06-01-newest.md": "---\ntitle: Newest\n---\n\nFresh.\n",
	})
	if err := a.Reload(); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if _, ok := a.Pages.Get("/blog/"); ok {
		t.Error("Reload should flush the page cache")
	}
	post, err := a.Cache.GetPost("hello-world")
	if err != nil {
		t.Fatal(err)
	}
	if post.Metadata.PrevItem == nil || post.Metadata.PrevItem.Title != "Newest" {
		t.Errorf("PrevItem = %+v, want Newest", post.Metadata.PrevItem)
	}
}
