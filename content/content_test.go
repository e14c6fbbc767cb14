package content

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/PuerkitoBio/goquery"
)

const samplePost = `---
author_id: ben
title: "Vector 0.9 Release"
description: "Kubernetes, ARC, and more"
tags: ["type: announcement", "domain: releases"]
---

Vector **0.9** is out. Read the [notes](https://github.com/timberio/vector/releases).

## Highlights

- adaptive concurrency
`

func TestParse(t *testing.T) {
	p, err := ParseBytes("2020-05-01-vector-0-9-0.md", []byte(samplePost))
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}
	if p.Slug != "vector-0-9-0" {
		t.Errorf("Slug = %q", p.Slug)
	}
	if p.FrontMatter.AuthorID != "ben" {
		t.Errorf("AuthorID = %q", p.FrontMatter.AuthorID)
	}
	if p.Metadata.DateString != "2020-05-01" {
		t.Errorf("DateString = %q, want date from file name", p.Metadata.DateString)
	}
	if p.Metadata.Title != "Vector 0.9 Release" {
		t.Errorf("Title = %q", p.Metadata.Title)
	}
	if p.Metadata.Permalink != "/blog/vector-0-9-0/" {
		t.Errorf("Permalink = %q", p.Metadata.Permalink)
	}
	if len(p.Metadata.Tags) != 2 || p.Metadata.Tags[1] != "domain: releases" {
		t.Errorf("Tags = %v", p.Metadata.Tags)
	}
	if !strings.Contains(p.HTML, `<h2 id="highlights">Highlights</h2>`) {
		t.Errorf("HTML = %q", p.HTML)
	}
	if strings.Contains(p.Text, "<") {
		t.Errorf("Text contains markup: %q", p.Text)
	}
	if !strings.HasPrefix(p.String(), "Vector 0.9 is out.") {
		t.Errorf("String() = %q", p.String())
	}
}

func TestParseFrontMatterOverrides(t *testing.T) {
	src := "---\nslug: custom\ndate: 2019-01-02\n---\n\nFirst paragraph here.\n\nSecond one."
	p, err := ParseBytes("2020-05-01-ignored.md", []byte(src))
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}
	if p.Slug != "custom" || p.Metadata.DateString != "2019-01-02" {
		t.Errorf("Slug/Date = %q/%q", p.Slug, p.Metadata.DateString)
	}
	if p.Metadata.Title != "custom" {
		t.Errorf("Title fallback = %q", p.Metadata.Title)
	}
	if p.Metadata.Description != "First paragraph here." {
		t.Errorf("Description fallback = %q", p.Metadata.Description)
	}
}

func TestParseEmptyBody(t *testing.T) {
	p, err := ParseBytes("2020-01-01-empty.md", []byte("---\ntitle: Empty\n---\n"))
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}
	if p.Text != "" {
		t.Errorf("Text = %q, want empty", p.Text)
	}
}

func TestLoadFSSortsAndPaginates(t *testing.T) {
	fsys := fstest.MapFS{
		"2020-01-01-first.md":  {Data: []byte("---\ntitle: First\n---\nOne.")},
		"2020-03-01-third.md":  {Data: []byte("---\ntitle: Third\n---\nThree.")},
		"2020-02-01-second.md": {Data: []byte("---\ntitle: Second\n---\nTwo.")},
		"draft.md":             {Data: []byte("---\ntitle: Draft\ndraft: true\n---\nHidden.")},
		"notes.txt":            {Data: []byte("not a post")},
		"broken.md":            {Data: []byte("---\ntitle: [unclosed\n---\nbody")},
	}
	posts, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	var slugs []string
	for _, p := range posts {
		slugs = append(slugs, p.Slug)
	}
	if got := strings.Join(slugs, ","); got != "third,second,first" {
		t.Fatalf("order = %s", got)
	}

	newest, middle, oldest := posts[0].Metadata, posts[1].Metadata, posts[2].Metadata
	if newest.PrevItem != nil {
		t.Errorf("newest PrevItem = %+v, want nil", newest.PrevItem)
	}
	if newest.NextItem == nil || newest.NextItem.Title != "Second" {
		t.Errorf("newest NextItem = %+v", newest.NextItem)
	}
	if middle.PrevItem == nil || middle.PrevItem.Permalink != "/blog/third/" {
		t.Errorf("middle PrevItem = %+v", middle.PrevItem)
	}
	if middle.NextItem == nil || middle.NextItem.Permalink != "/blog/first/" {
		t.Errorf("middle NextItem = %+v", middle.NextItem)
	}
	if oldest.NextItem != nil {
		t.Errorf("oldest NextItem = %+v, want nil", oldest.NextItem)
	}
}

func TestLoadFSKeepsNewestOfDuplicateSlugs(t *testing.T) {
	fsys := fstest.MapFS{
		"2020-05-01-release.md": {Data: []byte("---\ntitle: Old Release\n---\nOld.")},
		"2021-05-01-release.md": {Data: []byte("---\ntitle: New Release\n---\nNew.")},
		"2019-01-01-other.md":   {Data: []byte("---\ntitle: Other\nslug: release\n---\nOther.")},
		"2018-01-01-kept.md":    {Data: []byte("---\ntitle: Kept\n---\nKept.")},
	}
	posts, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].Slug != "release" || posts[0].Metadata.Title != "New Release" {
		t.Errorf("first = %s %q, want newest release", posts[0].Slug, posts[0].Metadata.Title)
	}
	if posts[1].Slug != "kept" {
		t.Errorf("second = %s, want kept", posts[1].Slug)
	}
	if next := posts[0].Metadata.NextItem; next == nil || next.Title != "Kept" {
		t.Errorf("NextItem = %+v, want Kept", next)
	}
}

func TestSortUnparseableDatesLast(t *testing.T) {
	posts := []Post{
		{Slug: "b", Metadata: Metadata{DateString: "not-a-date"}},
		{Slug: "a", Metadata: Metadata{DateString: "2020-01-01"}},
		{Slug: "c", Metadata: Metadata{DateString: "2021-01-01"}},
	}
	Sort(posts)
	if posts[0].Slug != "c" || posts[1].Slug != "a" || posts[2].Slug != "b" {
		t.Errorf("order = %s,%s,%s", posts[0].Slug, posts[1].Slug, posts[2].Slug)
	}
}

func TestPlainText(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<p>Hello <strong>world</strong></p>\n<p>again</p>"))
	if err != nil {
		t.Fatal(err)
	}
	if got := plainText(doc.Selection); got != "Hello world again" {
		t.Errorf("plainText = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("one two three four", 9); got != "one two…" {
		t.Errorf("truncate = %q", got)
	}
}
