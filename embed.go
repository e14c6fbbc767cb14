package vectorsite

import "embed"

// EmbeddedAssets contains static assets shipped with the binary:
// styles.css
//
//go:embed embedded/*
var EmbeddedAssets embed.FS

func stylesheet() ([]byte, error) {
	return EmbeddedAssets.ReadFile("embedded/styles.css")
}
