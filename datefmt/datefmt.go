// Package datefmt parses post dates and renders them for display.
package datefmt

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// ErrUnparseableDate is returned when a date string matches none of the
// accepted layouts.
var ErrUnparseableDate = errors.New("unparseable date")

// ISODate is the canonical storage layout for post dates.
const ISODate = "2006-01-02"

var layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	ISODate,
}

// Parse parses an ISO-like date string. Values without a zone are UTC;
// RFC 3339 values keep their offset so the calendar day is the author's.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableDate, s)
}

// Display renders t as "May 1st, 2020".
func Display(t time.Time) string {
	return t.Format("Jan") + " " + humanize.Ordinal(t.Day()) + t.Format(", 2006")
}

// Format parses s and renders it with Display.
func Format(s string) (string, error) {
	t, err := Parse(s)
	if err != nil {
		return "", err
	}
	return Display(t), nil
}

var filenameDate = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})-(.+)$`)

// FromFilename splits a "2020-05-01-some-post.md" style name into its date
// and the remaining name without extension. ok is false when the name has no
// valid date prefix.
func FromFilename(name string) (date string, rest string, ok bool) {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	m := filenameDate.FindStringSubmatch(base)
	if m == nil {
		return "", base, false
	}
	if _, err := time.Parse(ISODate, m[1]); err != nil {
		return "", base, false
	}
	return m[1], m[2], true
}
