// Package readingtime estimates how long a body of text takes to read.
package readingtime

import (
	"math"
	"strconv"
	"time"
	"unicode"
)

// DefaultWordsPerMinute is the assumed reading speed.
const DefaultWordsPerMinute = 200

// Stats is a reading estimate for a single text.
type Stats struct {
	Text    string        // e.g. "3 min read"
	Minutes float64       // unrounded minutes
	Time    time.Duration // Minutes as a duration
	Words   int
}

type options struct {
	wordsPerMinute int
}

// Option configures Estimate.
type Option func(*options)

// WithWordsPerMinute overrides the reading speed. Non-positive values are ignored.
func WithWordsPerMinute(wpm int) Option {
	return func(o *options) {
		if wpm > 0 {
			o.wordsPerMinute = wpm
		}
	}
}

// Estimate counts the words in text and derives the reading time. Empty text
// yields zero words and a "0 min read" estimate.
func Estimate(text string, opts ...Option) Stats {
	o := options{wordsPerMinute: DefaultWordsPerMinute}
	for _, opt := range opts {
		opt(&o)
	}
	words := CountWords(text)
	minutes := float64(words) / float64(o.wordsPerMinute)
	// Round to two decimals before the ceiling so 1.001 minutes reads as 1.
	displayed := int(math.Ceil(math.Round(minutes*100) / 100))
	return Stats{
		Text:    strconv.Itoa(displayed) + " min read",
		Minutes: minutes,
		Time:    time.Duration(minutes * float64(time.Minute)),
		Words:   words,
	}
}

// CountWords counts whitespace separated runs that contain at least one letter
// or digit. Each CJK ideograph, kana or hangul syllable counts as a word.
func CountWords(text string) int {
	words := 0
	inWord := false
	for _, r := range text {
		switch {
		case isCJK(r):
			words++
			inWord = false
		case unicode.IsSpace(r):
			inWord = false
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if !inWord {
				words++
				inWord = true
			}
		}
	}
	return words
}

func isCJK(r rune) bool {
	return unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul)
}
