// Package chunker splits text into utterance-sized segments for speech synthesis.
package chunker

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	DefaultTargetSize = 160
	DefaultMaxSize    = 240
)

// Options configures chunking behavior. Sizes are in runes.
type Options struct {
	TargetSize int
	MaxSize    int
}

// DefaultOptions returns default chunking options.
func DefaultOptions() Options {
	return Options{
		TargetSize: DefaultTargetSize,
		MaxSize:    DefaultMaxSize,
	}
}

// sentenceEnd holds the runes that close a sentence, Arabic and Latin.
var sentenceEnd = map[rune]bool{
	'.': true, '!': true, '?': true, '؟': true, '؛': true, ';': true, '\n': true, '…': true,
}

// Chunk splits text into segments. Short text (<= MaxSize) returns a single
// segment. Sentences are merged up to TargetSize; a sentence longer than
// MaxSize is split on word boundaries.
func Chunk(text string, opts Options) []string {
	if opts.TargetSize == 0 {
		opts = DefaultOptions()
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if utf8.RuneCountInString(text) <= opts.MaxSize {
		return []string{text}
	}

	return merge(splitSentences(text), opts)
}

// splitSentences breaks text after each sentence-ending rune.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		t := strings.TrimSpace(current.String())
		if t != "" {
			sentences = append(sentences, t)
		}
		current.Reset()
	}

	for _, r := range text {
		current.WriteRune(r)
		if sentenceEnd[r] {
			flush()
		}
	}
	flush()

	return sentences
}

// merge combines short sentences and splits oversized ones.
func merge(sentences []string, opts Options) []string {
	var results []string
	var accum string

	flushAccum := func() {
		if accum == "" {
			return
		}
		if utf8.RuneCountInString(accum) > opts.MaxSize {
			results = append(results, hardSplit(accum, opts)...)
		} else {
			results = append(results, accum)
		}
		accum = ""
	}

	for _, s := range sentences {
		if accum == "" {
			accum = s
			continue
		}
		combined := accum + " " + s
		if utf8.RuneCountInString(combined) <= opts.TargetSize {
			accum = combined
		} else {
			flushAccum()
			accum = s
		}
	}
	flushAccum()

	return results
}

// hardSplit breaks text that exceeds MaxSize on word boundaries.
func hardSplit(text string, opts Options) []string {
	words := strings.FieldsFunc(text, unicode.IsSpace)
	var results []string
	var current []string
	curLen := 0

	for _, w := range words {
		wl := utf8.RuneCountInString(w)
		if curLen+wl > opts.TargetSize && len(current) > 0 {
			results = append(results, strings.Join(current, " "))
			current = nil
			curLen = 0
		}
		current = append(current, w)
		curLen += wl + 1
	}
	if len(current) > 0 {
		results = append(results, strings.Join(current, " "))
	}

	return results
}
