// Package moderation masks configured words in message content at display
// time. It is strictly a rendering concern: session state keeps the
// original text untouched.
package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Masker finds configured words case-insensitively and replaces their
// characters with a mask rune, preserving message length and spacing.
type Masker struct {
	matcher  *goahocorasick.Machine
	maskChar rune
}

// NewMasker builds the Aho-Corasick automaton over the lowercased word
// list. An empty list yields a masker that passes text through unchanged.
func NewMasker(words []string, maskChar rune) (*Masker, error) {
	if len(words) == 0 {
		return &Masker{maskChar: maskChar}, nil
	}

	patterns := make([][]rune, len(words))
	for i, word := range words {
		patterns[i] = lowerRunes([]rune(word))
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Masker{matcher: m, maskChar: maskChar}, nil
}

// Mask replaces every occurrence of a configured word with mask runes.
// Matching is done on a lowercased copy; per-rune lowering keeps rune
// positions aligned, so spans map straight back onto the original text.
func (m *Masker) Mask(text string) string {
	if m.matcher == nil || text == "" {
		return text
	}

	original := []rune(text)
	spans := m.matcher.MultiPatternSearch(lowerRunes(original), false)
	if len(spans) == 0 {
		return text
	}

	for _, span := range spans {
		start := span.Pos
		end := start + len(span.Word)
		if start < 0 || end > len(original) {
			continue
		}
		for i := start; i < end; i++ {
			original[i] = m.maskChar
		}
	}
	return string(original)
}

func lowerRunes(runes []rune) []rune {
	lowered := make([]rune, len(runes))
	for i, r := range runes {
		lowered[i] = unicode.ToLower(r)
	}
	return lowered
}
