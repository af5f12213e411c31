// Package analyzer implements the risk scoring engine for job postings.
// matcher.go provides Aho-Corasick based lexicon matching for O(n+m)
// pattern lookup over normalized Portuguese text.
package analyzer

import (
	"strings"
	"unicode/utf8"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/humai-verify/screener/internal/lexicon"
)

// PatternHit records a single lexicon pattern found in the analyzed text.
type PatternHit struct {
	Pattern lexicon.Pattern
	RunePos int    // rune offset of the first occurrence in the text
	Snippet string // the matched span cut from the original text
}

// MatchResult aggregates all lexicon hits for one factor over one text.
type MatchResult struct {
	Score    int          // sum of matched pattern weights, uncapped
	Hits     []PatternHit // one entry per matched pattern
	Evidence string       // snippet of the strongest hit, original casing
}

// Matcher finds weighted lexicon patterns in free text. It is built once
// per factor and is safe for concurrent use after construction.
type Matcher struct {
	patterns   []lexicon.Pattern
	normalized []string
	ac         *ahocorasick.Matcher
}

// NewMatcher builds the Aho-Corasick automaton over the normalized pattern
// texts. Patterns that normalize to the empty string are dropped.
func NewMatcher(patterns []lexicon.Pattern) *Matcher {
	m := &Matcher{
		patterns:   make([]lexicon.Pattern, 0, len(patterns)),
		normalized: make([]string, 0, len(patterns)),
	}
	for _, p := range patterns {
		norm := normalizeText(strings.TrimSpace(p.Text))
		if norm == "" {
			continue
		}
		m.patterns = append(m.patterns, p)
		m.normalized = append(m.normalized, norm)
	}
	if len(m.normalized) > 0 {
		m.ac = ahocorasick.NewStringMatcher(m.normalized)
	}
	return m
}

// PatternCount returns the number of indexed patterns.
func (m *Matcher) PatternCount() int {
	return len(m.patterns)
}

// Match runs the automaton over text and accumulates one hit per distinct
// pattern. Evidence is the original-text span of the best hit: highest
// weight wins, ties broken by earliest position, then by longest pattern.
func (m *Matcher) Match(text string) MatchResult {
	if m.ac == nil || text == "" {
		return MatchResult{}
	}

	norm := normalizeText(text)
	indices := m.ac.Match([]byte(norm))
	if len(indices) == 0 {
		return MatchResult{}
	}

	original := []rune(text)
	result := MatchResult{Hits: make([]PatternHit, 0, len(indices))}
	best := -1

	for _, idx := range indices {
		if idx >= len(m.patterns) {
			continue
		}
		bytePos := strings.Index(norm, m.normalized[idx])
		if bytePos < 0 {
			continue
		}
		runePos := utf8.RuneCountInString(norm[:bytePos])
		runeLen := utf8.RuneCountInString(m.normalized[idx])
		end := runePos + runeLen
		if end > len(original) {
			end = len(original)
		}

		hit := PatternHit{
			Pattern: m.patterns[idx],
			RunePos: runePos,
			Snippet: string(original[runePos:end]),
		}
		result.Score += hit.Pattern.Weight
		result.Hits = append(result.Hits, hit)

		if best < 0 || betterHit(hit, result.Hits[best]) {
			best = len(result.Hits) - 1
		}
	}

	if best >= 0 {
		result.Evidence = result.Hits[best].Snippet
	}
	return result
}

// betterHit reports whether a should be preferred over b as evidence.
func betterHit(a, b PatternHit) bool {
	if a.Pattern.Weight != b.Pattern.Weight {
		return a.Pattern.Weight > b.Pattern.Weight
	}
	if a.RunePos != b.RunePos {
		return a.RunePos < b.RunePos
	}
	return len(a.Snippet) > len(b.Snippet)
}
