// Package lexicon holds the static pattern tables the risk engine scores
// against: weighted suspicious-term lists per factor, auxiliary term lists
// for the contact/email/URL heuristics, and the trusted-domain table.
//
// A Store is immutable after construction. Hot reload replaces the whole
// Store rather than mutating it in place.
package lexicon

import (
	"fmt"

	"github.com/humai-verify/screener/internal/domain"
)

// Pattern is one weighted suspicious term or phrase. Matching is
// case-insensitive and diacritic-insensitive substring matching.
type Pattern struct {
	Text   string `json:"text"   yaml:"text"`
	Weight int    `json:"weight" yaml:"weight"`
}

// Heuristics holds the numeric thresholds used by scorer-specific rules.
type Heuristics struct {
	// CompensationMin is the lowest monthly figure considered realistic.
	// Figures below it suggest exploitative or bait compensation.
	CompensationMin int `yaml:"compensation_min"`
	// CompensationMax is the highest monthly figure considered realistic
	// for an unqualified posting. Figures above it suggest bait.
	CompensationMax int `yaml:"compensation_max"`
}

// Store is the read-only lexicon queried by the factor scorers and the URL
// trust classifier.
type Store struct {
	patterns       map[domain.Factor][]Pattern
	trustedDomains map[string]domain.DomainType

	messengerTerms []string
	freeMailHosts  []string
	urlShorteners  []string
	suspiciousTLDs []string

	domainHints map[domain.DomainType][]string

	heuristics Heuristics
}

// NewStore builds a validated Store from the given tables. It returns an
// error on empty or malformed pattern entries; callers treat that error as
// fatal at startup.
func NewStore(
	patterns map[domain.Factor][]Pattern,
	trustedDomains map[string]domain.DomainType,
	heuristics Heuristics,
) (*Store, error) {
	for factor, list := range patterns {
		if !factor.Valid() {
			return nil, fmt.Errorf("lexicon: unknown factor %q", factor)
		}
		for _, p := range list {
			if p.Text == "" {
				return nil, fmt.Errorf("lexicon: empty pattern for factor %s", factor)
			}
			if p.Weight <= 0 || p.Weight > 100 {
				return nil, fmt.Errorf("lexicon: pattern %q for factor %s has weight %d outside (0,100]",
					p.Text, factor, p.Weight)
			}
		}
	}

	for dom, typ := range trustedDomains {
		if dom == "" {
			return nil, fmt.Errorf("lexicon: empty trusted domain entry")
		}
		if typ == domain.DomainTypeUnknown {
			return nil, fmt.Errorf("lexicon: trusted domain %q classified as UNKNOWN", dom)
		}
	}

	return &Store{
		patterns:       patterns,
		trustedDomains: trustedDomains,
		messengerTerms: defaultMessengerTerms,
		freeMailHosts:  defaultFreeMailHosts,
		urlShorteners:  defaultURLShorteners,
		suspiciousTLDs: defaultSuspiciousTLDs,
		domainHints:    defaultDomainHints,
		heuristics:     heuristics,
	}, nil
}

// Default returns the Store built from the embedded tables.
func Default() (*Store, error) {
	return NewStore(defaultPatterns(), defaultTrustedDomains(), defaultHeuristics)
}

// Patterns returns the pattern list for one factor. The returned slice must
// not be mutated.
func (s *Store) Patterns(factor domain.Factor) []Pattern {
	return s.patterns[factor]
}

// AllPatterns returns the full pattern table keyed by factor. The returned
// map must not be mutated.
func (s *Store) AllPatterns() map[domain.Factor][]Pattern {
	return s.patterns
}

// TrustedDomain looks up an exact domain in the trusted table.
func (s *Store) TrustedDomain(dom string) (domain.DomainType, bool) {
	typ, ok := s.trustedDomains[dom]
	return typ, ok
}

// DomainHints returns the naming hints used to categorize a trusted domain.
func (s *Store) DomainHints(typ domain.DomainType) []string {
	return s.domainHints[typ]
}

// MessengerTerms lists messaging-app names used by the contact and platform
// scorers.
func (s *Store) MessengerTerms() []string { return s.messengerTerms }

// FreeMailHosts lists free webmail providers flagged by the email scorer.
func (s *Store) FreeMailHosts() []string { return s.freeMailHosts }

// URLShorteners lists link-shortener hosts flagged by the URL scorer.
func (s *Store) URLShorteners() []string { return s.urlShorteners }

// SuspiciousTLDs lists top-level domains flagged by the URL scorer.
func (s *Store) SuspiciousTLDs() []string { return s.suspiciousTLDs }

// Heuristics returns the numeric scorer thresholds.
func (s *Store) Heuristics() Heuristics { return s.heuristics }

// PatternCount returns the total number of patterns across all factors.
func (s *Store) PatternCount() int {
	total := 0
	for _, list := range s.patterns {
		total += len(list)
	}
	return total
}

// MergeOverrides returns a new Store with rows merged over s's pattern
// table: rows for a factor present in overrides replace that factor's
// default list entirely. Used when a lexicon database supplies rules.
func (s *Store) MergeOverrides(overrides map[domain.Factor][]Pattern) (*Store, error) {
	merged := make(map[domain.Factor][]Pattern, len(s.patterns))
	for factor, list := range s.patterns {
		merged[factor] = list
	}
	for factor, list := range overrides {
		merged[factor] = list
	}
	return NewStore(merged, s.trustedDomains, s.heuristics)
}
