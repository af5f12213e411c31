package analyzer

import (
	"net"
	"regexp"
	"strings"

	"github.com/humai-verify/screener/internal/domain"
	"github.com/humai-verify/screener/internal/lexicon"
)

// urlScorer evaluates the source URL and any links embedded in the posting
// text: shorteners, raw IPs, throwaway TLDs, plain HTTP and bait wording in
// the URL itself.
type urlScorer struct {
	matcher    *Matcher
	shorteners map[string]bool
	badTLDs    []string
}

func newURLScorer(store *lexicon.Store) FieldScorer {
	shorteners := make(map[string]bool, len(store.URLShorteners()))
	for _, h := range store.URLShorteners() {
		shorteners[strings.ToLower(h)] = true
	}
	return &urlScorer{
		matcher:    NewMatcher(store.Patterns(domain.FactorURL)),
		shorteners: shorteners,
		badTLDs:    store.SuspiciousTLDs(),
	}
}

var embeddedURL = regexp.MustCompile(`(?i)https?://[^\s<>"']+`)

func (s *urlScorer) Factor() domain.Factor { return domain.FactorURL }

func (s *urlScorer) Score(fields *domain.PostingFields) domain.FactorScore {
	urls := make([]string, 0, 4)
	if fields.SourceURL != "" {
		urls = append(urls, fields.SourceURL)
	}
	urls = append(urls, embeddedURL.FindAllString(fields.RawText, -1)...)
	if len(urls) == 0 {
		return domain.FactorScore{Factor: domain.FactorURL}
	}

	best := domain.FactorScore{Factor: domain.FactorURL}
	for _, raw := range urls {
		if sc := s.scoreURL(raw); sc.Score > best.Score {
			best = sc
		}
	}
	return best
}

func (s *urlScorer) scoreURL(raw string) domain.FactorScore {
	score := s.matcher.Match(raw).Score
	host := extractHost(raw)

	if host != "" {
		if s.shorteners[host] {
			score += shortenerPenalty
		}
		if net.ParseIP(host) != nil {
			score += ipLiteralPenalty
		}
		for _, tld := range s.badTLDs {
			if strings.HasSuffix(host, tld) {
				score += suspiciousTLDScore
				break
			}
		}
	}
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(raw)), "http://") {
		score += plainHTTPPenalty
	}

	result := domain.FactorScore{Factor: domain.FactorURL, Score: clampScore(score)}
	if result.Score > 0 {
		result.Evidence = raw
	}
	return result
}
