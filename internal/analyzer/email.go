package analyzer

import (
	"strings"
	"unicode"

	"github.com/humai-verify/screener/internal/domain"
	"github.com/humai-verify/screener/internal/lexicon"
)

// emailScorer evaluates contact emails: free mail hosts for what claims to
// be a company, throwaway-looking local parts, plus lexicon patterns.
type emailScorer struct {
	matcher   *Matcher
	freeHosts map[string]bool
}

func newEmailScorer(store *lexicon.Store) FieldScorer {
	hosts := make(map[string]bool, len(store.FreeMailHosts()))
	for _, h := range store.FreeMailHosts() {
		hosts[strings.ToLower(h)] = true
	}
	return &emailScorer{
		matcher:   NewMatcher(store.Patterns(domain.FactorEmail)),
		freeHosts: hosts,
	}
}

func (s *emailScorer) Factor() domain.Factor { return domain.FactorEmail }

func (s *emailScorer) Score(fields *domain.PostingFields) domain.FactorScore {
	emails := emailAddress.FindAllString(fields.Contacts, -1)
	if len(emails) == 0 {
		emails = emailAddress.FindAllString(fields.RawText, -1)
	}
	if len(emails) == 0 {
		return domain.FactorScore{Factor: domain.FactorEmail}
	}

	// Score every address found, keep the worst one.
	best := domain.FactorScore{Factor: domain.FactorEmail}
	for _, addr := range emails {
		if sc := s.scoreAddress(addr); sc.Score > best.Score {
			best = sc
		}
	}
	return best
}

func (s *emailScorer) scoreAddress(addr string) domain.FactorScore {
	score := s.matcher.Match(addr).Score

	local, host, found := strings.Cut(strings.ToLower(addr), "@")
	if found {
		if s.freeHosts[host] {
			score += freeMailBonus
		}
		if digitHeavy(local) {
			score += numericLocalBonus
		}
	}

	result := domain.FactorScore{Factor: domain.FactorEmail, Score: clampScore(score)}
	if result.Score > 0 {
		result.Evidence = addr
	}
	return result
}

// digitHeavy reports whether at least half of the local part is digits,
// as in "recruta2024999@gmail.com".
func digitHeavy(local string) bool {
	if len(local) < 4 {
		return false
	}
	digits := 0
	for _, r := range local {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return digits*2 >= len(local)
}
