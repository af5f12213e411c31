package analyzer

import (
	"regexp"
	"strings"

	"github.com/humai-verify/screener/internal/domain"
	"github.com/humai-verify/screener/internal/lexicon"
)

// contactScorer flags postings whose only contact channel is a messenger
// app, on top of explicit lexicon patterns like "apenas por whatsapp".
type contactScorer struct {
	matcher    *Matcher
	messengers *Matcher
}

func newContactScorer(store *lexicon.Store) FieldScorer {
	terms := store.MessengerTerms()
	patterns := make([]lexicon.Pattern, 0, len(terms))
	for _, t := range terms {
		patterns = append(patterns, lexicon.Pattern{Text: t, Weight: messengerOnlyBonus})
	}
	return &contactScorer{
		matcher:    NewMatcher(store.Patterns(domain.FactorContact)),
		messengers: NewMatcher(patterns),
	}
}

var emailAddress = regexp.MustCompile(`(?i)[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}`)

func (s *contactScorer) Factor() domain.Factor { return domain.FactorContact }

func (s *contactScorer) Score(fields *domain.PostingFields) domain.FactorScore {
	// Patterns like "apenas por whatsapp" usually sit in the prose, not in
	// the extracted contact list, so both are scanned.
	text := strings.TrimSpace(fields.Contacts + "\n" + fields.RawText)
	if text == "" {
		return domain.FactorScore{Factor: domain.FactorContact}
	}

	res := s.matcher.Match(text)
	score := res.Score
	evidence := res.Evidence

	// Messenger mentioned and no email anywhere in the posting: the
	// classic reach-us-only-on-WhatsApp setup.
	if msg := s.messengers.Match(text); msg.Score > 0 && !hasEmail(fields) {
		score += messengerOnlyBonus
		if evidence == "" {
			evidence = msg.Evidence
		}
	}

	return domain.FactorScore{
		Factor:   domain.FactorContact,
		Score:    clampScore(score),
		Evidence: evidence,
	}
}

func hasEmail(fields *domain.PostingFields) bool {
	return emailAddress.MatchString(fields.Contacts) ||
		emailAddress.MatchString(fields.RawText)
}
