package analyzer

import (
	"strings"

	"github.com/humai-verify/screener/internal/domain"
	"github.com/humai-verify/screener/internal/lexicon"
)

// FieldScorer produces the score of one risk factor for a posting.
// Implementations must be safe for concurrent use; the engine fans scorers
// out across goroutines.
type FieldScorer interface {
	Factor() domain.Factor
	Score(fields *domain.PostingFields) domain.FactorScore
}

// Heuristic bonus points layered on top of lexicon pattern weights.
const (
	messengerOnlyBonus  = 30 // messenger contact with no email in sight
	freeMailBonus       = 25 // company recruiting over a free mail host
	numericLocalBonus   = 20 // mail local part that is mostly digits
	shortenerPenalty    = 45
	ipLiteralPenalty    = 40
	suspiciousTLDScore  = 30
	plainHTTPPenalty    = 15
	compensationHighPen = 35 // quoted figure above the plausible band
	compensationLowPen  = 20 // quoted figure below the plausible band
)

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > domain.RiskScoreMax {
		return domain.RiskScoreMax
	}
	return score
}

// keywordScorer scores a single field purely from lexicon patterns. Most
// factors are instances of this with different field selectors.
type keywordScorer struct {
	factor  domain.Factor
	matcher *Matcher
	sel     func(*domain.PostingFields) string
}

func (s *keywordScorer) Factor() domain.Factor { return s.factor }

func (s *keywordScorer) Score(fields *domain.PostingFields) domain.FactorScore {
	text := s.sel(fields)
	if strings.TrimSpace(text) == "" {
		return domain.FactorScore{Factor: s.factor}
	}
	res := s.matcher.Match(text)
	return domain.FactorScore{
		Factor:   s.factor,
		Score:    clampScore(res.Score),
		Evidence: res.Evidence,
	}
}

func newTitleScorer(store *lexicon.Store) FieldScorer {
	return &keywordScorer{
		factor:  domain.FactorTitle,
		matcher: NewMatcher(store.Patterns(domain.FactorTitle)),
		sel:     func(f *domain.PostingFields) string { return f.Title },
	}
}

func newCompanyScorer(store *lexicon.Store) FieldScorer {
	return &keywordScorer{
		factor:  domain.FactorCompany,
		matcher: NewMatcher(store.Patterns(domain.FactorCompany)),
		sel:     func(f *domain.PostingFields) string { return f.Company },
	}
}

// Description and requirements fall back to the raw text so free-form
// submissions without labeled sections still get scored.
func newDescriptionScorer(store *lexicon.Store) FieldScorer {
	return &keywordScorer{
		factor:  domain.FactorDescription,
		matcher: NewMatcher(store.Patterns(domain.FactorDescription)),
		sel: func(f *domain.PostingFields) string {
			if f.Description != "" {
				return f.Description
			}
			return f.RawText
		},
	}
}

func newRequirementsScorer(store *lexicon.Store) FieldScorer {
	return &keywordScorer{
		factor:  domain.FactorRequirements,
		matcher: NewMatcher(store.Patterns(domain.FactorRequirements)),
		sel: func(f *domain.PostingFields) string {
			if f.Requirements != "" {
				return f.Requirements
			}
			return f.RawText
		},
	}
}

func newPlatformScorer(store *lexicon.Store) FieldScorer {
	return &keywordScorer{
		factor:  domain.FactorPlatform,
		matcher: NewMatcher(store.Patterns(domain.FactorPlatform)),
		sel: func(f *domain.PostingFields) string {
			if f.Platform != "" {
				return f.Platform
			}
			return f.RawText
		},
	}
}

// newScorers builds the full scorer set for one lexicon. Order follows
// domain.AllFactors.
func newScorers(store *lexicon.Store) []FieldScorer {
	return []FieldScorer{
		newTitleScorer(store),
		newCompanyScorer(store),
		newDescriptionScorer(store),
		newRequirementsScorer(store),
		newCompensationScorer(store),
		newContactScorer(store),
		newPlatformScorer(store),
		newEmailScorer(store),
		newURLScorer(store),
	}
}
