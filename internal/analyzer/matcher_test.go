package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/humai-verify/screener/internal/lexicon"
)

func TestMatcherFindsDiacriticInsensitiveMatches(t *testing.T) {
	m := NewMatcher([]lexicon.Pattern{
		{Text: "dinheiro fácil", Weight: 45},
		{Text: "sem experiência", Weight: 25},
	})

	testCases := []struct {
		name      string
		text      string
		wantScore int
		wantHits  int
	}{
		{
			name:      "exact accented text",
			text:      "Ganhe dinheiro fácil sem experiência",
			wantScore: 70,
			wantHits:  2,
		},
		{
			name:      "unaccented text still matches",
			text:      "ganhe DINHEIRO FACIL sem experiencia",
			wantScore: 70,
			wantHits:  2,
		},
		{
			name:      "no match",
			text:      "vaga de contabilista sénior",
			wantScore: 0,
			wantHits:  0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := m.Match(tc.text)
			assert.Equal(t, tc.wantScore, res.Score)
			assert.Len(t, res.Hits, tc.wantHits)
		})
	}
}

func TestMatcherEvidencePreservesOriginalCasing(t *testing.T) {
	m := NewMatcher([]lexicon.Pattern{{Text: "apenas por whatsapp", Weight: 50}})

	res := m.Match("Contato Apenas Por WhatsApp, não ligar")
	assert.Equal(t, 50, res.Score)
	assert.Equal(t, "Apenas Por WhatsApp", res.Evidence)
}

func TestMatcherEvidencePrefersHighestWeight(t *testing.T) {
	m := NewMatcher([]lexicon.Pattern{
		{Text: "urgente", Weight: 15},
		{Text: "modelo internacional", Weight: 45},
	})

	res := m.Match("URGENTE: procuramos modelo internacional")
	assert.Equal(t, 60, res.Score)
	assert.Equal(t, "modelo internacional", res.Evidence)
}

func TestMatcherEvidenceTieBreaksByPosition(t *testing.T) {
	m := NewMatcher([]lexicon.Pattern{
		{Text: "telegram", Weight: 30},
		{Text: "whatsapp", Weight: 30},
	})

	res := m.Match("fale connosco no whatsapp ou telegram")
	assert.Equal(t, "whatsapp", res.Evidence)
}

func TestMatcherEmptyInputs(t *testing.T) {
	m := NewMatcher(nil)
	assert.Zero(t, m.Match("qualquer texto").Score)

	m = NewMatcher([]lexicon.Pattern{{Text: "fácil", Weight: 15}})
	assert.Zero(t, m.Match("").Score)
	assert.Equal(t, 1, m.PatternCount())
}

func TestNormalizeTextIsRuneAligned(t *testing.T) {
	in := "Título FÁCIL ção"
	out := normalizeText(in)
	assert.Equal(t, "titulo facil cao", out)
	assert.Equal(t, len([]rune(in)), len([]rune(out)))
}
