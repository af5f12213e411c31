// Package extractor turns raw analysis input into structured posting fields.
// Extraction is best-effort: labeled sections are picked up when present
// ("Título:", "Empresa:", "Requisitos:"), and contacts or compensation are
// inferred from the text body otherwise. Fields that cannot be determined
// stay empty; scorers treat that as absence of signal.
package extractor

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/humai-verify/screener/internal/domain"
	"github.com/humai-verify/screener/internal/logger"
)

const maxTitleRunes = 120

// Heuristic is the rule-based field extractor. It implements the engine's
// FieldExtractor interface.
type Heuristic struct {
	log logger.Logger
}

// New creates a heuristic extractor.
func New(log logger.Logger) *Heuristic {
	if log == nil {
		log = logger.NewNop()
	}
	return &Heuristic{log: log}
}

// fieldLabels maps folded label names to posting field setters. Multiple
// spellings collapse onto the same field.
var fieldLabels = map[string]func(*domain.PostingFields, string){
	"titulo":      func(f *domain.PostingFields, v string) { f.Title = v },
	"cargo":       func(f *domain.PostingFields, v string) { f.Title = v },
	"vaga":        func(f *domain.PostingFields, v string) { f.Title = v },
	"empresa":     func(f *domain.PostingFields, v string) { f.Company = v },
	"organizacao": func(f *domain.PostingFields, v string) { f.Company = v },
	"descricao":   func(f *domain.PostingFields, v string) { f.Description = v },
	"requisitos":  func(f *domain.PostingFields, v string) { f.Requirements = v },
	"perfil":      func(f *domain.PostingFields, v string) { f.Requirements = v },
	"salario":     func(f *domain.PostingFields, v string) { f.Compensation = v },
	"remuneracao": func(f *domain.PostingFields, v string) { f.Compensation = v },
	"vencimento":  func(f *domain.PostingFields, v string) { f.Compensation = v },
	"local":       func(f *domain.PostingFields, v string) { f.Location = v },
	"localizacao": func(f *domain.PostingFields, v string) { f.Location = v },
	"beneficios":  func(f *domain.PostingFields, v string) { f.Benefits = v },
	"contato":     func(f *domain.PostingFields, v string) { f.Contacts = v },
	"contacto":    func(f *domain.PostingFields, v string) { f.Contacts = v },
	"contatos":    func(f *domain.PostingFields, v string) { f.Contacts = v },
	"contactos":   func(f *domain.PostingFields, v string) { f.Contacts = v },
	"plataforma":  func(f *domain.PostingFields, v string) { f.Platform = v },
}

var (
	emailPattern = regexp.MustCompile(`(?i)[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}`)
	phonePattern = regexp.MustCompile(`\+?\d[\d\s\-]{7,}\d`)
	moneyLine    = regexp.MustCompile(`(?i)\d[\d.,\s]*\s*(mt|mts|mzn|meticais|metical|usd|d[oó]lares)\b|\$\s*\d`)
	messengerRef = regexp.MustCompile(`(?i)whatsapp|telegram|signal|messenger|wechat|viber`)
)

// Extract builds posting fields from the input. For LINK submissions the
// URL becomes the source URL; any accompanying text is parsed the same way
// as a TEXTO submission.
func (h *Heuristic) Extract(ctx context.Context, input domain.AnalysisInput) *domain.PostingFields {
	fields := &domain.PostingFields{RawText: input.Text}
	if input.Type == domain.InputTypeLink {
		fields.SourceURL = strings.TrimSpace(input.URL)
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		// URL-only submission: the URL string stands in for the posting
		// text so the result still carries what was analyzed.
		if fields.SourceURL != "" {
			fields.RawText = "Link fornecido: " + fields.SourceURL
		}
		return fields
	}

	h.parseLabeled(text, fields)
	h.inferMissing(text, fields)

	h.log.Debug("fields extracted",
		logger.Bool("has_title", fields.Title != ""),
		logger.Bool("has_company", fields.Company != ""),
		logger.Bool("has_contacts", fields.Contacts != ""))
	return fields
}

// parseLabeled walks the text line by line assigning "Label: value" lines
// to fields. Unlabeled lines accumulate into the description when no
// labeled description was found.
func (h *Heuristic) parseLabeled(text string, fields *domain.PostingFields) {
	var unlabeled []string
	labeledDescription := false

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		label, value, ok := splitLabel(line)
		if !ok {
			unlabeled = append(unlabeled, line)
			continue
		}
		set, known := fieldLabels[label]
		if !known {
			unlabeled = append(unlabeled, line)
			continue
		}
		set(fields, value)
		if label == "descricao" {
			labeledDescription = true
		}
	}

	if fields.Title == "" && len(unlabeled) > 0 {
		fields.Title = truncateRunes(unlabeled[0], maxTitleRunes)
	}
	if !labeledDescription && fields.Description == "" && len(unlabeled) > 1 {
		fields.Description = strings.Join(unlabeled[1:], "\n")
	}
}

// inferMissing fills contacts and compensation from the text body when no
// labeled section provided them.
func (h *Heuristic) inferMissing(text string, fields *domain.PostingFields) {
	if fields.Contacts == "" {
		parts := emailPattern.FindAllString(text, -1)
		parts = append(parts, phonePattern.FindAllString(text, -1)...)
		if ref := messengerRef.FindString(text); ref != "" {
			parts = append(parts, ref)
		}
		if len(parts) > 0 {
			fields.Contacts = strings.Join(parts, ", ")
		}
	}
	if fields.Compensation == "" {
		for _, line := range strings.Split(text, "\n") {
			if moneyLine.MatchString(line) {
				fields.Compensation = strings.TrimSpace(line)
				break
			}
		}
	}
}

// splitLabel recognizes "Label: value" lines with a short, single-word
// label. Returns the diacritic-folded lowercase label.
func splitLabel(line string) (label, value string, ok bool) {
	head, tail, found := strings.Cut(line, ":")
	if !found {
		return "", "", false
	}
	head = strings.TrimSpace(head)
	if head == "" || len(head) > 20 || strings.ContainsAny(head, " \t") {
		return "", "", false
	}
	return foldLabel(head), strings.TrimSpace(tail), true
}

// foldLabel lowercases and strips diacritics so "Título" keys as "titulo".
func foldLabel(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		for _, d := range norm.NFD.String(string(r)) {
			if !unicode.Is(unicode.Mn, d) {
				b.WriteRune(unicode.ToLower(d))
			}
		}
	}
	return b.String()
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
