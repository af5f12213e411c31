package analyzer

import (
	"net/url"
	"strings"

	"github.com/humai-verify/screener/internal/domain"
	"github.com/humai-verify/screener/internal/lexicon"
	"github.com/humai-verify/screener/internal/logger"
)

// TrustClassifier resolves a source URL to a trust classification using the
// lexicon's known-domain table, falling back to substring hints for domains
// that are not listed exactly.
type TrustClassifier struct {
	store *lexicon.Store
	log   logger.Logger
}

// NewTrustClassifier creates a classifier backed by the given lexicon.
func NewTrustClassifier(store *lexicon.Store, log logger.Logger) *TrustClassifier {
	if log == nil {
		log = logger.NewNop()
	}
	return &TrustClassifier{store: store, log: log}
}

// Classify inspects rawURL and returns the trust profile of its domain.
// Unparseable URLs and empty input classify as untrusted UNKNOWN; trust can
// only ever lower a posting's risk, never raise it.
func (t *TrustClassifier) Classify(rawURL string) domain.URLTrustInfo {
	unknown := domain.URLTrustInfo{
		IsTrusted:   false,
		TrustLevel:  domain.TrustLevelUnknown,
		DomainType:  domain.DomainTypeUnknown,
		TrustReason: "Domínio não reconhecido",
	}
	if strings.TrimSpace(rawURL) == "" {
		return unknown
	}

	host := extractHost(rawURL)
	if host == "" {
		t.log.Debug("unparseable source url", logger.String("url", rawURL))
		unknown.TrustLevel = domain.TrustLevelLow
		unknown.TrustReason = "URL inválida ou malformada"
		return unknown
	}
	unknown.Domain = host

	// Exact table lookup, walking up the registrable suffixes so
	// "careers.example.co.mz" matches an "example.co.mz" entry.
	for _, candidate := range domainSuffixes(host) {
		if typ, ok := t.store.TrustedDomain(candidate); ok {
			return domain.URLTrustInfo{
				IsTrusted:   true,
				TrustLevel:  domain.TrustLevelHigh,
				DomainType:  typ,
				Domain:      candidate,
				TrustReason: trustReasonFor(typ, candidate),
			}
		}
	}

	// Heuristic hints for unlisted domains that plainly belong to a
	// recognizable category, e.g. anything under .gov.mz.
	for _, typ := range []domain.DomainType{
		domain.DomainTypeGovernment,
		domain.DomainTypeJobPortal,
		domain.DomainTypeNGO,
	} {
		for _, hint := range t.store.DomainHints(typ) {
			if strings.Contains(host, hint) {
				return domain.URLTrustInfo{
					IsTrusted:   true,
					TrustLevel:  domain.TrustLevelHigh,
					DomainType:  typ,
					Domain:      host,
					TrustReason: trustReasonFor(typ, host),
				}
			}
		}
	}

	return unknown
}

// extractHost pulls the lowercased hostname out of rawURL, tolerating
// scheme-less input like "example.com/vagas".
func extractHost(rawURL string) string {
	raw := strings.TrimSpace(rawURL)
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")
	if !strings.Contains(host, ".") {
		return ""
	}
	return host
}

// domainSuffixes returns host plus each parent suffix down to two labels:
// "a.b.co.mz" yields ["a.b.co.mz", "b.co.mz", "co.mz"].
func domainSuffixes(host string) []string {
	labels := strings.Split(host, ".")
	suffixes := make([]string, 0, len(labels))
	for i := 0; i <= len(labels)-2; i++ {
		suffixes = append(suffixes, strings.Join(labels[i:], "."))
	}
	return suffixes
}

func trustReasonFor(typ domain.DomainType, host string) string {
	switch typ {
	case domain.DomainTypeJobPortal:
		return "Portal de empregos conhecido: " + host
	case domain.DomainTypeGovernment:
		return "Organização governamental: " + host
	case domain.DomainTypeTechCompany:
		return "Empresa de tecnologia reconhecida: " + host
	case domain.DomainTypeLocalCompany:
		return "Empresa local estabelecida: " + host
	case domain.DomainTypeNewsSite:
		return "Site de notícias conhecido: " + host
	case domain.DomainTypeNGO:
		return "Organização não governamental: " + host
	case domain.DomainTypeTrustedDomain:
		return "Domínio confiável: " + host
	default:
		return "Domínio não reconhecido"
	}
}
