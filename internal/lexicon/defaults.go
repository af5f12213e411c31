package lexicon

import "github.com/humai-verify/screener/internal/domain"

// Embedded default tables. Terms are Portuguese because the service screens
// postings circulating in Mozambican and lusophone channels; matching is
// diacritic-insensitive so "fácil" and "facil" hit the same pattern.

func defaultPatterns() map[domain.Factor][]Pattern {
	return map[domain.Factor][]Pattern{
		domain.FactorTitle: {
			{Text: "dinheiro fácil", Weight: 45},
			{Text: "modelo internacional", Weight: 45},
			{Text: "ganhe muito", Weight: 40},
			{Text: "trabalho fácil", Weight: 40},
			{Text: "ganhe dinheiro", Weight: 35},
			{Text: "renda extra garantida", Weight: 30},
			{Text: "sem experiência", Weight: 25},
			{Text: "oportunidade única", Weight: 25},
			{Text: "trabalhe em casa", Weight: 20},
			{Text: "vaga limitada", Weight: 20},
			{Text: "urgente", Weight: 15},
			{Text: "fácil", Weight: 15},
			{Text: "hoje mesmo", Weight: 15},
		},
		domain.FactorCompany: {
			{Text: "empresa anónima", Weight: 40},
			{Text: "empresa confidencial", Weight: 35},
			{Text: "não especificada", Weight: 30},
			{Text: "nome reservado", Weight: 30},
			{Text: "agência de recrutamento internacional", Weight: 25},
			{Text: "empresa internacional", Weight: 20},
			{Text: "grande multinacional", Weight: 15},
		},
		domain.FactorDescription: {
			{Text: "pagamento adiantado", Weight: 45},
			{Text: "taxa de inscrição", Weight: 45},
			{Text: "acompanhante", Weight: 40},
			{Text: "dinheiro rápido", Weight: 40},
			{Text: "sem contrato", Weight: 35},
			{Text: "viagem paga", Weight: 35},
			{Text: "ganhos garantidos", Weight: 35},
			{Text: "passaporte tratado", Weight: 35},
			{Text: "passaporte", Weight: 25},
			{Text: "discrição total", Weight: 30},
			{Text: "sigilo absoluto", Weight: 30},
			{Text: "alojamento incluído", Weight: 25},
			{Text: "trabalho no exterior", Weight: 25},
			{Text: "decisão imediata", Weight: 25},
			{Text: "comece hoje", Weight: 20},
			{Text: "ganhe muito", Weight: 30},
		},
		domain.FactorRequirements: {
			{Text: "apenas boa aparência", Weight: 50},
			{Text: "boa aparência", Weight: 35},
			{Text: "sem qualificação", Weight: 30},
			{Text: "sem experiência", Weight: 30},
			{Text: "disponibilidade total", Weight: 25},
			{Text: "disponibilidade para viajar", Weight: 25},
			{Text: "sem formação", Weight: 25},
			{Text: "jovens até", Weight: 30},
			{Text: "qualquer pessoa", Weight: 20},
		},
		domain.FactorCompensation: {
			{Text: "ganhe muito", Weight: 40},
			{Text: "dinheiro imediato", Weight: 40},
			{Text: "comissões ilimitadas", Weight: 35},
			{Text: "pagamento diário", Weight: 30},
			{Text: "salário em dólares", Weight: 30},
			{Text: "rendimento garantido", Weight: 30},
			{Text: "salário alto", Weight: 25},
			{Text: "por dia", Weight: 15},
		},
		domain.FactorContact: {
			{Text: "apenas por whatsapp", Weight: 50},
			{Text: "somente whatsapp", Weight: 50},
			{Text: "contato apenas por whatsapp", Weight: 50},
			{Text: "só whatsapp", Weight: 45},
			{Text: "apenas telegram", Weight: 45},
			{Text: "não ligar", Weight: 20},
			{Text: "mensagem directa", Weight: 15},
		},
		domain.FactorPlatform: {
			{Text: "grupo de whatsapp", Weight: 40},
			{Text: "grupo do facebook", Weight: 25},
			{Text: "telegram", Weight: 30},
			{Text: "whatsapp", Weight: 30},
			{Text: "tiktok", Weight: 25},
			{Text: "instagram", Weight: 20},
			{Text: "facebook", Weight: 15},
		},
		domain.FactorEmail: {
			{Text: "noreply", Weight: 15},
			{Text: "recrutamento urgente", Weight: 20},
		},
		domain.FactorURL: {
			{Text: "emprego-facil", Weight: 35},
			{Text: "ganhe-dinheiro", Weight: 35},
			{Text: "vagas-urgentes", Weight: 25},
			{Text: "promo", Weight: 10},
		},
	}
}

// defaultTrustedDomains is the known-domain table: job portals, government
// and international organizations, established companies, news sites and
// NGOs. Lookups strip "www." and lowercase before matching.
func defaultTrustedDomains() map[string]domain.DomainType {
	return map[string]domain.DomainType{
		// Job portals
		"linkedin.com":     domain.DomainTypeJobPortal,
		"linkedin.co.mz":   domain.DomainTypeJobPortal,
		"indeed.com":       domain.DomainTypeJobPortal,
		"indeed.co.mz":     domain.DomainTypeJobPortal,
		"glassdoor.com":    domain.DomainTypeJobPortal,
		"reed.co.uk":       domain.DomainTypeJobPortal,
		"emprego.co.mz":    domain.DomainTypeJobPortal,
		"emprego.co.za":    domain.DomainTypeJobPortal,
		"jobartis.co.mz":   domain.DomainTypeJobPortal,
		"jobs.co.mz":       domain.DomainTypeJobPortal,
		"jobs.co.za":       domain.DomainTypeJobPortal,
		"vagas.co.mz":      domain.DomainTypeJobPortal,
		"ziprecruiter.com": domain.DomainTypeJobPortal,

		// Government and international organizations
		"gov.mz":        domain.DomainTypeGovernment,
		"gov.za":        domain.DomainTypeGovernment,
		"gov.br":        domain.DomainTypeGovernment,
		"gov.uk":        domain.DomainTypeGovernment,
		"un.org":        domain.DomainTypeGovernment,
		"unodc.org":     domain.DomainTypeGovernment,
		"worldbank.org": domain.DomainTypeGovernment,
		"imf.org":       domain.DomainTypeGovernment,
		"who.int":       domain.DomainTypeGovernment,
		"undp.org":      domain.DomainTypeGovernment,
		"ilo.org":       domain.DomainTypeGovernment,

		// Tech companies
		"microsoft.com":  domain.DomainTypeTechCompany,
		"google.com":     domain.DomainTypeTechCompany,
		"apple.com":      domain.DomainTypeTechCompany,
		"amazon.com":     domain.DomainTypeTechCompany,
		"meta.com":       domain.DomainTypeTechCompany,
		"netflix.com":    domain.DomainTypeTechCompany,
		"ibm.com":        domain.DomainTypeTechCompany,
		"oracle.com":     domain.DomainTypeTechCompany,
		"salesforce.com": domain.DomainTypeTechCompany,
		"intel.com":      domain.DomainTypeTechCompany,
		"nvidia.com":     domain.DomainTypeTechCompany,
		"cisco.com":      domain.DomainTypeTechCompany,

		// Local companies
		"mcel.co.mz":       domain.DomainTypeLocalCompany,
		"vodacom.co.mz":    domain.DomainTypeLocalCompany,
		"movitel.co.mz":    domain.DomainTypeLocalCompany,
		"bci.co.mz":        domain.DomainTypeLocalCompany,
		"bancounico.co.mz": domain.DomainTypeLocalCompany,
		"shell.co.mz":      domain.DomainTypeLocalCompany,
		"total.co.mz":      domain.DomainTypeLocalCompany,
		"sasol.com":        domain.DomainTypeLocalCompany,
		"sasol.co.mz":      domain.DomainTypeLocalCompany,

		// News sites
		"bbc.com":              domain.DomainTypeNewsSite,
		"cnn.com":              domain.DomainTypeNewsSite,
		"reuters.com":          domain.DomainTypeNewsSite,
		"dw.com":               domain.DomainTypeNewsSite,
		"aljazeera.com":        domain.DomainTypeNewsSite,
		"noticias.sapo.mz":     domain.DomainTypeNewsSite,
		"opais.co.mz":          domain.DomainTypeNewsSite,
		"jornalnoticias.co.mz": domain.DomainTypeNewsSite,
		"verdade.co.mz":        domain.DomainTypeNewsSite,

		// NGOs
		"amnesty.org":      domain.DomainTypeNGO,
		"hrw.org":          domain.DomainTypeNGO,
		"transparency.org": domain.DomainTypeNGO,
		"oxfam.org":        domain.DomainTypeNGO,
		"msf.org":          domain.DomainTypeNGO,
		"redcross.org":     domain.DomainTypeNGO,
		"unicef.org":       domain.DomainTypeNGO,
		"unhcr.org":        domain.DomainTypeNGO,
		"wfp.org":          domain.DomainTypeNGO,

		// Educational institutions
		"uem.mz":       domain.DomainTypeTrustedDomain,
		"up.ac.mz":     domain.DomainTypeTrustedDomain,
		"isctem.ac.mz": domain.DomainTypeTrustedDomain,
		"up.ac.za":     domain.DomainTypeTrustedDomain,
		"uct.ac.za":    domain.DomainTypeTrustedDomain,
		"mit.edu":      domain.DomainTypeTrustedDomain,
		"harvard.edu":  domain.DomainTypeTrustedDomain,
	}
}

// defaultDomainHints feeds the secondary trust heuristics: a domain not in
// the explicit table is still recognized when its name carries one of these
// substrings (e.g. "empregosmz.co.mz" looks like a job portal).
var defaultDomainHints = map[domain.DomainType][]string{
	domain.DomainTypeJobPortal: {
		"linkedin", "indeed", "glassdoor", "monster", "ziprecruiter",
		"careerbuilder", "emprego", "jobartis", "jobs", "vagas", "trabalho",
	},
	domain.DomainTypeGovernment: {
		"unodc", "un.org", "gov.", ".gov", "worldbank", "imf", "who.int",
		"unicef", "undp", "ilo.org",
	},
	domain.DomainTypeNGO: {
		"amnesty", "hrw", "transparency", "oxfam", "msf", "redcross",
		"unhcr", "wfp",
	},
}

var defaultMessengerTerms = []string{
	"whatsapp", "telegram", "signal", "messenger", "wechat", "viber",
}

var defaultFreeMailHosts = []string{
	"gmail.com", "hotmail.com", "outlook.com", "yahoo.com", "aol.com",
	"mail.ru", "protonmail.com", "gmx.com", "icloud.com",
}

var defaultURLShorteners = []string{
	"bit.ly", "tinyurl.com", "goo.gl", "t.co", "ow.ly", "is.gd",
	"cutt.ly", "rb.gy", "shorturl.at", "linktr.ee",
}

var defaultSuspiciousTLDs = []string{
	".tk", ".ml", ".ga", ".cf", ".gq", ".xyz", ".top", ".click", ".buzz",
}

// defaultHeuristics: monthly figures in meticais. Postings quoting outside
// this band score on the compensation factor.
var defaultHeuristics = Heuristics{
	CompensationMin: 5000,
	CompensationMax: 300000,
}
