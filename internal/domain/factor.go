package domain

// Factor is one named suspicion dimension of a posting.
// The set is closed: consumers can switch exhaustively over AllFactors.
type Factor string

// Factor constants. JSON keys match the outward contract consumed by the
// dashboard, hence the Portuguese identifiers.
const (
	FactorTitle        Factor = "tituloSuspeito"
	FactorCompany      Factor = "empresaSuspeita"
	FactorDescription  Factor = "descricaoVaga"
	FactorRequirements Factor = "requisitosVagos"
	FactorCompensation Factor = "salarioIrreal"
	FactorContact      Factor = "contatoSuspeito"
	FactorPlatform     Factor = "plataformaSuspeita"
	FactorEmail        Factor = "emailSuspeito"
	FactorURL          Factor = "urlSuspeita"
)

// AllFactors lists every factor in evaluation order. Alert and
// recommendation ordering follows this slice.
var AllFactors = []Factor{
	FactorTitle,
	FactorCompany,
	FactorDescription,
	FactorRequirements,
	FactorCompensation,
	FactorContact,
	FactorPlatform,
	FactorEmail,
	FactorURL,
}

// Valid reports whether f is one of the known factors.
func (f Factor) Valid() bool {
	for _, known := range AllFactors {
		if f == known {
			return true
		}
	}
	return false
}

// FactorScore is the result of one factor scorer.
// Score is always in [0,100]. Evidence is empty when Score is 0;
// Explanation is populated only when Score reaches the explanation threshold.
type FactorScore struct {
	Factor      Factor `json:"factor"`
	Score       int    `json:"score"`
	Evidence    string `json:"evidence,omitempty"`
	Explanation string `json:"explanation,omitempty"`
}
