package domain

// InputType identifies how a posting was submitted for analysis.
type InputType string

// Input type constants.
const (
	InputTypeLink InputType = "LINK"
	InputTypeText InputType = "TEXTO"
)

// AnalysisInput is a single analysis request.
// Exactly one of URL/Text is expected to be non-empty for the given type;
// the engine itself tolerates anything and degrades to a zero assessment.
type AnalysisInput struct {
	Type InputType `json:"input_type" binding:"required"`
	URL  string    `json:"url,omitempty"`
	Text string    `json:"text,omitempty"`
}

// PostingFields is the structured representation of one opportunity posting.
// All fields except RawText/SourceURL may be empty; scorers treat an empty
// field as "no signal", never as an error.
// Created once per request by the extractor and immutable afterwards.
type PostingFields struct {
	Title        string `json:"titulo,omitempty"`
	Company      string `json:"empresa,omitempty"`
	Description  string `json:"descricao,omitempty"`
	Requirements string `json:"requisitos,omitempty"`
	Compensation string `json:"remuneracao,omitempty"`
	Location     string `json:"localizacao,omitempty"`
	Benefits     string `json:"beneficios,omitempty"`
	Contacts     string `json:"contatos,omitempty"`
	Platform     string `json:"plataforma,omitempty"`
	SourceURL    string `json:"url_vaga,omitempty"`
	RawText      string `json:"texto_original,omitempty"`
}

// IsEmpty reports whether the posting carries no analyzable content at all.
func (p *PostingFields) IsEmpty() bool {
	return p.RawText == "" && p.SourceURL == "" &&
		p.Title == "" && p.Company == "" && p.Description == "" &&
		p.Requirements == "" && p.Compensation == "" && p.Location == "" &&
		p.Benefits == "" && p.Contacts == "" && p.Platform == ""
}
