package api

import (
	"github.com/humai-verify/screener/internal/domain"
	"github.com/humai-verify/screener/internal/lexicon"
	"github.com/humai-verify/screener/internal/processor"
)

// AnalyzeRequest is a single analysis request.
type AnalyzeRequest struct {
	InputType domain.InputType `json:"input_type" binding:"required"`
	URL       string           `json:"url"`
	Text      string           `json:"text"`
}

// BatchAnalyzeRequest carries up to the configured batch limit of inputs.
type BatchAnalyzeRequest struct {
	Items []AnalyzeRequest `json:"items" binding:"required,min=1"`
}

// BatchAnalyzeResponse summarizes a processed batch.
type BatchAnalyzeResponse struct {
	Results  []processor.ProcessResult `json:"results"`
	Total    int                       `json:"total"`
	Analyzed int                       `json:"analyzed"`
	Failed   int                       `json:"failed"`
}

// LexiconFactorSummary lists the active patterns of one factor.
type LexiconFactorSummary struct {
	Factor   domain.Factor     `json:"factor"`
	Patterns []lexicon.Pattern `json:"patterns"`
}

// LexiconResponse describes the currently active lexicon.
type LexiconResponse struct {
	Factors       []LexiconFactorSummary `json:"factors"`
	TotalPatterns int                    `json:"total_patterns"`
}

// ReloadResponse reports the outcome of a lexicon reload.
type ReloadResponse struct {
	TotalPatterns int  `json:"total_patterns"`
	FromDatabase  bool `json:"from_database"`
}

// PatternRequest creates or updates one stored lexicon pattern.
type PatternRequest struct {
	Factor  string `json:"factor" binding:"required"`
	Text    string `json:"text" binding:"required"`
	Weight  int    `json:"weight" binding:"required,gt=0,lte=100"`
	Enabled bool   `json:"enabled"`
}
