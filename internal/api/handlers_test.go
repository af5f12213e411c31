package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/humai-verify/screener/internal/analyzer"
	"github.com/humai-verify/screener/internal/config"
	"github.com/humai-verify/screener/internal/domain"
	"github.com/humai-verify/screener/internal/extractor"
	"github.com/humai-verify/screener/internal/lexicon"
	"github.com/humai-verify/screener/internal/logger"
	"github.com/humai-verify/screener/internal/processor"
)

const testBatchLimit = 3

// newTestRouter builds a router over a real engine with the embedded lexicon
// and no database, the configuration the service runs in by default.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := lexicon.Default()
	require.NoError(t, err)

	var cfg config.Config
	cfg.SetDefaults()

	log := logger.NewNop()
	engine := analyzer.NewEngine(store, cfg.Analysis, "test", extractor.New(log), log, nil)
	batch := processor.NewBatchProcessor(engine, nil, 2, log, nil)
	handler := NewHandler(engine, batch, nil, nil, nil, log, testBatchLimit)

	router := gin.New()
	SetupRoutes(router, handler)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeReturnsAssessment(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/analyze", AnalyzeRequest{
		InputType: domain.InputTypeText,
		Text:      "Modelo internacional, sem experiência, ganhe muito dinheiro! Contato apenas por WhatsApp 841234567",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result domain.Analysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Contains(t,
		[]domain.RiskLevel{domain.RiskHigh, domain.RiskCritical},
		result.Assessment.RiskLevel)
	assert.NotEmpty(t, result.Assessment.Alerts)

	// The outward contract is the Portuguese field names.
	body := rec.Body.String()
	assert.Contains(t, body, `"nivelRisco"`)
	assert.Contains(t, body, `"pontuacao"`)
	assert.Contains(t, body, `"alertas"`)
	assert.Contains(t, body, `"dadosVaga"`)
}

func TestAnalyzeValidation(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		req  AnalyzeRequest
	}{
		{"missing input type", AnalyzeRequest{Text: "alguma vaga"}},
		{"text type without text", AnalyzeRequest{InputType: domain.InputTypeText}},
		{"link type without url", AnalyzeRequest{InputType: domain.InputTypeLink}},
		{"unknown input type", AnalyzeRequest{InputType: "PDF", Text: "vaga"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/api/v1/analyze", tt.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "error")
		})
	}
}

func TestAnalyzeBatchPreservesOrder(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/analyze/batch", BatchAnalyzeRequest{
		Items: []AnalyzeRequest{
			{InputType: domain.InputTypeText, Text: "Vaga: Analista Financeiro\nEmpresa: Vodacom Moçambique\nSalário: 45.000 MT"},
			{InputType: domain.InputTypeText, Text: "Ganhe muito! Sem experiência! Apenas WhatsApp!"},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp BatchAnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 2)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 2, resp.Analyzed)
	assert.Equal(t, 0, resp.Failed)
	assert.Equal(t, 0, resp.Results[0].Index)
	assert.Equal(t, 1, resp.Results[1].Index)

	require.NotNil(t, resp.Results[0].Analysis)
	require.NotNil(t, resp.Results[1].Analysis)
	assert.Greater(t,
		resp.Results[1].Analysis.Assessment.OverallScore,
		resp.Results[0].Analysis.Assessment.OverallScore)
}

func TestAnalyzeBatchOverLimit(t *testing.T) {
	router := newTestRouter(t)

	items := make([]AnalyzeRequest, testBatchLimit+1)
	for i := range items {
		items[i] = AnalyzeRequest{InputType: domain.InputTypeText, Text: "vaga de emprego"}
	}
	rec := doJSON(t, router, http.MethodPost, "/api/v1/analyze/batch", BatchAnalyzeRequest{Items: items})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "batch exceeds limit")
}

func TestAnalyzeBatchRejectsInvalidItem(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/analyze/batch", BatchAnalyzeRequest{
		Items: []AnalyzeRequest{
			{InputType: domain.InputTypeText, Text: "vaga"},
			{InputType: domain.InputTypeLink},
		},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "item 1")
}

func TestGetLexicon(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/lexicon", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp LexiconResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Factors, len(domain.AllFactors))
	assert.Positive(t, resp.TotalPatterns)
}

func TestReloadLexiconWithoutDatabase(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/lexicon/reload", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ReloadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.FromDatabase)
	assert.Positive(t, resp.TotalPatterns)
}

func TestPatternEndpointsWithoutStorage(t *testing.T) {
	router := newTestRouter(t)

	pattern := PatternRequest{Factor: "tituloSuspeito", Text: "dinheiro facil", Weight: 40, Enabled: true}
	tests := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodGet, "/api/v1/lexicon/patterns", nil},
		{http.MethodPost, "/api/v1/lexicon/patterns", pattern},
		{http.MethodPut, "/api/v1/lexicon/patterns/1", pattern},
		{http.MethodDelete, "/api/v1/lexicon/patterns/1", nil},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := doJSON(t, router, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
			assert.Contains(t, rec.Body.String(), "pattern storage not configured")
		})
	}
}

func TestHealthAndReady(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/ready", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ready"`)
	assert.Contains(t, rec.Body.String(), `"patterns"`)
}

func TestMetricsNotConfigured(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
