package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/humai-verify/screener/internal/analyzer"
	"github.com/humai-verify/screener/internal/database"
	"github.com/humai-verify/screener/internal/domain"
	"github.com/humai-verify/screener/internal/lexicon"
	"github.com/humai-verify/screener/internal/logger"
	"github.com/humai-verify/screener/internal/processor"
	"github.com/humai-verify/screener/internal/telemetry"
)

// Pinger reports backend connectivity for the readiness check.
// Satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler handles HTTP requests for the screener API
type Handler struct {
	engine         *analyzer.Engine
	batchProcessor *processor.BatchProcessor
	lexiconRepo    *database.LexiconRepository
	db             Pinger
	telemetry      *telemetry.Provider
	logger         logger.Logger
	batchLimit     int
}

// NewHandler creates a new API handler. lexiconRepo and db are nil when the
// service runs without a database; the lexicon endpoints then operate on the
// embedded defaults only.
func NewHandler(
	engine *analyzer.Engine,
	batchProcessor *processor.BatchProcessor,
	lexiconRepo *database.LexiconRepository,
	db Pinger,
	tp *telemetry.Provider,
	log logger.Logger,
	batchLimit int,
) *Handler {
	if log == nil {
		log = logger.NewNop()
	}
	return &Handler{
		engine:         engine,
		batchProcessor: batchProcessor,
		lexiconRepo:    lexiconRepo,
		db:             db,
		telemetry:      tp,
		logger:         log,
		batchLimit:     batchLimit,
	}
}

// Analyze handles POST /api/v1/analyze
func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input, err := req.toInput()
	if err != nil {
		if h.telemetry != nil {
			h.telemetry.RecordAnalysisFailure(c.Request.Context(), "invalid_input")
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.engine.Analyze(c.Request.Context(), input)

	h.logger.Info("posting analyzed",
		logger.String("input_type", string(input.Type)),
		logger.String("risk_level", string(result.Assessment.RiskLevel)),
		logger.Int("score", result.Assessment.OverallScore))
	if h.telemetry != nil {
		h.telemetry.RecordAlerts(c.Request.Context(), len(result.Assessment.Alerts))
	}

	c.JSON(http.StatusOK, result)
}

// AnalyzeBatch handles POST /api/v1/analyze/batch
func (h *Handler) AnalyzeBatch(c *gin.Context) {
	var req BatchAnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.batchLimit > 0 && len(req.Items) > h.batchLimit {
		if h.telemetry != nil {
			h.telemetry.IncrementBatchRejected()
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "batch exceeds limit of " + strconv.Itoa(h.batchLimit) + " items",
		})
		return
	}

	inputs := make([]domain.AnalysisInput, 0, len(req.Items))
	for i, item := range req.Items {
		input, err := item.toInput()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "item " + strconv.Itoa(i) + ": " + err.Error(),
			})
			return
		}
		inputs = append(inputs, input)
	}

	results := h.batchProcessor.Process(c.Request.Context(), inputs)

	analyzed := 0
	for i := range results {
		if results[i].Analysis != nil {
			analyzed++
		}
	}
	c.JSON(http.StatusOK, BatchAnalyzeResponse{
		Results:  results,
		Total:    len(results),
		Analyzed: analyzed,
		Failed:   len(results) - analyzed,
	})
}

// GetLexicon handles GET /api/v1/lexicon
func (h *Handler) GetLexicon(c *gin.Context) {
	store := h.engine.Lexicon()

	factors := make([]LexiconFactorSummary, 0, len(domain.AllFactors))
	for _, f := range domain.AllFactors {
		factors = append(factors, LexiconFactorSummary{
			Factor:   f,
			Patterns: store.Patterns(f),
		})
	}

	c.JSON(http.StatusOK, LexiconResponse{
		Factors:       factors,
		TotalPatterns: store.PatternCount(),
	})
}

// ReloadLexicon handles POST /api/v1/lexicon/reload. It rebuilds the active
// lexicon from the embedded defaults plus any enabled database overrides.
func (h *Handler) ReloadLexicon(c *gin.Context) {
	store, err := lexicon.Default()
	if err != nil {
		h.logger.Error("failed to load default lexicon", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	fromDB := false
	if h.lexiconRepo != nil {
		overrides, dbErr := h.lexiconRepo.OverridesByFactor(c.Request.Context())
		if dbErr != nil {
			h.logger.Error("failed to load lexicon overrides", logger.Error(dbErr))
			c.JSON(http.StatusInternalServerError, gin.H{"error": dbErr.Error()})
			return
		}
		if len(overrides) > 0 {
			store, err = store.MergeOverrides(overrides)
			if err != nil {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			fromDB = true
		}
	}

	h.engine.UpdateLexicon(store)
	if h.telemetry != nil {
		h.telemetry.RecordLexiconReload(c.Request.Context(), store.PatternCount())
	}

	c.JSON(http.StatusOK, ReloadResponse{
		TotalPatterns: store.PatternCount(),
		FromDatabase:  fromDB,
	})
}

// ListPatterns handles GET /api/v1/lexicon/patterns
func (h *Handler) ListPatterns(c *gin.Context) {
	if h.lexiconRepo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "pattern storage not configured"})
		return
	}

	var enabled *bool
	if raw := c.Query("enabled"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid enabled filter"})
			return
		}
		enabled = &v
	}

	patterns, err := h.lexiconRepo.List(c.Request.Context(), c.Query("factor"), enabled)
	if err != nil {
		h.logger.Error("failed to list patterns", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"patterns": patterns, "total": len(patterns)})
}

// CreatePattern handles POST /api/v1/lexicon/patterns
func (h *Handler) CreatePattern(c *gin.Context) {
	if h.lexiconRepo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "pattern storage not configured"})
		return
	}

	var req PatternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.Factor(req.Factor).Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown factor: " + req.Factor})
		return
	}

	pattern := &database.LexiconPattern{
		Factor:  req.Factor,
		Text:    req.Text,
		Weight:  req.Weight,
		Enabled: req.Enabled,
	}
	if err := h.lexiconRepo.Create(c.Request.Context(), pattern); err != nil {
		h.logger.Error("failed to create pattern", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, pattern)
}

// UpdatePattern handles PUT /api/v1/lexicon/patterns/:id
func (h *Handler) UpdatePattern(c *gin.Context) {
	if h.lexiconRepo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "pattern storage not configured"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pattern id"})
		return
	}

	var req PatternRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.Factor(req.Factor).Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown factor: " + req.Factor})
		return
	}

	pattern := &database.LexiconPattern{
		ID:      id,
		Factor:  req.Factor,
		Text:    req.Text,
		Weight:  req.Weight,
		Enabled: req.Enabled,
	}
	if err = h.lexiconRepo.Update(c.Request.Context(), pattern); err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, pattern)
}

// DeletePattern handles DELETE /api/v1/lexicon/patterns/:id
func (h *Handler) DeletePattern(c *gin.Context) {
	if h.lexiconRepo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "pattern storage not configured"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pattern id"})
		return
	}

	if err = h.lexiconRepo.Delete(c.Request.Context(), id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ReadyCheck handles GET /ready. Reports degraded when the configured
// database is unreachable; the service still analyzes with embedded
// defaults in that state.
func (h *Handler) ReadyCheck(c *gin.Context) {
	if h.db != nil {
		if err := h.db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "ready",
		"patterns": h.engine.Lexicon().PatternCount(),
	})
}

// Metrics handles GET /metrics
func (h *Handler) Metrics(c *gin.Context) {
	if h.telemetry == nil {
		c.Status(http.StatusNotFound)
		return
	}
	h.telemetry.Handler().ServeHTTP(c.Writer, c.Request)
}

// toInput validates the request and converts it to the engine's input type.
func (r AnalyzeRequest) toInput() (domain.AnalysisInput, error) {
	input := domain.AnalysisInput{
		Type: r.InputType,
		URL:  strings.TrimSpace(r.URL),
		Text: r.Text,
	}
	switch r.InputType {
	case domain.InputTypeLink:
		if input.URL == "" {
			return input, errInputURLRequired
		}
	case domain.InputTypeText:
		if strings.TrimSpace(input.Text) == "" {
			return input, errInputTextRequired
		}
	default:
		return input, errInputTypeUnknown
	}
	return input, nil
}
