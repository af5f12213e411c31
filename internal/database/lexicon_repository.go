package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/humai-verify/screener/internal/domain"
	"github.com/humai-verify/screener/internal/lexicon"
)

// LexiconPattern is one operator-managed pattern row. Enabled rows override
// the embedded defaults of their factor on reload.
type LexiconPattern struct {
	ID        int       `db:"id" json:"id"`
	Factor    string    `db:"factor" json:"factor"`
	Text      string    `db:"text" json:"text"`
	Weight    int       `db:"weight" json:"weight"`
	Enabled   bool      `db:"enabled" json:"enabled"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// LexiconRepository handles database operations for lexicon patterns.
type LexiconRepository struct {
	db *sqlx.DB
}

// NewLexiconRepository creates a new lexicon repository.
func NewLexiconRepository(db *sqlx.DB) *LexiconRepository {
	return &LexiconRepository{db: db}
}

// Create inserts a new pattern into the database.
func (r *LexiconRepository) Create(ctx context.Context, p *LexiconPattern) error {
	if !domain.Factor(p.Factor).Valid() {
		return fmt.Errorf("unknown factor: %s", p.Factor)
	}

	query := `
		INSERT INTO lexicon_patterns (factor, text, weight, enabled)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query, p.Factor, p.Text, p.Weight, p.Enabled).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create pattern: %w", err)
	}

	return nil
}

// GetByID retrieves a pattern by its ID.
func (r *LexiconRepository) GetByID(ctx context.Context, id int) (*LexiconPattern, error) {
	var p LexiconPattern
	query := `
		SELECT id, factor, text, weight, enabled, created_at, updated_at
		FROM lexicon_patterns
		WHERE id = $1
	`

	if err := r.db.GetContext(ctx, &p, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("pattern not found: %d", id)
		}
		return nil, fmt.Errorf("failed to get pattern: %w", err)
	}

	return &p, nil
}

// List retrieves all patterns with optional filtering.
func (r *LexiconRepository) List(ctx context.Context, factor string, enabled *bool) ([]*LexiconPattern, error) {
	query := `
		SELECT id, factor, text, weight, enabled, created_at, updated_at
		FROM lexicon_patterns
	`

	var whereClauses []string
	var args []any
	argIndex := 1

	if factor != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("factor = $%d", argIndex))
		args = append(args, factor)
		argIndex++
	}

	if enabled != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("enabled = $%d", argIndex))
		args = append(args, *enabled)
	}

	if len(whereClauses) > 0 {
		query += " WHERE " + strings.Join(whereClauses, " AND ")
	}
	query += " ORDER BY factor ASC, weight DESC, id ASC"

	var patterns []*LexiconPattern
	if err := r.db.SelectContext(ctx, &patterns, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list patterns: %w", err)
	}

	return patterns, nil
}

// Update updates an existing pattern.
func (r *LexiconRepository) Update(ctx context.Context, p *LexiconPattern) error {
	query := `
		UPDATE lexicon_patterns
		SET factor = $1, text = $2, weight = $3, enabled = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(ctx, query, p.Factor, p.Text, p.Weight, p.Enabled, p.ID).
		Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("pattern not found: %d", p.ID)
		}
		return fmt.Errorf("failed to update pattern: %w", err)
	}

	return nil
}

// Delete removes a pattern from the database.
func (r *LexiconRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM lexicon_patterns WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete pattern: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("pattern not found: %d", id)
	}

	return nil
}

// Count returns the total number of patterns.
func (r *LexiconRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM lexicon_patterns`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count patterns: %w", err)
	}
	return count, nil
}

// OverridesByFactor loads all enabled patterns grouped by factor, in the
// shape lexicon.Store.MergeOverrides consumes. Factors with no enabled rows
// are absent from the map and keep their embedded defaults.
func (r *LexiconRepository) OverridesByFactor(ctx context.Context) (map[domain.Factor][]lexicon.Pattern, error) {
	enabled := true
	rows, err := r.List(ctx, "", &enabled)
	if err != nil {
		return nil, err
	}

	overrides := make(map[domain.Factor][]lexicon.Pattern)
	for _, row := range rows {
		f := domain.Factor(row.Factor)
		if !f.Valid() {
			continue
		}
		overrides[f] = append(overrides[f], lexicon.Pattern{Text: row.Text, Weight: row.Weight})
	}

	return overrides, nil
}
