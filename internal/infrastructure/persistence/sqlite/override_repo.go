package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bnema/bangsearch/internal/domain/repository"
	"github.com/bnema/bangsearch/internal/logging"
)

const (
	listOverridesQuery  = `SELECT token, template FROM overrides`
	clearOverridesQuery = `DELETE FROM overrides`
	insertOverrideQuery = `INSERT INTO overrides (token, template, updated_at) VALUES (?, ?, ?)`
)

type overrideRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewOverrideRepository creates a new SQLite-backed override repository.
func NewOverrideRepository(db *sql.DB) repository.OverrideRepository {
	return &overrideRepo{db: db, now: time.Now}
}

func (r *overrideRepo) GetOverrides(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, listOverridesQuery)
	if err != nil {
		return nil, fmt.Errorf("query overrides: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var token, template string
		if err := rows.Scan(&token, &template); err != nil {
			return nil, fmt.Errorf("scan override: %w", err)
		}
		out[token] = template
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate overrides: %w", err)
	}
	return out, nil
}

// SetOverrides replaces the whole mapping in one transaction.
func (r *overrideRepo) SetOverrides(ctx context.Context, overrides map[string]string) (err error) {
	log := logging.FromContext(ctx)
	log.Debug().Int("count", len(overrides)).Msg("replacing overrides")

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, clearOverridesQuery); err != nil {
		return fmt.Errorf("clear overrides: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertOverrideQuery)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	updatedAt := r.now().UnixMilli()
	for token, template := range overrides {
		if _, err = stmt.ExecContext(ctx, token, template, updatedAt); err != nil {
			return fmt.Errorf("insert override %q: %w", token, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit overrides: %w", err)
	}
	return nil
}
