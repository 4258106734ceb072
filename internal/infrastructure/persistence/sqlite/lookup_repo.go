package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bnema/bangsearch/internal/domain/entity"
	"github.com/bnema/bangsearch/internal/domain/repository"
)

const (
	recordLookupQuery = `
INSERT INTO lookup_stats (token, outcome, count, last_seen_at)
VALUES (?, ?, 1, ?)
ON CONFLICT (token, outcome) DO UPDATE SET
    count = count + 1,
    last_seen_at = excluded.last_seen_at`

	listLookupsQuery = `
SELECT token, outcome, count, last_seen_at
FROM lookup_stats
ORDER BY count DESC, last_seen_at DESC, token ASC
LIMIT ?`
)

type lookupRepo struct {
	db *sql.DB
}

// NewLookupRepository creates a new SQLite-backed lookup statistics repository.
func NewLookupRepository(db *sql.DB) repository.LookupRepository {
	return &lookupRepo{db: db}
}

func (r *lookupRepo) Record(ctx context.Context, token string, outcome entity.LookupOutcome, at time.Time) error {
	if _, err := r.db.ExecContext(ctx, recordLookupQuery, token, string(outcome), at.UnixMilli()); err != nil {
		return fmt.Errorf("record lookup %q: %w", token, err)
	}
	return nil
}

func (r *lookupRepo) List(ctx context.Context, limit int) ([]*entity.LookupStat, error) {
	if limit <= 0 {
		limit = -1 // no limit in SQLite
	}

	rows, err := r.db.QueryContext(ctx, listLookupsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("query lookup stats: %w", err)
	}
	defer rows.Close()

	var stats []*entity.LookupStat
	for rows.Next() {
		var (
			stat     entity.LookupStat
			outcome  string
			lastSeen int64
		)
		if err := rows.Scan(&stat.Token, &outcome, &stat.Count, &lastSeen); err != nil {
			return nil, fmt.Errorf("scan lookup stat: %w", err)
		}
		stat.Outcome = entity.LookupOutcome(outcome)
		stat.LastSeenAt = time.UnixMilli(lastSeen)
		stats = append(stats, &stat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lookup stats: %w", err)
	}
	return stats, nil
}
