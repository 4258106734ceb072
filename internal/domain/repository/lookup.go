package repository

import (
	"context"
	"time"

	"github.com/bnema/bangsearch/internal/domain/entity"
)

// LookupRepository records resolution outcomes per token.
type LookupRepository interface {
	// Record increments the counter for (token, outcome).
	Record(ctx context.Context, token string, outcome entity.LookupOutcome, at time.Time) error

	// List returns stats ordered by count, highest first. limit <= 0 means all.
	List(ctx context.Context, limit int) ([]*entity.LookupStat, error)
}
