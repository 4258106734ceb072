// Package sqlite provides SQLite implementations of domain repositories.
//
// The lazy wrappers below implement the same repository interfaces as
// their eager counterparts but open the database on first use, so CLI
// commands that never read shortcuts do not create the file.
package sqlite

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/bangsearch/internal/application/port"
	"github.com/bnema/bangsearch/internal/domain/entity"
	"github.com/bnema/bangsearch/internal/domain/repository"
)

// LazyOverrideRepository wraps an override repository with lazy database initialization.
type LazyOverrideRepository struct {
	provider port.DatabaseProvider
	repo     repository.OverrideRepository
	once     sync.Once
	initErr  error
}

// NewLazyOverrideRepository creates a lazy-loading override repository.
func NewLazyOverrideRepository(provider port.DatabaseProvider) repository.OverrideRepository {
	return &LazyOverrideRepository{provider: provider}
}

func (r *LazyOverrideRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewOverrideRepository(db)
	})
	return r.initErr
}

func (r *LazyOverrideRepository) GetOverrides(ctx context.Context) (map[string]string, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.GetOverrides(ctx)
}

func (r *LazyOverrideRepository) SetOverrides(ctx context.Context, overrides map[string]string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.SetOverrides(ctx, overrides)
}

// LazyLookupRepository wraps a lookup repository with lazy database initialization.
type LazyLookupRepository struct {
	provider port.DatabaseProvider
	repo     repository.LookupRepository
	once     sync.Once
	initErr  error
}

// NewLazyLookupRepository creates a lazy-loading lookup repository.
func NewLazyLookupRepository(provider port.DatabaseProvider) repository.LookupRepository {
	return &LazyLookupRepository{provider: provider}
}

func (r *LazyLookupRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewLookupRepository(db)
	})
	return r.initErr
}

func (r *LazyLookupRepository) Record(ctx context.Context, token string, outcome entity.LookupOutcome, at time.Time) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Record(ctx, token, outcome, at)
}

func (r *LazyLookupRepository) List(ctx context.Context, limit int) ([]*entity.LookupStat, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.List(ctx, limit)
}
