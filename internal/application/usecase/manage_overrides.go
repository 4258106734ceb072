package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bnema/bangsearch/internal/application/port"
	"github.com/bnema/bangsearch/internal/domain/bang"
	"github.com/bnema/bangsearch/internal/domain/repository"
	"github.com/bnema/bangsearch/internal/domain/validation"
	"github.com/bnema/bangsearch/internal/logging"
)

// ManageOverridesUseCase handles the user's custom shortcuts. Every write
// replaces the stored mapping and broadcasts shortcutsUpdated. Writes are
// serialized: read, modify, store and broadcast happen under one lock.
type ManageOverridesUseCase struct {
	mu       sync.Mutex
	repo     repository.OverrideRepository
	notifier port.UpdateNotifier
	now      func() time.Time
}

// NewManageOverridesUseCase creates a new overrides management use case.
// notifier may be nil.
func NewManageOverridesUseCase(repo repository.OverrideRepository, notifier port.UpdateNotifier) *ManageOverridesUseCase {
	return &ManageOverridesUseCase{
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
	}
}

// Get returns the raw override mapping.
func (uc *ManageOverridesUseCase) Get(ctx context.Context) (map[string]string, error) {
	overrides, err := uc.repo.GetOverrides(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get overrides: %w", err)
	}
	if overrides == nil {
		overrides = map[string]string{}
	}
	return overrides, nil
}

// List returns the overrides sorted by token.
func (uc *ManageOverridesUseCase) List(ctx context.Context) ([]bang.Shortcut, error) {
	overrides, err := uc.Get(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]bang.Shortcut, 0, len(overrides))
	for token, template := range overrides {
		list = append(list, bang.Shortcut{Token: token, Template: template})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Token < list[j].Token })
	return list, nil
}

// AddShortcutInput contains parameters for adding an override.
type AddShortcutInput struct {
	Token    string // "w" and "!w" are equivalent
	Template string
}

// Add stores one override, replacing any previous template for the token.
func (uc *ManageOverridesUseCase) Add(ctx context.Context, input AddShortcutInput) (*bang.Shortcut, error) {
	log := logging.FromContext(ctx)

	token := bang.NormalizeToken(input.Token)
	template := strings.TrimSpace(input.Template)
	if errs := validation.ValidateShortcut(token, template); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidShortcut, strings.Join(errs, "; "))
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	overrides, err := uc.Get(ctx)
	if err != nil {
		return nil, err
	}

	next := copyOverrides(overrides)
	next[token] = template
	if err := uc.write(ctx, next); err != nil {
		return nil, err
	}

	log.Info().Str("token", token).Str("template", template).Msg("shortcut saved")
	return &bang.Shortcut{Token: token, Template: template}, nil
}

// Delete removes one override.
func (uc *ManageOverridesUseCase) Delete(ctx context.Context, token string) error {
	log := logging.FromContext(ctx)

	token = bang.NormalizeToken(token)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	overrides, err := uc.Get(ctx)
	if err != nil {
		return err
	}
	if _, ok := overrides[token]; !ok {
		return fmt.Errorf("%w: %q", ErrShortcutNotFound, token)
	}

	next := copyOverrides(overrides)
	delete(next, token)
	if err := uc.write(ctx, next); err != nil {
		return err
	}

	log.Info().Str("token", token).Msg("shortcut deleted")
	return nil
}

// ReplaceInput contains a full override mapping.
type ReplaceInput struct {
	Shortcuts map[string]string
	// Merge keeps existing overrides not present in Shortcuts.
	Merge bool
}

// Replace validates every entry and stores the result. Nothing is written
// when any entry is invalid or when two keys name the same token ("w" and
// "!w").
func (uc *ManageOverridesUseCase) Replace(ctx context.Context, input ReplaceInput) (map[string]string, error) {
	log := logging.FromContext(ctx)

	incoming := make(map[string]string, len(input.Shortcuts))
	seen := make(map[string]string, len(input.Shortcuts))
	var errs []string
	for rawToken, rawTemplate := range input.Shortcuts {
		token := bang.NormalizeToken(rawToken)
		if first, dup := seen[token]; dup {
			a, b := first, rawToken
			if b < a {
				a, b = b, a
			}
			errs = append(errs, fmt.Sprintf("%s: duplicate keys %q and %q", token, a, b))
			continue
		}
		seen[token] = rawToken
		template := strings.TrimSpace(rawTemplate)
		if msgs := validation.ValidateShortcut(token, template); len(msgs) > 0 {
			errs = append(errs, msgs...)
			continue
		}
		incoming[token] = template
	}
	if len(errs) > 0 {
		sort.Strings(errs)
		return nil, fmt.Errorf("%w: %s", ErrInvalidShortcut, strings.Join(errs, "; "))
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := incoming
	if input.Merge {
		current, err := uc.Get(ctx)
		if err != nil {
			return nil, err
		}
		next = copyOverrides(current)
		for token, template := range incoming {
			next[token] = template
		}
	}

	if err := uc.write(ctx, next); err != nil {
		return nil, err
	}

	log.Info().Int("count", len(next)).Bool("merge", input.Merge).Msg("overrides replaced")
	return copyOverrides(next), nil
}

func (uc *ManageOverridesUseCase) write(ctx context.Context, overrides map[string]string) error {
	if err := uc.repo.SetOverrides(ctx, overrides); err != nil {
		return fmt.Errorf("failed to save overrides: %w", err)
	}
	if uc.notifier != nil {
		uc.notifier.Broadcast(ctx, port.UpdateEvent{Action: port.ActionShortcutsUpdated, At: uc.now()})
	}
	return nil
}

func copyOverrides(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
