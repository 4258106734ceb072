package usecase

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/bnema/bangsearch/internal/application/port"
	"github.com/bnema/bangsearch/internal/domain/bang"
	"github.com/bnema/bangsearch/internal/domain/repository"
	"github.com/bnema/bangsearch/internal/logging"
)

// ShortcutTableLoader owns the current shortcut table. It merges the
// packaged defaults with the user's overrides and swaps the result in
// atomically, so readers always see either the previous or the new table.
type ShortcutTableLoader struct {
	defaults  port.DefaultsSource
	overrides repository.OverrideRepository

	current atomic.Pointer[bang.Table]
	loadMu  sync.Mutex

	cbMu      sync.Mutex
	callbacks map[uint64]func(*bang.Table)
	nextID    uint64
}

// NewShortcutTableLoader creates a loader. Either source may be nil; a nil
// source counts as an empty one.
func NewShortcutTableLoader(defaults port.DefaultsSource, overrides repository.OverrideRepository) *ShortcutTableLoader {
	l := &ShortcutTableLoader{
		defaults:  defaults,
		overrides: overrides,
		callbacks: make(map[uint64]func(*bang.Table)),
	}
	l.current.Store(bang.EmptyTable())
	return l
}

// Load rebuilds the table from both sources and makes it current.
// It never fails: an unreachable source is logged and treated as empty.
func (l *ShortcutTableLoader) Load(ctx context.Context) *bang.Table {
	log := logging.FromContext(ctx)

	l.loadMu.Lock()
	defer l.loadMu.Unlock()

	var defaults map[string]string
	if l.defaults != nil {
		d, err := l.defaults.Defaults(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("packaged shortcuts unavailable, continuing without them")
		} else {
			defaults = d
		}
	}

	var overrides map[string]string
	if l.overrides != nil {
		o, err := l.overrides.GetOverrides(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("override store unavailable, using packaged shortcuts only")
		} else {
			overrides = o
		}
	}

	table := bang.Merge(defaults, overrides)
	l.current.Store(table)

	log.Debug().
		Int("defaults", len(defaults)).
		Int("overrides", len(overrides)).
		Int("total", table.Len()).
		Msg("shortcut table loaded")

	return table
}

// Current returns the table from the last load. Before the first load it
// is empty, never nil.
func (l *ShortcutTableLoader) Current() *bang.Table {
	return l.current.Load()
}

// OnUpdate registers a callback that runs after every reload triggered by
// an update signal. The returned func unregisters it.
func (l *ShortcutTableLoader) OnUpdate(callback func(*bang.Table)) func() {
	l.cbMu.Lock()
	defer l.cbMu.Unlock()

	id := l.nextID
	l.nextID++
	l.callbacks[id] = callback

	return func() {
		l.cbMu.Lock()
		defer l.cbMu.Unlock()
		delete(l.callbacks, id)
	}
}

// Reload loads the table and notifies every registered callback.
func (l *ShortcutTableLoader) Reload(ctx context.Context) *bang.Table {
	table := l.Load(ctx)

	l.cbMu.Lock()
	callbacks := make([]func(*bang.Table), 0, len(l.callbacks))
	for _, cb := range l.callbacks {
		callbacks = append(callbacks, cb)
	}
	l.cbMu.Unlock()

	for _, cb := range callbacks {
		cb(table)
	}
	return table
}

// Listen reloads on every shortcutsUpdated event until ctx is done or the
// channel is closed.
func (l *ShortcutTableLoader) Listen(ctx context.Context, events <-chan port.UpdateEvent) {
	log := logging.FromContext(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if event.Action != port.ActionShortcutsUpdated {
				continue
			}
			log.Debug().Time("at", event.At).Msg("update signal received, reloading shortcuts")
			l.Reload(ctx)
		}
	}
}
