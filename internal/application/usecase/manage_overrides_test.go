package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bangsearch/internal/application/port"
	portmocks "github.com/bnema/bangsearch/internal/application/port/mocks"
	"github.com/bnema/bangsearch/internal/application/usecase"
	"github.com/bnema/bangsearch/internal/domain/bang"
	repomocks "github.com/bnema/bangsearch/internal/domain/repository/mocks"
)

func updateEvent() interface{} {
	return mock.MatchedBy(func(e port.UpdateEvent) bool {
		return e.Action == port.ActionShortcutsUpdated && !e.At.IsZero()
	})
}

func TestManageOverridesUseCase_Add_PrefixesToken(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockOverrideRepository(t)
	notifier := portmocks.NewMockUpdateNotifier(t)

	repo.EXPECT().GetOverrides(mock.Anything).Return(map[string]string{"!a": "https://a.example/?q="}, nil)
	repo.EXPECT().SetOverrides(mock.Anything, map[string]string{
		"!a":  "https://a.example/?q=",
		"!mdn": "https://developer.mozilla.org/search?q={q}",
	}).Return(nil)
	notifier.EXPECT().Broadcast(mock.Anything, updateEvent()).Return()

	uc := usecase.NewManageOverridesUseCase(repo, notifier)

	sc, err := uc.Add(ctx, usecase.AddShortcutInput{Token: " mdn ", Template: "https://developer.mozilla.org/search?q={q}"})
	require.NoError(t, err)
	assert.Equal(t, &bang.Shortcut{Token: "!mdn", Template: "https://developer.mozilla.org/search?q={q}"}, sc)
}

func TestManageOverridesUseCase_Add_Invalid(t *testing.T) {
	repo := repomocks.NewMockOverrideRepository(t)
	uc := usecase.NewManageOverridesUseCase(repo, nil)

	_, err := uc.Add(testContext(), usecase.AddShortcutInput{Token: "!", Template: "https://x.example/?q="})
	require.ErrorIs(t, err, usecase.ErrInvalidShortcut)

	_, err = uc.Add(testContext(), usecase.AddShortcutInput{Token: "x", Template: "not a url"})
	require.ErrorIs(t, err, usecase.ErrInvalidShortcut)
	assert.Contains(t, err.Error(), "!x:")
}

func TestManageOverridesUseCase_Add_SaveFails(t *testing.T) {
	repo := repomocks.NewMockOverrideRepository(t)
	notifier := portmocks.NewMockUpdateNotifier(t)

	repo.EXPECT().GetOverrides(mock.Anything).Return(nil, nil)
	repo.EXPECT().SetOverrides(mock.Anything, mock.Anything).Return(errors.New("readonly database"))

	uc := usecase.NewManageOverridesUseCase(repo, notifier)

	_, err := uc.Add(testContext(), usecase.AddShortcutInput{Token: "!x", Template: "https://x.example/?q="})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "readonly database")
	notifier.AssertNotCalled(t, "Broadcast", mock.Anything, mock.Anything)
}

func TestManageOverridesUseCase_Delete(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockOverrideRepository(t)
	notifier := portmocks.NewMockUpdateNotifier(t)

	repo.EXPECT().GetOverrides(mock.Anything).Return(map[string]string{
		"!a": "https://a.example/?q=",
		"!b": "https://b.example/?q=",
	}, nil)
	repo.EXPECT().SetOverrides(mock.Anything, map[string]string{"!b": "https://b.example/?q="}).Return(nil)
	notifier.EXPECT().Broadcast(mock.Anything, updateEvent()).Return()

	uc := usecase.NewManageOverridesUseCase(repo, notifier)
	require.NoError(t, uc.Delete(ctx, "a"))
}

func TestManageOverridesUseCase_Delete_NotFound(t *testing.T) {
	repo := repomocks.NewMockOverrideRepository(t)
	repo.EXPECT().GetOverrides(mock.Anything).Return(map[string]string{"!a": "https://a.example/?q="}, nil)

	uc := usecase.NewManageOverridesUseCase(repo, nil)

	err := uc.Delete(testContext(), "!missing")
	require.ErrorIs(t, err, usecase.ErrShortcutNotFound)
}

func TestManageOverridesUseCase_List_Sorted(t *testing.T) {
	repo := repomocks.NewMockOverrideRepository(t)
	repo.EXPECT().GetOverrides(mock.Anything).Return(map[string]string{
		"!yt": "https://youtube.com/results?search_query=",
		"!a":  "https://a.example/?q=",
		"!gh": "https://github.com/search?q=%s",
	}, nil)

	uc := usecase.NewManageOverridesUseCase(repo, nil)

	list, err := uc.List(testContext())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "!a", list[0].Token)
	assert.Equal(t, "!gh", list[1].Token)
	assert.Equal(t, "!yt", list[2].Token)
}

func TestManageOverridesUseCase_Get_ErrorWrapped(t *testing.T) {
	repo := repomocks.NewMockOverrideRepository(t)
	boom := errors.New("boom")
	repo.EXPECT().GetOverrides(mock.Anything).Return(nil, boom)

	uc := usecase.NewManageOverridesUseCase(repo, nil)

	_, err := uc.Get(testContext())
	require.ErrorIs(t, err, boom)
}

func TestManageOverridesUseCase_Replace(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockOverrideRepository(t)
	notifier := portmocks.NewMockUpdateNotifier(t)

	repo.EXPECT().SetOverrides(mock.Anything, map[string]string{
		"!x": "https://x.example/?q=",
		"!y": "https://y.example/{q}",
	}).Return(nil)
	notifier.EXPECT().Broadcast(mock.Anything, updateEvent()).Return()

	uc := usecase.NewManageOverridesUseCase(repo, notifier)

	got, err := uc.Replace(ctx, usecase.ReplaceInput{Shortcuts: map[string]string{
		"x":  "https://x.example/?q=",
		"!y": " https://y.example/{q} ",
	}})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestManageOverridesUseCase_Replace_Merge(t *testing.T) {
	repo := repomocks.NewMockOverrideRepository(t)

	repo.EXPECT().GetOverrides(mock.Anything).Return(map[string]string{
		"!a": "https://a.example/?q=",
		"!x": "https://old.example/?q=",
	}, nil)
	repo.EXPECT().SetOverrides(mock.Anything, map[string]string{
		"!a": "https://a.example/?q=",
		"!x": "https://x.example/?q=",
	}).Return(nil)

	uc := usecase.NewManageOverridesUseCase(repo, nil)

	_, err := uc.Replace(testContext(), usecase.ReplaceInput{
		Shortcuts: map[string]string{"!x": "https://x.example/?q="},
		Merge:     true,
	})
	require.NoError(t, err)
}

func TestManageOverridesUseCase_Replace_InvalidWritesNothing(t *testing.T) {
	repo := repomocks.NewMockOverrideRepository(t)
	uc := usecase.NewManageOverridesUseCase(repo, nil)

	_, err := uc.Replace(context.Background(), usecase.ReplaceInput{Shortcuts: map[string]string{
		"!ok":  "https://ok.example/?q=",
		"!bad": "",
	}})
	require.ErrorIs(t, err, usecase.ErrInvalidShortcut)
	assert.Contains(t, err.Error(), "!bad: shortcut template cannot be empty")
}

func TestManageOverridesUseCase_Replace_DuplicateTokens(t *testing.T) {
	repo := repomocks.NewMockOverrideRepository(t)
	uc := usecase.NewManageOverridesUseCase(repo, nil)

	_, err := uc.Replace(testContext(), usecase.ReplaceInput{Shortcuts: map[string]string{
		"w":  "https://one.example/?q=",
		"!w": "https://two.example/?q=",
	}})
	require.ErrorIs(t, err, usecase.ErrInvalidShortcut)
	assert.Contains(t, err.Error(), `!w: duplicate keys "!w" and "w"`)
}

// slowOverrideRepo widens the window between reading and storing the
// mapping so unserialized writers would overwrite each other.
type slowOverrideRepo struct {
	mu    sync.Mutex
	data  map[string]string
	delay time.Duration
}

func (r *slowOverrideRepo) GetOverrides(context.Context) (map[string]string, error) {
	r.mu.Lock()
	out := make(map[string]string, len(r.data))
	for k, v := range r.data {
		out[k] = v
	}
	r.mu.Unlock()
	time.Sleep(r.delay)
	return out, nil
}

func (r *slowOverrideRepo) SetOverrides(_ context.Context, overrides map[string]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = make(map[string]string, len(overrides))
	for k, v := range overrides {
		r.data[k] = v
	}
	return nil
}

func TestManageOverridesUseCase_ConcurrentWritesKeepEveryUpdate(t *testing.T) {
	repo := &slowOverrideRepo{
		data:  map[string]string{"!keep": "https://keep.example/?q=", "!gone": "https://gone.example/?q="},
		delay: 5 * time.Millisecond,
	}
	uc := usecase.NewManageOverridesUseCase(repo, nil)
	ctx := testContext()

	const writers = 10
	var wg sync.WaitGroup
	errs := make(chan error, writers+1)
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Add(ctx, usecase.AddShortcutInput{
				Token:    fmt.Sprintf("t%d", i),
				Template: fmt.Sprintf("https://t%d.example/?q=", i),
			})
			errs <- err
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		errs <- uc.Delete(ctx, "!gone")
	}()
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	stored, err := repo.GetOverrides(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, writers+1)
	assert.Contains(t, stored, "!keep")
	assert.NotContains(t, stored, "!gone")
	for i := range writers {
		assert.Equal(t, fmt.Sprintf("https://t%d.example/?q=", i), stored[fmt.Sprintf("!t%d", i)])
	}
}
