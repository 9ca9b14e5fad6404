package prefs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"smartstock/models"
	"smartstock/seed"
	"smartstock/store"
)

func TestSyncerRestore(t *testing.T) {
	repo := NewMemory()
	require.NoError(t, repo.Save(context.Background(), DefaultKey, models.Preferences{Theme: models.ThemeDark, ActiveTab: "events"}))
	s := store.New(seed.Default())

	require.NoError(t, NewSyncer(repo, "", nil).Restore(context.Background(), s))

	assert.Equal(t, models.Preferences{Theme: models.ThemeDark, ActiveTab: "events"}, s.Preferences())
}

func TestSyncerRestoreMissingIsNotAnError(t *testing.T) {
	s := store.New(seed.Default())

	require.NoError(t, NewSyncer(NewMemory(), "", nil).Restore(context.Background(), s))

	assert.Equal(t, models.Preferences{Theme: models.ThemeLight, ActiveTab: "overview"}, s.Preferences())
}

type failingRepo struct{}

func (failingRepo) Load(context.Context, string) (models.Preferences, error) {
	return models.Preferences{}, errors.New("unavailable")
}

func (failingRepo) Save(context.Context, string, models.Preferences) error {
	return errors.New("unavailable")
}

func TestSyncerRestoreError(t *testing.T) {
	s := store.New(seed.Default())

	assert.Error(t, NewSyncer(failingRepo{}, "", nil).Restore(context.Background(), s))
	assert.Equal(t, models.ThemeLight, s.Preferences().Theme)
}

func TestSyncerSavesPreferenceChanges(t *testing.T) {
	defer goleak.VerifyNone(t)

	repo := NewMemory()
	s := store.New(seed.Default())
	y := NewSyncer(repo, "test", nil)
	require.NoError(t, y.Restore(context.Background(), s))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		y.Run(ctx, s)
	}()

	// Subscription happens inside Run; retry until a change is observed.
	require.Eventually(t, func() bool {
		s.ToggleTheme()
		p, err := repo.Load(context.Background(), "test")
		return err == nil && p.Theme != ""
	}, time.Second, 10*time.Millisecond)

	s.SetActiveTab("inventory")
	cancel()
	<-done

	got, err := repo.Load(context.Background(), "test")
	require.NoError(t, err)
	assert.Equal(t, s.Preferences(), got)
}

func TestSyncerIgnoresOtherFields(t *testing.T) {
	defer goleak.VerifyNone(t)

	repo := NewMemory()
	s := store.New(seed.Default())
	y := NewSyncer(repo, "", nil)
	require.NoError(t, y.Restore(context.Background(), s))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		y.Run(ctx, s)
	}()
	time.Sleep(20 * time.Millisecond)

	s.SetSearchQuery("beer")
	s.ApproveRecommendation("rec-001")
	cancel()
	<-done

	_, err := repo.Load(context.Background(), DefaultKey)
	assert.ErrorIs(t, err, ErrNotFound)
}
