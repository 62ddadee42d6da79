package scheduler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"jobportal-backend/internal/auth"
	"jobportal-backend/internal/model"
	"jobportal-backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompanies struct {
	companies []model.JobCompany
	err       error
}

func (f fakeCompanies) ListCompanies(context.Context) ([]model.JobCompany, error) {
	return f.companies, f.err
}

func saveFile(t *testing.T, store storage.Store, dir, name string) {
	t.Helper()
	require.NoError(t, store.SaveFile(context.Background(), dir, name, strings.NewReader("png")))
}

func TestPruneLogos_keepsCurrentLogo(t *testing.T) {
	ctx := context.Background()
	store := storage.NewLocalStorage(t.TempDir())

	saveFile(t, store, "company/1", "old.png")
	saveFile(t, store, "company/1", "current.png")
	saveFile(t, store, "company/2", "other.png")

	s := New(nil, nil, fakeCompanies{companies: []model.JobCompany{
		{ID: 1, Logo: "current.png"},
		{ID: 2, Logo: ""},
		{ID: 3, Logo: "missing.png"},
	}}, store)
	s.now = func() time.Time { return time.Now().Add(time.Hour) }

	removed, err := s.PruneLogos(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	files, err := store.List(ctx, "company/1")
	require.NoError(t, err)
	assert.Equal(t, []string{"current.png"}, storage.Names(files))

	files, err = store.List(ctx, "company/2")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestPruneLogos_keepsFreshUploadNotYetAttached(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	store := storage.NewLocalStorage(base)

	saveFile(t, store, "company/1", "stale.png")
	saveFile(t, store, "company/1", "uploading.png")
	old := time.Now().Add(-2 * LogoGracePeriod)
	require.NoError(t, os.Chtimes(filepath.Join(base, "company", "1", "stale.png"), old, old))

	// the company row still points at the previous logo
	s := New(nil, nil, fakeCompanies{companies: []model.JobCompany{{ID: 1, Logo: "previous.png"}}}, store)

	removed, err := s.PruneLogos(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	files, err := store.List(ctx, "company/1")
	require.NoError(t, err)
	assert.Equal(t, []string{"uploading.png"}, storage.Names(files))
}

func TestPruneLogos_listError(t *testing.T) {
	s := New(nil, nil, fakeCompanies{err: errors.New("db down")}, storage.NewLocalStorage(t.TempDir()))

	_, err := s.PruneLogos(context.Background())
	assert.ErrorContains(t, err, "db down")
}

func TestCleanBlacklist(t *testing.T) {
	ctx := context.Background()
	store := auth.NewInMemoryBlacklistStore()
	require.NoError(t, store.AddToBlacklist(ctx, "expired", time.Now().Add(-time.Minute)))
	require.NoError(t, store.AddToBlacklist(ctx, "live", time.Now().Add(time.Hour)))

	New(nil, store, nil, nil).CleanBlacklist()

	assert.Equal(t, 1, store.Len())
	listed, err := store.IsBlacklisted(ctx, "live")
	require.NoError(t, err)
	assert.True(t, listed)
}

func TestStartRegistersEnabledJobs(t *testing.T) {
	s := New(nil, auth.NewInMemoryBlacklistStore(), fakeCompanies{}, storage.NewLocalStorage(t.TempDir()))
	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	assert.Len(t, s.cron.Entries(), 2)
}

func TestStartWithoutDependencies(t *testing.T) {
	s := New(nil, nil, nil, nil)
	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	assert.Empty(t, s.cron.Entries())
}
