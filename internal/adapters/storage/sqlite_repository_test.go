package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/bancada/internal/domain"
)

func newTestRepo(t *testing.T) (*SQLiteRecentRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.db")
	repo, err := NewSQLiteRecentRepository(path)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo, path
}

func TestLoadRecent_EmptyStore(t *testing.T) {
	repo, _ := newTestRepo(t)

	for _, kind := range []domain.RecentKind{domain.RecentFiles, domain.RecentFolders} {
		list, err := repo.LoadRecent(context.Background(), kind)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	}
}

func TestSaveRecent_RoundTripsPerKind(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()
	folders := domain.RecentList{{Name: "proj", Path: "/work/proj"}}
	files := domain.RecentList{{FolderPath: "/work/proj", Name: "main.go", Path: "/work/proj/main.go"}}

	require.NoError(t, repo.SaveRecent(ctx, domain.RecentFolders, folders))
	require.NoError(t, repo.SaveRecent(ctx, domain.RecentFiles, files))
	require.NoError(t, repo.SaveRecent(ctx, domain.RecentFolders, folders.Add(domain.RecentEntry{Name: "other", Path: "/work/other"})))
	require.NoError(t, repo.Close())

	reopened, err := NewSQLiteRecentRepository(path)
	require.NoError(t, err)
	defer reopened.Close()

	gotFolders, err := reopened.LoadRecent(ctx, domain.RecentFolders)
	require.NoError(t, err)
	assert.Equal(t, []string{"/work/other", "/work/proj"}, gotFolders.Paths())

	gotFiles, err := reopened.LoadRecent(ctx, domain.RecentFiles)
	require.NoError(t, err)
	assert.Equal(t, files, gotFiles)
}

func TestSchemaVersion_RecordedAndChecked(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	value, found, err := repo.get(ctx, KeySchemaVersion)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "1", value)

	require.NoError(t, repo.put(ctx, KeySchemaVersion, "99"))
	require.NoError(t, repo.Close())

	_, err = NewSQLiteRecentRepository(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "newer than supported")
}

func TestRecentListFromValue(t *testing.T) {
	list, err := recentListFromValue("")
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = recentListFromValue("{not json")
	assert.Error(t, err)

	value, err := recentListToValue(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", value)
}

func TestWithRetry(t *testing.T) {
	t.Run("retries busy errors", func(t *testing.T) {
		calls := 0
		err := withRetry(func() error {
			calls++
			if calls < 3 {
				return sqlite3.Error{Code: sqlite3.ErrBusy}
			}
			return nil
		}, 5)

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns other errors immediately", func(t *testing.T) {
		calls := 0
		boom := errors.New("boom")
		err := withRetry(func() error {
			calls++
			return boom
		}, 5)

		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, calls)
	})
}
