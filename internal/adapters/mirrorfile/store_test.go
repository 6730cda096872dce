package mirrorfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/bancada/internal/domain"
	"github.com/renato0307/bancada/internal/ports"
)

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "recent-items.json"))

	state, err := s.Load()

	require.NoError(t, err)
	assert.Empty(t, state.Items.Folders)
	assert.Empty(t, state.Items.Files)
	assert.Equal(t, domain.RecentItemsVersion, state.Items.Version)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "recent-items.json")
	s := NewStore(path)
	want := &ports.MirrorState{
		Applied: []string{"a", "b"},
		Items: domain.RecentItems{
			Files:   domain.RecentList{{FolderPath: "/p", Name: "x.go", Path: "/p/x.go"}},
			Folders: domain.RecentList{{Name: "p", Path: "/p"}},
			Version: domain.RecentItemsVersion,
		},
		LastSeq: 7,
	}

	require.NoError(t, s.Save(want))
	got, err := s.Load()

	require.NoError(t, err)
	assert.Equal(t, want, got)

	// The file stays human readable with the documented keys
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"version", "folders", "files", "applied", "updated_at"} {
		assert.Contains(t, raw, key)
	}
}

func TestSave_ShrinkingContentTruncates(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "recent-items.json"))
	long := domain.RecentList{}
	for i := 0; i < domain.MaxRecentItems; i++ {
		long = long.Add(domain.RecentEntry{Name: "n", Path: fmt.Sprintf("/very/long/path/number/%d", i)})
	}
	require.NoError(t, s.Save(&ports.MirrorState{Items: domain.RecentItems{Folders: long}}))
	require.NoError(t, s.Save(&ports.MirrorState{Items: domain.NewRecentItems()}))

	got, err := s.Load()

	require.NoError(t, err)
	assert.Empty(t, got.Items.Folders)
}

func TestSave_BoundsAppliedIDs(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "recent-items.json"))
	ids := make([]string, MaxAppliedIDs+10)
	for i := range ids {
		ids[i] = fmt.Sprintf("id-%d", i)
	}

	require.NoError(t, s.Save(&ports.MirrorState{Applied: ids}))
	got, err := s.Load()

	require.NoError(t, err)
	require.Len(t, got.Applied, MaxAppliedIDs)
	assert.Equal(t, "id-10", got.Applied[0])
	assert.Equal(t, ids[len(ids)-1], got.Applied[MaxAppliedIDs-1])
}

func TestLoad_LegacyFileWithoutVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recent-items.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"folders":[{"name":"p","path":"/p"}],"files":[]}`), 0644))

	got, err := NewStore(path).Load()

	require.NoError(t, err)
	assert.Equal(t, []string{"/p"}, got.Items.Folders.Paths())
	assert.Equal(t, domain.RecentItemsVersion, got.Items.Version)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{"corrupt", "{", "failed to unmarshal"},
		{"future version", `{"version": 2}`, "newer than supported"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "recent-items.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			state, err := NewStore(path).Load()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
			assert.NotNil(t, state)
		})
	}
}

func TestSave_ConcurrentWritersLeaveValidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recent-items.json")
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			items := domain.NewRecentItems()
			items.Folders = items.Folders.Add(domain.RecentEntry{Name: "p", Path: fmt.Sprintf("/p%d", i)})
			assert.NoError(t, NewStore(path).Save(&ports.MirrorState{Items: items}))
		}(i)
	}
	wg.Wait()

	got, err := NewStore(path).Load()
	require.NoError(t, err)
	assert.Len(t, got.Items.Folders, 1)
}
