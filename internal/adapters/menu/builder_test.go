package menu

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/bancada/internal/domain"
)

func TestBuild(t *testing.T) {
	file := domain.RecentEntry{FolderPath: "/work/p", Name: "main.go", Path: "/work/p/main.go"}
	folder := domain.RecentEntry{Name: "p", Path: "/work/p"}

	tests := []struct {
		name   string
		items  domain.RecentItems
		labels []string
	}{
		{
			name:   "empty",
			items:  domain.NewRecentItems(),
			labels: []string{"No recent items"},
		},
		{
			name:   "files only",
			items:  domain.RecentItems{Files: domain.RecentList{file}},
			labels: []string{"Recent Files", "main.go — /work/p/main.go"},
		},
		{
			name:   "folders only",
			items:  domain.RecentItems{Folders: domain.RecentList{folder}},
			labels: []string{"Recent Folders", "p — /work/p"},
		},
		{
			name:   "both separated",
			items:  domain.RecentItems{Files: domain.RecentList{file}, Folders: domain.RecentList{folder}},
			labels: []string{"Recent Files", "main.go — /work/p/main.go", "", "Recent Folders", "p — /work/p"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := Build(tt.items)
			var labels []string
			for _, it := range items {
				labels = append(labels, it.Label)
			}
			assert.Equal(t, tt.labels, labels)
		})
	}
}

func TestBuild_ItemActions(t *testing.T) {
	items := Build(domain.RecentItems{
		Files:   domain.RecentList{{FolderPath: "/w", Name: "a", Path: "/w/a"}},
		Folders: domain.RecentList{{Name: "w", Path: "/w"}},
	})
	require.Len(t, items, 5)

	assert.False(t, items[0].Enabled, "headers are disabled")
	assert.Equal(t, domain.MenuActionNone, items[0].Action)
	assert.Equal(t, domain.MenuActionOpenFile, items[1].Action)
	assert.Equal(t, "/w", items[1].FolderPath)
	assert.True(t, items[2].Separator)
	assert.Equal(t, domain.MenuActionOpenFolder, items[4].Action)
	assert.Equal(t, "/w", items[4].Path)
}

func TestBuild_EmptyIsDisabledPlaceholder(t *testing.T) {
	items := Build(domain.RecentItems{})

	assert.Equal(t, []domain.MenuItem{{Action: domain.MenuActionNone, Label: NoRecentItems}}, items)
}

func TestMemoryRenderer(t *testing.T) {
	r := NewMemoryRenderer()
	items := Build(domain.RecentItems{Folders: domain.RecentList{{Name: "w", Path: "/w"}}})

	require.NoError(t, r.Render(items))
	items[0].Label = "mutated"

	assert.Equal(t, HeaderRecentFolders, r.Items()[0].Label)
	assert.Equal(t, 1, r.Renders())
}

func TestWriterRenderer(t *testing.T) {
	items := Build(domain.RecentItems{Folders: domain.RecentList{{Name: "w", Path: "/w"}}})

	var text bytes.Buffer
	require.NoError(t, NewWriterRenderer(&text, FormatText).Render(items))
	assert.Equal(t, "Recent Folders\n  w — /w\n", text.String())

	var empty bytes.Buffer
	require.NoError(t, NewWriterRenderer(&empty, FormatText).Render(Build(domain.NewRecentItems())))
	assert.Equal(t, "No recent items\n", empty.String())

	var emptyJSON bytes.Buffer
	require.NoError(t, NewWriterRenderer(&emptyJSON, FormatJSON).Render(Build(domain.NewRecentItems())))
	var placeholder []domain.MenuItem
	require.NoError(t, json.Unmarshal(emptyJSON.Bytes(), &placeholder))
	require.Len(t, placeholder, 1)
	assert.Equal(t, NoRecentItems, placeholder[0].Label)
	assert.False(t, placeholder[0].Enabled)

	var js bytes.Buffer
	require.NoError(t, NewWriterRenderer(&js, FormatJSON).Render(items))
	var decoded []domain.MenuItem
	require.NoError(t, json.Unmarshal(js.Bytes(), &decoded))
	assert.Equal(t, items, decoded)
}
