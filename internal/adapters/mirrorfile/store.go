// Package mirrorfile persists the privileged-side recent items as a
// human-readable JSON file guarded by an exclusive file lock.
package mirrorfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/renato0307/bancada/internal/domain"
	"github.com/renato0307/bancada/internal/logging"
	"github.com/renato0307/bancada/internal/ports"
)

// MaxAppliedIDs bounds the event ids remembered for deduplication
const MaxAppliedIDs = 256

// fileFormat is the on-disk shape of recent-items.json
type fileFormat struct {
	Applied   []string          `json:"applied"`
	Files     domain.RecentList `json:"files"`
	Folders   domain.RecentList `json:"folders"`
	LastSeq   uint64            `json:"last_seq"`
	UpdatedAt time.Time         `json:"updated_at"`
	Version   int               `json:"version"`
}

// Store implements ports.MirrorRepository on a single JSON file
type Store struct {
	path string
}

// Verify interface compliance at compile time
var _ ports.MirrorRepository = (*Store)(nil)

// NewStore creates a store backed by path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}

// Load reads the mirror. Returns empty state if the file doesn't exist.
func (s *Store) Load() (*ports.MirrorState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return emptyState(), nil
		}
		return emptyState(), fmt.Errorf("failed to read recent items file: %w", err)
	}
	if len(data) == 0 {
		return emptyState(), nil
	}

	var f fileFormat
	if err := json.Unmarshal(data, &f); err != nil {
		return emptyState(), fmt.Errorf("failed to unmarshal recent items: %w", err)
	}
	// Files written before versioning carry no version field
	if f.Version == 0 {
		f.Version = domain.RecentItemsVersion
	}
	if f.Version > domain.RecentItemsVersion {
		return emptyState(), fmt.Errorf("recent items version %d is newer than supported version %d", f.Version, domain.RecentItemsVersion)
	}

	state := &ports.MirrorState{
		Applied: f.Applied,
		Items: domain.RecentItems{
			Files:   nonNil(f.Files),
			Folders: nonNil(f.Folders),
			Version: f.Version,
		},
		LastSeq: f.LastSeq,
	}
	return state, nil
}

// Save writes the mirror to disk with file locking
func (s *Store) Save(state *ports.MirrorState) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	file, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open recent items file: %w", err)
	}
	defer file.Close()

	if err := lockFile(file); err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer unlockFile(file)

	applied := state.Applied
	if len(applied) > MaxAppliedIDs {
		applied = applied[len(applied)-MaxAppliedIDs:]
	}

	data, err := json.MarshalIndent(fileFormat{
		Applied:   nonNilIDs(applied),
		Files:     nonNil(state.Items.Files),
		Folders:   nonNil(state.Items.Folders),
		LastSeq:   state.LastSeq,
		UpdatedAt: time.Now().UTC(),
		Version:   domain.RecentItemsVersion,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal recent items: %w", err)
	}

	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate file: %w", err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to seek to beginning: %w", err)
	}
	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write recent items: %w", err)
	}

	logging.Logger.Debug("Saved recent items mirror", "path", s.path,
		"folders", len(state.Items.Folders), "files", len(state.Items.Files))
	return nil
}

func emptyState() *ports.MirrorState {
	return &ports.MirrorState{Applied: []string{}, Items: domain.NewRecentItems()}
}

func nonNil(list domain.RecentList) domain.RecentList {
	if list == nil {
		return domain.RecentList{}
	}
	return list
}

func nonNilIDs(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
