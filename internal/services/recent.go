package services

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/renato0307/bancada/internal/domain"
	"github.com/renato0307/bancada/internal/logging"
	"github.com/renato0307/bancada/internal/ports"
)

// RecentService owns the UI-local recent lists. Every change is written to
// the local store first and then published to the menu mirror; a failed
// publish is logged and repaired by Reconcile on the next start.
type RecentService struct {
	newID  func() string
	now    func() time.Time
	repo   ports.RecentRepository
	syncer ports.RecentSyncer

	mu    sync.Mutex
	items domain.RecentItems
	seq   uint64
}

// NewRecentService creates a RecentService with empty lists
func NewRecentService(repo ports.RecentRepository, syncer ports.RecentSyncer) *RecentService {
	return &RecentService{
		items:  domain.NewRecentItems(),
		newID:  func() string { return uuid.New().String() },
		now:    time.Now,
		repo:   repo,
		syncer: syncer,
	}
}

// Load reads both lists from the local store
func (s *RecentService) Load(ctx context.Context) error {
	folders, err := s.repo.LoadRecent(ctx, domain.RecentFolders)
	if err != nil {
		return fmt.Errorf("failed to load recent folders: %w", err)
	}
	files, err := s.repo.LoadRecent(ctx, domain.RecentFiles)
	if err != nil {
		return fmt.Errorf("failed to load recent files: %w", err)
	}

	s.mu.Lock()
	s.items = domain.RecentItems{Files: files, Folders: folders, Version: domain.RecentItemsVersion}
	s.mu.Unlock()

	logging.Logger.Debug("Loaded recent items", "folders", len(folders), "files", len(files))
	return nil
}

// Items returns the current lists
func (s *RecentService) Items() domain.RecentItems {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items
}

// AddFolder records path as the most recent folder
func (s *RecentService) AddFolder(ctx context.Context, path string) error {
	return s.Add(ctx, domain.RecentFolders, domain.RecentEntry{Name: filepath.Base(path), Path: path})
}

// AddFile records path as the most recent file of folderPath
func (s *RecentService) AddFile(ctx context.Context, path, folderPath string) error {
	return s.Add(ctx, domain.RecentFiles, domain.RecentEntry{FolderPath: folderPath, Name: filepath.Base(path), Path: path})
}

// Add moves entry to the front of the selected list, persists it and
// publishes an added event
func (s *RecentService) Add(ctx context.Context, kind domain.RecentKind, entry domain.RecentEntry) error {
	if entry.Path == "" {
		return fmt.Errorf("add recent: %w", domain.ErrInvalidPath)
	}

	s.mu.Lock()
	list := s.items.List(kind).Add(entry)
	if err := s.repo.SaveRecent(ctx, kind, list); err != nil {
		s.mu.Unlock()
		logging.Logger.Error("Failed to save recent list", "kind", kind, "error", err)
		return fmt.Errorf("failed to save recent %s: %w", kind, err)
	}
	s.items = s.items.WithList(kind, list)
	ev := s.eventLocked(kind, domain.RecentAdded, entry)
	s.mu.Unlock()

	s.publish(ctx, ev)
	return nil
}

// Remove drops path from the selected list. The removal is published even
// when the local list did not contain it so the mirror is pruned too.
func (s *RecentService) Remove(ctx context.Context, kind domain.RecentKind, path string) error {
	s.mu.Lock()
	current := s.items.List(kind)
	if current.Contains(path) {
		list := current.Remove(path)
		if err := s.repo.SaveRecent(ctx, kind, list); err != nil {
			s.mu.Unlock()
			logging.Logger.Error("Failed to save recent list", "kind", kind, "error", err)
			return fmt.Errorf("failed to save recent %s: %w", kind, err)
		}
		s.items = s.items.WithList(kind, list)
	}
	ev := s.eventLocked(kind, domain.RecentRemoved, domain.RecentEntry{Path: path})
	s.mu.Unlock()

	logging.Logger.Info("Removed recent item", "kind", kind, "path", path)
	s.publish(ctx, ev)
	return nil
}

// Reconcile re-publishes every entry oldest first so the mirror ends up with
// the same order even if earlier events were lost
func (s *RecentService) Reconcile(ctx context.Context) error {
	s.mu.Lock()
	var events []domain.RecentEvent
	for _, kind := range []domain.RecentKind{domain.RecentFolders, domain.RecentFiles} {
		list := s.items.List(kind)
		for i := len(list) - 1; i >= 0; i-- {
			events = append(events, s.eventLocked(kind, domain.RecentAdded, list[i]))
		}
	}
	s.mu.Unlock()

	logging.Logger.Info("Reconciling recent items", "events", len(events))
	for _, ev := range events {
		if err := s.syncer.Publish(ctx, ev); err != nil {
			return fmt.Errorf("failed to reconcile recent items: %w", err)
		}
	}
	return nil
}

func (s *RecentService) eventLocked(kind domain.RecentKind, op domain.RecentOp, entry domain.RecentEntry) domain.RecentEvent {
	s.seq++
	return domain.RecentEvent{
		At:    s.now().UTC(),
		Entry: entry,
		ID:    s.newID(),
		Kind:  kind,
		Op:    op,
		Seq:   s.seq,
	}
}

func (s *RecentService) publish(ctx context.Context, ev domain.RecentEvent) {
	if err := s.syncer.Publish(ctx, ev); err != nil {
		logging.Logger.Warn("Failed to publish recent event", "id", ev.ID, "op", ev.Op, "error", err)
	}
}
