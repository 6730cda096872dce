package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/renato0307/bancada/internal/domain"
	"github.com/renato0307/bancada/internal/logging"
	"github.com/renato0307/bancada/internal/ports"
)

// MaxAppliedEvents bounds the event ids the mirror remembers
const MaxAppliedEvents = 256

// MenuBuilder turns recent lists into menu items
type MenuBuilder func(items domain.RecentItems) []domain.MenuItem

// MenuMirror is the privileged-side copy of the recent lists. Its state is a
// fold over the events it received; an event id seen before is ignored.
// After every change the menu is rebuilt.
type MenuMirror struct {
	build    MenuBuilder
	renderer ports.MenuRenderer
	repo     ports.MirrorRepository

	mu      sync.Mutex
	applied map[string]struct{}
	loaded  bool
	state   ports.MirrorState
}

// Verify interface compliance at compile time
var _ ports.RecentEventApplier = (*MenuMirror)(nil)

// NewMenuMirror creates a mirror; call Start to load the persisted copy
func NewMenuMirror(repo ports.MirrorRepository, renderer ports.MenuRenderer, build MenuBuilder) *MenuMirror {
	return &MenuMirror{
		applied:  make(map[string]struct{}),
		build:    build,
		renderer: renderer,
		repo:     repo,
		state:    ports.MirrorState{Items: domain.NewRecentItems()},
	}
}

// Start loads the persisted mirror and renders the menu. An unreadable file
// starts the mirror empty.
func (m *MenuMirror) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadLocked()
	return m.renderLocked()
}

// ApplyEvent folds ev into the mirror, persists it and rebuilds the menu
func (m *MenuMirror) ApplyEvent(ctx context.Context, ev domain.RecentEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadLocked()

	if _, seen := m.applied[ev.ID]; seen && ev.ID != "" {
		logging.Logger.Debug("Skipping already applied event", "id", ev.ID)
		return nil
	}

	next := ports.MirrorState{
		Applied: appendBounded(m.state.Applied, ev.ID),
		Items:   m.state.Items.Apply(ev),
		LastSeq: ev.Seq,
	}
	if err := m.repo.Save(&next); err != nil {
		logging.Logger.Error("Failed to save recent items mirror", "id", ev.ID, "error", err)
		return fmt.Errorf("failed to save mirror: %w", err)
	}

	m.state = next
	m.indexApplied()

	logging.Logger.Debug("Applied recent event", "id", ev.ID, "kind", ev.Kind, "op", ev.Op, "path", ev.Entry.Path)
	return m.renderLocked()
}

// Items returns the mirror's lists
func (m *MenuMirror) Items() domain.RecentItems {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadLocked()
	return m.state.Items
}

// Menu returns the menu built from the current lists
func (m *MenuMirror) Menu() []domain.MenuItem {
	return m.build(m.Items())
}

func (m *MenuMirror) loadLocked() {
	if m.loaded {
		return
	}
	m.loaded = true

	state, err := m.repo.Load()
	if err != nil {
		logging.Logger.Warn("Failed to load recent items mirror, starting empty", "error", err)
	}
	if state != nil && err == nil {
		m.state = *state
	}
	m.indexApplied()
}

func (m *MenuMirror) indexApplied() {
	m.applied = make(map[string]struct{}, len(m.state.Applied))
	for _, id := range m.state.Applied {
		m.applied[id] = struct{}{}
	}
}

func (m *MenuMirror) renderLocked() error {
	if m.renderer == nil {
		return nil
	}
	if err := m.renderer.Render(m.build(m.state.Items)); err != nil {
		logging.Logger.Error("Failed to render recent menu", "error", err)
		return fmt.Errorf("failed to render menu: %w", err)
	}
	return nil
}

func appendBounded(ids []string, id string) []string {
	out := make([]string, 0, len(ids)+1)
	out = append(out, ids...)
	if id != "" {
		out = append(out, id)
	}
	if len(out) > MaxAppliedEvents {
		out = out[len(out)-MaxAppliedEvents:]
	}
	return out
}
