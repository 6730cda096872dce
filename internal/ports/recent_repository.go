package ports

import (
	"context"

	"github.com/renato0307/bancada/internal/domain"
)

// RecentRepository persists the UI-local recent lists
type RecentRepository interface {
	Close() error
	LoadRecent(ctx context.Context, kind domain.RecentKind) (domain.RecentList, error)
	SaveRecent(ctx context.Context, kind domain.RecentKind, list domain.RecentList) error
}

// MirrorState is what the privileged side persists: the folded lists plus the
// ids of events already applied
type MirrorState struct {
	Applied []string
	Items   domain.RecentItems
	LastSeq uint64
}

// MirrorRepository persists the privileged-side recent lists
type MirrorRepository interface {
	Load() (*MirrorState, error)
	Save(state *MirrorState) error
}
