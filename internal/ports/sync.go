package ports

import (
	"context"

	"github.com/renato0307/bancada/internal/domain"
)

// RecentSyncer delivers recent-items events from the UI side to the
// privileged side. Delivery is at-least-once; receivers must be idempotent.
type RecentSyncer interface {
	Publish(ctx context.Context, ev domain.RecentEvent) error
}

// RecentEventApplier is the receiving end of the sync protocol
type RecentEventApplier interface {
	ApplyEvent(ctx context.Context, ev domain.RecentEvent) error
}

// MenuRenderer rebuilds the native recent-items menu
type MenuRenderer interface {
	Render(items []domain.MenuItem) error
}
