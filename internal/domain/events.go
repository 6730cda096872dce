package domain

import "time"

// RecentOp is the mutation carried by a recent-items event
type RecentOp string

const (
	RecentAdded   RecentOp = "added"
	RecentRemoved RecentOp = "removed"
)

// RecentEvent is emitted by the local recent store for every add or remove.
// ID is unique per event; Seq orders events from a single emitter.
type RecentEvent struct {
	At    time.Time   `json:"at"`
	Entry RecentEntry `json:"entry"`
	ID    string      `json:"id"`
	Kind  RecentKind  `json:"kind"`
	Op    RecentOp    `json:"op"`
	Seq   uint64      `json:"seq"`
}

// Apply folds one event into items. Re-applying the most recent event is a
// no-op; older duplicates must be filtered by ID before folding.
func (r RecentItems) Apply(ev RecentEvent) RecentItems {
	list := r.List(ev.Kind)
	switch ev.Op {
	case RecentAdded:
		list = list.Add(ev.Entry)
	case RecentRemoved:
		list = list.Remove(ev.Entry.Path)
	default:
		return r
	}
	return r.WithList(ev.Kind, list)
}
