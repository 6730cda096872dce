package menu

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/renato0307/bancada/internal/domain"
	"github.com/renato0307/bancada/internal/ports"
)

// MemoryRenderer keeps the last rendered menu for the UI to read
type MemoryRenderer struct {
	mu      sync.RWMutex
	items   []domain.MenuItem
	renders int
}

// Verify interface compliance at compile time
var _ ports.MenuRenderer = (*MemoryRenderer)(nil)

// NewMemoryRenderer creates an empty renderer
func NewMemoryRenderer() *MemoryRenderer {
	return &MemoryRenderer{}
}

// Render implements ports.MenuRenderer
func (r *MemoryRenderer) Render(items []domain.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]domain.MenuItem(nil), items...)
	r.renders++
	return nil
}

// Items returns a copy of the last rendered menu
func (r *MemoryRenderer) Items() []domain.MenuItem {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.MenuItem(nil), r.items...)
}

// Renders returns how many times the menu was rebuilt
func (r *MemoryRenderer) Renders() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.renders
}

// Format selects how WriterRenderer prints the menu
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// WriterRenderer prints the menu, used by the `menu` command
type WriterRenderer struct {
	format Format
	out    io.Writer
}

// Verify interface compliance at compile time
var _ ports.MenuRenderer = (*WriterRenderer)(nil)

// NewWriterRenderer creates a renderer printing to out
func NewWriterRenderer(out io.Writer, format Format) *WriterRenderer {
	return &WriterRenderer{format: format, out: out}
}

// Render implements ports.MenuRenderer
func (r *WriterRenderer) Render(items []domain.MenuItem) error {
	if r.format == FormatJSON {
		if items == nil {
			items = []domain.MenuItem{}
		}
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	if len(items) == 0 {
		_, err := fmt.Fprintln(r.out, NoRecentItems)
		return err
	}
	for _, item := range items {
		var line string
		switch {
		case item.Separator:
			line = "────────"
		case !item.Enabled:
			line = item.Label
		default:
			line = "  " + item.Label
		}
		if _, err := fmt.Fprintln(r.out, line); err != nil {
			return err
		}
	}
	return nil
}
