package ui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
)

// KeyDefinition defines the metadata for a key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults []string
	Help     string
	Name     string
}

// AllKeyDefinitions contains every key binding of the TUI
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "edit", Defaults: []string{"e"}, Help: "edit selection in external editor"},
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"?"}, Help: "show keyboard shortcuts"},
	{Name: "open_folder", Defaults: []string{"o"}, Help: "open a folder"},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application"},

	// Navigation keys
	{Name: "down", Defaults: []string{"down", "j"}, Help: "select next row"},
	{Name: "next_panel", Defaults: []string{"tab"}, Help: "focus next panel"},
	{Name: "prev_panel", Defaults: []string{"shift+tab"}, Help: "focus previous panel"},
	{Name: "select", Defaults: []string{"enter"}, Help: "expand folder / open file or recent item"},
	{Name: "up", Defaults: []string{"up", "k"}, Help: "select previous row"},

	// Git keys
	{Name: "commit", Defaults: []string{"c"}, Help: "commit staged changes"},
	{Name: "refresh", Defaults: []string{"r"}, Help: "refresh tree and git status"},
	{Name: "stage", Defaults: []string{"s"}, Help: "stage selected file"},
	{Name: "unstage", Defaults: []string{"u"}, Help: "unstage selected file"},

	// Recent keys
	{Name: "remove_recent", Defaults: []string{"x"}, Help: "remove from recent"},
}

var (
	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once
)

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// buildBinding creates a key.Binding from its definition
func buildBinding(name string) key.Binding {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}
	return key.NewBinding(
		key.WithKeys(def.Defaults...),
		key.WithHelp(strings.Join(def.Defaults, "/"), def.Help),
	)
}
