package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/renato0307/bancada/internal/logging"
)

// EnvEditor names the editor used for files opened from bancada
const EnvEditor = "BANCADA_EDITOR"

// ErrNoEditor is returned when no editor can be resolved
var ErrNoEditor = errors.New("no suitable editor found, set --editor, $BANCADA_EDITOR, $VISUAL or $EDITOR")

// Launcher implements ports.EditorLauncher
type Launcher struct {
	editor   string
	lookPath func(string) (string, error)
}

// NewLauncher creates a launcher. A non-empty editor takes precedence over
// the environment.
func NewLauncher(editor string) *Launcher {
	return &Launcher{editor: editor, lookPath: exec.LookPath}
}

// Command builds the process that edits path. The caller runs it attached to
// the terminal.
// Priority: --editor, $BANCADA_EDITOR, $VISUAL, $EDITOR, platform defaults
func (l *Launcher) Command(path string) (*exec.Cmd, error) {
	if path == "" {
		return nil, fmt.Errorf("no path provided")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("path does not exist: %w", err)
	}

	name, args := l.resolve()
	if name == "" {
		return nil, ErrNoEditor
	}
	logging.Logger.Info("Opening editor", "editor", name, "path", path)

	return exec.Command(name, append(args, path)...), nil
}

// resolve splits the chosen editor command line into program and arguments,
// so values like "code --wait" work
func (l *Launcher) resolve() (string, []string) {
	for _, candidate := range []string{l.editor, os.Getenv(EnvEditor), os.Getenv("VISUAL"), os.Getenv("EDITOR")} {
		if fields := strings.Fields(candidate); len(fields) > 0 {
			return fields[0], fields[1:]
		}
	}

	for _, name := range defaultEditors {
		if _, err := l.lookPath(name); err == nil {
			return name, nil
		}
	}
	return "", nil
}
