package ports

import "os/exec"

// EditorLauncher builds the external editor process for a file or folder
type EditorLauncher interface {
	Command(path string) (*exec.Cmd, error)
}
