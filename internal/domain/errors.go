package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyCommitMessage = errors.New("commit message is required")
	ErrFileTooLarge       = errors.New("file too large")
	ErrGitCommandFailed   = errors.New("git command failed")
	ErrInvalidPath        = errors.New("invalid path")
	ErrNoRoot             = errors.New("no folder opened")
	ErrNotADirectory      = errors.New("not a directory")
	ErrNotARepository     = errors.New("not a git repository")
	ErrNotFound           = errors.New("not found")
	ErrStaleRender        = errors.New("superseded by a newer request")
	ErrSymlinkCycle       = errors.New("symlink cycle")
)

// GitCommandError carries the raw output of a failed git invocation
type GitCommandError struct {
	Args     []string
	ExitCode int
	Output   string
	Err      error
}

func (e *GitCommandError) Error() string {
	msg := strings.TrimSpace(e.Output)
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("git %s failed (exit %d): %s", strings.Join(e.Args, " "), e.ExitCode, msg)
}

// Is lets errors.Is(err, ErrGitCommandFailed) match any GitCommandError
func (e *GitCommandError) Is(target error) bool {
	return target == ErrGitCommandFailed
}

func (e *GitCommandError) Unwrap() error { return e.Err }
