package git

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/renato0307/bancada/internal/domain"
	"github.com/renato0307/bancada/internal/logging"
)

// DefaultTimeout bounds every git subprocess
const DefaultTimeout = 30 * time.Second

// runGit runs git in dir and returns stdout untouched.
// Any failure, including a timeout, is a *domain.GitCommandError.
func runGit(ctx context.Context, timeout time.Duration, dir string, args ...string) (string, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	logging.Logger.Debug("Running git", "dir", dir, "args", args)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Keep output stable regardless of the user's locale and pager settings
	cmd.Env = append(os.Environ(), "LC_ALL=C", "GIT_TERMINAL_PROMPT=0", "GIT_OPTIONAL_LOCKS=0")

	err := cmd.Run()
	if err == nil {
		return stdout.String(), nil
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		err = ctxErr
	}

	output := stderr.String()
	if output == "" {
		output = stdout.String()
	}

	logging.Logger.Warn("Git command failed", "dir", dir, "args", args, "exit_code", exitCode, "error", err)
	return "", &domain.GitCommandError{
		Args:     args,
		ExitCode: exitCode,
		Output:   output,
		Err:      err,
	}
}

// isRepo reports whether a .git entry (directory or gitfile) exists directly under path
func isRepo(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Lstat(filepath.Join(path, domain.GitDirName))
	return err == nil
}
