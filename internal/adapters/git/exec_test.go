package git

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/bancada/internal/domain"
)

func TestRunGit_TimeoutIsCommandError(t *testing.T) {
	repo := setupTestRepo(t)

	out, err := runGit(context.Background(), time.Nanosecond, repo, "status", "--porcelain")

	require.Error(t, err)
	assert.Empty(t, out)
	assert.ErrorIs(t, err, domain.ErrGitCommandFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	var cmdErr *domain.GitCommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, []string{"status", "--porcelain"}, cmdErr.Args)
	assert.Equal(t, -1, cmdErr.ExitCode)
}

func TestCLIProvider_CancelledContext(t *testing.T) {
	repo := setupTestRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCLIProvider(10*time.Second).PorcelainStatus(ctx, repo)

	assert.ErrorIs(t, err, domain.ErrGitCommandFailed)
	assert.ErrorIs(t, err, context.Canceled)
}
