package ports

import (
	"context"

	"github.com/renato0307/bancada/internal/domain"
)

// FilesystemGateway is the trusted backend for directory and file access.
// Implementations validate paths and enforce size limits.
type FilesystemGateway interface {
	// ListDir returns the direct children of path, unsorted
	ListDir(ctx context.Context, path string) ([]domain.DirEntry, error)
	// PathInfo never fails; a missing or invalid path reports Exists=false
	PathInfo(ctx context.Context, path string) domain.PathInfo
	// ReadFile returns domain.ErrFileTooLarge instead of truncated content
	ReadFile(ctx context.Context, path string) ([]byte, error)
	// RealPath resolves symlinks to the canonical path
	RealPath(ctx context.Context, path string) (string, error)
}

// IgnoreMatcher decides whether a path under a workspace root is hidden
type IgnoreMatcher interface {
	ShouldIgnore(relativePath string, isDir bool) bool
}
