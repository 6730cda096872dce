package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/renato0307/bancada/internal/domain"
	"github.com/renato0307/bancada/internal/logging"
)

// DefaultMaxFileSize is the largest file ReadFile returns (10 MiB)
const DefaultMaxFileSize int64 = 10 * 1024 * 1024

// Gateway implements ports.FilesystemGateway on the local disk
type Gateway struct {
	maxFileSize int64
}

// NewGateway creates a gateway with the default size limit
func NewGateway() *Gateway {
	return &Gateway{maxFileSize: DefaultMaxFileSize}
}

// NewGatewayWithLimit creates a gateway with a custom read limit
func NewGatewayWithLimit(maxFileSize int64) *Gateway {
	return &Gateway{maxFileSize: maxFileSize}
}

// ListDir returns the direct children of path.
// Symlinks are classified by what they point to; dangling links are files.
func (g *Gateway) ListDir(ctx context.Context, path string) ([]domain.DirEntry, error) {
	path, err := cleanPath(path)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logging.Logger.Debug("Listing directory", "path", path)

	info, err := os.Stat(path)
	if err != nil {
		return nil, mapError(path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrNotADirectory)
	}

	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, mapError(path, err)
	}

	entries := make([]domain.DirEntry, 0, len(dirEntries))
	for _, de := range dirEntries {
		full := filepath.Join(path, de.Name())
		kind := domain.KindFile
		if de.IsDir() {
			kind = domain.KindDirectory
		} else if de.Type()&fs.ModeSymlink != 0 {
			if info, statErr := os.Stat(full); statErr == nil && info.IsDir() {
				kind = domain.KindDirectory
			}
		}
		entries = append(entries, domain.DirEntry{Kind: kind, Name: de.Name(), Path: full})
	}

	return entries, nil
}

// PathInfo reports whether path exists and is a directory
func (g *Gateway) PathInfo(ctx context.Context, path string) domain.PathInfo {
	path, err := cleanPath(path)
	if err != nil {
		return domain.PathInfo{}
	}
	info, err := os.Stat(path)
	if err != nil {
		return domain.PathInfo{}
	}
	return domain.PathInfo{Exists: true, IsDir: info.IsDir()}
}

// ReadFile returns the content of path, refusing files over the size limit
func (g *Gateway) ReadFile(ctx context.Context, path string) ([]byte, error) {
	path, err := cleanPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, mapError(path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, mapError(path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory: %w", path, domain.ErrInvalidPath)
	}
	if info.Size() > g.maxFileSize {
		return nil, fmt.Errorf("%s is %d bytes (limit %d): %w", path, info.Size(), g.maxFileSize, domain.ErrFileTooLarge)
	}

	// The file may grow between stat and read
	data, err := io.ReadAll(io.LimitReader(f, g.maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if int64(len(data)) > g.maxFileSize {
		return nil, fmt.Errorf("%s exceeds %d bytes: %w", path, g.maxFileSize, domain.ErrFileTooLarge)
	}

	return data, nil
}

// RealPath resolves every symlink in path
func (g *Gateway) RealPath(ctx context.Context, path string) (string, error) {
	path, err := cleanPath(path)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", mapError(path, err)
	}
	return resolved, nil
}

func cleanPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" || strings.ContainsRune(path, 0) {
		return "", fmt.Errorf("path %q: %w", path, domain.ErrInvalidPath)
	}
	return filepath.Clean(path), nil
}

func mapError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%s: %w", path, domain.ErrNotFound)
	case errors.Is(err, syscall.ENOTDIR):
		return fmt.Errorf("%s: %w", path, domain.ErrNotADirectory)
	default:
		return fmt.Errorf("%s: %w", path, err)
	}
}
