package services

import (
	"context"
	"fmt"
	"path"
	"sync"

	"github.com/renato0307/bancada/internal/domain"
)

// fakeFS is an in-memory FilesystemGateway using slash paths
type fakeFS struct {
	mu       sync.Mutex
	block    map[string]chan struct{} // first ListDir of a path waits on the channel
	entered  map[string]chan struct{} // closed when a blocked ListDir starts waiting
	children map[string][]domain.DirEntry
	failList map[string]error
	files    map[string][]byte
	links    map[string]string
	listed   []string
}

func newFakeFS(root string) *fakeFS {
	return &fakeFS{
		block:    map[string]chan struct{}{},
		entered:  map[string]chan struct{}{},
		children: map[string][]domain.DirEntry{root: {}},
		failList: map[string]error{},
		files:    map[string][]byte{},
		links:    map[string]string{},
	}
}

func (f *fakeFS) addDir(p string) *fakeFS {
	f.mu.Lock()
	defer f.mu.Unlock()
	parent := path.Dir(p)
	f.children[parent] = append(f.children[parent], domain.DirEntry{Kind: domain.KindDirectory, Name: path.Base(p), Path: p})
	if _, ok := f.children[p]; !ok {
		f.children[p] = []domain.DirEntry{}
	}
	return f
}

func (f *fakeFS) addFile(p, content string) *fakeFS {
	f.mu.Lock()
	defer f.mu.Unlock()
	parent := path.Dir(p)
	f.children[parent] = append(f.children[parent], domain.DirEntry{Kind: domain.KindFile, Name: path.Base(p), Path: p})
	f.files[p] = []byte(content)
	return f
}

// addLink adds a directory symlink at p resolving to target
func (f *fakeFS) addLink(p, target string) *fakeFS {
	f.addDir(p)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.children[p] = f.children[target]
	f.links[p] = target
	return f
}

func (f *fakeFS) blockOnce(p string) (release func(), entered <-chan struct{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan struct{})
	in := make(chan struct{})
	f.block[p] = ch
	f.entered[p] = in
	return func() { close(ch) }, in
}

func (f *fakeFS) listedPaths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.listed...)
}

func (f *fakeFS) ListDir(ctx context.Context, p string) ([]domain.DirEntry, error) {
	f.mu.Lock()
	f.listed = append(f.listed, p)
	ch, blocked := f.block[p]
	in := f.entered[p]
	delete(f.block, p)
	delete(f.entered, p)
	f.mu.Unlock()

	if blocked {
		close(in)
		<-ch
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failList[p]; ok {
		return nil, err
	}
	entries, ok := f.children[p]
	if !ok {
		if _, isFile := f.files[p]; isFile {
			return nil, fmt.Errorf("%s: %w", p, domain.ErrNotADirectory)
		}
		return nil, fmt.Errorf("%s: %w", p, domain.ErrNotFound)
	}
	return append([]domain.DirEntry(nil), entries...), nil
}

func (f *fakeFS) PathInfo(ctx context.Context, p string) domain.PathInfo {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.children[p]; ok {
		return domain.PathInfo{Exists: true, IsDir: true}
	}
	if _, ok := f.files[p]; ok {
		return domain.PathInfo{Exists: true}
	}
	return domain.PathInfo{}
}

func (f *fakeFS) ReadFile(ctx context.Context, p string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.files[p]
	if !ok {
		return nil, fmt.Errorf("%s: %w", p, domain.ErrNotFound)
	}
	return data, nil
}

func (f *fakeFS) RealPath(ctx context.Context, p string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if target, ok := f.links[p]; ok {
		return target, nil
	}
	return p, nil
}

// ignoreNames hides entries by base name
type ignoreNames map[string]bool

func (m ignoreNames) ShouldIgnore(relativePath string, isDir bool) bool {
	return m[path.Base(relativePath)]
}
