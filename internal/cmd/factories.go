package cmd

import (
	"context"
	"errors"
	"path/filepath"

	adapterfs "github.com/renato0307/bancada/internal/adapters/fs"
	adaptergit "github.com/renato0307/bancada/internal/adapters/git"
	adapteripc "github.com/renato0307/bancada/internal/adapters/ipc"
	adaptermenu "github.com/renato0307/bancada/internal/adapters/menu"
	adaptermirror "github.com/renato0307/bancada/internal/adapters/mirrorfile"
	adapterstorage "github.com/renato0307/bancada/internal/adapters/storage"
	"github.com/renato0307/bancada/internal/config"
	"github.com/renato0307/bancada/internal/logging"
	"github.com/renato0307/bancada/internal/ports"
	"github.com/renato0307/bancada/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	Mirror    *services.MenuMirror
	Workspace *services.Workspace

	// Adapters exposed to commands
	MenuView    *adaptermenu.MemoryRenderer
	MirrorStore *adaptermirror.Store

	// Internal - for cleanup only
	channel    *adapteripc.Channel
	recentRepo ports.RecentRepository
}

// NewContainer creates a new Container with all dependencies wired.
// A nil settings value behaves like an empty settings file.
func NewContainer(settings *config.Settings) (*Container, error) {
	if settings == nil {
		settings = &config.Settings{}
	}

	recentRepo, err := adapterstorage.NewSQLiteRecentRepository(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	gateway := adapterfs.NewGateway()
	vcs := newVCSProvider(settings)

	mirrorStore := adaptermirror.NewStore(config.GetRecentItemsPath())
	menuView := adaptermenu.NewMemoryRenderer()
	mirror := services.NewMenuMirror(mirrorStore, menuView, adaptermenu.Build)
	if err := mirror.Start(context.Background()); err != nil {
		logging.Logger.Warn("Failed to start menu mirror", "path", mirrorStore.Path(), "error", err)
	}
	channel := adapteripc.NewChannel(mirror)

	tree := services.NewTreeService(gateway, services.TreeOptions{
		HideIgnored:  settings.HideIgnoredFiles(),
		IgnoreLoader: gitignoreLoader(gateway),
		ShowHidden:   settings.ShowHiddenFiles(),
	})
	git := services.NewGitStatusEngine(vcs)
	recent := services.NewRecentService(recentRepo, channel)
	workspace := services.NewWorkspace(gateway, tree, git, recent)

	logging.Logger.Debug("Container initialized",
		"git_backend", settings.Backend(),
		"hide_gitignored", settings.HideIgnoredFiles(),
		"show_hidden", settings.ShowHiddenFiles())

	return &Container{
		MenuView:    menuView,
		Mirror:      mirror,
		MirrorStore: mirrorStore,
		Workspace:   workspace,
		channel:     channel,
		recentRepo:  recentRepo,
	}, nil
}

// Sync blocks until every recent event published so far reached the mirror
func (c *Container) Sync(ctx context.Context) error {
	return c.channel.Flush(ctx)
}

// Close drains pending mirror events and closes the local store
func (c *Container) Close() error {
	var errs []error
	if c.channel != nil {
		errs = append(errs, c.channel.Close())
	}
	if c.recentRepo != nil {
		errs = append(errs, c.recentRepo.Close())
	}
	return errors.Join(errs...)
}

func newVCSProvider(settings *config.Settings) ports.VCSProvider {
	if settings.Backend() == config.GitBackendGoGit {
		return adaptergit.NewGoGitProvider()
	}
	return adaptergit.NewCLIProvider(settings.GitTimeout())
}

// gitignoreLoader reads <root>/.gitignore through the gateway.
// A missing or unreadable file means nothing is ignored.
func gitignoreLoader(gateway ports.FilesystemGateway) services.IgnoreLoader {
	return func(ctx context.Context, root string) ports.IgnoreMatcher {
		content, err := gateway.ReadFile(ctx, filepath.Join(root, ".gitignore"))
		if err != nil {
			logging.Logger.Debug("No usable .gitignore", "root", root, "error", err)
			return nil
		}
		return adapterfs.NewIgnoreMatcher(content)
	}
}
