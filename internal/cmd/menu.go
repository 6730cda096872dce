package cmd

import (
	"os"

	adaptermenu "github.com/renato0307/bancada/internal/adapters/menu"
	"github.com/renato0307/bancada/internal/logging"
)

// MenuCmd prints the menu model the mirror currently renders
type MenuCmd struct {
	Format string `help:"Output format: text or json" enum:"text,json" default:"text"`
}

// Run executes the menu command
func (m *MenuCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing menu command", "mirror", cli.Container.MirrorStore.Path())

	renderer := adaptermenu.NewWriterRenderer(os.Stdout, adaptermenu.Format(m.Format))
	return renderer.Render(cli.Container.Mirror.Menu())
}
