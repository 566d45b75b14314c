package cli

import (
	"time"

	"github.com/alexanderramin/trainsafe/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Safety service.SafetyService
	Audit  service.AuditService
	Import service.ImportService

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
	// Now is the clock used for relative timestamps. Nil means time.Now.
	Now func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "trainsafe" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "trainsafe",
		Short:         "Training safety validation and enforcement",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newClassifyCmd(app),
		newCheckCmd(app),
		newAuditCmd(app),
	)

	return root
}
