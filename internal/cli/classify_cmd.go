package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/trainsafe/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newClassifyCmd(app *App) *cobra.Command {
	var playerPath string
	var override overrideFlags

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Show a player's safety status and allowed training elements",
		RunE: func(cmd *cobra.Command, args []string) error {
			if playerPath == "" {
				return errors.New("--player is required")
			}

			req, err := app.Import.LoadPlayer(cmd.Context(), playerPath)
			if err != nil {
				return err
			}
			if req.Override, err = override.resolve(app, req.Override); err != nil {
				return err
			}

			sctx, err := app.Safety.BuildContext(cmd.Context(), *req)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatContext(*sctx))
			return nil
		},
	}

	cmd.Flags().StringVar(&playerPath, "player", "", "Player file (JSON)")
	override.register(cmd.Flags())

	return cmd
}
