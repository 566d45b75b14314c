package cli

import (
	"fmt"

	"github.com/alexanderramin/trainsafe/internal/cli/formatter"
	"github.com/alexanderramin/trainsafe/internal/contract"
	"github.com/spf13/cobra"
)

func newAuditCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Inspect recorded plan evaluations",
	}

	cmd.AddCommand(
		newAuditListCmd(app),
		newAuditShowCmd(app),
	)

	return cmd
}

func newAuditListCmd(app *App) *cobra.Command {
	q := contract.NewAuditQuery()

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent evaluations, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			evals, err := app.Audit.List(cmd.Context(), q)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEvaluationList(evals, app.now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&q.PlayerID, "player", "", "Only evaluations for this player ID")
	cmd.Flags().IntVarP(&q.Limit, "limit", "n", contract.DefaultAuditLimit, "Maximum number of evaluations")

	return cmd
}

func newAuditShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one evaluation with its violations and modifications",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.Audit.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatEvaluation(e))
			return nil
		},
	}
}
