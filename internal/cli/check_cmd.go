package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/alexanderramin/trainsafe/internal/cli/formatter"
	"github.com/alexanderramin/trainsafe/internal/contract"
	"github.com/alexanderramin/trainsafe/internal/export"
	"github.com/spf13/cobra"
)

func newCheckCmd(app *App) *cobra.Command {
	var playerPath, planPath, outPath, xlsxPath string
	var dryRun, asJSON bool
	var override overrideFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a candidate plan and deliver its sanitized form",
		Long: `Validate a candidate weekly plan against the player's safety envelope,
sanitize it into a compliant plan, and record the evaluation in the audit log.

The plan file may be raw plan-generator output: markdown fences, comments,
and trailing commas around the JSON object are tolerated.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if playerPath == "" || planPath == "" {
				return errors.New("--player and --plan are required")
			}
			ctx := cmd.Context()

			player, err := app.Import.LoadPlayer(ctx, playerPath)
			if err != nil {
				return err
			}
			plan, err := app.Import.LoadPlan(ctx, planPath)
			if err != nil {
				return err
			}

			req := contract.NewCheckRequest(player.Player, plan)
			req.Load = player.Load
			req.DryRun = dryRun
			if req.Override, err = override.resolve(app, player.Override); err != nil {
				return err
			}

			resp, err := app.Safety.Check(ctx, req)
			if err != nil {
				return err
			}

			if outPath != "" {
				if err := writeJSONFile(outPath, resp.Sanitized); err != nil {
					return err
				}
			}
			if xlsxPath != "" {
				if err := export.WriteWorkbook(xlsxPath, resp.Sanitized, resp.Modifications, resp.Context); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}
			fmt.Fprintln(out, formatter.FormatCheck(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&playerPath, "player", "", "Player file (JSON)")
	cmd.Flags().StringVar(&planPath, "plan", "", "Candidate plan file")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the sanitized plan as JSON")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Write the sanitized plan and audit trail as an Excel workbook")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Do not record the evaluation")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full result as JSON")
	override.register(cmd.Flags())

	return cmd
}

func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
