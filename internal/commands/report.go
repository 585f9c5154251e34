package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/denikks/huntbook/internal/report"
)

func newReportCommand() *cobra.Command {
	var raw bool
	var out string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render a session report",
		Long: "Render a session report: entries, per-category subtotals, total\n" +
			"and EMF level. Styled for the terminal by default; --markdown emits\n" +
			"the raw markdown, which is also the export format.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}

			view := report.Build(a.store.Session(), a.cfg.Currency, a.cfg.EMF.Thresholds())
			md, err := report.Markdown(view)
			if err != nil {
				return fmt.Errorf("rendering report: %w", err)
			}

			if out != "" {
				if err := os.WriteFile(out, []byte(md), 0o644); err != nil {
					return fmt.Errorf("writing report: %w", err)
				}
				cmd.Printf("Report written to %s\n", out)
				return nil
			}

			if raw {
				cmd.Print(md)
				return nil
			}

			styled, err := report.Terminal(md)
			if err != nil {
				return fmt.Errorf("styling report: %w", err)
			}
			cmd.Print(styled)
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "markdown", false, "print raw markdown instead of styled output")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the markdown report to a file")

	return cmd
}
