package commands

import (
	"github.com/spf13/cobra"

	"github.com/denikks/huntbook/internal/ledger"
)

func newSessionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "List sessions in the data directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}

			names, err := ledger.Sessions(a.cfg.DataDir)
			if err != nil {
				return err
			}
			if len(names) == 0 {
				cmd.Println("No sessions yet.")
				return nil
			}
			for _, n := range names {
				cmd.Println(n)
			}
			return nil
		},
	}
}
