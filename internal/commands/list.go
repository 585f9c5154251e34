package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/denikks/huntbook/internal/money"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List entries in the current session in entry order",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}

			session := a.store.Session()
			if session.Len() == 0 {
				cmd.Printf("Session %q is empty.\n", session.Name)
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tDATE\tLABEL\tCATEGORY\tAMOUNT")
			for _, e := range session.Entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					e.ID, e.Timestamp.Format("2006-01-02"), e.Label,
					e.Category, money.Format(e.Amount, a.cfg.Currency))
			}
			return tw.Flush()
		},
	}
}
