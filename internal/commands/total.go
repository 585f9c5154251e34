package commands

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/denikks/huntbook/internal/calc"
	"github.com/denikks/huntbook/internal/model"
	"github.com/denikks/huntbook/internal/money"
)

func newTotalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "total",
		Short: "Show the session total, per-category subtotals and EMF level",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}

			session := a.store.Session()
			agg := calc.Aggregates(session)

			cats := make([]string, 0, len(agg.ByCategory))
			for c := range agg.ByCategory {
				cats = append(cats, string(c))
			}
			sort.Strings(cats)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, c := range cats {
				fmt.Fprintf(tw, "%s\t%s\n", c, money.Format(agg.ByCategory[model.Category(c)], a.cfg.Currency))
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			level := calc.EMFLevel(agg.Total, a.cfg.EMF.Thresholds())
			cmd.Printf("Total: %s (EMF %d)\n", money.Format(agg.Total, a.cfg.Currency), level)
			return nil
		},
	}
}
