package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/denikks/huntbook/internal/calc"
	"github.com/denikks/huntbook/internal/ledger"
	"github.com/denikks/huntbook/internal/model"
	"github.com/denikks/huntbook/internal/money"
)

func newDiffCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <session-a> <session-b>",
		Short: "Compare totals between two sessions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}

			left, err := loadSession(cmd, a, args[0])
			if err != nil {
				return err
			}
			right, err := loadSession(cmd, a, args[1])
			if err != nil {
				return err
			}

			cur := a.cfg.Currency
			cmd.Printf("%s:\t%s\n", left.Name, money.Format(calc.Total(left), cur))
			cmd.Printf("%s:\t%s\n", right.Name, money.Format(calc.Total(right), cur))
			cmd.Printf("diff:\t%s\n", money.FormatSigned(calc.Diff(left, right), cur))
			return nil
		},
	}
}

func loadSession(cmd *cobra.Command, a *app, name string) (model.Session, error) {
	store := ledger.NewStore(a.cfg.DataDir, name)
	s, err := store.Load()
	if errors.Is(err, ledger.ErrCorrupt) {
		cmd.PrintErrf("warning: %v; treating %q as empty\n", err, name)
		return s, nil
	}
	return s, err
}
