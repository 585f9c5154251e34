package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/denikks/huntbook/internal/activity"
	"github.com/denikks/huntbook/internal/form"
	"github.com/denikks/huntbook/internal/gitops"
	"github.com/denikks/huntbook/internal/money"
)

func newAddCommand() *cobra.Command {
	var label string
	var amount string
	var category string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an expense in the current session",
		Long: "Record an expense in the current session.\n\n" +
			"Negative amounts are spend, positive amounts are income (sales,\n" +
			"contract rewards). Built-in categories: consumable, equipment,\n" +
			"contract, misc.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}

			ctl := form.NewController(a.store, a.cfg.EMF.Thresholds(), func(d form.Display) {
				cmd.Printf("Total: %s (EMF %d, %d entries)\n",
					money.Format(d.Aggregate.Total, a.cfg.Currency), d.EMFLevel, d.Count)
			})

			entry, err := ctl.Submit(form.Input{Label: label, Amount: amount, Category: category})
			if err != nil {
				return err
			}

			logActivity(cmd, a, activity.Record{
				Timestamp: time.Now().UTC(),
				Session:   a.store.Session().Name,
				Action:    activity.ActionAppend,
				EntryID:   entry.ID,
				Details:   entry.Label,
			})
			snapshot(cmd, a, "add: "+entry.Label)
			return nil
		},
	}

	cmd.Flags().StringVarP(&label, "label", "l", "", "what the money went to (required)")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "signed amount (required)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "expense category")
	_ = cmd.MarkFlagRequired("label")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

// logActivity appends to the audit log, downgrading failures to warnings:
// the mutation itself already persisted.
func logActivity(cmd *cobra.Command, a *app, rec activity.Record) {
	if err := activity.Append(a.cfg.DataDir, []activity.Record{rec}); err != nil {
		cmd.PrintErrf("warning: activity log: %v\n", err)
	}
}

// snapshot commits the data dir when history is enabled; failures warn.
func snapshot(cmd *cobra.Command, a *app, message string) {
	if !a.cfg.History.AutoCommit {
		return
	}
	if !gitops.IsRepo(a.cfg.DataDir) {
		if err := gitops.Init(a.cfg.DataDir); err != nil {
			cmd.PrintErrf("warning: history: %v\n", err)
			return
		}
	}
	if _, err := gitops.Snapshot(a.cfg.DataDir, message, a.cfg.History.AuthorName, a.cfg.History.AuthorEmail); err != nil {
		cmd.PrintErrf("warning: history: %v\n", err)
	}
}
