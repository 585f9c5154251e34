package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/denikks/huntbook/internal/activity"
)

func newClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the current session and persist the empty state",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}

			if err := a.store.Clear(); err != nil {
				return err
			}

			logActivity(cmd, a, activity.Record{
				Timestamp: time.Now().UTC(),
				Session:   a.store.Session().Name,
				Action:    activity.ActionClear,
			})
			snapshot(cmd, a, "clear: "+a.store.Session().Name)

			cmd.Printf("Cleared session %q\n", a.store.Session().Name)
			return nil
		},
	}
}
