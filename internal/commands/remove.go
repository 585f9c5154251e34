package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/denikks/huntbook/internal/activity"
)

func newRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <entry-id>",
		Short: "Delete one entry from the current session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}

			id := args[0]
			if err := a.store.Remove(id); err != nil {
				return err
			}

			logActivity(cmd, a, activity.Record{
				Timestamp: time.Now().UTC(),
				Session:   a.store.Session().Name,
				Action:    activity.ActionRemove,
				EntryID:   id,
			})
			snapshot(cmd, a, "remove: "+id)

			cmd.Printf("Removed %s\n", id)
			return nil
		},
	}
}
