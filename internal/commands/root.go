package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/denikks/huntbook/internal/buildinfo"
	"github.com/denikks/huntbook/internal/config"
	"github.com/denikks/huntbook/internal/ledger"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "huntbook",
		Short:   "Track in-game expenses across hunting sessions",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("dir", ".", "huntbook project directory")
	rootCmd.PersistentFlags().String("session", "", "session name (defaults to the configured one)")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAddCommand())
	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newTotalCommand())
	rootCmd.AddCommand(newDiffCommand())
	rootCmd.AddCommand(newRemoveCommand())
	rootCmd.AddCommand(newClearCommand())
	rootCmd.AddCommand(newSessionsCommand())
	rootCmd.AddCommand(newReportCommand())

	return rootCmd
}

// app bundles the resolved config and the open session store for a command.
type app struct {
	cfg   *config.Config
	store *ledger.Store
}

// setup resolves the project directory and session, loads config, and opens
// the store. A corrupt session file degrades to an empty session with a
// warning rather than aborting the command.
func setup(cmd *cobra.Command) (*app, error) {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(config.DefaultPath(dir))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = config.Default(dir)
	}

	session, err := cmd.Flags().GetString("session")
	if err != nil {
		return nil, err
	}
	if session == "" {
		session = cfg.Session
	}

	store := ledger.NewStore(cfg.DataDir, session)
	if _, err := store.Load(); err != nil {
		if !errors.Is(err, ledger.ErrCorrupt) {
			return nil, err
		}
		cmd.PrintErrf("warning: %v; starting from an empty session\n", err)
	}

	return &app{cfg: cfg, store: store}, nil
}
