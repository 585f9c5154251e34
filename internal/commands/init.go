package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/denikks/huntbook/internal/config"
	"github.com/denikks/huntbook/internal/gitops"
)

func newInitCommand() *cobra.Command {
	var currency string
	var withHistory bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new huntbook project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, currency, withHistory)
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "GBP", "ISO 4217 currency code for display")
	cmd.Flags().BoolVar(&withHistory, "history", false, "snapshot the data directory with git after each change")

	return cmd
}

func runInit(cmd *cobra.Command, dir, currency string, withHistory bool) error {
	cfg := config.Default(dir)
	cfg.Currency = currency
	cfg.History.AutoCommit = withHistory

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	if withHistory && !gitops.IsRepo(cfg.DataDir) {
		if err := gitops.Init(cfg.DataDir); err != nil {
			return fmt.Errorf("enabling history: %w", err)
		}
	}

	cmd.Printf("Initialized huntbook project at %s\n", dir)
	return nil
}
