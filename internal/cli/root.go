package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hzafar/tripmark/internal/geocode"
	"github.com/hzafar/tripmark/internal/locate"
	"github.com/hzafar/tripmark/internal/store"
	"github.com/hzafar/tripmark/internal/ui"
)

// NewRootCommand creates the top-level Cobra command to host subcommands and
// the interactive map session.
func NewRootCommand(ctx context.Context, st *store.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tripmark",
		Short: "Record trips on an interactive map from your terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := ui.NewModel(ctx, st, geocode.NewClient(), locate.New())
			if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("run session: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newAddCommand(ctx, st),
		newListCommand(ctx, st),
		newDeleteCommand(ctx, st),
		newLocateCommand(ctx, st),
		newWhereamiCommand(ctx),
		newVersionCommand(),
	)

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	st, err := store.New("")
	if err != nil {
		return err
	}
	cmd := NewRootCommand(ctx, st)
	return cmd.Execute()
}

// Main is a helper used by cmd/tripmark/main.go to keep wiring contained in
// one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
