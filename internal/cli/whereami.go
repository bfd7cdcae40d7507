package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hzafar/tripmark/internal/geocode"
	"github.com/hzafar/tripmark/internal/locate"
)

func newWhereamiCommand(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whereami",
		Short: "Print the current position and its place name.",
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := locate.New().Current(ctx)
			if err != nil {
				return fmt.Errorf("couldn't get your position: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "You are at %.4f, %.4f\n", pos.Lat, pos.Lng)
			resolvePlace(ctx, cmd, pos.Lat, pos.Lng)
			return nil
		},
	}

	return cmd
}

// resolvePlace prints the reverse-geocoded name for a point, degrading to
// silence when the lookup fails.
func resolvePlace(ctx context.Context, cmd *cobra.Command, lat, lng float64) {
	place, err := geocode.NewClient().Reverse(ctx, lat, lng)
	if err != nil || place.DisplayName == "" {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", place.DisplayName)
}
