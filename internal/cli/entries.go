package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hzafar/tripmark/internal/store"
	"github.com/hzafar/tripmark/internal/travellog"
)

func newAddCommand(ctx context.Context, st *store.Store) *cobra.Command {
	var (
		fromFlag     string
		toFlag       string
		distanceFlag string
		durationFlag string
		modeFlag     string
		latFlag      float64
		lngFlag      float64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a trip without opening the map session.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logs, factory, err := loadState(st)
			if err != nil {
				return err
			}

			log, err := factory.Create(travellog.Input{
				From:     fromFlag,
				To:       toFlag,
				Distance: distanceFlag,
				Duration: durationFlag,
				Mode:     modeFlag,
				Lat:      latFlag,
				Lng:      lngFlag,
			})
			if err != nil {
				return err
			}
			if err := logs.Add(log); err != nil {
				return err
			}
			if err := st.Save(logs.All()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged %d: %s\n", log.ID, formatLog(log))
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFlag, "from", "", "Origin place name")
	cmd.Flags().StringVar(&toFlag, "to", "", "Destination place name")
	cmd.Flags().StringVar(&distanceFlag, "distance", "", "Distance in kilometers")
	cmd.Flags().StringVar(&durationFlag, "duration", "", "Duration in hours")
	cmd.Flags().StringVar(&modeFlag, "mode", "Walk", "Travel mode (Walk, Cycle, Bike, Car, Bus, Train, Flight)")
	cmd.Flags().Float64Var(&latFlag, "lat", 0, "Latitude of the destination")
	cmd.Flags().Float64Var(&lngFlag, "lng", 0, "Longitude of the destination")

	return cmd
}

func newListCommand(ctx context.Context, st *store.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show all recorded trips in creation order.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logs, _, err := loadState(st)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			all := logs.All()
			if len(all) == 0 {
				fmt.Fprintln(out, "No travel logs yet.")
				return nil
			}
			for _, log := range all {
				fmt.Fprintf(out, "%d  %s\n   %s (%.4f, %.4f)\n", log.ID, log.Description, formatLog(log), log.Lat, log.Lng)
			}
			return nil
		},
	}

	return cmd
}

func newDeleteCommand(ctx context.Context, st *store.Store) *cobra.Command {
	var allFlag bool

	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Remove one trip by id, or every trip with --all.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if allFlag {
				if err := st.Clear(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "All travel logs deleted.")
				return nil
			}

			if len(args) != 1 {
				return fmt.Errorf("id is required unless --all is set")
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			logs, _, err := loadState(st)
			if err != nil {
				return err
			}
			removed, err := logs.RemoveByID(id)
			if err != nil {
				return err
			}
			if err := st.Save(logs.All()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted your travel to %s.\n", removed.To)
			return nil
		},
	}

	cmd.Flags().BoolVar(&allFlag, "all", false, "Delete every travel log")

	return cmd
}

func newLocateCommand(ctx context.Context, st *store.Store) *cobra.Command {
	var resolveFlag bool

	cmd := &cobra.Command{
		Use:   "locate <id>",
		Short: "Show where a trip was recorded.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			logs, _, err := loadState(st)
			if err != nil {
				return err
			}
			log, err := logs.FindByID(id)
			if err != nil {
				if errors.Is(err, travellog.ErrNotFound) {
					return fmt.Errorf("no travel log with id %d", id)
				}
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s is at %.4f, %.4f\n", log.To, log.Lat, log.Lng)
			if resolveFlag {
				resolvePlace(ctx, cmd, log.Lat, log.Lng)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&resolveFlag, "resolve", false, "Reverse-geocode the coordinates to a place name")

	return cmd
}
