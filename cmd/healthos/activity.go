package healthos

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Artemoon13/health-os/internal/catalog"
	"github.com/Artemoon13/health-os/internal/model"
	"github.com/Artemoon13/health-os/internal/store"
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Log and manage activities",
}

var (
	activityType      string
	activityDuration  int
	activityIntensity string
	activityKcal      float64
	activityTime      string
)

var activityAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log an activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *App) error {
			in := store.ActivityInput{
				Type:        activityType,
				DurationMin: activityDuration,
				Intensity:   model.Intensity(activityIntensity),
				Time:        activityTime,
			}
			if cmd.Flags().Changed("kcal") {
				in.KcalBurned = &activityKcal
			}
			if err := app.Store.AddActivity(in, catalog.KcalBurned); err != nil {
				return err
			}
			burned := activityKcal
			if in.KcalBurned == nil {
				burned = catalog.KcalBurned(activityDuration, model.Intensity(activityIntensity))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s, %d min %s (%.0f kcal)\n",
				activityType, activityDuration, activityIntensity, burned)
			return nil
		})
	},
}

var activityListCmd = &cobra.Command{
	Use:   "list",
	Short: "List today's activities",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *App) error {
			snap := app.Store.Snapshot()
			if len(snap.Activities) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No activity logged today.")
				return nil
			}
			for _, a := range snap.Activities {
				fmt.Fprintf(cmd.OutOrStdout(), "%d  %-20s %4d min  %-8s %5.0f kcal  %s\n",
					a.ID, a.Type, a.DurationMin, a.Intensity, a.KcalBurned, a.Time)
			}
			return nil
		})
	},
}

var activityEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an activity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("activity id", args[0])
		if err != nil {
			return err
		}
		return withApp(func(app *App) error {
			var patch store.ActivityPatch
			if cmd.Flags().Changed("type") {
				patch.Type = &activityType
			}
			if cmd.Flags().Changed("duration") {
				patch.DurationMin = &activityDuration
			}
			if cmd.Flags().Changed("intensity") {
				intensity := model.Intensity(activityIntensity)
				patch.Intensity = &intensity
			}
			if cmd.Flags().Changed("kcal") {
				patch.KcalBurned = &activityKcal
			}
			if cmd.Flags().Changed("time") {
				patch.Time = &activityTime
			}
			app.Store.UpdateActivity(id, patch)
			fmt.Fprintf(cmd.OutOrStdout(), "Updated activity %d\n", id)
			return nil
		})
	},
}

var activityRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove an activity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("activity id", args[0])
		if err != nil {
			return err
		}
		return withApp(func(app *App) error {
			app.Store.RemoveActivity(id)
			fmt.Fprintf(cmd.OutOrStdout(), "Removed activity %d\n", id)
			return nil
		})
	},
}

var activityTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List known activity types",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, t := range catalog.ActivityTypes {
			fmt.Fprintln(cmd.OutOrStdout(), t)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(activityCmd)
	activityCmd.AddCommand(activityAddCmd, activityListCmd, activityEditCmd, activityRmCmd, activityTypesCmd)

	for _, c := range []*cobra.Command{activityAddCmd, activityEditCmd} {
		c.Flags().StringVar(&activityType, "type", "", "Activity type")
		c.Flags().IntVar(&activityDuration, "duration", 0, "Duration in minutes")
		c.Flags().StringVar(&activityIntensity, "intensity", "Moderate", "Intensity (Light, Moderate, High)")
		c.Flags().Float64Var(&activityKcal, "kcal", 0, "Calories burned (default derived from duration and intensity)")
		c.Flags().StringVar(&activityTime, "time", "", "Time HH:MM (default now)")
	}
	_ = activityAddCmd.MarkFlagRequired("type")
	_ = activityAddCmd.MarkFlagRequired("duration")
}
