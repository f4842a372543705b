package healthos

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Artemoon13/health-os/internal/metrics"
	"github.com/Artemoon13/health-os/internal/store"
)

var sleepCmd = &cobra.Command{
	Use:   "sleep",
	Short: "Record last night's sleep",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *App) error {
			snap := app.Store.Snapshot()
			s := snap.Sleep
			fmt.Fprintf(cmd.OutOrStdout(), "Sleep: %dh %02dm, quality %d%%, HRV %d ms, RHR %d bpm\n",
				s.Hours, s.Mins, s.Quality, s.HRVMs, s.RHRBpm)
			fmt.Fprintf(cmd.OutOrStdout(), "Recovery: %d%%\n", metrics.Recovery(snap))
			return nil
		})
	},
}

var (
	sleepHours   int
	sleepMins    int
	sleepQuality int
	sleepHRV     int
	sleepRHR     int
)

var sleepSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update the sleep record",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *App) error {
			var patch store.SleepPatch
			if cmd.Flags().Changed("hours") {
				patch.Hours = &sleepHours
			}
			if cmd.Flags().Changed("mins") {
				patch.Mins = &sleepMins
			}
			if cmd.Flags().Changed("quality") {
				patch.Quality = &sleepQuality
			}
			if cmd.Flags().Changed("hrv") {
				patch.HRVMs = &sleepHRV
			}
			if cmd.Flags().Changed("rhr") {
				patch.RHRBpm = &sleepRHR
			}
			if err := app.Store.UpdateSleep(patch); err != nil {
				return err
			}
			snap := app.Store.Snapshot()
			fmt.Fprintf(cmd.OutOrStdout(), "Sleep updated. Recovery: %d%%\n", metrics.Recovery(snap))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(sleepCmd)
	sleepCmd.AddCommand(sleepSetCmd)
	sleepSetCmd.Flags().IntVar(&sleepHours, "hours", 0, "Whole hours slept")
	sleepSetCmd.Flags().IntVar(&sleepMins, "mins", 0, "Extra minutes slept")
	sleepSetCmd.Flags().IntVar(&sleepQuality, "quality", 0, "Sleep quality 0-100")
	sleepSetCmd.Flags().IntVar(&sleepHRV, "hrv", 0, "HRV in ms")
	sleepSetCmd.Flags().IntVar(&sleepRHR, "rhr", 0, "Resting heart rate in bpm")
}
