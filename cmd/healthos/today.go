package healthos

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Artemoon13/health-os/internal/metrics"
)

var priorityColors = map[metrics.PriorityColor]*color.Color{
	metrics.ColorPurple: color.New(color.FgMagenta, color.Bold),
	metrics.ColorBlue:   color.New(color.FgBlue, color.Bold),
	metrics.ColorOrange: color.New(color.FgYellow, color.Bold),
	metrics.ColorGreen:  color.New(color.FgGreen, color.Bold),
}

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's balance, recovery, score, and priority",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *App) error {
			snap := app.Store.Snapshot()
			out := cmd.OutOrStdout()

			bal := metrics.Balance(snap)
			macros := metrics.Macros(snap.FoodLog)
			score := metrics.Score(snap)
			priority := metrics.TodayPriority(snap)
			streak := app.Store.Streak()

			fmt.Fprintf(out, "Date: %s\n\n", app.Store.TodayISO())
			fmt.Fprintf(out, "Intake:  %5.0f kcal (%.0f%% of goal)\n", bal.IntakeKcal, bal.GoalPct)
			fmt.Fprintf(out, "Burned:  %5.0f kcal\n", bal.BurnedKcal)
			state := "surplus"
			if bal.IsDeficit {
				state = "deficit"
			}
			fmt.Fprintf(out, "Balance: %+5.0f kcal (%s)\n", bal.Balance, state)
			fmt.Fprintf(out, "Remaining: %.0f kcal\n", bal.RemainingKcal)
			fmt.Fprintf(out, "Macros: P %.1fg | C %.1fg | F %.1fg\n\n", macros.ProteinG, macros.CarbsG, macros.FatG)

			fmt.Fprintf(out, "Recovery: %d%%\n", metrics.Recovery(snap))
			fmt.Fprintf(out, "Daily score: %d (%s)\n", score.Score, score.Label)
			if streak > 0 {
				fmt.Fprintf(out, "Stability streak: %d day(s)\n", streak)
			}
			fmt.Fprintln(out)

			c, ok := priorityColors[priority.Color]
			if !ok {
				c = color.New(color.Bold)
			}
			fmt.Fprintf(out, "Priority: %s\n", c.Sprint(priority.Title))
			fmt.Fprintf(out, "  %s\n", priority.Subtitle)

			if app.Syncer != nil && app.Syncer.LastErr() != nil {
				fmt.Fprintln(out, "\nSync failed, working offline. Run 'healthos sync push' to retry.")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
