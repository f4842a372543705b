package healthos

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Artemoon13/health-os/internal/store"
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Show or update daily targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *App) error {
			g := app.Store.Snapshot().Goals
			fmt.Fprintf(cmd.OutOrStdout(), "Calories: %d kcal\n", g.CalorieGoal)
			fmt.Fprintf(cmd.OutOrStdout(), "Protein:  %d g\n", g.ProteinGoal)
			fmt.Fprintf(cmd.OutOrStdout(), "Steps:    %d\n", g.StepsGoal)
			fmt.Fprintf(cmd.OutOrStdout(), "Water:    %d ml\n", g.WaterGoalMl)
			fmt.Fprintf(cmd.OutOrStdout(), "Sleep:    %d h\n", g.SleepGoalH)
			return nil
		})
	},
}

var (
	goalCalories int
	goalProtein  int
	goalSteps    int
	goalWater    int
	goalSleep    int
)

var goalsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update daily targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *App) error {
			var patch store.GoalsPatch
			if cmd.Flags().Changed("calories") {
				patch.CalorieGoal = &goalCalories
			}
			if cmd.Flags().Changed("protein") {
				patch.ProteinGoal = &goalProtein
			}
			if cmd.Flags().Changed("steps") {
				patch.StepsGoal = &goalSteps
			}
			if cmd.Flags().Changed("water") {
				patch.WaterGoalMl = &goalWater
			}
			if cmd.Flags().Changed("sleep") {
				patch.SleepGoalH = &goalSleep
			}
			if err := app.Store.UpdateGoals(patch); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Goals updated.")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(goalsCmd)
	goalsCmd.AddCommand(goalsSetCmd)
	goalsSetCmd.Flags().IntVar(&goalCalories, "calories", 0, "Calorie goal")
	goalsSetCmd.Flags().IntVar(&goalProtein, "protein", 0, "Protein goal in grams")
	goalsSetCmd.Flags().IntVar(&goalSteps, "steps", 0, "Step goal")
	goalsSetCmd.Flags().IntVar(&goalWater, "water", 0, "Water goal in ml")
	goalsSetCmd.Flags().IntVar(&goalSleep, "sleep", 0, "Sleep goal in hours")
}
