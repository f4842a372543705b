package healthos

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Artemoon13/health-os/internal/store"
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Log and manage weight entries",
}

var (
	weightKg   float64
	weightDate string
)

var weightLogCmd = &cobra.Command{
	Use:   "log <kg>",
	Short: "Log today's weight",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kg, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid weight %q", args[0])
		}
		return withApp(func(app *App) error {
			if err := app.Store.LogWeight(kg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %.1f kg\n", kg)
			return nil
		})
	},
}

var weightListCmd = &cobra.Command{
	Use:   "list",
	Short: "List weight history",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *App) error {
			snap := app.Store.Snapshot()
			if len(snap.WeightLog) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No weight entries yet.")
				return nil
			}
			for _, w := range snap.WeightLog {
				fmt.Fprintf(cmd.OutOrStdout(), "%d  %-8s %6.1f kg\n", w.ID, w.Date, w.WeightKg)
			}
			return nil
		})
	},
}

var weightEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a weight entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("weight id", args[0])
		if err != nil {
			return err
		}
		return withApp(func(app *App) error {
			var patch store.WeightPatch
			if cmd.Flags().Changed("kg") {
				patch.WeightKg = &weightKg
			}
			if cmd.Flags().Changed("date") {
				patch.Date = &weightDate
			}
			if err := app.Store.UpdateWeightEntry(id, patch); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated weight entry %d\n", id)
			return nil
		})
	},
}

var weightRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a weight entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("weight id", args[0])
		if err != nil {
			return err
		}
		return withApp(func(app *App) error {
			app.Store.RemoveWeightEntry(id)
			fmt.Fprintf(cmd.OutOrStdout(), "Removed weight entry %d\n", id)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(weightCmd)
	weightCmd.AddCommand(weightLogCmd, weightListCmd, weightEditCmd, weightRmCmd)
	weightEditCmd.Flags().Float64Var(&weightKg, "kg", 0, "Weight in kg")
	weightEditCmd.Flags().StringVar(&weightDate, "date", "", "Display date label")
}
