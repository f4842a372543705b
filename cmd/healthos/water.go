package healthos

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Artemoon13/health-os/internal/model"
)

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Track today's water intake",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *App) error {
			printWater(cmd, app)
			return nil
		})
	},
}

var waterDrinkCmd = &cobra.Command{
	Use:   "drink [glasses]",
	Short: "Add glasses of water (default 1)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := 1
		if len(args) == 1 {
			v, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid glass count %q", args[0])
			}
			n = v
		}
		return withApp(func(app *App) error {
			app.Store.UpdateWater(func(prev int) int { return prev + n })
			printWater(cmd, app)
			return nil
		})
	},
}

var waterSetCmd = &cobra.Command{
	Use:   "set <glasses>",
	Short: "Set today's glass count",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid glass count %q", args[0])
		}
		return withApp(func(app *App) error {
			app.Store.SetWater(n)
			printWater(cmd, app)
			return nil
		})
	},
}

func printWater(cmd *cobra.Command, app *App) {
	snap := app.Store.Snapshot()
	ml := snap.WaterGlasses * model.GlassMl
	if snap.Goals.WaterGoalMl > 0 {
		pct := float64(ml) / float64(snap.Goals.WaterGoalMl) * 100
		fmt.Fprintf(cmd.OutOrStdout(), "Water: %d glasses (%d ml / %d ml, %.0f%%)\n",
			snap.WaterGlasses, ml, snap.Goals.WaterGoalMl, pct)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Water: %d glasses (%d ml)\n", snap.WaterGlasses, ml)
}

func init() {
	rootCmd.AddCommand(waterCmd)
	waterCmd.AddCommand(waterDrinkCmd, waterSetCmd)
}
