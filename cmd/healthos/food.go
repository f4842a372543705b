package healthos

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Artemoon13/health-os/internal/catalog"
	"github.com/Artemoon13/health-os/internal/model"
	"github.com/Artemoon13/health-os/internal/provider/fatsecret"
	"github.com/Artemoon13/health-os/internal/store"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Log and manage food entries",
}

var (
	foodName    string
	foodKcal    float64
	foodProtein float64
	foodCarbs   float64
	foodFat     float64
	foodMeal    string
	foodTime    string
)

var foodAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a food entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *App) error {
			err := app.Store.AddFood(store.FoodInput{
				Name:     foodName,
				Kcal:     foodKcal,
				ProteinG: foodProtein,
				CarbsG:   foodCarbs,
				FatG:     foodFat,
				MealType: model.MealType(foodMeal),
				Time:     foodTime,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%.0f kcal)\n", foodName, foodKcal)
			return nil
		})
	},
}

var foodQuickCmd = &cobra.Command{
	Use:   "quick <query>",
	Short: "Quick-add a food from the built-in catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tpl, ok := catalog.FindFood(args[0])
		if !ok {
			return fmt.Errorf("no catalog food matches %q", args[0])
		}
		return withApp(func(app *App) error {
			err := app.Store.AddFood(store.FoodInput{
				Name:     tpl.Name,
				Kcal:     tpl.Kcal,
				ProteinG: tpl.ProteinG,
				CarbsG:   tpl.CarbsG,
				FatG:     tpl.FatG,
				MealType: model.MealType(foodMeal),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%.0f kcal, P %.1fg)\n", tpl.Name, tpl.Kcal, tpl.ProteinG)
			return nil
		})
	},
}

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List today's food entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *App) error {
			snap := app.Store.Snapshot()
			if len(snap.FoodLog) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No food logged today.")
				return nil
			}
			for _, f := range snap.FoodLog {
				fmt.Fprintf(cmd.OutOrStdout(), "%d  %-8s %-24s %5.0f kcal  P %5.1fg  C %5.1fg  F %5.1fg  %s\n",
					f.ID, f.MealType, f.Name, f.Kcal, f.ProteinG, f.CarbsG, f.FatG, f.Time)
			}
			return nil
		})
	},
}

var foodEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a food entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("entry id", args[0])
		if err != nil {
			return err
		}
		return withApp(func(app *App) error {
			var patch store.FoodPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &foodName
			}
			if cmd.Flags().Changed("kcal") {
				patch.Kcal = &foodKcal
			}
			if cmd.Flags().Changed("protein") {
				patch.ProteinG = &foodProtein
			}
			if cmd.Flags().Changed("carbs") {
				patch.CarbsG = &foodCarbs
			}
			if cmd.Flags().Changed("fat") {
				patch.FatG = &foodFat
			}
			if cmd.Flags().Changed("meal") {
				meal := model.MealType(foodMeal)
				patch.MealType = &meal
			}
			if cmd.Flags().Changed("time") {
				patch.Time = &foodTime
			}
			app.Store.UpdateFood(id, patch)
			fmt.Fprintf(cmd.OutOrStdout(), "Updated entry %d\n", id)
			return nil
		})
	},
}

var foodRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a food entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("entry id", args[0])
		if err != nil {
			return err
		}
		return withApp(func(app *App) error {
			app.Store.RemoveFood(id)
			fmt.Fprintf(cmd.OutOrStdout(), "Removed entry %d\n", id)
			return nil
		})
	},
}

var foodSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the food database",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *App) error {
			client := &fatsecret.Client{BaseURL: app.Cfg.SearchBaseURL}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()
			foods, err := client.Search(ctx, args[0])
			if err != nil {
				// Search is best-effort: degrade, don't fail the flow.
				app.Log.Warnf("food search unavailable: %v", err)
				fmt.Fprintln(cmd.OutOrStdout(), "Search unavailable right now. Try again later or log manually.")
				return nil
			}
			if len(foods) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No results.")
				return nil
			}
			for _, f := range foods {
				fmt.Fprintf(cmd.OutOrStdout(), "%-40s %5.0f kcal  P %5.1fg  C %5.1fg  F %5.1fg\n",
					f.Name, f.Kcal, f.ProteinG, f.CarbsG, f.FatG)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodAddCmd, foodQuickCmd, foodListCmd, foodEditCmd, foodRmCmd, foodSearchCmd)

	for _, c := range []*cobra.Command{foodAddCmd, foodEditCmd} {
		c.Flags().StringVar(&foodName, "name", "", "Food name")
		c.Flags().Float64Var(&foodKcal, "kcal", 0, "Calories")
		c.Flags().Float64Var(&foodProtein, "protein", 0, "Protein grams")
		c.Flags().Float64Var(&foodCarbs, "carbs", 0, "Carb grams")
		c.Flags().Float64Var(&foodFat, "fat", 0, "Fat grams")
		c.Flags().StringVar(&foodMeal, "meal", "Snack", "Meal type (Breakfast, Lunch, Dinner, Snack)")
		c.Flags().StringVar(&foodTime, "time", "", "Time HH:MM (default now)")
	}
	foodQuickCmd.Flags().StringVar(&foodMeal, "meal", "Snack", "Meal type (Breakfast, Lunch, Dinner, Snack)")
	_ = foodAddCmd.MarkFlagRequired("name")
	_ = foodAddCmd.MarkFlagRequired("kcal")
}
