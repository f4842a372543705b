package healthos

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Artemoon13/health-os/internal/model"
	"github.com/Artemoon13/health-os/internal/store"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update the user profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *App) error {
			p := app.Store.Snapshot().Profile
			fmt.Fprintf(cmd.OutOrStdout(), "Name: %s\n", p.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Weight: %.1f kg, Height: %d cm, Age: %d\n", p.WeightKg, p.HeightCm, p.Age)
			fmt.Fprintf(cmd.OutOrStdout(), "Goal: %s, Activity level: %s\n", p.Goal, p.ActivityLevel)
			if p.MorningDate != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Morning check: %s (%s)\n", p.MorningFeeling, p.MorningDate)
			}
			return nil
		})
	},
}

var (
	profileName     string
	profileWeight   float64
	profileHeight   int
	profileAge      int
	profileGoal     string
	profileActivity string
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *App) error {
			var patch store.ProfilePatch
			if cmd.Flags().Changed("name") {
				patch.Name = &profileName
			}
			if cmd.Flags().Changed("weight") {
				patch.WeightKg = &profileWeight
			}
			if cmd.Flags().Changed("height") {
				patch.HeightCm = &profileHeight
			}
			if cmd.Flags().Changed("age") {
				patch.Age = &profileAge
			}
			if cmd.Flags().Changed("goal") {
				goal := model.GoalType(profileGoal)
				patch.Goal = &goal
			}
			if cmd.Flags().Changed("activity-level") {
				level := model.ActivityLevel(profileActivity)
				patch.ActivityLevel = &level
			}
			if err := app.Store.UpdateProfile(patch); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile updated.")
			return nil
		})
	},
}

var morningFeeling string

var profileMorningCmd = &cobra.Command{
	Use:   "morning",
	Short: "Record the morning check for today",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *App) error {
			today := app.Store.TodayISO()
			if err := app.Store.SetMorningCheck(today, model.MorningFeeling(morningFeeling)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Morning check recorded: %s\n", morningFeeling)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd, profileMorningCmd)
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Body weight in kg")
	profileSetCmd.Flags().IntVar(&profileHeight, "height", 0, "Height in cm")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", "", "Goal (lose, maintain, gain, performance)")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity-level", "", "Activity level (sedentary, light, moderate, active)")
	profileMorningCmd.Flags().StringVar(&morningFeeling, "feeling", "normal", "Feeling (energized, normal, tired, exhausted)")
}
