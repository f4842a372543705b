package metrics

import (
	"fmt"
	"math"

	"github.com/Artemoon13/health-os/internal/model"
)

// PriorityAction is what the recommendation asks the user to log next.
// ActionNone marks a recommendation with nothing to log (rest day).
type PriorityAction string

const (
	ActionSleep    PriorityAction = "sleep"
	ActionFood     PriorityAction = "food"
	ActionActivity PriorityAction = "activity"
	ActionWeight   PriorityAction = "weight"
	ActionNone     PriorityAction = ""
)

// PriorityColor tags each recommendation for display.
type PriorityColor string

const (
	ColorPurple PriorityColor = "purple"
	ColorBlue   PriorityColor = "blue"
	ColorOrange PriorityColor = "orange"
	ColorGreen  PriorityColor = "green"
)

type Priority struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Subtitle string         `json:"subtitle"`
	Color    PriorityColor  `json:"color"`
	Action   PriorityAction `json:"action"`
}

// TodayPriority picks the single highest-precedence recommendation via
// an ordered rule cascade: the first matching rule wins. Total over
// every valid snapshot.
func TodayPriority(snap model.Snapshot) Priority {
	recovery := Recovery(snap)
	bal := Balance(snap)
	macros := Macros(snap.FoodLog)
	sleepHours := snap.Sleep.TotalHours()

	if sleepHours < 5 {
		return Priority{
			ID:       "sleep",
			Title:    "Fix Sleep Debt",
			Subtitle: "Under 5h - recovery will be limited. Aim for 7-8h tonight.",
			Color:    ColorPurple,
			Action:   ActionSleep,
		}
	}
	if snap.Sleep.Quality < 40 && recovery < 70 {
		return Priority{
			ID:       "sleep-q",
			Title:    "Prioritize Sleep Quality",
			Subtitle: "Low quality last night. Focus on wind-down tonight.",
			Color:    ColorBlue,
			Action:   ActionSleep,
		}
	}
	if recovery < 50 {
		return Priority{
			ID:       "rest",
			Title:    "Rest Day",
			Subtitle: "System needs recovery. Light movement only.",
			Color:    ColorOrange,
			Action:   ActionNone,
		}
	}
	over := bal.IntakeKcal - float64(snap.Goals.CalorieGoal)
	if bal.IsOverGoal && over > 300 {
		return Priority{
			ID:       "cal",
			Title:    "Reduce Intake",
			Subtitle: fmt.Sprintf("%.0f kcal over goal. Cut next meal.", over),
			Color:    ColorOrange,
			Action:   ActionFood,
		}
	}
	if macros.ProteinG < float64(snap.Goals.ProteinGoal)*0.8 {
		return Priority{
			ID:       "protein",
			Title:    "Increase Protein",
			Subtitle: fmt.Sprintf("%.0fg / %dg. Add a high-protein meal.", macros.ProteinG, snap.Goals.ProteinGoal),
			Color:    ColorBlue,
			Action:   ActionFood,
		}
	}
	if len(snap.Activities) == 0 && recovery >= 65 {
		return Priority{
			ID:       "train",
			Title:    "Train Today",
			Subtitle: fmt.Sprintf("Recovery %d%%. Good day for a workout.", recovery),
			Color:    ColorGreen,
			Action:   ActionActivity,
		}
	}
	if math.Abs(bal.RemainingKcal) < 200 && !bal.IsOverGoal {
		return Priority{
			ID:       "balance",
			Title:    "Hit Your Target",
			Subtitle: fmt.Sprintf("%.0f kcal left. One smart meal.", math.Abs(bal.RemainingKcal)),
			Color:    ColorGreen,
			Action:   ActionFood,
		}
	}
	if recovery >= 75 {
		return Priority{
			ID:       "default",
			Title:    "Stay on Track",
			Subtitle: "System optimal. Keep consistency.",
			Color:    ColorBlue,
			Action:   ActionFood,
		}
	}
	return Priority{
		ID:       "default",
		Title:    "Log Your Day",
		Subtitle: "Log meals and activity to get a full score.",
		Color:    ColorBlue,
		Action:   ActionFood,
	}
}
