// Package metrics derives display values from a state snapshot. Every
// function here is pure: no stored state, no side effects, cheap
// enough to recompute on every command.
package metrics

import (
	"math"

	"github.com/Artemoon13/health-os/internal/model"
)

// BaseBurnKcal is the fixed daily metabolic allowance added to the
// burned side of the balance. A deliberate stand-in for basal burn; it
// is not derived from profile weight/height/age.
const BaseBurnKcal = 350

// goalPctCap keeps the progress-ring percentage readable when intake
// runs past the goal.
const goalPctCap = 130

type BalanceReport struct {
	IntakeKcal    float64 `json:"intake_kcal"`
	BurnedKcal    float64 `json:"burned_kcal"`
	Balance       float64 `json:"balance"`
	RemainingKcal float64 `json:"remaining_kcal"`
	IsDeficit     bool    `json:"is_deficit"`
	IsOverGoal    bool    `json:"is_over_goal"`
	GoalPct       float64 `json:"goal_pct"`
}

// Balance computes the day's energy ledger against the calorie goal.
func Balance(snap model.Snapshot) BalanceReport {
	var intake float64
	for _, f := range snap.FoodLog {
		intake += f.Kcal
	}
	var burned float64 = BaseBurnKcal
	for _, a := range snap.Activities {
		burned += a.KcalBurned
	}
	balance := intake - burned
	goal := float64(snap.Goals.CalorieGoal)

	goalPct := 0.0
	if goal > 0 {
		goalPct = math.Min(intake/goal*100, goalPctCap)
	}
	return BalanceReport{
		IntakeKcal:    intake,
		BurnedKcal:    burned,
		Balance:       balance,
		RemainingKcal: goal - intake,
		IsDeficit:     balance <= 0,
		IsOverGoal:    intake > goal,
		GoalPct:       goalPct,
	}
}

type MacroTotals struct {
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// Macros sums protein, carbs, and fat over the food log.
func Macros(foodLog []model.FoodEntry) MacroTotals {
	var m MacroTotals
	for _, f := range foodLog {
		m.ProteinG += f.ProteinG
		m.CarbsG += f.CarbsG
		m.FatG += f.FatG
	}
	return m
}

// Recovery is the 0-95 readiness index. Only whole sleep hours,
// quality, and HRV feed the formula; minutes and resting heart rate
// are collected but unused here.
func Recovery(snap model.Snapshot) int {
	s := snap.Sleep
	raw := 50 + float64(s.Hours)*4 + float64(s.Quality)*0.15 + float64(s.HRVMs-40)*0.3
	score := int(math.Round(math.Min(95, raw)))
	if score < 0 {
		score = 0
	}
	return score
}

type DailyScore struct {
	Score int    `json:"score"`
	Label string `json:"label"`
}

// Score computes the 0-100 composite daily score from six weighted
// sub-scores and attaches its display label.
func Score(snap model.Snapshot) DailyScore {
	recovery := float64(Recovery(snap))
	bal := Balance(snap)
	macros := Macros(snap.FoodLog)

	sleepPct := 0.0
	if snap.Goals.SleepGoalH > 0 {
		sleepPct = math.Min(100, snap.Sleep.TotalHours()/float64(snap.Goals.SleepGoalH)*100)
	}
	waterPct := 100.0
	if snap.Goals.WaterGoalMl > 0 {
		waterPct = math.Min(100, float64(snap.WaterGlasses*model.GlassMl)/float64(snap.Goals.WaterGoalMl)*100)
	}
	proteinPct := 100.0
	if snap.Goals.ProteinGoal > 0 {
		proteinPct = math.Min(100, macros.ProteinG/float64(snap.Goals.ProteinGoal)*100)
	}
	activityOk := 50.0
	if len(snap.Activities) > 0 {
		activityOk = 100
	}
	var balanceScore float64
	if bal.IsOverGoal {
		balanceScore = math.Max(0, 100-(bal.GoalPct-100)*2)
	} else {
		balanceScore = math.Min(100, 50+bal.GoalPct*0.5)
	}

	score := int(math.Round(
		recovery*0.25 +
			sleepPct*0.2 +
			balanceScore*0.2 +
			waterPct*0.15 +
			proteinPct*0.1 +
			activityOk*0.1))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	label := "Rest day"
	switch {
	case score >= 80:
		label = "Good Day"
	case score >= 60:
		label = "Okay"
	case score >= 40:
		label = "Needs attention"
	}
	return DailyScore{Score: score, Label: label}
}
