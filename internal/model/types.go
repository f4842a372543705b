package model

// MealType buckets a food entry into one of the four daily meals.
type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
	MealSnack     MealType = "Snack"
)

// Intensity is the perceived effort of an activity.
type Intensity string

const (
	IntensityLight    Intensity = "Light"
	IntensityModerate Intensity = "Moderate"
	IntensityHigh     Intensity = "High"
)

// GoalType is the user's overall body-composition goal.
type GoalType string

const (
	GoalLose        GoalType = "lose"
	GoalMaintain    GoalType = "maintain"
	GoalGain        GoalType = "gain"
	GoalPerformance GoalType = "performance"
)

// ActivityLevel is the self-reported baseline activity of the user.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityActive    ActivityLevel = "active"
)

// MorningFeeling is the answer to the once-per-day morning check.
type MorningFeeling string

const (
	FeelingEnergized MorningFeeling = "energized"
	FeelingNormal    MorningFeeling = "normal"
	FeelingTired     MorningFeeling = "tired"
	FeelingExhausted MorningFeeling = "exhausted"
)

type FoodEntry struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Kcal     float64  `json:"kcal"`
	ProteinG float64  `json:"protein_g"`
	CarbsG   float64  `json:"carbs_g"`
	FatG     float64  `json:"fat_g"`
	MealType MealType `json:"meal_type"`
	Time     string   `json:"time"`     // HH:MM, display only
	LogDate  string   `json:"log_date"` // YYYY-MM-DD
}

type ActivityEntry struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	DurationMin int       `json:"duration_min"`
	Intensity   Intensity `json:"intensity"`
	// KcalBurned is derived from duration and intensity at creation
	// time and stored. Patching duration or intensity afterwards does
	// not recompute it unless the caller supplies a new value.
	KcalBurned float64 `json:"kcal_burned"`
	Time       string  `json:"time"`
	LogDate    string  `json:"log_date"`
}

type WeightEntry struct {
	ID       int64   `json:"id"`
	Date     string  `json:"date"` // display label, e.g. "Feb 26"
	WeightKg float64 `json:"weight_kg"`
}

// SleepData is the current-night snapshot. No history is retained.
type SleepData struct {
	Hours   int `json:"hours"`
	Mins    int `json:"mins"`
	Quality int `json:"quality"` // 0-100
	HRVMs   int `json:"hrv_ms"`
	RHRBpm  int `json:"rhr_bpm"`
}

// TotalHours is hours plus the minute fraction.
func (s SleepData) TotalHours() float64 {
	return float64(s.Hours) + float64(s.Mins)/60
}

type UserGoals struct {
	CalorieGoal int `json:"calorie_goal"`
	ProteinGoal int `json:"protein_goal"` // grams
	StepsGoal   int `json:"steps_goal"`
	WaterGoalMl int `json:"water_goal_ml"`
	SleepGoalH  int `json:"sleep_goal_h"`
}

type UserProfile struct {
	Name           string         `json:"name"`
	WeightKg       float64        `json:"weight_kg"`
	HeightCm       int            `json:"height_cm"`
	Age            int            `json:"age"`
	Goal           GoalType       `json:"goal"`
	ActivityLevel  ActivityLevel  `json:"activity_level"`
	IsPro          bool           `json:"is_pro"`
	OnboardingDone bool           `json:"onboarding_done"`
	MorningDate    string         `json:"morning_date,omitempty"` // YYYY-MM-DD of last morning check
	MorningFeeling MorningFeeling `json:"morning_feeling,omitempty"`
}

// LastDaySummary is the rolling snapshot of the current day. It is
// refreshed on every relevant mutation while Date matches today and
// frozen once the calendar date has moved on.
type LastDaySummary struct {
	Date        string  `json:"date"` // YYYY-MM-DD
	SleepHours  float64 `json:"sleep_hours"`
	Balance     float64 `json:"balance"`
	HadActivity bool    `json:"had_activity"`
	WaterPct    float64 `json:"water_pct"`
}

// DayStabilityEntry records whether a closed day was stable. Keyed by
// date, one entry per calendar day.
type DayStabilityEntry struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Stable bool   `json:"stable"`
}

// Snapshot is an immutable view of all user data. Store.Snapshot
// returns a deep copy, so holders may read it freely.
type Snapshot struct {
	Profile        UserProfile         `json:"profile"`
	Goals          UserGoals           `json:"goals"`
	Sleep          SleepData           `json:"sleep"`
	FoodLog        []FoodEntry         `json:"food_log"`
	Activities     []ActivityEntry     `json:"activities"`
	WaterGlasses   int                 `json:"water_glasses"` // 1 glass = 250 ml
	WeightLog      []WeightEntry       `json:"weight_log"`
	LastDaySummary *LastDaySummary     `json:"last_day_summary,omitempty"`
	DailySummaries []DayStabilityEntry `json:"daily_summaries"`
}

// GlassMl is the volume of one logged glass of water.
const GlassMl = 250

// DefaultGoals are the targets a fresh profile starts with.
func DefaultGoals() UserGoals {
	return UserGoals{
		CalorieGoal: 2400,
		ProteinGoal: 170,
		StepsGoal:   10000,
		WaterGoalMl: 2500,
		SleepGoalH:  8,
	}
}

func DefaultProfile() UserProfile {
	return UserProfile{
		Name:          "User",
		WeightKg:      84,
		HeightCm:      182,
		Age:           28,
		Goal:          GoalLose,
		ActivityLevel: ActivityModerate,
	}
}

func DefaultSleep() SleepData {
	return SleepData{Hours: 7, Mins: 42, Quality: 88, HRVMs: 64, RHRBpm: 52}
}
