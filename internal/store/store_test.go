package store_test

import (
	"sync"
	"testing"
	"time"

	"github.com/Artemoon13/health-os/internal/model"
	"github.com/Artemoon13/health-os/internal/store"
)

func fixedClock(iso string) func() time.Time {
	t, err := time.Parse("2006-01-02 15:04", iso)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func TestNewSeedsDefaults(t *testing.T) {
	t.Parallel()
	snap := store.New().Snapshot()
	if snap.Goals.CalorieGoal != 2400 || snap.Goals.ProteinGoal != 170 {
		t.Fatalf("default goals = %+v", snap.Goals)
	}
	if snap.Profile.Name == "" {
		t.Fatalf("default profile missing name")
	}
	if snap.Sleep.Hours == 0 {
		t.Fatalf("default sleep missing hours")
	}
}

func TestAddFoodStampsTimeAndDate(t *testing.T) {
	t.Parallel()
	s := store.New(store.WithClock(fixedClock("2026-08-30 13:45")))
	if err := s.AddFood(store.FoodInput{
		Name: "Greek Yogurt", Kcal: 150, ProteinG: 15, MealType: model.MealSnack,
	}); err != nil {
		t.Fatalf("add food: %v", err)
	}
	snap := s.Snapshot()
	if len(snap.FoodLog) != 1 {
		t.Fatalf("food log length = %d", len(snap.FoodLog))
	}
	e := snap.FoodLog[0]
	if e.ID == 0 {
		t.Fatalf("entry got no id")
	}
	if e.Time != "13:45" {
		t.Fatalf("time = %q, want 13:45", e.Time)
	}
	if e.LogDate != "2026-08-30" {
		t.Fatalf("logDate = %q, want 2026-08-30", e.LogDate)
	}
}

func TestAddFoodRejectsInvalid(t *testing.T) {
	t.Parallel()
	s := store.New()
	if err := s.AddFood(store.FoodInput{Name: "", Kcal: 100, MealType: model.MealLunch}); err == nil {
		t.Fatalf("empty name must be rejected")
	}
	if err := s.AddFood(store.FoodInput{Name: "x", Kcal: -5, MealType: model.MealLunch}); err == nil {
		t.Fatalf("negative kcal must be rejected")
	}
	if err := s.AddFood(store.FoodInput{Name: "x", Kcal: 100, MealType: "Brunch"}); err == nil {
		t.Fatalf("unknown meal type must be rejected")
	}
	if got := len(s.Snapshot().FoodLog); got != 0 {
		t.Fatalf("rejected input still landed in the log (%d entries)", got)
	}
}

func TestUpdateFoodPatchesOnlyGivenFields(t *testing.T) {
	t.Parallel()
	s := store.New()
	if err := s.AddFood(store.FoodInput{Name: "Rice", Kcal: 200, CarbsG: 45, MealType: model.MealDinner}); err != nil {
		t.Fatalf("add food: %v", err)
	}
	id := s.Snapshot().FoodLog[0].ID

	kcal := 250.0
	s.UpdateFood(id, store.FoodPatch{Kcal: &kcal})

	e := s.Snapshot().FoodLog[0]
	if e.Kcal != 250 {
		t.Fatalf("kcal = %v, want 250", e.Kcal)
	}
	if e.Name != "Rice" || e.CarbsG != 45 {
		t.Fatalf("unpatched fields changed: %+v", e)
	}

	// Unknown id is a silent no-op.
	s.UpdateFood(id+999, store.FoodPatch{Kcal: &kcal})
	if got := len(s.Snapshot().FoodLog); got != 1 {
		t.Fatalf("food log length = %d after no-op patch", got)
	}
}

func TestRemoveFood(t *testing.T) {
	t.Parallel()
	s := store.New()
	for _, name := range []string{"A", "B"} {
		if err := s.AddFood(store.FoodInput{Name: name, Kcal: 100, MealType: model.MealSnack}); err != nil {
			t.Fatalf("add food: %v", err)
		}
	}
	snap := s.Snapshot()
	s.RemoveFood(snap.FoodLog[0].ID)
	rest := s.Snapshot().FoodLog
	if len(rest) != 1 || rest[0].Name != "B" {
		t.Fatalf("remaining log = %+v", rest)
	}
	// Removing again is harmless.
	s.RemoveFood(snap.FoodLog[0].ID)
	if got := len(s.Snapshot().FoodLog); got != 1 {
		t.Fatalf("second remove changed the log (%d entries)", got)
	}
}

func TestAddActivityDerivesKcal(t *testing.T) {
	t.Parallel()
	s := store.New()
	derive := func(minutes int, in model.Intensity) float64 { return float64(minutes) * 7 }
	if err := s.AddActivity(store.ActivityInput{
		Type: "Running", DurationMin: 30, Intensity: model.IntensityModerate,
	}, derive); err != nil {
		t.Fatalf("add activity: %v", err)
	}
	if got := s.Snapshot().Activities[0].KcalBurned; got != 210 {
		t.Fatalf("derived kcal = %v, want 210", got)
	}

	// Explicit value wins over derivation.
	burned := 500.0
	if err := s.AddActivity(store.ActivityInput{
		Type: "Swim", DurationMin: 30, Intensity: model.IntensityHigh, KcalBurned: &burned,
	}, derive); err != nil {
		t.Fatalf("add activity: %v", err)
	}
	if got := s.Snapshot().Activities[1].KcalBurned; got != 500 {
		t.Fatalf("explicit kcal = %v, want 500", got)
	}
}

func TestAddActivityRejectsInvalid(t *testing.T) {
	t.Parallel()
	s := store.New()
	if err := s.AddActivity(store.ActivityInput{
		Type: "Walk", DurationMin: 0, Intensity: model.IntensityLight,
	}, nil); err == nil {
		t.Fatalf("zero duration must be rejected")
	}
	if err := s.AddActivity(store.ActivityInput{
		Type: "Walk", DurationMin: 20, Intensity: "Extreme",
	}, nil); err == nil {
		t.Fatalf("unknown intensity must be rejected")
	}
}

func TestWaterClampAndAtomicUpdate(t *testing.T) {
	t.Parallel()
	s := store.New()

	s.SetWater(-3)
	if got := s.Snapshot().WaterGlasses; got != 0 {
		t.Fatalf("water after negative set = %d, want 0", got)
	}

	s.SetWater(2)
	s.UpdateWater(func(prev int) int { return prev - 5 })
	if got := s.Snapshot().WaterGlasses; got != 0 {
		t.Fatalf("water after underflow decrement = %d, want 0", got)
	}

	// Concurrent increments must not lose taps.
	s.SetWater(0)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.UpdateWater(func(prev int) int { return prev + 1 })
		}()
	}
	wg.Wait()
	if got := s.Snapshot().WaterGlasses; got != 50 {
		t.Fatalf("water after 50 concurrent increments = %d", got)
	}
}

func TestLogWeightValidatesAndLabels(t *testing.T) {
	t.Parallel()
	s := store.New(store.WithClock(fixedClock("2026-02-26 09:00")))
	if err := s.LogWeight(0); err == nil {
		t.Fatalf("zero weight must be rejected")
	}
	if err := s.LogWeight(300); err == nil {
		t.Fatalf("300 kg must be rejected (open interval)")
	}
	if err := s.LogWeight(83.4); err != nil {
		t.Fatalf("log weight: %v", err)
	}
	e := s.Snapshot().WeightLog[0]
	if e.Date != "Feb 26" {
		t.Fatalf("label = %q, want Feb 26", e.Date)
	}
	if e.WeightKg != 83.4 {
		t.Fatalf("weight = %v", e.WeightKg)
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	t.Parallel()
	s := store.New()
	if err := s.AddFood(store.FoodInput{Name: "Eggs", Kcal: 140, MealType: model.MealBreakfast}); err != nil {
		t.Fatalf("add food: %v", err)
	}
	snap := s.Snapshot()
	snap.FoodLog[0].Name = "tampered"
	snap.Goals.CalorieGoal = 1

	fresh := s.Snapshot()
	if fresh.FoodLog[0].Name != "Eggs" {
		t.Fatalf("mutating a snapshot leaked into the store")
	}
	if fresh.Goals.CalorieGoal != 2400 {
		t.Fatalf("goal changed through a snapshot copy")
	}
}

func TestObserversSeeEveryMutation(t *testing.T) {
	t.Parallel()
	s := store.New()
	var mu sync.Mutex
	var seen []int
	s.OnChange(func(snap model.Snapshot) {
		mu.Lock()
		seen = append(seen, len(snap.FoodLog))
		mu.Unlock()
	})

	for i := 0; i < 3; i++ {
		if err := s.AddFood(store.FoodInput{Name: "x", Kcal: 10, MealType: model.MealSnack}); err != nil {
			t.Fatalf("add food: %v", err)
		}
	}
	mu.Lock()
	defer mu.Unlock()
	if len(seen) != 3 || seen[2] != 3 {
		t.Fatalf("observer calls = %v", seen)
	}
}

func TestMutationRefreshesSummary(t *testing.T) {
	t.Parallel()
	s := store.New(store.WithClock(fixedClock("2026-08-30 12:00")))
	if err := s.AddActivity(store.ActivityInput{
		Type: "Gym", DurationMin: 45, Intensity: model.IntensityHigh,
	}, func(int, model.Intensity) float64 { return 400 }); err != nil {
		t.Fatalf("add activity: %v", err)
	}
	sum := s.Snapshot().LastDaySummary
	if sum == nil {
		t.Fatalf("mutation did not create a day summary")
	}
	if sum.Date != "2026-08-30" || !sum.HadActivity {
		t.Fatalf("summary = %+v", sum)
	}
}

func TestCloseDayRollsOverAndResets(t *testing.T) {
	t.Parallel()
	// Build up a stable yesterday.
	s := store.New(store.WithClock(fixedClock("2026-08-29 20:00")))
	if err := s.UpdateSleep(store.SleepPatch{Hours: intp(7), Mins: intp(0)}); err != nil {
		t.Fatalf("update sleep: %v", err)
	}
	if err := s.AddActivity(store.ActivityInput{
		Type: "Run", DurationMin: 30, Intensity: model.IntensityModerate,
	}, func(int, model.Intensity) float64 { return 210 }); err != nil {
		t.Fatalf("add activity: %v", err)
	}
	if err := s.AddFood(store.FoodInput{Name: "Dinner", Kcal: 800, MealType: model.MealDinner}); err != nil {
		t.Fatalf("add food: %v", err)
	}
	s.SetWater(6)

	// Next morning: reopen over the persisted snapshot with a new clock.
	reopened := store.NewFromSnapshot(s.Snapshot(), store.WithClock(fixedClock("2026-08-30 08:00")))
	reopened.CloseDay(reopened.TodayISO())

	snap := reopened.Snapshot()
	if len(snap.DailySummaries) != 1 {
		t.Fatalf("daily summaries = %+v", snap.DailySummaries)
	}
	closed := snap.DailySummaries[0]
	if closed.Date != "2026-08-29" || !closed.Stable {
		t.Fatalf("closed day = %+v, want stable 2026-08-29", closed)
	}
	if snap.WaterGlasses != 0 {
		t.Fatalf("water = %d after rollover, want 0", snap.WaterGlasses)
	}
	if len(snap.FoodLog) != 0 || len(snap.Activities) != 0 {
		t.Fatalf("stale entries survived rollover: %d food, %d activities",
			len(snap.FoodLog), len(snap.Activities))
	}
	if got := reopened.Streak(); got != 1 {
		t.Fatalf("streak = %d, want 1", got)
	}

	// Running the rollover again the same day must not double-close.
	reopened.CloseDay(reopened.TodayISO())
	if got := len(reopened.Snapshot().DailySummaries); got != 1 {
		t.Fatalf("second rollover duplicated history (%d entries)", got)
	}
}

func TestHydrateNilFieldsKeepLocal(t *testing.T) {
	t.Parallel()
	s := store.New()
	if err := s.AddFood(store.FoodInput{Name: "Local", Kcal: 100, MealType: model.MealLunch}); err != nil {
		t.Fatalf("add food: %v", err)
	}
	s.SetWater(4)

	goals := model.UserGoals{CalorieGoal: 1800, ProteinGoal: 140, WaterGoalMl: 2000, SleepGoalH: 8}
	s.Hydrate(store.HydratePayload{Goals: &goals})

	snap := s.Snapshot()
	if snap.Goals.CalorieGoal != 1800 {
		t.Fatalf("goals not hydrated: %+v", snap.Goals)
	}
	if len(snap.FoodLog) != 1 || snap.FoodLog[0].Name != "Local" {
		t.Fatalf("nil food log replaced local entries: %+v", snap.FoodLog)
	}
	if snap.WaterGlasses != 4 {
		t.Fatalf("nil water overwrote local counter: %d", snap.WaterGlasses)
	}
}

func TestHydrateReplacesCollectionsWholesale(t *testing.T) {
	t.Parallel()
	s := store.New()
	if err := s.AddFood(store.FoodInput{Name: "Local", Kcal: 100, MealType: model.MealLunch}); err != nil {
		t.Fatalf("add food: %v", err)
	}
	remoteFood := []model.FoodEntry{{ID: 99, Name: "Remote", Kcal: 250}}
	water := 7
	s.Hydrate(store.HydratePayload{FoodLog: remoteFood, Water: &water})

	snap := s.Snapshot()
	if len(snap.FoodLog) != 1 || snap.FoodLog[0].Name != "Remote" {
		t.Fatalf("food log = %+v, want the remote copy only", snap.FoodLog)
	}
	if snap.WaterGlasses != 7 {
		t.Fatalf("water = %d, want 7", snap.WaterGlasses)
	}
}

func TestSetMorningCheck(t *testing.T) {
	t.Parallel()
	s := store.New()
	if err := s.SetMorningCheck("2026-08-30", model.FeelingTired); err != nil {
		t.Fatalf("set morning check: %v", err)
	}
	p := s.Snapshot().Profile
	if p.MorningDate != "2026-08-30" || p.MorningFeeling != model.FeelingTired {
		t.Fatalf("profile after morning check = %+v", p)
	}

	if err := s.SetMorningCheck("someday", model.FeelingNormal); err == nil {
		t.Fatalf("malformed date must be rejected")
	}
	if err := s.SetMorningCheck("2026-08-30", "great"); err == nil {
		t.Fatalf("unknown feeling must be rejected")
	}
}

func TestUpdateGoalsAndSleepValidation(t *testing.T) {
	t.Parallel()
	s := store.New()
	if err := s.UpdateGoals(store.GoalsPatch{CalorieGoal: intp(-1)}); err == nil {
		t.Fatalf("negative calorie goal must be rejected")
	}
	if err := s.UpdateSleep(store.SleepPatch{Mins: intp(75)}); err == nil {
		t.Fatalf("75 minutes must be rejected")
	}
	if err := s.UpdateSleep(store.SleepPatch{Quality: intp(101)}); err == nil {
		t.Fatalf("quality above 100 must be rejected")
	}
	if err := s.UpdateGoals(store.GoalsPatch{CalorieGoal: intp(2000)}); err != nil {
		t.Fatalf("update goals: %v", err)
	}
	if got := s.Snapshot().Goals.CalorieGoal; got != 2000 {
		t.Fatalf("calorie goal = %d, want 2000", got)
	}
}

func intp(v int) *int { return &v }
