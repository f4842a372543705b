package stability_test

import (
	"testing"

	"github.com/Artemoon13/health-os/internal/model"
	"github.com/Artemoon13/health-os/internal/stability"
)

func TestBuildSummary(t *testing.T) {
	t.Parallel()
	snap := model.Snapshot{
		Goals:        model.UserGoals{CalorieGoal: 2400, WaterGoalMl: 2500},
		Sleep:        model.SleepData{Hours: 7, Mins: 30},
		WaterGlasses: 5,
		FoodLog:      []model.FoodEntry{{Kcal: 2000}},
		Activities:   []model.ActivityEntry{{KcalBurned: 250}},
	}
	sum := stability.BuildSummary(snap, "2026-08-30")
	if sum.Date != "2026-08-30" {
		t.Fatalf("date = %q", sum.Date)
	}
	if sum.SleepHours != 7.5 {
		t.Fatalf("sleepHours = %v, want 7.5", sum.SleepHours)
	}
	// intake 2000 against burned 350+250.
	if sum.Balance != 1400 {
		t.Fatalf("balance = %v, want 1400", sum.Balance)
	}
	if !sum.HadActivity {
		t.Fatalf("hadActivity = false, want true")
	}
	if sum.WaterPct != 50 {
		t.Fatalf("waterPct = %v, want 50", sum.WaterPct)
	}
}

func TestBuildSummaryNoWaterGoal(t *testing.T) {
	t.Parallel()
	snap := model.Snapshot{Goals: model.UserGoals{WaterGoalMl: 0}}
	if got := stability.BuildSummary(snap, "2026-08-30").WaterPct; got != 100 {
		t.Fatalf("waterPct with no goal = %v, want 100", got)
	}
}

func TestShouldRefresh(t *testing.T) {
	t.Parallel()
	if !stability.ShouldRefresh(nil, "2026-08-30") {
		t.Fatalf("nil summary must refresh")
	}
	today := &model.LastDaySummary{Date: "2026-08-30"}
	if !stability.ShouldRefresh(today, "2026-08-30") {
		t.Fatalf("summary dated today must refresh")
	}
	stale := &model.LastDaySummary{Date: "2026-08-29"}
	if stability.ShouldRefresh(stale, "2026-08-30") {
		t.Fatalf("stale summary must stay frozen")
	}
}

func TestIsDayStable(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		sum  model.LastDaySummary
		want bool
	}{
		{"stable", model.LastDaySummary{SleepHours: 7, Balance: -200, HadActivity: true}, true},
		{"boundary sleep", model.LastDaySummary{SleepHours: 5, Balance: 500, HadActivity: true}, true},
		{"short sleep", model.LastDaySummary{SleepHours: 4.9, Balance: 0, HadActivity: true}, false},
		{"big surplus", model.LastDaySummary{SleepHours: 8, Balance: 501, HadActivity: true}, false},
		{"no activity", model.LastDaySummary{SleepHours: 8, Balance: 0, HadActivity: false}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := stability.IsDayStable(tc.sum); got != tc.want {
				t.Fatalf("IsDayStable(%+v) = %v, want %v", tc.sum, got, tc.want)
			}
		})
	}
}

func TestCloseDayAppendsAndSorts(t *testing.T) {
	t.Parallel()
	history := []model.DayStabilityEntry{
		{Date: "2026-08-27", Stable: true},
		{Date: "2026-08-26", Stable: false},
	}
	stale := &model.LastDaySummary{
		Date: "2026-08-28", SleepHours: 7, Balance: 100, HadActivity: true,
	}
	got, closed := stability.CloseDay(history, stale, "2026-08-29")
	if !closed {
		t.Fatalf("expected a day to close")
	}
	want := []model.DayStabilityEntry{
		{Date: "2026-08-26", Stable: false},
		{Date: "2026-08-27", Stable: true},
		{Date: "2026-08-28", Stable: true},
	}
	if len(got) != len(want) {
		t.Fatalf("history length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("history[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestCloseDayDedupesByDate(t *testing.T) {
	t.Parallel()
	history := []model.DayStabilityEntry{{Date: "2026-08-28", Stable: false}}
	stale := &model.LastDaySummary{
		Date: "2026-08-28", SleepHours: 7, Balance: 0, HadActivity: true,
	}
	got, closed := stability.CloseDay(history, stale, "2026-08-29")
	if !closed {
		t.Fatalf("expected a day to close")
	}
	if len(got) != 1 {
		t.Fatalf("history length = %d, want 1 after dedupe", len(got))
	}
	if !got[0].Stable {
		t.Fatalf("re-closing a date must overwrite its verdict")
	}
}

func TestCloseDayNoOp(t *testing.T) {
	t.Parallel()
	history := []model.DayStabilityEntry{{Date: "2026-08-27", Stable: true}}

	if got, closed := stability.CloseDay(history, nil, "2026-08-30"); closed || len(got) != 1 {
		t.Fatalf("nil summary must not close anything")
	}
	today := &model.LastDaySummary{Date: "2026-08-30"}
	if _, closed := stability.CloseDay(history, today, "2026-08-30"); closed {
		t.Fatalf("summary dated today must not close")
	}
	future := &model.LastDaySummary{Date: "2026-09-02"}
	if _, closed := stability.CloseDay(history, future, "2026-08-30"); closed {
		t.Fatalf("future-dated summary must not close")
	}
}

func TestStreak(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		history []model.DayStabilityEntry
		want    int
	}{
		{"empty", nil, 0},
		{
			"three in a row",
			[]model.DayStabilityEntry{
				{Date: "2026-08-26", Stable: true},
				{Date: "2026-08-27", Stable: true},
				{Date: "2026-08-28", Stable: true},
			},
			3,
		},
		{
			"broken by unstable day",
			[]model.DayStabilityEntry{
				{Date: "2026-08-25", Stable: true},
				{Date: "2026-08-26", Stable: true},
				{Date: "2026-08-27", Stable: false},
				{Date: "2026-08-28", Stable: true},
			},
			1,
		},
		{
			"broken by gap",
			[]model.DayStabilityEntry{
				{Date: "2026-08-24", Stable: true},
				{Date: "2026-08-26", Stable: true},
			},
			1,
		},
		{
			"latest day unstable",
			[]model.DayStabilityEntry{
				{Date: "2026-08-27", Stable: true},
				{Date: "2026-08-28", Stable: false},
			},
			0,
		},
		{
			"month boundary",
			[]model.DayStabilityEntry{
				{Date: "2026-07-31", Stable: true},
				{Date: "2026-08-01", Stable: true},
			},
			2,
		},
		{
			"malformed date",
			[]model.DayStabilityEntry{{Date: "yesterday", Stable: true}},
			0,
		},
		{
			// "not-a-date" sorts after any ISO date, so the walk starts
			// there and bails out.
			"malformed latest",
			[]model.DayStabilityEntry{
				{Date: "not-a-date", Stable: true},
				{Date: "2026-08-28", Stable: true},
			},
			0,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := stability.Streak(tc.history); got != tc.want {
				t.Fatalf("streak = %d, want %d", got, tc.want)
			}
		})
	}
}
