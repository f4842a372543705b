// Package stability maintains the rolling day summary and the
// stable-day history it rolls over into.
package stability

import (
	"sort"
	"time"

	"github.com/Artemoon13/health-os/internal/metrics"
	"github.com/Artemoon13/health-os/internal/model"
)

const dateLayout = "2006-01-02"

// BuildSummary derives today's snapshot values: decimal sleep hours,
// calorie balance, whether anything was trained, and water progress
// against goal (100 when no water goal is set).
func BuildSummary(snap model.Snapshot, todayISO string) model.LastDaySummary {
	balance := metrics.Balance(snap)
	waterPct := 100.0
	if snap.Goals.WaterGoalMl > 0 {
		waterPct = float64(snap.WaterGlasses*model.GlassMl) / float64(snap.Goals.WaterGoalMl) * 100
	}
	return model.LastDaySummary{
		Date:        todayISO,
		SleepHours:  snap.Sleep.TotalHours(),
		Balance:     balance.Balance,
		HadActivity: len(snap.Activities) > 0,
		WaterPct:    waterPct,
	}
}

// ShouldRefresh reports whether a mutation may overwrite the current
// summary. A summary whose date is already in the past is frozen so
// its end-of-day values survive until rollover.
func ShouldRefresh(current *model.LastDaySummary, todayISO string) bool {
	return current == nil || current.Date == todayISO
}

// IsDayStable is the stability predicate: enough sleep, no large
// surplus, and at least one activity. Water progress is carried in the
// summary but does not participate.
func IsDayStable(s model.LastDaySummary) bool {
	if s.SleepHours < 5 {
		return false
	}
	if s.Balance > 500 {
		return false
	}
	return s.HadActivity
}

// CloseDay evaluates a stale summary and appends it to the history.
// It returns the updated history and true when a day was closed. When
// the summary is nil or not older than today, the history is returned
// unchanged. The history is deduplicated by date (last write wins) and
// kept sorted ascending.
func CloseDay(history []model.DayStabilityEntry, stale *model.LastDaySummary, todayISO string) ([]model.DayStabilityEntry, bool) {
	if stale == nil || stale.Date >= todayISO {
		return history, false
	}
	merged := make(map[string]bool, len(history)+1)
	for _, e := range history {
		merged[e.Date] = e.Stable
	}
	merged[stale.Date] = IsDayStable(*stale)

	out := make([]model.DayStabilityEntry, 0, len(merged))
	for date, stable := range merged {
		out = append(out, model.DayStabilityEntry{Date: date, Stable: stable})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, true
}

// Streak counts consecutive stable days ending at the most recent
// recorded date. The walk stops at the first missing or unstable day;
// a malformed date string anywhere in the walk yields 0.
func Streak(history []model.DayStabilityEntry) int {
	if len(history) == 0 {
		return 0
	}
	byDate := make(map[string]bool, len(history))
	latest := ""
	for _, e := range history {
		byDate[e.Date] = e.Stable
		if e.Date > latest {
			latest = e.Date
		}
	}

	streak := 0
	check := latest
	for {
		stable, ok := byDate[check]
		if !ok || !stable {
			break
		}
		day, err := time.Parse(dateLayout, check)
		if err != nil {
			return 0
		}
		streak++
		check = day.AddDate(0, 0, -1).Format(dateLayout)
	}
	return streak
}
