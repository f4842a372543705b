// Package store is the single source of truth for all user data. Every
// mutation happens under one lock, readers only ever see deep-copied
// snapshots, and observers are notified after each applied change.
package store

import (
	"math/rand"
	"sync"
	"time"

	"github.com/Artemoon13/health-os/internal/model"
	"github.com/Artemoon13/health-os/internal/stability"
)

const dateLayout = "2006-01-02"

// Observer receives the post-mutation snapshot. Used by the local
// persistence hook and the sync scheduler.
type Observer func(model.Snapshot)

type Store struct {
	mu        sync.Mutex
	state     model.Snapshot
	observers []Observer
	now       func() time.Time
}

type Option func(*Store)

// WithClock overrides wall-clock time, used by tests to pin ids, date
// labels, and rollover boundaries.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New builds a store seeded with default profile, goals, and sleep.
func New(opts ...Option) *Store {
	return NewFromSnapshot(model.Snapshot{
		Profile: model.DefaultProfile(),
		Goals:   model.DefaultGoals(),
		Sleep:   model.DefaultSleep(),
	}, opts...)
}

// NewFromSnapshot builds a store over previously persisted state.
func NewFromSnapshot(snap model.Snapshot, opts ...Option) *Store {
	s := &Store{state: snap, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnChange registers an observer. Observers run synchronously after a
// mutation, outside any future mutation but while holding no lock, so
// they may call Snapshot.
func (s *Store) OnChange(fn Observer) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

// Snapshot returns a deep copy of current state.
func (s *Store) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSnapshot(s.state)
}

// TodayISO is the current calendar date per the store's clock.
func (s *Store) TodayISO() string {
	return s.now().Format(dateLayout)
}

// Streak is the current consecutive-stable-day count.
func (s *Store) Streak() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return stability.Streak(s.state.DailySummaries)
}

// CloseDay runs the day rollover: the stale summary (if any) is
// evaluated and appended to history, the water counter starts over for
// the new day, and food/activity entries left from past dates are
// dropped. Safe to call on every app open; a second call with the same
// date is a no-op for history.
func (s *Store) CloseDay(todayISO string) {
	s.mutate(func(st *model.Snapshot) {
		history, closed := stability.CloseDay(st.DailySummaries, st.LastDaySummary, todayISO)
		if closed {
			st.DailySummaries = history
			st.LastDaySummary = nil
			st.WaterGlasses = 0
		}
		st.FoodLog = keepFoodForDate(st.FoodLog, todayISO)
		st.Activities = keepActivitiesForDate(st.Activities, todayISO)
	})
}

// Hydrate merges state pulled from the remote store. Collections
// replace local ones wholesale; absent singletons leave local values
// untouched. Last write wins, no merge.
func (s *Store) Hydrate(p HydratePayload) {
	s.mutate(func(st *model.Snapshot) {
		if p.Profile != nil {
			st.Profile = *p.Profile
		}
		if p.Goals != nil {
			st.Goals = *p.Goals
		}
		if p.Sleep != nil {
			st.Sleep = *p.Sleep
		}
		if p.FoodLog != nil {
			st.FoodLog = append([]model.FoodEntry(nil), p.FoodLog...)
		}
		if p.Activities != nil {
			st.Activities = append([]model.ActivityEntry(nil), p.Activities...)
		}
		if p.WeightLog != nil {
			st.WeightLog = append([]model.WeightEntry(nil), p.WeightLog...)
		}
		if p.Water != nil {
			st.WaterGlasses = *p.Water
		}
	})
}

// HydratePayload carries remote state into the store. Nil fields mean
// "not present remotely, keep local".
type HydratePayload struct {
	Profile    *model.UserProfile
	Goals      *model.UserGoals
	Sleep      *model.SleepData
	FoodLog    []model.FoodEntry
	Activities []model.ActivityEntry
	WeightLog  []model.WeightEntry
	Water      *int
}

// mutate applies fn under the lock, refreshes today's summary when it
// is still refreshable, then notifies observers.
func (s *Store) mutate(fn func(*model.Snapshot)) {
	s.mu.Lock()
	fn(&s.state)
	today := s.now().Format(dateLayout)
	if stability.ShouldRefresh(s.state.LastDaySummary, today) {
		summary := stability.BuildSummary(s.state, today)
		s.state.LastDaySummary = &summary
	}
	snap := cloneSnapshot(s.state)
	observers := append([]Observer(nil), s.observers...)
	s.mu.Unlock()

	for _, fn := range observers {
		fn(snap)
	}
}

// newID generates an id unique enough for rapid successive calls:
// current unix milliseconds plus a random sub-millisecond offset.
func (s *Store) newID() int64 {
	return s.now().UnixMilli() + rand.Int63n(1000)
}

func (s *Store) currentClock() string {
	return s.now().Format("15:04")
}

func keepFoodForDate(entries []model.FoodEntry, date string) []model.FoodEntry {
	kept := entries[:0]
	for _, e := range entries {
		if e.LogDate == "" || e.LogDate == date {
			kept = append(kept, e)
		}
	}
	return kept
}

func keepActivitiesForDate(entries []model.ActivityEntry, date string) []model.ActivityEntry {
	kept := entries[:0]
	for _, e := range entries {
		if e.LogDate == "" || e.LogDate == date {
			kept = append(kept, e)
		}
	}
	return kept
}

func cloneSnapshot(s model.Snapshot) model.Snapshot {
	out := s
	out.FoodLog = append([]model.FoodEntry(nil), s.FoodLog...)
	out.Activities = append([]model.ActivityEntry(nil), s.Activities...)
	out.WeightLog = append([]model.WeightEntry(nil), s.WeightLog...)
	out.DailySummaries = append([]model.DayStabilityEntry(nil), s.DailySummaries...)
	if s.LastDaySummary != nil {
		cp := *s.LastDaySummary
		out.LastDaySummary = &cp
	}
	return out
}
