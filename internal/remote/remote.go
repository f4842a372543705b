// Package remote is the sync boundary: it moves the persisted slice of
// user state to and from a per-account remote store, and schedules
// debounced pushes after local mutations.
package remote

import (
	"context"

	"github.com/Artemoon13/health-os/internal/model"
)

// Payload is the synchronized slice of state. Singletons are pointers:
// nil on pull means the record does not exist remotely yet and must not
// overwrite local defaults.
type Payload struct {
	Profile    *model.UserProfile    `json:"profile,omitempty"`
	Goals      *model.UserGoals      `json:"goals,omitempty"`
	Sleep      *model.SleepData      `json:"sleep,omitempty"`
	FoodLog    []model.FoodEntry     `json:"food_log"`
	Activities []model.ActivityEntry `json:"activities"`
	WeightLog  []model.WeightEntry   `json:"weight_log"`
	Water      int                   `json:"water"`
}

// Store is the remote persistence contract. Push replaces the remote
// day's food/activity rows and the full weight history (destructive
// replace-by-day, not a diff) and upserts the singletons; it is safe to
// call repeatedly with the same payload. Pull returns today's entries,
// bounded weight history, and whatever singletons exist.
type Store interface {
	Pull(ctx context.Context, userID string) (*Payload, error)
	Push(ctx context.Context, userID string, p Payload) error
}

// weightHistoryLimit bounds how much weight history a pull returns.
const weightHistoryLimit = 100
