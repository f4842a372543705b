package store

import (
	"fmt"

	"github.com/Artemoon13/health-os/internal/model"
)

// ProfilePatch shallow-merges into the profile singleton.
type ProfilePatch struct {
	Name           *string
	WeightKg       *float64             `validate:"omitempty,gt=0,lt=300"`
	HeightCm       *int                 `validate:"omitempty,gt=0"`
	Age            *int                 `validate:"omitempty,gt=0,lt=130"`
	Goal           *model.GoalType      `validate:"omitempty,oneof=lose maintain gain performance"`
	ActivityLevel  *model.ActivityLevel `validate:"omitempty,oneof=sedentary light moderate active"`
	IsPro          *bool
	OnboardingDone *bool
}

func (s *Store) UpdateProfile(patch ProfilePatch) error {
	if err := validate.Struct(patch); err != nil {
		return fmt.Errorf("invalid profile patch: %w", err)
	}
	s.mutate(func(st *model.Snapshot) {
		p := &st.Profile
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.WeightKg != nil {
			p.WeightKg = *patch.WeightKg
		}
		if patch.HeightCm != nil {
			p.HeightCm = *patch.HeightCm
		}
		if patch.Age != nil {
			p.Age = *patch.Age
		}
		if patch.Goal != nil {
			p.Goal = *patch.Goal
		}
		if patch.ActivityLevel != nil {
			p.ActivityLevel = *patch.ActivityLevel
		}
		if patch.IsPro != nil {
			p.IsPro = *patch.IsPro
		}
		if patch.OnboardingDone != nil {
			p.OnboardingDone = *patch.OnboardingDone
		}
	})
	return nil
}

type GoalsPatch struct {
	CalorieGoal *int `validate:"omitempty,gte=0"`
	ProteinGoal *int `validate:"omitempty,gte=0"`
	StepsGoal   *int `validate:"omitempty,gte=0"`
	WaterGoalMl *int `validate:"omitempty,gte=0"`
	SleepGoalH  *int `validate:"omitempty,gte=0,lte=24"`
}

func (s *Store) UpdateGoals(patch GoalsPatch) error {
	if err := validate.Struct(patch); err != nil {
		return fmt.Errorf("invalid goals patch: %w", err)
	}
	s.mutate(func(st *model.Snapshot) {
		g := &st.Goals
		if patch.CalorieGoal != nil {
			g.CalorieGoal = *patch.CalorieGoal
		}
		if patch.ProteinGoal != nil {
			g.ProteinGoal = *patch.ProteinGoal
		}
		if patch.StepsGoal != nil {
			g.StepsGoal = *patch.StepsGoal
		}
		if patch.WaterGoalMl != nil {
			g.WaterGoalMl = *patch.WaterGoalMl
		}
		if patch.SleepGoalH != nil {
			g.SleepGoalH = *patch.SleepGoalH
		}
	})
	return nil
}

type SleepPatch struct {
	Hours   *int `validate:"omitempty,gte=0,lte=24"`
	Mins    *int `validate:"omitempty,gte=0,lte=59"`
	Quality *int `validate:"omitempty,gte=0,lte=100"`
	HRVMs   *int `validate:"omitempty,gte=0"`
	RHRBpm  *int `validate:"omitempty,gte=0"`
}

// UpdateSleep patches the single current-night record.
func (s *Store) UpdateSleep(patch SleepPatch) error {
	if err := validate.Struct(patch); err != nil {
		return fmt.Errorf("invalid sleep patch: %w", err)
	}
	s.mutate(func(st *model.Snapshot) {
		sl := &st.Sleep
		if patch.Hours != nil {
			sl.Hours = *patch.Hours
		}
		if patch.Mins != nil {
			sl.Mins = *patch.Mins
		}
		if patch.Quality != nil {
			sl.Quality = *patch.Quality
		}
		if patch.HRVMs != nil {
			sl.HRVMs = *patch.HRVMs
		}
		if patch.RHRBpm != nil {
			sl.RHRBpm = *patch.RHRBpm
		}
	})
	return nil
}

type morningCheck struct {
	Date    string               `validate:"required,datetime=2006-01-02"`
	Feeling model.MorningFeeling `validate:"oneof=energized normal tired exhausted"`
}

// SetMorningCheck records the morning check for the given date.
// Idempotent: calling again for the same day re-records the feeling.
func (s *Store) SetMorningCheck(date string, feeling model.MorningFeeling) error {
	if err := validate.Struct(morningCheck{Date: date, Feeling: feeling}); err != nil {
		return fmt.Errorf("invalid morning check: %w", err)
	}
	s.mutate(func(st *model.Snapshot) {
		st.Profile.MorningDate = date
		st.Profile.MorningFeeling = feeling
	})
	return nil
}
