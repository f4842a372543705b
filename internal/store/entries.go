package store

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/Artemoon13/health-os/internal/model"
)

var validate = validator.New()

// FoodInput is the validated boundary for new food entries. Time and
// LogDate default to the store clock when empty.
type FoodInput struct {
	Name     string         `validate:"required"`
	Kcal     float64        `validate:"gte=0"`
	ProteinG float64        `validate:"gte=0"`
	CarbsG   float64        `validate:"gte=0"`
	FatG     float64        `validate:"gte=0"`
	MealType model.MealType `validate:"oneof=Breakfast Lunch Dinner Snack"`
	Time     string
}

type FoodPatch struct {
	Name     *string
	Kcal     *float64
	ProteinG *float64
	CarbsG   *float64
	FatG     *float64
	MealType *model.MealType
	Time     *string
}

func (s *Store) AddFood(in FoodInput) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("invalid food entry: %w", err)
	}
	s.mutate(func(st *model.Snapshot) {
		t := in.Time
		if t == "" {
			t = s.currentClock()
		}
		st.FoodLog = append(st.FoodLog, model.FoodEntry{
			ID:       s.newID(),
			Name:     in.Name,
			Kcal:     in.Kcal,
			ProteinG: in.ProteinG,
			CarbsG:   in.CarbsG,
			FatG:     in.FatG,
			MealType: in.MealType,
			Time:     t,
			LogDate:  s.TodayISO(),
		})
	})
	return nil
}

// UpdateFood applies the non-nil patch fields to the matching entry.
// Unknown ids are a silent no-op.
func (s *Store) UpdateFood(id int64, patch FoodPatch) {
	s.mutate(func(st *model.Snapshot) {
		for i := range st.FoodLog {
			if st.FoodLog[i].ID != id {
				continue
			}
			f := &st.FoodLog[i]
			if patch.Name != nil {
				f.Name = *patch.Name
			}
			if patch.Kcal != nil {
				f.Kcal = *patch.Kcal
			}
			if patch.ProteinG != nil {
				f.ProteinG = *patch.ProteinG
			}
			if patch.CarbsG != nil {
				f.CarbsG = *patch.CarbsG
			}
			if patch.FatG != nil {
				f.FatG = *patch.FatG
			}
			if patch.MealType != nil {
				f.MealType = *patch.MealType
			}
			if patch.Time != nil {
				f.Time = *patch.Time
			}
			return
		}
	})
}

func (s *Store) RemoveFood(id int64) {
	s.mutate(func(st *model.Snapshot) {
		kept := st.FoodLog[:0]
		for _, f := range st.FoodLog {
			if f.ID != id {
				kept = append(kept, f)
			}
		}
		st.FoodLog = kept
	})
}

// ActivityInput is the validated boundary for new activities. When
// KcalBurned is nil it is derived from duration and intensity.
type ActivityInput struct {
	Type        string          `validate:"required"`
	DurationMin int             `validate:"gt=0"`
	Intensity   model.Intensity `validate:"oneof=Light Moderate High"`
	KcalBurned  *float64
	Time        string
}

type ActivityPatch struct {
	Type        *string
	DurationMin *int
	Intensity   *model.Intensity
	// KcalBurned is stored, not derived: patching duration or
	// intensity leaves the old value unless a new one is given here.
	KcalBurned *float64
	Time       *string
}

func (s *Store) AddActivity(in ActivityInput, derive func(int, model.Intensity) float64) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("invalid activity entry: %w", err)
	}
	s.mutate(func(st *model.Snapshot) {
		burned := 0.0
		if in.KcalBurned != nil {
			burned = *in.KcalBurned
		} else if derive != nil {
			burned = derive(in.DurationMin, in.Intensity)
		}
		t := in.Time
		if t == "" {
			t = s.currentClock()
		}
		st.Activities = append(st.Activities, model.ActivityEntry{
			ID:          s.newID(),
			Type:        in.Type,
			DurationMin: in.DurationMin,
			Intensity:   in.Intensity,
			KcalBurned:  burned,
			Time:        t,
			LogDate:     s.TodayISO(),
		})
	})
	return nil
}

func (s *Store) UpdateActivity(id int64, patch ActivityPatch) {
	s.mutate(func(st *model.Snapshot) {
		for i := range st.Activities {
			if st.Activities[i].ID != id {
				continue
			}
			a := &st.Activities[i]
			if patch.Type != nil {
				a.Type = *patch.Type
			}
			if patch.DurationMin != nil {
				a.DurationMin = *patch.DurationMin
			}
			if patch.Intensity != nil {
				a.Intensity = *patch.Intensity
			}
			if patch.KcalBurned != nil {
				a.KcalBurned = *patch.KcalBurned
			}
			if patch.Time != nil {
				a.Time = *patch.Time
			}
			return
		}
	})
}

func (s *Store) RemoveActivity(id int64) {
	s.mutate(func(st *model.Snapshot) {
		kept := st.Activities[:0]
		for _, a := range st.Activities {
			if a.ID != id {
				kept = append(kept, a)
			}
		}
		st.Activities = kept
	})
}

// SetWater sets the glass counter to an absolute value, clamped at 0.
func (s *Store) SetWater(glasses int) {
	s.mutate(func(st *model.Snapshot) {
		if glasses < 0 {
			glasses = 0
		}
		st.WaterGlasses = glasses
	})
}

// UpdateWater applies fn to the previous counter value atomically, so
// rapid increments and decrements never lose taps. Results below zero
// clamp to zero; increments have no ceiling.
func (s *Store) UpdateWater(fn func(prev int) int) {
	s.mutate(func(st *model.Snapshot) {
		next := fn(st.WaterGlasses)
		if next < 0 {
			next = 0
		}
		st.WaterGlasses = next
	})
}

type weightInput struct {
	WeightKg float64 `validate:"gt=0,lt=300"`
}

type WeightPatch struct {
	WeightKg *float64 `validate:"omitempty,gt=0,lt=300"`
	Date     *string
}

// LogWeight appends a weight entry stamped with today's display label.
// Weight must lie in the open interval (0, 300) kg.
func (s *Store) LogWeight(weightKg float64) error {
	if err := validate.Struct(weightInput{WeightKg: weightKg}); err != nil {
		return fmt.Errorf("invalid weight: %w", err)
	}
	s.mutate(func(st *model.Snapshot) {
		st.WeightLog = append(st.WeightLog, model.WeightEntry{
			ID:       s.newID(),
			Date:     s.now().Format("Jan 2"),
			WeightKg: weightKg,
		})
	})
	return nil
}

func (s *Store) UpdateWeightEntry(id int64, patch WeightPatch) error {
	if err := validate.Struct(patch); err != nil {
		return fmt.Errorf("invalid weight patch: %w", err)
	}
	s.mutate(func(st *model.Snapshot) {
		for i := range st.WeightLog {
			if st.WeightLog[i].ID != id {
				continue
			}
			if patch.WeightKg != nil {
				st.WeightLog[i].WeightKg = *patch.WeightKg
			}
			if patch.Date != nil {
				st.WeightLog[i].Date = *patch.Date
			}
			return
		}
	})
	return nil
}

func (s *Store) RemoveWeightEntry(id int64) {
	s.mutate(func(st *model.Snapshot) {
		kept := st.WeightLog[:0]
		for _, w := range st.WeightLog {
			if w.ID != id {
				kept = append(kept, w)
			}
		}
		st.WeightLog = kept
	})
}
