package remote

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Artemoon13/health-os/internal/model"
)

// PostgresStore syncs directly against a shared postgres database, one
// row per singleton and per-day rows for food/activity/water.
type PostgresStore struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	return &PostgresStore{pool: pool, now: time.Now}, nil
}

func (p *PostgresStore) Close() {
	p.pool.Close()
}

func (p *PostgresStore) today() string {
	return p.now().Format("2006-01-02")
}

func (p *PostgresStore) Pull(ctx context.Context, userID string) (*Payload, error) {
	date := p.today()
	out := &Payload{}

	var profile model.UserProfile
	err := p.pool.QueryRow(ctx, `
SELECT name, weight_kg, height_cm, age, goal, activity_level, is_pro, onboarding_done
FROM profiles WHERE user_id = $1`, userID).Scan(
		&profile.Name, &profile.WeightKg, &profile.HeightCm, &profile.Age,
		&profile.Goal, &profile.ActivityLevel, &profile.IsPro, &profile.OnboardingDone)
	if err == nil {
		out.Profile = &profile
	} else if err != pgx.ErrNoRows {
		return nil, fmt.Errorf("pull profile: %w", err)
	}

	var goals model.UserGoals
	err = p.pool.QueryRow(ctx, `
SELECT calorie_goal, protein_goal, steps_goal, water_goal_ml, sleep_goal_h
FROM goals WHERE user_id = $1`, userID).Scan(
		&goals.CalorieGoal, &goals.ProteinGoal, &goals.StepsGoal, &goals.WaterGoalMl, &goals.SleepGoalH)
	if err == nil {
		out.Goals = &goals
	} else if err != pgx.ErrNoRows {
		return nil, fmt.Errorf("pull goals: %w", err)
	}

	var sleep model.SleepData
	err = p.pool.QueryRow(ctx, `
SELECT hours, mins, quality, hrv_ms, rhr_bpm
FROM sleep WHERE user_id = $1`, userID).Scan(
		&sleep.Hours, &sleep.Mins, &sleep.Quality, &sleep.HRVMs, &sleep.RHRBpm)
	if err == nil {
		out.Sleep = &sleep
	} else if err != pgx.ErrNoRows {
		return nil, fmt.Errorf("pull sleep: %w", err)
	}

	foodRows, err := p.pool.Query(ctx, `
SELECT id, name, kcal, protein_g, carbs_g, fat_g, meal_type, log_time, log_date
FROM food_entries WHERE user_id = $1 AND log_date = $2 ORDER BY id`, userID, date)
	if err != nil {
		return nil, fmt.Errorf("pull food entries: %w", err)
	}
	out.FoodLog = make([]model.FoodEntry, 0)
	for foodRows.Next() {
		var f model.FoodEntry
		if err := foodRows.Scan(&f.ID, &f.Name, &f.Kcal, &f.ProteinG, &f.CarbsG, &f.FatG, &f.MealType, &f.Time, &f.LogDate); err != nil {
			return nil, fmt.Errorf("scan food entry: %w", err)
		}
		out.FoodLog = append(out.FoodLog, f)
	}
	foodRows.Close()
	if err := foodRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate food entries: %w", err)
	}

	actRows, err := p.pool.Query(ctx, `
SELECT id, type, duration_min, intensity, kcal_burned, log_time, log_date
FROM activity_entries WHERE user_id = $1 AND log_date = $2 ORDER BY id`, userID, date)
	if err != nil {
		return nil, fmt.Errorf("pull activity entries: %w", err)
	}
	out.Activities = make([]model.ActivityEntry, 0)
	for actRows.Next() {
		var a model.ActivityEntry
		if err := actRows.Scan(&a.ID, &a.Type, &a.DurationMin, &a.Intensity, &a.KcalBurned, &a.Time, &a.LogDate); err != nil {
			return nil, fmt.Errorf("scan activity entry: %w", err)
		}
		out.Activities = append(out.Activities, a)
	}
	actRows.Close()
	if err := actRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity entries: %w", err)
	}

	weightRows, err := p.pool.Query(ctx, `
SELECT id, date_label, weight_kg
FROM weight_entries WHERE user_id = $1 ORDER BY id DESC LIMIT $2`, userID, weightHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("pull weight entries: %w", err)
	}
	out.WeightLog = make([]model.WeightEntry, 0)
	for weightRows.Next() {
		var w model.WeightEntry
		if err := weightRows.Scan(&w.ID, &w.Date, &w.WeightKg); err != nil {
			return nil, fmt.Errorf("scan weight entry: %w", err)
		}
		out.WeightLog = append(out.WeightLog, w)
	}
	weightRows.Close()
	if err := weightRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate weight entries: %w", err)
	}
	// Restore chronological order after the DESC limit query.
	for i, j := 0, len(out.WeightLog)-1; i < j; i, j = i+1, j-1 {
		out.WeightLog[i], out.WeightLog[j] = out.WeightLog[j], out.WeightLog[i]
	}

	err = p.pool.QueryRow(ctx, `
SELECT glasses FROM water_log WHERE user_id = $1 AND log_date = $2`, userID, date).Scan(&out.Water)
	if err != nil && err != pgx.ErrNoRows {
		return nil, fmt.Errorf("pull water: %w", err)
	}
	return out, nil
}

// Push upserts the singletons and destructively replaces the remote
// day's rows and the full weight history. Re-pushing the same payload
// converges to the same remote state.
func (p *PostgresStore) Push(ctx context.Context, userID string, in Payload) error {
	date := p.today()
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin push: %w", err)
	}
	defer tx.Rollback(ctx)

	if in.Profile != nil {
		if _, err := tx.Exec(ctx, `
INSERT INTO profiles(user_id, name, weight_kg, height_cm, age, goal, activity_level, is_pro, onboarding_done, updated_at)
VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
ON CONFLICT(user_id) DO UPDATE SET
  name = excluded.name, weight_kg = excluded.weight_kg, height_cm = excluded.height_cm,
  age = excluded.age, goal = excluded.goal, activity_level = excluded.activity_level,
  is_pro = excluded.is_pro, onboarding_done = excluded.onboarding_done, updated_at = now()`,
			userID, in.Profile.Name, in.Profile.WeightKg, in.Profile.HeightCm, in.Profile.Age,
			in.Profile.Goal, in.Profile.ActivityLevel, in.Profile.IsPro, in.Profile.OnboardingDone); err != nil {
			return fmt.Errorf("push profile: %w", err)
		}
	}
	if in.Goals != nil {
		if _, err := tx.Exec(ctx, `
INSERT INTO goals(user_id, calorie_goal, protein_goal, steps_goal, water_goal_ml, sleep_goal_h, updated_at)
VALUES($1, $2, $3, $4, $5, $6, now())
ON CONFLICT(user_id) DO UPDATE SET
  calorie_goal = excluded.calorie_goal, protein_goal = excluded.protein_goal,
  steps_goal = excluded.steps_goal, water_goal_ml = excluded.water_goal_ml,
  sleep_goal_h = excluded.sleep_goal_h, updated_at = now()`,
			userID, in.Goals.CalorieGoal, in.Goals.ProteinGoal, in.Goals.StepsGoal,
			in.Goals.WaterGoalMl, in.Goals.SleepGoalH); err != nil {
			return fmt.Errorf("push goals: %w", err)
		}
	}
	if in.Sleep != nil {
		if _, err := tx.Exec(ctx, `
INSERT INTO sleep(user_id, hours, mins, quality, hrv_ms, rhr_bpm, updated_at)
VALUES($1, $2, $3, $4, $5, $6, now())
ON CONFLICT(user_id) DO UPDATE SET
  hours = excluded.hours, mins = excluded.mins, quality = excluded.quality,
  hrv_ms = excluded.hrv_ms, rhr_bpm = excluded.rhr_bpm, updated_at = now()`,
			userID, in.Sleep.Hours, in.Sleep.Mins, in.Sleep.Quality, in.Sleep.HRVMs, in.Sleep.RHRBpm); err != nil {
			return fmt.Errorf("push sleep: %w", err)
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM food_entries WHERE user_id = $1 AND log_date = $2`, userID, date); err != nil {
		return fmt.Errorf("clear food entries: %w", err)
	}
	for _, f := range in.FoodLog {
		if _, err := tx.Exec(ctx, `
INSERT INTO food_entries(id, user_id, name, kcal, protein_g, carbs_g, fat_g, meal_type, log_time, log_date)
VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			f.ID, userID, f.Name, f.Kcal, f.ProteinG, f.CarbsG, f.FatG, f.MealType, f.Time, date); err != nil {
			return fmt.Errorf("push food entry: %w", err)
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM activity_entries WHERE user_id = $1 AND log_date = $2`, userID, date); err != nil {
		return fmt.Errorf("clear activity entries: %w", err)
	}
	for _, a := range in.Activities {
		if _, err := tx.Exec(ctx, `
INSERT INTO activity_entries(id, user_id, type, duration_min, intensity, kcal_burned, log_time, log_date)
VALUES($1, $2, $3, $4, $5, $6, $7, $8)`,
			a.ID, userID, a.Type, a.DurationMin, a.Intensity, a.KcalBurned, a.Time, date); err != nil {
			return fmt.Errorf("push activity entry: %w", err)
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM weight_entries WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear weight entries: %w", err)
	}
	for _, w := range in.WeightLog {
		if _, err := tx.Exec(ctx, `
INSERT INTO weight_entries(id, user_id, date_label, weight_kg)
VALUES($1, $2, $3, $4)`, w.ID, userID, w.Date, w.WeightKg); err != nil {
			return fmt.Errorf("push weight entry: %w", err)
		}
	}

	if _, err := tx.Exec(ctx, `
INSERT INTO water_log(user_id, log_date, glasses)
VALUES($1, $2, $3)
ON CONFLICT(user_id, log_date) DO UPDATE SET glasses = excluded.glasses`,
		userID, date, in.Water); err != nil {
		return fmt.Errorf("push water: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit push: %w", err)
	}
	return nil
}

var _ Store = (*PostgresStore)(nil)
