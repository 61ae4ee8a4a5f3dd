package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fitquest/fitquest-cli/internal/model"
	"github.com/fitquest/fitquest-cli/internal/store"
)

type MealInput struct {
	Name     string
	Type     model.MealType
	Calories int
	ProteinG float64
	CarbsG   float64
	FatG     float64
}

func validMealType(t model.MealType) bool {
	switch t {
	case model.MealBreakfast, model.MealLunch, model.MealDinner, model.MealSnack:
		return true
	default:
		return false
	}
}

// LogMeal records a meal for the given day without completing it.
func LogMeal(kv store.KV, in MealInput, now time.Time) (*model.MealRecord, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, fmt.Errorf("meal name is required")
	}
	if !validMealType(in.Type) {
		return nil, fmt.Errorf("invalid meal type %q (use breakfast, lunch, dinner, or snack)", in.Type)
	}
	if in.Calories < 0 || in.ProteinG < 0 || in.CarbsG < 0 || in.FatG < 0 {
		return nil, fmt.Errorf("nutrient values must be >= 0")
	}
	meals, err := loadMeals(kv)
	if err != nil {
		return nil, err
	}
	rec := model.MealRecord{
		ID:       uuid.NewString(),
		Name:     in.Name,
		Type:     in.Type,
		Date:     now.Format(dateLayout),
		Calories: in.Calories,
		ProteinG: in.ProteinG,
		CarbsG:   in.CarbsG,
		FatG:     in.FatG,
	}
	meals = append(meals, rec)
	if err := saveMeals(kv, meals); err != nil {
		return nil, err
	}
	return &rec, nil
}

func MealsForDate(kv store.KV, date string) ([]model.MealRecord, error) {
	meals, err := loadMeals(kv)
	if err != nil {
		return nil, err
	}
	out := make([]model.MealRecord, 0)
	for _, m := range meals {
		if m.Date == date {
			out = append(out, m)
		}
	}
	return out, nil
}

// CompleteMeal marks a meal record completed, folds its nutrients into
// the day's running totals, updates today's calories and protein
// history, and completes the matching incomplete daily food mission if
// one exists. Nutrient accumulation and the mission reward are
// independent effects: a second meal of an already-rewarded type still
// counts toward progress but grants no XP. Returns whether a mission
// was completed.
func CompleteMeal(kv store.KV, mealID string, now time.Time) (bool, error) {
	meals, err := loadMeals(kv)
	if err != nil {
		return false, err
	}
	var meal *model.MealRecord
	for i := range meals {
		if meals[i].ID == mealID {
			meal = &meals[i]
			break
		}
	}
	if meal == nil {
		return false, fmt.Errorf("meal %s not found", mealID)
	}
	if meal.Completed {
		return false, fmt.Errorf("meal %q is already completed", meal.Name)
	}

	completedAt := now
	meal.Completed = true
	meal.CompletedAt = &completedAt
	if err := saveMeals(kv, meals); err != nil {
		return false, err
	}

	p, err := LoadProfile(kv)
	if err != nil {
		return false, err
	}
	p.DailyProgress.Calories += meal.Calories
	p.DailyProgress.ProteinG += meal.ProteinG
	p.DailyProgress.CarbsG += meal.CarbsG
	p.DailyProgress.FatG += meal.FatG

	today := now.Format(dateLayout)
	if err := UpsertMetric(kv, model.MetricCalories, float64(p.DailyProgress.Calories), today, "", now); err != nil {
		return false, err
	}
	if err := UpsertMetric(kv, model.MetricProtein, p.DailyProgress.ProteinG, today, "", now); err != nil {
		return false, err
	}

	missionCompleted := false
	for i := range p.DailyMissions {
		m := &p.DailyMissions[i]
		if m.Requirement == nil || m.Requirement.Type != model.RequireFood || m.Key.Meal != meal.Type {
			continue
		}
		// An already-completed slot means no second reward; the
		// nutrient totals above were updated regardless.
		if m.Completed {
			break
		}
		m.Completed = true
		ApplyXP(p, m.XP)
		missionCompleted = true
		break
	}

	if err := SaveProfile(kv, p); err != nil {
		return false, err
	}
	return missionCompleted, nil
}

// UnlockMeal reverts a completed meal record: the record's flag is
// cleared and its nutrients are removed from the day's totals. The
// mission it completed stays completed; only the meal record reverts.
func UnlockMeal(kv store.KV, mealID string) error {
	meals, err := loadMeals(kv)
	if err != nil {
		return err
	}
	var meal *model.MealRecord
	for i := range meals {
		if meals[i].ID == mealID {
			meal = &meals[i]
			break
		}
	}
	if meal == nil {
		return fmt.Errorf("meal %s not found", mealID)
	}
	if !meal.Completed {
		return fmt.Errorf("meal %q is not completed", meal.Name)
	}
	meal.Completed = false
	meal.CompletedAt = nil
	if err := saveMeals(kv, meals); err != nil {
		return err
	}

	p, err := LoadProfile(kv)
	if err != nil {
		return err
	}
	p.DailyProgress.Calories = clampInt(p.DailyProgress.Calories - meal.Calories)
	p.DailyProgress.ProteinG = clampFloat(p.DailyProgress.ProteinG - meal.ProteinG)
	p.DailyProgress.CarbsG = clampFloat(p.DailyProgress.CarbsG - meal.CarbsG)
	p.DailyProgress.FatG = clampFloat(p.DailyProgress.FatG - meal.FatG)
	return SaveProfile(kv, p)
}

// LogWater adds to both mirrored water counters and upserts today's
// water history entry with the new running total.
func LogWater(kv store.KV, amountMl int, now time.Time) (*model.Profile, error) {
	if amountMl <= 0 {
		return nil, fmt.Errorf("water amount must be > 0")
	}
	p, err := LoadProfile(kv)
	if err != nil {
		return nil, err
	}
	p.DailyWaterIntake += amountMl
	p.DailyProgress.WaterMl += amountMl
	if err := UpsertMetric(kv, model.MetricWater, float64(p.DailyWaterIntake), now.Format(dateLayout), "", now); err != nil {
		return nil, err
	}
	if err := SaveProfile(kv, p); err != nil {
		return nil, err
	}
	return p, nil
}

// LogWeight upserts the day's weight entry and updates the profile's
// current weight. The cached nutrition goals are left untouched until
// an explicit recalculation.
func LogWeight(kv store.KV, weightKg float64, now time.Time, note string) error {
	if weightKg <= 0 {
		return fmt.Errorf("weight must be > 0")
	}
	if err := UpsertMetric(kv, model.MetricWeight, weightKg, now.Format(dateLayout), note, now); err != nil {
		return err
	}
	p, err := LoadProfile(kv)
	if err != nil {
		return err
	}
	p.WeightKg = weightKg
	return SaveProfile(kv, p)
}

func loadMeals(kv store.KV) ([]model.MealRecord, error) {
	meals := make([]model.MealRecord, 0)
	if _, err := store.GetJSON(kv, store.KeyDailyMeals, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

func saveMeals(kv store.KV, meals []model.MealRecord) error {
	return store.SetJSON(kv, store.KeyDailyMeals, meals)
}

func clampInt(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func clampFloat(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
