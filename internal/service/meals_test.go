package service_test

import (
	"testing"
	"time"

	"github.com/fitquest/fitquest-cli/internal/model"
	"github.com/fitquest/fitquest-cli/internal/service"
	"github.com/fitquest/fitquest-cli/internal/store"
)

func TestLogMealValidation(t *testing.T) {
	t.Parallel()
	kv := store.NewMemory()
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	if _, err := service.LogMeal(kv, service.MealInput{Name: "  ", Type: model.MealLunch}, now); err == nil {
		t.Fatalf("expected error for blank name")
	}
	if _, err := service.LogMeal(kv, service.MealInput{Name: "Oats", Type: "brunch"}, now); err == nil {
		t.Fatalf("expected error for invalid meal type")
	}
	if _, err := service.LogMeal(kv, service.MealInput{Name: "Oats", Type: model.MealBreakfast, Calories: -1}, now); err == nil {
		t.Fatalf("expected error for negative calories")
	}

	rec, err := service.LogMeal(kv, service.MealInput{Name: "Oats", Type: model.MealBreakfast, Calories: 350, ProteinG: 12}, now)
	if err != nil {
		t.Fatalf("log meal: %v", err)
	}
	if rec.ID == "" || rec.Completed || rec.Date != "2026-02-01" {
		t.Fatalf("unexpected record %+v", rec)
	}
}

func TestCompleteMealUpdatesProgressAndMission(t *testing.T) {
	t.Parallel()
	kv := newTestStore(t)
	now := time.Date(2026, 2, 1, 13, 0, 0, 0, time.UTC)
	seedProfile(t, kv, now)

	rec, err := service.LogMeal(kv, service.MealInput{
		Name: "Chicken bowl", Type: model.MealLunch,
		Calories: 600, ProteinG: 40, CarbsG: 55, FatG: 18,
	}, now)
	if err != nil {
		t.Fatalf("log meal: %v", err)
	}

	missionDone, err := service.CompleteMeal(kv, rec.ID, now)
	if err != nil {
		t.Fatalf("complete meal: %v", err)
	}
	if !missionDone {
		t.Fatalf("expected lunch mission to complete")
	}

	p, err := service.LoadProfile(kv)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if p.DailyProgress.Calories != 600 || p.DailyProgress.ProteinG != 40 {
		t.Fatalf("expected progress 600 kcal / 40 g protein, got %+v", p.DailyProgress)
	}
	if p.ExperiencePoints != 20 {
		t.Fatalf("expected 20 xp from the meal mission, got %d", p.ExperiencePoints)
	}
	lunch := findMission(p.DailyMissions, model.RequireFood, model.MealLunch)
	if lunch == nil || !lunch.Completed {
		t.Fatalf("expected lunch mission completed, got %+v", lunch)
	}

	latest, err := service.LatestMetric(kv, model.MetricCalories)
	if err != nil {
		t.Fatalf("latest calories: %v", err)
	}
	if latest == nil || latest.Date != "2026-02-01" || latest.Value != 600 {
		t.Fatalf("expected calories history entry 600 for today, got %+v", latest)
	}

	if _, err := service.CompleteMeal(kv, rec.ID, now); err == nil {
		t.Fatalf("expected error completing the same meal twice")
	}
}

func TestSecondMealOfTypeCountsButGrantsNoXP(t *testing.T) {
	t.Parallel()
	kv := store.NewMemory()
	now := time.Date(2026, 2, 1, 13, 0, 0, 0, time.UTC)
	seedProfile(t, kv, now)

	first, err := service.LogMeal(kv, service.MealInput{Name: "Bowl", Type: model.MealLunch, Calories: 600, ProteinG: 40}, now)
	if err != nil {
		t.Fatalf("log first: %v", err)
	}
	if _, err := service.CompleteMeal(kv, first.ID, now); err != nil {
		t.Fatalf("complete first: %v", err)
	}

	second, err := service.LogMeal(kv, service.MealInput{Name: "Seconds", Type: model.MealLunch, Calories: 400, ProteinG: 20}, now)
	if err != nil {
		t.Fatalf("log second: %v", err)
	}
	missionDone, err := service.CompleteMeal(kv, second.ID, now)
	if err != nil {
		t.Fatalf("complete second: %v", err)
	}
	if missionDone {
		t.Fatalf("expected no second mission reward for the same meal type")
	}

	p, _ := service.LoadProfile(kv)
	if p.DailyProgress.Calories != 1000 {
		t.Fatalf("expected nutrients from both meals (1000 kcal), got %d", p.DailyProgress.Calories)
	}
	if p.ExperiencePoints != 20 {
		t.Fatalf("expected xp unchanged at 20, got %d", p.ExperiencePoints)
	}

	latest, _ := service.LatestMetric(kv, model.MetricCalories)
	if latest == nil || latest.Value != 1000 {
		t.Fatalf("expected calories history running total 1000, got %+v", latest)
	}
}

func TestUnlockMealRevertsRecordNotMission(t *testing.T) {
	t.Parallel()
	kv := store.NewMemory()
	now := time.Date(2026, 2, 1, 19, 0, 0, 0, time.UTC)
	seedProfile(t, kv, now)

	rec, err := service.LogMeal(kv, service.MealInput{Name: "Pasta", Type: model.MealDinner, Calories: 700, ProteinG: 30, CarbsG: 80, FatG: 20}, now)
	if err != nil {
		t.Fatalf("log meal: %v", err)
	}
	if _, err := service.CompleteMeal(kv, rec.ID, now); err != nil {
		t.Fatalf("complete meal: %v", err)
	}

	if err := service.UnlockMeal(kv, rec.ID); err != nil {
		t.Fatalf("unlock meal: %v", err)
	}

	meals, err := service.MealsForDate(kv, "2026-02-01")
	if err != nil {
		t.Fatalf("meals for date: %v", err)
	}
	if len(meals) != 1 || meals[0].Completed || meals[0].CompletedAt != nil {
		t.Fatalf("expected reverted meal record, got %+v", meals)
	}

	p, _ := service.LoadProfile(kv)
	if p.DailyProgress.Calories != 0 || p.DailyProgress.ProteinG != 0 {
		t.Fatalf("expected nutrients removed from progress, got %+v", p.DailyProgress)
	}
	dinner := findMission(p.DailyMissions, model.RequireFood, model.MealDinner)
	if dinner == nil || !dinner.Completed {
		t.Fatalf("expected dinner mission to stay completed, got %+v", dinner)
	}
	if p.ExperiencePoints != 20 {
		t.Fatalf("expected xp kept at 20, got %d", p.ExperiencePoints)
	}

	if err := service.UnlockMeal(kv, rec.ID); err == nil {
		t.Fatalf("expected error unlocking a non-completed meal")
	}
}

func TestLogWaterMirrorsCounters(t *testing.T) {
	t.Parallel()
	kv := store.NewMemory()
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	if _, err := service.LogWater(kv, 0, now); err == nil {
		t.Fatalf("expected error for non-positive amount")
	}

	p, err := service.LogWater(kv, 300, now)
	if err != nil {
		t.Fatalf("log water: %v", err)
	}
	if p.DailyWaterIntake != 300 || p.DailyProgress.WaterMl != 300 {
		t.Fatalf("expected mirrored counters at 300, got intake=%d progress=%d", p.DailyWaterIntake, p.DailyProgress.WaterMl)
	}

	p, err = service.LogWater(kv, 450, now)
	if err != nil {
		t.Fatalf("log water: %v", err)
	}
	if p.DailyWaterIntake != 750 {
		t.Fatalf("expected running total 750, got %d", p.DailyWaterIntake)
	}

	latest, err := service.LatestMetric(kv, model.MetricWater)
	if err != nil {
		t.Fatalf("latest water: %v", err)
	}
	if latest == nil || latest.Value != 750 {
		t.Fatalf("expected water history entry 750, got %+v", latest)
	}
}

func TestLogWeightUpdatesProfileNotGoals(t *testing.T) {
	t.Parallel()
	kv := store.NewMemory()
	now := time.Date(2026, 2, 1, 7, 0, 0, 0, time.UTC)

	before, err := service.LoadProfile(kv)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	goals := before.Goals

	if err := service.LogWeight(kv, 82.4, now, "post-holiday"); err != nil {
		t.Fatalf("log weight: %v", err)
	}

	p, _ := service.LoadProfile(kv)
	if p.WeightKg != 82.4 {
		t.Fatalf("expected profile weight 82.4, got %v", p.WeightKg)
	}
	if p.Goals != goals {
		t.Fatalf("expected cached goals untouched by a weigh-in")
	}
	latest, _ := service.LatestMetric(kv, model.MetricWeight)
	if latest == nil || latest.Value != 82.4 || latest.Note != "post-holiday" {
		t.Fatalf("expected weight history entry with note, got %+v", latest)
	}
}
