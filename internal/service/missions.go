package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fitquest/fitquest-cli/internal/model"
	"github.com/fitquest/fitquest-cli/internal/store"
)

const (
	xpMeal     = 20
	xpWater    = 30
	xpProtein  = 40
	xpActivity = 50
	xpWeighIn  = 60

	activityTargetMinutes = 30
	weighInWindowDays     = 7
)

type XPResult struct {
	NewXP    int  `json:"new_xp"`
	NewLevel int  `json:"new_level"`
	LevelUp  bool `json:"level_up"`
}

// ApplyXP adds experience points and advances the level at most once
// per grant. A grant crossing two thresholds still advances a single
// level and leaves the remainder above the new threshold; this mirrors
// the historic progression behavior callers are tuned to.
func ApplyXP(p *model.Profile, amount int) XPResult {
	newXP := p.ExperiencePoints + amount
	required := p.Level * 100
	levelUp := false
	if newXP >= required {
		newXP -= required
		p.Level++
		levelUp = true
	}
	p.ExperiencePoints = newXP
	return XPResult{NewXP: newXP, NewLevel: p.Level, LevelUp: levelUp}
}

func AddXP(kv store.KV, amount int) (XPResult, error) {
	if amount < 0 {
		return XPResult{}, fmt.Errorf("xp amount must be >= 0")
	}
	p, err := LoadProfile(kv)
	if err != nil {
		return XPResult{}, err
	}
	res := ApplyXP(p, amount)
	if err := SaveProfile(kv, p); err != nil {
		return XPResult{}, err
	}
	return res, nil
}

// GenerateDailyMissions builds the fixed daily mission set from the
// current goal targets. Water and protein missions are only issued
// when the corresponding goal is positive.
func GenerateDailyMissions(goals model.NutritionGoals) []model.Mission {
	missions := []model.Mission{
		newMealMission(model.MealBreakfast, "Log breakfast"),
		newMealMission(model.MealLunch, "Log lunch"),
		newMealMission(model.MealDinner, "Log dinner"),
	}
	if goals.WaterGoal > 0 {
		missions = append(missions, model.Mission{
			ID:          uuid.NewString(),
			Key:         model.MissionKey{Requirement: model.RequireWater},
			Kind:        model.MissionDaily,
			Title:       "Stay hydrated",
			Description: fmt.Sprintf("Drink %d ml of water", goals.WaterGoal),
			XP:          xpWater,
			Requirement: &model.Requirement{Type: model.RequireWater, Value: float64(goals.WaterGoal)},
		})
	}
	if goals.ProteinGoal > 0 {
		missions = append(missions, model.Mission{
			ID:          uuid.NewString(),
			Key:         model.MissionKey{Requirement: model.RequireProtein},
			Kind:        model.MissionDaily,
			Title:       "Hit your protein target",
			Description: fmt.Sprintf("Eat %d g of protein", goals.ProteinGoal),
			XP:          xpProtein,
			Requirement: &model.Requirement{Type: model.RequireProtein, Value: float64(goals.ProteinGoal)},
		})
	}
	missions = append(missions, model.Mission{
		ID:          uuid.NewString(),
		Key:         model.MissionKey{Requirement: model.RequireActivity},
		Kind:        model.MissionDaily,
		Title:       "Get moving",
		Description: fmt.Sprintf("Be active for %d minutes", activityTargetMinutes),
		XP:          xpActivity,
		Requirement: &model.Requirement{Type: model.RequireActivity, Value: activityTargetMinutes},
	})
	return missions
}

func newMealMission(meal model.MealType, title string) model.Mission {
	return model.Mission{
		ID:          uuid.NewString(),
		Key:         model.MissionKey{Requirement: model.RequireFood, Meal: meal},
		Kind:        model.MissionDaily,
		Title:       title,
		XP:          xpMeal,
		Requirement: &model.Requirement{Type: model.RequireFood},
	}
}

// GenerateWeeklyMissions builds the weekly set. Weekly missions are
// not touched by the daily reset.
func GenerateWeeklyMissions(now time.Time) []model.Mission {
	deadline := now.AddDate(0, 0, weighInWindowDays)
	return []model.Mission{
		{
			ID:          uuid.NewString(),
			Key:         model.MissionKey{Requirement: model.RequireWeight},
			Kind:        model.MissionWeekly,
			Title:       "Weekly weigh-in",
			Description: "Record your weight this week",
			XP:          xpWeighIn,
			Requirement: &model.Requirement{Type: model.RequireWeight, Value: weighInWindowDays},
			Deadline:    &deadline,
		},
	}
}

// GenerateMissions populates both mission lists, as done at onboarding
// completion.
func GenerateMissions(kv store.KV, now time.Time) error {
	p, err := LoadProfile(kv)
	if err != nil {
		return err
	}
	p.DailyMissions = GenerateDailyMissions(p.Goals)
	p.WeeklyMissions = GenerateWeeklyMissions(now)
	p.LastMissionRefresh = now.Format(dateLayout)
	return SaveProfile(kv, p)
}

// ResetDailyMissions regenerates the daily missions and zeroes the
// day's running totals. Weekly missions are left alone.
func ResetDailyMissions(kv store.KV, now time.Time) error {
	p, err := LoadProfile(kv)
	if err != nil {
		return err
	}
	p.DailyMissions = GenerateDailyMissions(p.Goals)
	resetDailyProgress(p)
	p.LastMissionRefresh = now.Format(dateLayout)
	return SaveProfile(kv, p)
}

// ResetAllMissions regenerates both mission lists and zeroes progress.
func ResetAllMissions(kv store.KV, now time.Time) error {
	p, err := LoadProfile(kv)
	if err != nil {
		return err
	}
	p.DailyMissions = GenerateDailyMissions(p.Goals)
	p.WeeklyMissions = GenerateWeeklyMissions(now)
	resetDailyProgress(p)
	p.LastMissionRefresh = now.Format(dateLayout)
	return SaveProfile(kv, p)
}

// EnsureDailyReset performs the midnight rollover eagerly when the
// stored refresh date differs from today. It never creates a profile:
// a session that has not onboarded yet has nothing to reset.
func EnsureDailyReset(kv store.KV, now time.Time) (bool, error) {
	var p model.Profile
	ok, err := store.GetJSON(kv, store.KeyProfile, &p)
	if err != nil {
		return false, err
	}
	if !ok || p.LastMissionRefresh == now.Format(dateLayout) {
		return false, nil
	}
	if err := ResetDailyMissions(kv, now); err != nil {
		return false, err
	}
	return true, nil
}

// CompleteDaily completes a mission by explicit user action. Only
// activity missions accept this; every other requirement type is
// completed by the automatic scan.
func CompleteDaily(kv store.KV, missionID string) (XPResult, error) {
	p, err := LoadProfile(kv)
	if err != nil {
		return XPResult{}, err
	}
	for i := range p.DailyMissions {
		m := &p.DailyMissions[i]
		if m.ID != missionID {
			continue
		}
		if m.Requirement == nil || m.Requirement.Type != model.RequireActivity {
			return XPResult{}, fmt.Errorf("mission %q is completed automatically", m.Title)
		}
		if m.Completed {
			return XPResult{}, fmt.Errorf("mission %q is already completed", m.Title)
		}
		m.Completed = true
		m.Requirement.Current = m.Requirement.Value
		res := ApplyXP(p, m.XP)
		if err := SaveProfile(kv, p); err != nil {
			return XPResult{}, err
		}
		return res, nil
	}
	return XPResult{}, fmt.Errorf("mission %s not found", missionID)
}

// CheckAndCompleteMissions evaluates every incomplete non-activity
// mission against current state, completing and rewarding the ones
// whose predicate holds. The boolean reports whether anything was
// completed in this pass.
func CheckAndCompleteMissions(kv store.KV, now time.Time) (bool, error) {
	p, err := LoadProfile(kv)
	if err != nil {
		return false, err
	}
	meals, err := loadMeals(kv)
	if err != nil {
		return false, err
	}
	latestWeight, err := LatestMetric(kv, model.MetricWeight)
	if err != nil {
		return false, err
	}

	today := now.Format(dateLayout)
	any := false
	lists := [][]model.Mission{p.DailyMissions, p.WeeklyMissions}
	for _, list := range lists {
		for i := range list {
			m := &list[i]
			if m.Completed || m.Requirement == nil {
				continue
			}
			done := false
			switch m.Requirement.Type {
			case model.RequireWater:
				done = float64(waterIntake(p)) >= m.Requirement.Value
			case model.RequireFood:
				done = mealCompletedToday(meals, m.Key.Meal, today)
			case model.RequireProtein:
				done = p.DailyProgress.ProteinG >= m.Requirement.Value
			case model.RequireWeight:
				done = weightLoggedWithin(latestWeight, now, weighInWindowDays)
			case model.RequireActivity:
				// explicit user action only
			default:
				// unknown requirement: stays pending
			}
			if done {
				m.Completed = true
				ApplyXP(p, m.XP)
				any = true
			}
		}
	}

	if any {
		if err := SaveProfile(kv, p); err != nil {
			return false, err
		}
	}
	return any, nil
}

// waterIntake prefers the dedicated intake counter over the mirrored
// progress field when both carry a value.
func waterIntake(p *model.Profile) int {
	if p.DailyWaterIntake > 0 {
		return p.DailyWaterIntake
	}
	return p.DailyProgress.WaterMl
}

// mealCompletedToday matches a completed meal record for the given
// type; an empty type matches any completed meal of the day.
func mealCompletedToday(meals []model.MealRecord, mealType model.MealType, today string) bool {
	for _, m := range meals {
		if m.Date != today || !m.Completed {
			continue
		}
		if mealType == "" || m.Type == mealType {
			return true
		}
	}
	return false
}

func weightLoggedWithin(latest *model.MetricEntry, now time.Time, days int) bool {
	if latest == nil {
		return false
	}
	from := now.AddDate(0, 0, -days).Format(dateLayout)
	return latest.Date >= from && latest.Date <= now.Format(dateLayout)
}
