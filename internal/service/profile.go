package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fitquest/fitquest-cli/internal/model"
	"github.com/fitquest/fitquest-cli/internal/store"
)

// LoadProfile returns the singleton profile, creating it with baseline
// defaults on first use.
func LoadProfile(kv store.KV) (*model.Profile, error) {
	var p model.Profile
	ok, err := store.GetJSON(kv, store.KeyProfile, &p)
	if err != nil {
		return nil, err
	}
	if ok {
		return &p, nil
	}
	fresh := NewDefaultProfile(time.Now())
	if err := SaveProfile(kv, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

func NewDefaultProfile(now time.Time) *model.Profile {
	return &model.Profile{
		Goals:     DefaultGoals(),
		Level:     1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func SaveProfile(kv store.KV, p *model.Profile) error {
	p.UpdatedAt = time.Now()
	return store.SetJSON(kv, store.KeyProfile, p)
}

type BiometricsInput struct {
	Gender        model.Gender
	WeightKg      float64
	HeightCm      float64
	Age           int
	ActivityLevel model.ActivityLevel
	WeightGoal    model.WeightGoal
}

// SetBiometrics updates the profile's demographic and activity fields.
// The cached nutrition goals are not recomputed here; call
// RefreshGoals explicitly once inputs change.
func SetBiometrics(kv store.KV, in BiometricsInput) (*model.Profile, error) {
	if in.WeightKg < 0 || in.HeightCm < 0 || in.Age < 0 {
		return nil, fmt.Errorf("weight, height, and age must be >= 0")
	}
	p, err := LoadProfile(kv)
	if err != nil {
		return nil, err
	}
	if in.Gender != "" {
		p.Gender = in.Gender
	}
	if in.WeightKg > 0 {
		p.WeightKg = in.WeightKg
	}
	if in.HeightCm > 0 {
		p.HeightCm = in.HeightCm
	}
	if in.Age > 0 {
		p.Age = in.Age
	}
	if in.ActivityLevel != "" {
		p.ActivityLevel = in.ActivityLevel
	}
	if in.WeightGoal != "" {
		p.WeightGoal = in.WeightGoal
	}
	if err := SaveProfile(kv, p); err != nil {
		return nil, err
	}
	return p, nil
}

// RefreshGoals recomputes the profile's cached goal projection from
// its current biometrics.
func RefreshGoals(kv store.KV, log *zap.Logger) (*model.Profile, error) {
	p, err := LoadProfile(kv)
	if err != nil {
		return nil, err
	}
	p.Goals = CalculateNutritionGoals(log, GoalInput{
		Gender:        p.Gender,
		WeightKg:      p.WeightKg,
		HeightCm:      p.HeightCm,
		Age:           p.Age,
		ActivityLevel: p.ActivityLevel,
		WeightGoal:    p.WeightGoal,
	})
	if err := SaveProfile(kv, p); err != nil {
		return nil, err
	}
	return p, nil
}

func resetDailyProgress(p *model.Profile) {
	p.DailyProgress = model.DailyProgress{}
	p.DailyWaterIntake = 0
}
