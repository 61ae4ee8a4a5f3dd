package service

import (
	"math"

	"go.uber.org/zap"

	"github.com/fitquest/fitquest-cli/internal/model"
)

type GoalInput struct {
	Gender        model.Gender
	WeightKg      float64
	HeightCm      float64
	Age           int
	ActivityLevel model.ActivityLevel
	WeightGoal    model.WeightGoal
}

// DefaultGoals is the fallback target set used whenever biometric
// input is missing or invalid.
func DefaultGoals() model.NutritionGoals {
	return model.NutritionGoals{
		CalorieGoal:     2000,
		ProteinGoal:     75,
		CarbGoal:        250,
		FatGoal:         65,
		WaterGoal:       2500,
		BurnCalorieGoal: 500,
	}
}

// CalculateNutritionGoals derives all six daily targets from the
// biometric inputs. It never fails: incomplete input falls back to
// DefaultGoals with a warning.
func CalculateNutritionGoals(log *zap.Logger, in GoalInput) model.NutritionGoals {
	factor, ok := activityFactor(in.ActivityLevel)
	if in.WeightKg <= 0 || in.HeightCm <= 0 || in.Age <= 0 || in.Gender == "" || in.WeightGoal == "" || !ok {
		log.Warn("incomplete biometric input, using default nutrition goals",
			zap.Float64("weight_kg", in.WeightKg),
			zap.Float64("height_cm", in.HeightCm),
			zap.Int("age", in.Age))
		return DefaultGoals()
	}

	bmr := basalMetabolicRate(in.Gender, in.WeightKg, in.HeightCm, in.Age)

	calories := int(math.Round(float64(bmr) * factor))
	switch in.WeightGoal {
	case model.WeightGoalLose:
		calories -= 500
	case model.WeightGoalGain:
		calories += 500
	}

	protein := int(math.Round(in.WeightKg * 1.8))
	fat := int(math.Round(float64(calories) * 0.30 / 9))
	carbs := int(math.Round(float64(calories-protein*4-fat*9) / 4))
	water := int(math.Round(in.WeightKg*35/100)) * 100

	burn := int(math.Round(float64(calories) * 0.20))
	if in.WeightGoal == model.WeightGoalLose {
		burn = 500
	}

	return model.NutritionGoals{
		CalorieGoal:     calories,
		ProteinGoal:     protein,
		CarbGoal:        carbs,
		FatGoal:         fat,
		WaterGoal:       water,
		BurnCalorieGoal: burn,
	}
}

// basalMetabolicRate implements the gender-specific Harris-Benedict
// equation, rounded to the nearest whole kcal.
func basalMetabolicRate(gender model.Gender, weightKg, heightCm float64, age int) int {
	var bmr float64
	if gender == model.GenderMale {
		bmr = 66.5 + 13.75*weightKg + 5.003*heightCm - 6.755*float64(age)
	} else {
		bmr = 655.1 + 9.563*weightKg + 1.85*heightCm - 4.676*float64(age)
	}
	return int(math.Round(bmr))
}

func activityFactor(level model.ActivityLevel) (float64, bool) {
	switch level {
	case model.ActivitySedentary:
		return 1.2, true
	case model.ActivityLight:
		return 1.375, true
	case model.ActivityModerate:
		return 1.55, true
	case model.ActivityActive:
		return 1.725, true
	case model.ActivityVeryActive:
		return 1.9, true
	default:
		return 0, false
	}
}
