package model

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

type WeightGoal string

const (
	WeightGoalLose     WeightGoal = "lose"
	WeightGoalMaintain WeightGoal = "maintain"
	WeightGoalGain     WeightGoal = "gain"
)

type MetricKind string

const (
	MetricCalories MetricKind = "calories"
	MetricProtein  MetricKind = "protein"
	MetricWater    MetricKind = "water"
	MetricWeight   MetricKind = "weight"
)

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// RequirementType is the closed set of mission completion predicates.
// Activity is the only one completed by explicit user action; all
// others are detected automatically.
type RequirementType string

const (
	RequireWater    RequirementType = "water"
	RequireFood     RequirementType = "food"
	RequireProtein  RequirementType = "protein"
	RequireWeight   RequirementType = "weight"
	RequireActivity RequirementType = "activity"
)

type MissionKind string

const (
	MissionDaily  MissionKind = "daily"
	MissionWeekly MissionKind = "weekly"
)

type NutritionGoals struct {
	CalorieGoal     int `json:"calorie_goal"`
	ProteinGoal     int `json:"protein_goal"`
	CarbGoal        int `json:"carb_goal"`
	FatGoal         int `json:"fat_goal"`
	WaterGoal       int `json:"water_goal"`
	BurnCalorieGoal int `json:"burn_calorie_goal"`
}

type DailyProgress struct {
	Calories       int     `json:"calories"`
	ProteinG       float64 `json:"protein_g"`
	CarbsG         float64 `json:"carbs_g"`
	FatG           float64 `json:"fat_g"`
	WaterMl        int     `json:"water_ml"`
	BurnedCalories int     `json:"burned_calories"`
}

type Requirement struct {
	Type    RequirementType `json:"type"`
	Value   float64         `json:"value,omitempty"`
	Current float64         `json:"current,omitempty"`
}

// MissionKey identifies a mission across regenerate cycles. Titles are
// presentation data and never load-bearing.
type MissionKey struct {
	Requirement RequirementType `json:"requirement"`
	Meal        MealType        `json:"meal,omitempty"`
}

type Mission struct {
	ID          string       `json:"id"`
	Key         MissionKey   `json:"key"`
	Kind        MissionKind  `json:"kind"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	XP          int          `json:"xp"`
	Completed   bool         `json:"completed"`
	Requirement *Requirement `json:"requirement,omitempty"`
	Deadline    *time.Time   `json:"deadline,omitempty"`
}

type Profile struct {
	Gender        Gender        `json:"gender"`
	WeightKg      float64       `json:"weight_kg"`
	HeightCm      float64       `json:"height_cm"`
	Age           int           `json:"age"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	WeightGoal    WeightGoal    `json:"weight_goal"`

	Goals NutritionGoals `json:"goals"`

	ExperiencePoints int `json:"experience_points"`
	Level            int `json:"level"`
	StreakDays       int `json:"streak_days"`

	DailyProgress    DailyProgress `json:"daily_progress"`
	DailyWaterIntake int           `json:"daily_water_intake"`

	DailyMissions  []Mission `json:"daily_missions"`
	WeeklyMissions []Mission `json:"weekly_missions"`

	LastMissionRefresh string `json:"last_mission_refresh,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MetricEntry is one point of a per-day time series. At most one entry
// exists per (kind, date); collections are kept newest-first.
type MetricEntry struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
	Note  string  `json:"note,omitempty"`
}

type MealRecord struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        MealType   `json:"type"`
	Date        string     `json:"date"`
	Calories    int        `json:"calories"`
	ProteinG    float64    `json:"protein_g"`
	CarbsG      float64    `json:"carbs_g"`
	FatG        float64    `json:"fat_g"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type Recipe struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Servings float64 `json:"servings,omitempty"`
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	Notes    string  `json:"notes,omitempty"`
}

type FoodItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Calories      int     `json:"calories"`
	ProteinG      float64 `json:"protein_g"`
	CarbsG        float64 `json:"carbs_g"`
	FatG          float64 `json:"fat_g"`
	ServingAmount float64 `json:"serving_amount,omitempty"`
	ServingUnit   string  `json:"serving_unit,omitempty"`
	IsCustom      bool    `json:"is_custom"`
}

type PlannedMeal struct {
	Day      string   `json:"day"`
	Meal     MealType `json:"meal"`
	RecipeID string   `json:"recipe_id,omitempty"`
	Name     string   `json:"name"`
}

type MealPlan struct {
	Entries []PlannedMeal `json:"entries"`
}

// BackupSnapshot is an immutable point-in-time export of every domain
// collection. A new snapshot is always a fresh value.
type BackupSnapshot struct {
	Version      string       `json:"version"`
	Timestamp    time.Time    `json:"timestamp"`
	UserData     *Profile     `json:"user_data,omitempty"`
	MealPlan     *MealPlan    `json:"meal_plan,omitempty"`
	SavedRecipes []Recipe     `json:"saved_recipes,omitempty"`
	UserRecipes  []Recipe     `json:"user_recipes,omitempty"`
	DailyMeals   []MealRecord `json:"daily_meals,omitempty"`
	CustomFoods  []FoodItem   `json:"custom_foods,omitempty"`
	RecentFoods  []FoodItem   `json:"recent_foods,omitempty"`
}

type BackupFrequency string

const (
	BackupDaily   BackupFrequency = "daily"
	BackupWeekly  BackupFrequency = "weekly"
	BackupMonthly BackupFrequency = "monthly"
)

type BackupSettings struct {
	AutoBackupEnabled bool            `json:"auto_backup_enabled"`
	BackupFrequency   BackupFrequency `json:"backup_frequency"`
	LastBackupDate    string          `json:"last_backup_date,omitempty"`
}
