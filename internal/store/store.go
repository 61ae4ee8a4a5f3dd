// Package store is the persistence boundary of the tracker: a string
// key-value store holding every domain collection as a JSON document
// under a fixed key. The core never assumes batching or transactions
// from it; store failures always propagate to the caller.
package store

import (
	"encoding/json"
	"fmt"
)

// Fixed document keys. Every domain collection lives under exactly one.
const (
	KeyProfile        = "profile"
	KeyMealPlan       = "meal_plan"
	KeySavedRecipes   = "saved_recipes"
	KeyUserRecipes    = "user_recipes"
	KeyDailyMeals     = "daily_meals"
	KeyFoodCatalog    = "food_catalog"
	KeyRecentFoods    = "recent_foods"
	KeyAutoBackup     = "auto_backup"
	KeyLastBackupDate = "last_backup_date"
	KeyAutoBackupOn   = "auto_backup_enabled"
	KeyBackupFreq     = "backup_frequency"
)

type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// GetJSON unmarshals the document stored under key into out. The
// boolean reports whether the key existed; out is untouched otherwise.
func GetJSON(kv KV, key string, out any) (bool, error) {
	raw, ok, err := kv.Get(key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("decode document %q: %w", key, err)
	}
	return true, nil
}

func SetJSON(kv KV, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode document %q: %w", key, err)
	}
	return kv.Set(key, string(raw))
}
