package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fitquest/fitquest-cli/internal/model"
	"github.com/fitquest/fitquest-cli/internal/store"
)

const SnapshotVersion = "1.0.0"

type ExportInfo struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	SizeBytes int64     `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
}

type ImportOptions struct {
	ImportUserData    bool
	ImportMealPlan    bool
	ImportRecipes     bool
	ImportMeals       bool
	ImportCustomFoods bool
}

// ImportResult is the structured outcome of an import. Format problems
// surface here; only store failures surface as errors.
type ImportResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CreateSnapshot assembles a point-in-time export of every domain
// collection. It has no side effects beyond reads: a missing profile
// stays missing.
func CreateSnapshot(kv store.KV, now time.Time) (*model.BackupSnapshot, error) {
	snap := &model.BackupSnapshot{
		Version:   SnapshotVersion,
		Timestamp: now,
	}

	var p model.Profile
	ok, err := store.GetJSON(kv, store.KeyProfile, &p)
	if err != nil {
		return nil, err
	}
	if ok {
		snap.UserData = &p
	}

	var plan model.MealPlan
	ok, err = store.GetJSON(kv, store.KeyMealPlan, &plan)
	if err != nil {
		return nil, err
	}
	if ok {
		snap.MealPlan = &plan
	}

	if _, err := store.GetJSON(kv, store.KeySavedRecipes, &snap.SavedRecipes); err != nil {
		return nil, err
	}
	if _, err := store.GetJSON(kv, store.KeyUserRecipes, &snap.UserRecipes); err != nil {
		return nil, err
	}
	if _, err := store.GetJSON(kv, store.KeyDailyMeals, &snap.DailyMeals); err != nil {
		return nil, err
	}
	if _, err := store.GetJSON(kv, store.KeyRecentFoods, &snap.RecentFoods); err != nil {
		return nil, err
	}

	var catalog []model.FoodItem
	if _, err := store.GetJSON(kv, store.KeyFoodCatalog, &catalog); err != nil {
		return nil, err
	}
	for _, f := range catalog {
		if f.IsCustom {
			snap.CustomFoods = append(snap.CustomFoods, f)
		}
	}

	return snap, nil
}

// ExportSnapshot writes the snapshot document to a file alongside a
// sha256 checksum sidecar.
func ExportSnapshot(kv store.KV, outPath string, now time.Time) (ExportInfo, error) {
	if strings.TrimSpace(outPath) == "" {
		return ExportInfo{}, fmt.Errorf("export output path is required")
	}
	snap, err := CreateSnapshot(kv, now)
	if err != nil {
		return ExportInfo{}, err
	}
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return ExportInfo{}, fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return ExportInfo{}, fmt.Errorf("create export directory: %w", err)
	}
	if err := os.WriteFile(outPath, raw, 0o644); err != nil {
		return ExportInfo{}, fmt.Errorf("write snapshot file: %w", err)
	}
	sum := sha256.Sum256(raw)
	checksum := hex.EncodeToString(sum[:])
	if err := os.WriteFile(outPath+".sha256", []byte(checksum+"\n"), 0o644); err != nil {
		return ExportInfo{}, fmt.Errorf("write checksum file: %w", err)
	}
	return ExportInfo{Path: outPath, Checksum: checksum, SizeBytes: int64(len(raw)), CreatedAt: now}, nil
}

// ImportSnapshotFile reads a snapshot document from disk and imports
// it. File read failures are I/O errors for the caller; a document
// that does not parse is a format failure reported in the result.
func ImportSnapshotFile(kv store.KV, path string, opts ImportOptions) (ImportResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("read snapshot file: %w", err)
	}
	if expected, err := os.ReadFile(path + ".sha256"); err == nil {
		sum := sha256.Sum256(raw)
		if strings.TrimSpace(string(expected)) != hex.EncodeToString(sum[:]) {
			return ImportResult{Success: false, Message: "snapshot checksum mismatch"}, nil
		}
	}
	var snap model.BackupSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return ImportResult{Success: false, Message: "invalid format"}, nil
	}
	return ImportSnapshot(kv, &snap, opts)
}

// ImportSnapshot merges the selected categories of a snapshot into the
// store. User data and the meal plan are overwritten wholesale; saved
// recipes are overwritten while user recipes and logged meals merge by
// id; custom foods replace the existing custom slice of the catalog
// while standard entries stay untouched.
func ImportSnapshot(kv store.KV, snap *model.BackupSnapshot, opts ImportOptions) (ImportResult, error) {
	if snap == nil || strings.TrimSpace(snap.Version) == "" {
		return ImportResult{Success: false, Message: "invalid format"}, nil
	}
	if snap.Version != SnapshotVersion {
		return ImportResult{Success: false, Message: fmt.Sprintf("unsupported backup version %q", snap.Version)}, nil
	}

	if opts.ImportUserData && snap.UserData != nil {
		if err := store.SetJSON(kv, store.KeyProfile, snap.UserData); err != nil {
			return ImportResult{}, err
		}
	}

	if opts.ImportMealPlan && snap.MealPlan != nil {
		if err := store.SetJSON(kv, store.KeyMealPlan, snap.MealPlan); err != nil {
			return ImportResult{}, err
		}
	}

	if opts.ImportRecipes {
		if snap.SavedRecipes != nil {
			if err := store.SetJSON(kv, store.KeySavedRecipes, snap.SavedRecipes); err != nil {
				return ImportResult{}, err
			}
		}
		if len(snap.UserRecipes) > 0 {
			var existing []model.Recipe
			if _, err := store.GetJSON(kv, store.KeyUserRecipes, &existing); err != nil {
				return ImportResult{}, err
			}
			merged := mergeByID(existing, snap.UserRecipes, func(r model.Recipe) string { return r.ID })
			if err := store.SetJSON(kv, store.KeyUserRecipes, merged); err != nil {
				return ImportResult{}, err
			}
		}
	}

	if opts.ImportMeals && len(snap.DailyMeals) > 0 {
		var existing []model.MealRecord
		if _, err := store.GetJSON(kv, store.KeyDailyMeals, &existing); err != nil {
			return ImportResult{}, err
		}
		merged := mergeByID(existing, snap.DailyMeals, func(m model.MealRecord) string { return m.ID })
		if err := store.SetJSON(kv, store.KeyDailyMeals, merged); err != nil {
			return ImportResult{}, err
		}
	}

	if opts.ImportCustomFoods {
		var catalog []model.FoodItem
		if _, err := store.GetJSON(kv, store.KeyFoodCatalog, &catalog); err != nil {
			return ImportResult{}, err
		}
		if err := store.SetJSON(kv, store.KeyFoodCatalog, replaceCategory(catalog, snap.CustomFoods)); err != nil {
			return ImportResult{}, err
		}
	}

	return ImportResult{Success: true, Message: "import completed"}, nil
}

// mergeByID appends incoming items whose id is not already present.
// Existing entries always win; duplicates are dropped silently.
func mergeByID[T any](existing, incoming []T, id func(T) string) []T {
	seen := make(map[string]struct{}, len(existing))
	for _, item := range existing {
		seen[id(item)] = struct{}{}
	}
	out := existing
	for _, item := range incoming {
		if _, ok := seen[id(item)]; ok {
			continue
		}
		seen[id(item)] = struct{}{}
		out = append(out, item)
	}
	return out
}

// replaceCategory discards every existing custom catalog entry and
// substitutes the incoming set, leaving standard entries untouched.
// Deliberately not id-deduplicated: custom foods are an authoritative
// override.
func replaceCategory(catalog, custom []model.FoodItem) []model.FoodItem {
	out := make([]model.FoodItem, 0, len(catalog)+len(custom))
	for _, f := range catalog {
		if !f.IsCustom {
			out = append(out, f)
		}
	}
	return append(out, custom...)
}

// ShouldCreateBackup reports whether an automatic backup is due: the
// feature is enabled and either no backup exists yet or the elapsed
// whole days since the last one meet the frequency threshold.
func ShouldCreateBackup(s model.BackupSettings, now time.Time) bool {
	if !s.AutoBackupEnabled {
		return false
	}
	if strings.TrimSpace(s.LastBackupDate) == "" {
		return true
	}
	last, err := time.ParseInLocation(dateLayout, s.LastBackupDate, now.Location())
	if err != nil {
		return true
	}
	days := daysBetween(last, now)
	switch s.BackupFrequency {
	case model.BackupDaily:
		return days >= 1
	case model.BackupWeekly:
		return days >= 7
	case model.BackupMonthly:
		return days >= 30
	default:
		return false
	}
}

func LoadBackupSettings(kv store.KV) (model.BackupSettings, error) {
	s := model.BackupSettings{BackupFrequency: model.BackupWeekly}
	enabled, ok, err := kv.Get(store.KeyAutoBackupOn)
	if err != nil {
		return s, err
	}
	if ok {
		s.AutoBackupEnabled = enabled == "true"
	}
	freq, ok, err := kv.Get(store.KeyBackupFreq)
	if err != nil {
		return s, err
	}
	if ok && freq != "" {
		s.BackupFrequency = model.BackupFrequency(freq)
	}
	last, _, err := kv.Get(store.KeyLastBackupDate)
	if err != nil {
		return s, err
	}
	s.LastBackupDate = last
	return s, nil
}

func SaveBackupSettings(kv store.KV, s model.BackupSettings) error {
	enabled := "false"
	if s.AutoBackupEnabled {
		enabled = "true"
	}
	if err := kv.Set(store.KeyAutoBackupOn, enabled); err != nil {
		return err
	}
	if err := kv.Set(store.KeyBackupFreq, string(s.BackupFrequency)); err != nil {
		return err
	}
	if s.LastBackupDate != "" {
		if err := kv.Set(store.KeyLastBackupDate, s.LastBackupDate); err != nil {
			return err
		}
	}
	return nil
}

// RunAutoBackup creates and stores an automatic snapshot when one is
// due, advancing the last-backup date. Returns whether a backup ran.
func RunAutoBackup(kv store.KV, log *zap.Logger, now time.Time) (bool, error) {
	settings, err := LoadBackupSettings(kv)
	if err != nil {
		return false, err
	}
	if !ShouldCreateBackup(settings, now) {
		return false, nil
	}
	snap, err := CreateSnapshot(kv, now)
	if err != nil {
		return false, err
	}
	if err := store.SetJSON(kv, store.KeyAutoBackup, snap); err != nil {
		return false, err
	}
	if err := kv.Set(store.KeyLastBackupDate, now.Format(dateLayout)); err != nil {
		return false, err
	}
	log.Info("automatic backup created", zap.Time("timestamp", now))
	return true, nil
}

// daysBetween counts calendar days from a to b. Both dates are
// re-anchored in UTC so a DST transition cannot shorten a day below
// the 24-hour quantum.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	ua := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	ub := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}
