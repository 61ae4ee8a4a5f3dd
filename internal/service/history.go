package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fitquest/fitquest-cli/internal/model"
	"github.com/fitquest/fitquest-cli/internal/store"
)

const dateLayout = "2006-01-02"

func historyKey(kind model.MetricKind) string {
	return "history:" + string(kind)
}

func validMetricKind(kind model.MetricKind) bool {
	switch kind {
	case model.MetricCalories, model.MetricProtein, model.MetricWater, model.MetricWeight:
		return true
	default:
		return false
	}
}

// UpsertMetric records value for the given calendar day, replacing any
// existing entry for that day. A blank date means the day of now. The
// stored collection is kept sorted newest-first; readers rely on
// index 0 being the most recent entry.
func UpsertMetric(kv store.KV, kind model.MetricKind, value float64, date string, note string, now time.Time) error {
	if !validMetricKind(kind) {
		return fmt.Errorf("unknown metric kind %q", kind)
	}
	date = strings.TrimSpace(date)
	if date == "" {
		date = now.Format(dateLayout)
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}

	var entries []model.MetricEntry
	if _, err := store.GetJSON(kv, historyKey(kind), &entries); err != nil {
		return err
	}

	updated := false
	for i := range entries {
		if entries[i].Date == date {
			entries[i].Value = value
			if note != "" {
				entries[i].Note = note
			}
			updated = true
			break
		}
	}
	if !updated {
		entries = append(entries, model.MetricEntry{Date: date, Value: value, Note: note})
	}

	sortNewestFirst(entries)
	return store.SetJSON(kv, historyKey(kind), entries)
}

func History(kv store.KV, kind model.MetricKind) ([]model.MetricEntry, error) {
	if !validMetricKind(kind) {
		return nil, fmt.Errorf("unknown metric kind %q", kind)
	}
	entries := make([]model.MetricEntry, 0)
	if _, err := store.GetJSON(kv, historyKey(kind), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// LatestMetric returns the most recent entry, or nil when the series
// is empty.
func LatestMetric(kv store.KV, kind model.MetricKind) (*model.MetricEntry, error) {
	entries, err := History(kv, kind)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

// Average computes the arithmetic mean of entries dated within
// [now-windowDays, now]. An empty window yields 0, never NaN.
func Average(kv store.KV, kind model.MetricKind, windowDays int, now time.Time) (float64, error) {
	if windowDays < 0 {
		return 0, fmt.Errorf("window days must be >= 0")
	}
	entries, err := History(kv, kind)
	if err != nil {
		return 0, err
	}
	from := now.AddDate(0, 0, -windowDays).Format(dateLayout)
	to := now.Format(dateLayout)

	sum := 0.0
	count := 0
	for _, e := range entries {
		if e.Date >= from && e.Date <= to {
			sum += e.Value
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return sum / float64(count), nil
}

// ISO dates sort lexicographically, so string comparison is enough.
func sortNewestFirst(entries []model.MetricEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})
}
