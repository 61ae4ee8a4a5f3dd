package service_test

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/fitquest/fitquest-cli/internal/service"
	"github.com/fitquest/fitquest-cli/internal/store"
)

func TestUntilNextMidnight(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)
	if d := service.UntilNextMidnight(now); d != time.Hour {
		t.Fatalf("expected 1h to midnight, got %v", d)
	}

	midnight := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	if d := service.UntilNextMidnight(midnight); d != 24*time.Hour {
		t.Fatalf("expected a full day from midnight, got %v", d)
	}
}

func TestSchedulerFiresAtMidnight(t *testing.T) {
	t.Parallel()
	kv := store.NewMemory()

	// A frozen clock 50ms before midnight makes the rollover observable
	// without waiting for a real one.
	frozen := time.Date(2026, 3, 1, 23, 59, 59, int(950*time.Millisecond), time.Local)
	seedProfile(t, kv, frozen.AddDate(0, 0, -1))

	s := service.NewResetScheduler(kv, zap.NewNop(), func() time.Time { return frozen })
	s.Start()
	defer s.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		p, err := service.LoadProfile(kv)
		if err != nil {
			t.Fatalf("load profile: %v", err)
		}
		if p.LastMissionRefresh == "2026-03-01" {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("scheduler never performed the midnight reset")
}

func TestSchedulerStopBeforeFire(t *testing.T) {
	t.Parallel()
	kv := store.NewMemory()
	seedProfile(t, kv, time.Now())

	before, err := service.LoadProfile(kv)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}

	s := service.NewResetScheduler(kv, zap.NewNop(), nil)
	s.Start()
	s.Stop()
	s.Stop() // idempotent

	after, err := service.LoadProfile(kv)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if after.LastMissionRefresh != before.LastMissionRefresh {
		t.Fatalf("expected no reset after Stop")
	}
}
