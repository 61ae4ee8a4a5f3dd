package service

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/fitquest/fitquest-cli/internal/store"
)

// ResetScheduler arms a single timer for the next local midnight and
// performs the daily mission/progress reset when it fires. The clock
// is injectable so rollovers can be simulated in tests. Stop cancels
// the pending timer; no other cleanup is needed.
type ResetScheduler struct {
	kv  store.KV
	log *zap.Logger
	now func() time.Time

	mu      sync.Mutex
	timer   *time.Timer
	done    chan struct{}
	started bool
}

func NewResetScheduler(kv store.KV, log *zap.Logger, now func() time.Time) *ResetScheduler {
	if now == nil {
		now = time.Now
	}
	return &ResetScheduler{
		kv:   kv,
		log:  log,
		now:  now,
		done: make(chan struct{}),
	}
}

func (s *ResetScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true
	s.arm()
}

func (s *ResetScheduler) arm() {
	d := UntilNextMidnight(s.now())
	s.timer = time.AfterFunc(d, s.fire)
}

func (s *ResetScheduler) fire() {
	select {
	case <-s.done:
		return
	default:
	}
	if err := ResetDailyMissions(s.kv, s.now()); err != nil {
		s.log.Error("daily mission reset failed", zap.Error(err))
	} else {
		s.log.Info("daily missions reset at midnight rollover")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-s.done:
	default:
		s.arm()
	}
}

func (s *ResetScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-s.done:
		return
	default:
		close(s.done)
	}
	if s.timer != nil {
		s.timer.Stop()
	}
}

// UntilNextMidnight is the duration from now to the next local
// midnight.
func UntilNextMidnight(now time.Time) time.Duration {
	y, m, d := now.Date()
	next := time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
	return next.Sub(now)
}
