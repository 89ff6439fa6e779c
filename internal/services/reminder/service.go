package reminder

import (
	"context"
	"sync"

	"github.com/KirkDiggler/scrimbot/internal/common/clock"
	log "github.com/sirupsen/logrus"
)

// Config holds configuration for the reminder service
type Config struct {
	Clock clock.Clock
}

type pending struct {
	timer clock.Timer
	gen   uint64
}

type service struct {
	clock clock.Clock

	mu      sync.Mutex
	timers  map[string]*pending
	nextGen uint64
	stopped bool
}

// New creates a new reminder service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		clock:  cfg.Clock,
		timers: make(map[string]*pending),
	}, nil
}

// Schedule arms a reminder for input.Key
func (s *service) Schedule(ctx context.Context, input *ScheduleInput) (*ScheduleOutput, error) {
	if input == nil || input.Key == "" {
		return nil, ErrInvalidKey
	}

	if input.OnFire == nil {
		return nil, ErrNilCallback
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return nil, ErrStopped
	}

	output := &ScheduleOutput{}
	if existing, ok := s.timers[input.Key]; ok {
		existing.timer.Stop()
		delete(s.timers, input.Key)
		output.Replaced = true
	}

	delay := input.FireAt.Sub(s.clock.Now())
	if delay <= 0 {
		log.WithFields(log.Fields{
			"key":    input.Key,
			"fireAt": input.FireAt,
		}).Debug("Reminder time already passed, not scheduling")
		return output, nil
	}

	s.nextGen++
	gen := s.nextGen
	key := input.Key
	fireAt := input.FireAt
	onFire := input.OnFire

	timer := s.clock.AfterFunc(delay, func() {
		s.mu.Lock()
		current, ok := s.timers[key]
		if !ok || current.gen != gen {
			// Replaced or cancelled after the timer had already started firing
			s.mu.Unlock()
			return
		}
		delete(s.timers, key)
		s.mu.Unlock()

		log.WithFields(log.Fields{
			"key":    key,
			"fireAt": fireAt,
		}).Info("Reminder fired")

		onFire(context.Background(), key, fireAt)
	})

	s.timers[key] = &pending{timer: timer, gen: gen}
	output.Scheduled = true

	log.WithFields(log.Fields{
		"key":    key,
		"fireAt": fireAt,
		"delay":  delay,
	}).Info("Reminder scheduled")

	return output, nil
}

// Cancel disarms the reminder for input.Key
func (s *service) Cancel(ctx context.Context, input *CancelInput) (*CancelOutput, error) {
	if input == nil || input.Key == "" {
		return nil, ErrInvalidKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.timers[input.Key]
	if !ok {
		return &CancelOutput{}, nil
	}

	existing.timer.Stop()
	delete(s.timers, input.Key)

	return &CancelOutput{Cancelled: true}, nil
}

// Stop disarms every pending reminder; later Schedule calls fail
func (s *service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, p := range s.timers {
		p.timer.Stop()
		delete(s.timers, key)
	}
	s.stopped = true
}

// Pending reports how many reminders are armed
func (s *service) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}
