// Package notify holds the single transient message shown by the CLI.
package notify

import (
	"sync"
	"time"
)

type Kind int

const (
	Info Kind = iota
	Error
)

func (k Kind) String() string {
	if k == Error {
		return "error"
	}
	return "info"
}

type Notification struct {
	Message string
	Kind    Kind
}

// Slot shows at most one notification. Set replaces the current one and
// restarts the expiry timer.
type Slot struct {
	mu       sync.Mutex
	duration time.Duration
	current  *Notification
	timer    *time.Timer
	gen      uint64
}

func NewSlot(d time.Duration) *Slot {
	return &Slot{duration: d}
}

func (s *Slot) Set(message string, kind Kind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.gen++
	gen := s.gen
	s.current = &Notification{Message: message, Kind: kind}
	s.timer = time.AfterFunc(s.duration, func() { s.expire(gen) })
}

func (s *Slot) Info(message string)  { s.Set(message, Info) }
func (s *Slot) Error(message string) { s.Set(message, Error) }

// a stale timer must not clear a newer notification
func (s *Slot) expire(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen == gen {
		s.current = nil
		s.timer = nil
	}
}

// Current returns the visible notification, if any.
func (s *Slot) Current() (Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Notification{}, false
	}
	return *s.current, true
}

// Stop clears the slot and cancels a pending expiry.
func (s *Slot) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.gen++
	s.current = nil
	s.timer = nil
}
