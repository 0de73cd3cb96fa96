package game

import (
	"time"
)

// DefaultCooldown is the debounce window for toggle actions.
const DefaultCooldown = 200 * time.Millisecond

// Clock exposes the current time for debounce decisions.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// CooldownGate accepts a key at most once per window.
// Each key keeps its own last-accepted timestamp; callers that want several
// inputs debounced together pass the same key for all of them.
type CooldownGate struct {
	clock  Clock
	window time.Duration
	last   map[string]time.Time
}

// NewCooldownGate creates a gate. A nil clock uses the system time.
func NewCooldownGate(window time.Duration, clock Clock) *CooldownGate {
	if clock == nil {
		clock = systemClock{}
	}
	return &CooldownGate{
		clock:  clock,
		window: window,
		last:   make(map[string]time.Time),
	}
}

// Allow reports whether key is accepted now, and if so starts a new
// window for it. Rejected attempts do not extend the window.
func (g *CooldownGate) Allow(key string) bool {
	now := g.clock.Now()
	if last, ok := g.last[key]; ok && now.Sub(last) < g.window {
		return false
	}
	g.last[key] = now
	return true
}
