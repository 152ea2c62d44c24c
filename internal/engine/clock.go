package engine

import (
	"sync"
	"time"
)

// DefaultTickRate is the nominal simulation rate in ticks per second.
const DefaultTickRate = 60

// Clock supplies simulation ticks. Each value received from C is one logical
// step regardless of the real interval between them.
type Clock interface {
	C() <-chan time.Time
	Stop()
}

// TickInterval returns the wall-clock interval for a tick rate.
// Non-positive rates fall back to DefaultTickRate.
func TickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// TickerClock is a real-time Clock backed by time.Ticker.
type TickerClock struct {
	ticker *time.Ticker
}

// NewTickerClock creates a clock firing rate times per second.
func NewTickerClock(rate int) *TickerClock {
	return &TickerClock{ticker: time.NewTicker(TickInterval(rate))}
}

// C returns the tick channel.
func (c *TickerClock) C() <-chan time.Time {
	return c.ticker.C
}

// Stop stops the underlying ticker.
func (c *TickerClock) Stop() {
	c.ticker.Stop()
}

// FastClock delivers ticks as fast as they are consumed, stamping them with a
// synthetic time that advances by a fixed step. Used for headless runs.
type FastClock struct {
	ch   chan time.Time
	done chan struct{}
	once sync.Once
}

// NewFastClock starts a clock whose synthetic time begins at start.
func NewFastClock(start time.Time, step time.Duration) *FastClock {
	c := &FastClock{
		ch:   make(chan time.Time),
		done: make(chan struct{}),
	}
	go func() {
		now := start
		for {
			select {
			case c.ch <- now:
				now = now.Add(step)
			case <-c.done:
				return
			}
		}
	}()
	return c
}

// C returns the tick channel.
func (c *FastClock) C() <-chan time.Time {
	return c.ch
}

// Stop terminates the clock goroutine. Safe to call more than once.
func (c *FastClock) Stop() {
	c.once.Do(func() { close(c.done) })
}

// ManualClock fires only when Fire is called. Intended for tests.
type ManualClock struct {
	mu   sync.Mutex
	ch   chan time.Time
	now  time.Time
	step time.Duration
}

// NewManualClock returns a clock whose first tick is stamped start.
func NewManualClock(start time.Time, step time.Duration) *ManualClock {
	return &ManualClock{
		ch:   make(chan time.Time, 1),
		now:  start,
		step: step,
	}
}

// C returns the tick channel.
func (c *ManualClock) C() <-chan time.Time {
	return c.ch
}

// Fire delivers one tick. It blocks while a previous tick is still unread.
func (c *ManualClock) Fire() {
	c.mu.Lock()
	t := c.now
	c.now = c.now.Add(c.step)
	c.mu.Unlock()
	c.ch <- t
}

// Now returns the timestamp of the next tick.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Stop is a no-op; ManualClock owns no goroutines.
func (c *ManualClock) Stop() {}
