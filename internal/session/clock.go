package session

import (
	"sync"
	"time"

	"github.com/go-co-op/gocron"
)

// DateLayout is the calendar-date format used throughout the engine
const DateLayout = "2006-01-02"

// Ticker supplies the engine's date signal: the current calendar date,
// re-emitted only when it changes from the last seen value.
type Ticker interface {
	Dates() <-chan string
	Start()
	Stop()
}

// DateClock polls the wall clock once a second and emits the calendar date on
// every change, so a midnight rollover is picked up without a restart.
// Sub-second precision is irrelevant here; the poll interval only bounds how
// late after midnight the rollover is noticed.
type DateClock struct {
	scheduler *gocron.Scheduler
	dates     chan string

	mu   sync.Mutex
	last string
}

// NewDateClock creates a stopped date clock
func NewDateClock() *DateClock {
	return &DateClock{
		scheduler: gocron.NewScheduler(time.Local),
		dates:     make(chan string, 1),
	}
}

// Dates returns the date signal channel. The channel is conflated: a slow
// consumer only sees the most recent date.
func (c *DateClock) Dates() <-chan string {
	return c.dates
}

// Start emits the current date immediately and begins polling
func (c *DateClock) Start() {
	c.tick()
	c.scheduler.Every(1).Second().Do(c.tick)
	c.scheduler.StartAsync()
}

// Stop halts the poller. No emissions happen after Stop returns.
func (c *DateClock) Stop() {
	c.scheduler.Stop()
}

func (c *DateClock) tick() {
	today := time.Now().Format(DateLayout)

	c.mu.Lock()
	if today == c.last {
		c.mu.Unlock()
		return
	}
	c.last = today
	c.mu.Unlock()

	select {
	case c.dates <- today:
	default:
		// Drop the stale date so the latest one always fits
		select {
		case <-c.dates:
		default:
		}
		select {
		case c.dates <- today:
		default:
		}
	}
}
