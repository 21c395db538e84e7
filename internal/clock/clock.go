package clock

import (
	"sync"
	"time"
)

// Layout is the wall-clock display format.
const Layout = "15:04:05 MST"

// Clock keeps a display string of the current time in a configured zone,
// refreshed once per tick for as long as it is started. Stop cancels the
// ticking goroutine; after Stop returns no further updates happen.
type Clock struct {
	interval time.Duration

	mu      sync.RWMutex
	loc     *time.Location
	current string
	started bool
	stop    chan struct{}
	done    chan struct{}
}

// New builds a clock for the named IANA time zone. interval is how often the
// display refreshes; the server uses a second, tests shorten it.
func New(tz string, interval time.Duration) (*Clock, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, err
	}

	c := &Clock{
		interval: interval,
		loc:      loc,
	}
	c.current = time.Now().In(loc).Format(Layout)

	return c, nil
}

// Start begins ticking. Starting an already started clock is a no-op.
func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return
	}
	c.started = true
	c.stop = make(chan struct{})
	c.done = make(chan struct{})

	go c.run(c.stop, c.done)
}

func (c *Clock) run(stop, done chan struct{}) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	defer close(done)

	for {
		select {
		case now := <-ticker.C:
			c.mu.Lock()
			c.current = now.In(c.loc).Format(Layout)
			c.mu.Unlock()
		case <-stop:
			return
		}
	}
}

// Stop cancels the ticking goroutine and waits for it to exit. Stopping a
// clock that is not running is a no-op.
func (c *Clock) Stop() {
	c.mu.Lock()
	if !c.started {
		c.mu.Unlock()

		return
	}
	c.started = false
	stop, done := c.stop, c.done
	c.mu.Unlock()

	close(stop)
	<-done
}

// Now returns the last rendered display string.
func (c *Clock) Now() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.current
}

// Timezone returns the configured zone name.
func (c *Clock) Timezone() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.loc.String()
}

// SetTimezone switches the clock to another zone. The display re-derives
// immediately, subsequent ticks use the new zone.
func (c *Clock) SetTimezone(tz string) error {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.loc = loc
	c.current = time.Now().In(loc).Format(Layout)
	c.mu.Unlock()

	return nil
}
