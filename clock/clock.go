package clock

import (
	"fmt"
	"time"

	"github.com/lixenwraith/vi-clock/parameter"
)

// Snapshot is the formatted state shown for one clock tick
type Snapshot struct {
	Time      string
	Date      string
	Countdown Countdown
	Intensity float64
}

// Update is the result of one clock tick
type Update struct {
	Snapshot

	// Announce is set on the first tick of a new hour
	Announce bool
	Hour     int
	// NewDay is set when the midnight announcement fires, the daily message changes
	NewDay bool
}

// Clock tracks hour changes across ticks
type Clock struct {
	time     TimeProvider
	lastHour int
}

// New creates a clock over the given time source
func New(tp TimeProvider) *Clock {
	if tp == nil {
		tp = SystemTime{}
	}
	return &Clock{time: tp, lastHour: -1}
}

// Now returns the provider time
func (c *Clock) Now() time.Time {
	return c.time.Now()
}

// Snapshot formats the current time without touching hour tracking
func (c *Clock) Snapshot() Snapshot {
	return snapshotAt(c.time.Now())
}

func snapshotAt(now time.Time) Snapshot {
	cd := CountdownFrom(now)
	return Snapshot{
		Time:      now.Format(parameter.TimeLayout),
		Date:      now.Format(parameter.DateLayout),
		Countdown: cd,
		Intensity: Intensity(cd),
	}
}

// Tick formats the current time and reports hour announcements
// An hour change is announced only while still inside minute zero, so starting mid-hour
// stays quiet until the next full hour
func (c *Clock) Tick() Update {
	now := c.time.Now()
	u := Update{Snapshot: snapshotAt(now)}

	hour := now.Hour()
	if hour != c.lastHour {
		c.lastHour = hour
		if now.Minute() == 0 {
			u.Announce = true
			u.Hour = hour
			u.NewDay = hour == 0
		}
	}
	return u
}

// HourPhrase renders a 24h hour as the spoken 12h phrase
func HourPhrase(hour int) string {
	hour = ((hour % 24) + 24) % 24
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("It's %d o'clock %s", h, period)
}
