package clock

import (
	"fmt"
	"time"

	"github.com/lixenwraith/vi-clock/parameter"
)

// Countdown is the time left until the next New Year's midnight
type Countdown struct {
	Year    int
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// CountdownFrom computes the countdown from now to January 1st of the following year,
// midnight in now's location
func CountdownFrom(now time.Time) Countdown {
	year := now.Year() + 1
	target := time.Date(year, time.January, 1, 0, 0, 0, 0, now.Location())

	left := target.Sub(now)
	if left < 0 {
		left = 0
	}
	// Whole seconds, the display never shows a partial second as elapsed
	total := int64(left / time.Second)

	return Countdown{
		Year:    year,
		Days:    int(total / 86400),
		Hours:   int(total % 86400 / 3600),
		Minutes: int(total % 3600 / 60),
		Seconds: int(total % 60),
	}
}

func (c Countdown) String() string {
	return fmt.Sprintf("New Year %d in: %dd %dh %dm %ds", c.Year, c.Days, c.Hours, c.Minutes, c.Seconds)
}

// Intensity maps the countdown to the firework spawn multiplier
func Intensity(c Countdown) float64 {
	switch {
	case c.Days > 0:
		return parameter.IntensityNormal
	case c.Hours > 0:
		return parameter.IntensityLastDay
	case c.Minutes < parameter.FinalMinutes:
		return parameter.IntensityFinal
	default:
		return parameter.IntensityLastHour
	}
}
