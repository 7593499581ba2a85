package dogfight

import (
	"time"

	"github.com/1siamBot/geoscape/engine/rules"
)

// Options tunes a dogfight. Zero values are replaced by DefaultOptions.
type Options struct {
	// Frame is the simulated time covered by one Think call.
	Frame time.Duration
	// TimeScale converts weapon reload units into time.
	TimeScale time.Duration

	MoveInterval       time.Duration
	AnimInterval       time.Duration
	EscapeInterval     time.Duration
	DamageAnimInterval time.Duration

	ApproachStep int
	RetreatStep  int

	// BreakOffThreshold is the remaining-health fraction below which a
	// UFO tries to flee.
	BreakOffThreshold float64
	// UfoFireJitter is the +/- fraction applied to each UFO fire interval.
	UfoFireJitter float64
	Difficulty    int

	StartDistance int
	// StatusTicks is how many animation ticks a status message stays up.
	StatusTicks int
	// DamageFlashes is the number of damage-flash toggles after a craft hit.
	DamageFlashes int

	Layout Layout
}

// DefaultOptions returns the stock timing
func DefaultOptions() Options {
	return Options{
		Frame:              20 * time.Millisecond,
		TimeScale:          50 * time.Millisecond,
		MoveInterval:       40 * time.Millisecond,
		AnimInterval:       40 * time.Millisecond,
		EscapeInterval:     2 * time.Second,
		DamageAnimInterval: 500 * time.Millisecond,
		ApproachStep:       2,
		RetreatStep:        4,
		BreakOffThreshold:  0.25,
		UfoFireJitter:      0.25,
		StartDistance:      rules.StandoffDist,
		StatusTicks:        50,
		DamageFlashes:      6,
		Layout:             DefaultLayout(),
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Frame <= 0 {
		o.Frame = d.Frame
	}
	if o.TimeScale <= 0 {
		o.TimeScale = d.TimeScale
	}
	if o.MoveInterval <= 0 {
		o.MoveInterval = d.MoveInterval
	}
	if o.AnimInterval <= 0 {
		o.AnimInterval = d.AnimInterval
	}
	if o.EscapeInterval <= 0 {
		o.EscapeInterval = d.EscapeInterval
	}
	if o.DamageAnimInterval <= 0 {
		o.DamageAnimInterval = d.DamageAnimInterval
	}
	if o.ApproachStep <= 0 {
		o.ApproachStep = d.ApproachStep
	}
	if o.RetreatStep <= 0 {
		o.RetreatStep = d.RetreatStep
	}
	if o.BreakOffThreshold <= 0 {
		o.BreakOffThreshold = d.BreakOffThreshold
	}
	if o.UfoFireJitter < 0 {
		o.UfoFireJitter = 0
	}
	if o.StartDistance <= 0 || o.StartDistance > rules.StandoffDist {
		o.StartDistance = d.StartDistance
	}
	if o.StatusTicks <= 0 {
		o.StatusTicks = d.StatusTicks
	}
	if o.DamageFlashes <= 0 {
		o.DamageFlashes = d.DamageFlashes
	}
	if o.Layout == (Layout{}) {
		o.Layout = d.Layout
	}
	return o
}
