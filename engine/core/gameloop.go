package core

import "time"

// GameState is whether the loop runs ticks. A new loop is paused.
type GameState uint8

const (
	StatePaused GameState = iota
	StatePlaying
)

// Ticker is advanced once per simulation tick
type Ticker interface {
	Think()
}

// GameLoop manages the fixed-timestep loop that drives the geoscape
type GameLoop struct {
	Target      Ticker
	State       GameState
	TickRate    float64 // fixed ticks per second
	TickCount   uint64
	accumulator float64
	lastTime    time.Time
}

// NewGameLoop creates a game loop with fixed tick rate
func NewGameLoop(tickRate float64, target Ticker) *GameLoop {
	return &GameLoop{
		Target:   target,
		TickRate: tickRate,
		lastTime: time.Now(),
	}
}

// Update should be called every render frame. It runs the simulation
// at fixed timestep so every encounter sees the same frame duration.
// Returns the interpolation alpha for smooth rendering.
func (gl *GameLoop) Update() float64 {
	now := time.Now()
	frameTime := now.Sub(gl.lastTime).Seconds()
	gl.lastTime = now
	return gl.Advance(frameTime)
}

// Advance feeds frameTime seconds into the accumulator and runs as many
// whole ticks as fit.
func (gl *GameLoop) Advance(frameTime float64) float64 {
	// Cap frame time to avoid spiral of death
	if frameTime > 0.25 {
		frameTime = 0.25
	}

	dt := 1.0 / gl.TickRate
	gl.accumulator += frameTime

	for gl.accumulator >= dt {
		if gl.State == StatePlaying && gl.Target != nil {
			gl.Target.Think()
			gl.TickCount++
		}
		gl.accumulator -= dt
	}

	return gl.accumulator / dt
}

// TickDuration is the simulated time covered by one tick
func (gl *GameLoop) TickDuration() time.Duration {
	return time.Duration(float64(time.Second) / gl.TickRate)
}

// Play starts or resumes the game
func (gl *GameLoop) Play() {
	gl.State = StatePlaying
	gl.lastTime = time.Now()
}

// Pause pauses the game
func (gl *GameLoop) Pause() {
	gl.State = StatePaused
}

// CurrentTick returns the current simulation tick
func (gl *GameLoop) CurrentTick() uint64 {
	return gl.TickCount
}
