package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingTicker struct{ n int }

func (c *countingTicker) Think() { c.n++ }

func TestGameLoop_PausedUntilPlay(t *testing.T) {
	target := &countingTicker{}
	gl := NewGameLoop(64, target)

	assert.Equal(t, StatePaused, gl.State)
	gl.Advance(0.125)
	assert.Equal(t, 0, target.n)

	gl.Play()
	gl.Advance(0.125)
	assert.Equal(t, 8, target.n)
	assert.Equal(t, uint64(8), gl.CurrentTick())

	gl.Pause()
	gl.Advance(0.125)
	assert.Equal(t, 8, target.n)
}

func TestGameLoop_CapsLongFrames(t *testing.T) {
	target := &countingTicker{}
	gl := NewGameLoop(64, target)
	gl.Play()

	gl.Advance(3)
	assert.Equal(t, 16, target.n, "a stalled frame is capped at a quarter second")
}
