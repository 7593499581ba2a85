package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimer_FiresOnInterval(t *testing.T) {
	tm := NewTimer(30 * time.Millisecond)
	tm.Start()

	assert.False(t, tm.Advance(10*time.Millisecond))
	assert.False(t, tm.Advance(10*time.Millisecond))
	assert.True(t, tm.Advance(10*time.Millisecond))
	assert.Equal(t, uint64(1), tm.Fires())
}

func TestTimer_NoCatchUpBurst(t *testing.T) {
	tm := NewTimer(10 * time.Millisecond)
	tm.Start()

	// five intervals elapse in one call: only one firing
	assert.True(t, tm.Advance(50*time.Millisecond))
	assert.Equal(t, uint64(1), tm.Fires())
	// the remainder does not carry a backlog
	assert.False(t, tm.Advance(5*time.Millisecond))
}

func TestTimer_StoppedDoesNotAdvance(t *testing.T) {
	tm := NewTimer(10 * time.Millisecond)
	assert.False(t, tm.Advance(time.Second))

	tm.Start()
	tm.Advance(5 * time.Millisecond)
	tm.Stop()
	assert.False(t, tm.Advance(time.Second))

	tm.Start()
	assert.True(t, tm.Advance(5*time.Millisecond), "elapsed time survives a stop")
}

func TestTimer_NonPositiveIntervalStops(t *testing.T) {
	tm := NewTimer(10 * time.Millisecond)
	tm.Start()
	tm.SetInterval(0)
	assert.False(t, tm.Running())
	assert.False(t, tm.Advance(time.Second))
}

func TestGameLoop_FixedStep(t *testing.T) {
	ct := &countingTicker{}
	gl := NewGameLoop(20, ct)

	gl.Advance(0.2)
	assert.Equal(t, 0, ct.n, "paused loop does not tick")

	gl.State = StatePlaying
	gl.Advance(0.12)
	assert.Equal(t, 2, ct.n)
	assert.Equal(t, uint64(2), gl.CurrentTick())

	// frame time is capped at 0.25s
	gl.Advance(10)
	assert.Equal(t, 7, ct.n)
	assert.Equal(t, 50*time.Millisecond, gl.TickDuration())
}

func TestEventBus_DispatchOrder(t *testing.T) {
	bus := NewEventBus()
	var got []EventType
	bus.On(EvtUfoHit, func(e Event) { got = append(got, e.Type) })
	bus.On(EvtDogfightEnded, func(e Event) {
		got = append(got, e.Type)
		bus.Emit(Event{Type: EvtUfoHit})
	})

	bus.Emit(Event{Type: EvtUfoHit})
	bus.Emit(Event{Type: EvtDogfightEnded})
	bus.Dispatch()
	assert.Equal(t, []EventType{EvtUfoHit, EvtDogfightEnded}, got)
	assert.Equal(t, 1, bus.Pending())

	bus.Dispatch()
	assert.Len(t, got, 3)
}

func TestPercentAndBetween(t *testing.T) {
	r := NewRand(7)
	assert.False(t, Percent(r, 0))
	assert.True(t, Percent(r, 100))
	for i := 0; i < 100; i++ {
		v := Between(r, 3, 6)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 6)
	}
	assert.Equal(t, 4, Between(r, 4, 4))
}
