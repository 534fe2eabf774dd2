package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voidvanguard/sim"
)

func TestSteerManualFireWithoutTarget(t *testing.T) {
	origin := sim.Vec{X: 225, Y: 125}

	in := steer(sim.Input{}, false, sim.Vec{}, false, origin, true)
	assert.True(t, in.Fire, "a manual shot is not dropped when nothing is in range")
	assert.Equal(t, sim.Vec{X: 226, Y: 125}, in.Aim)

	in = steer(sim.Input{}, false, sim.Vec{X: 600, Y: 300}, true, origin, true)
	assert.True(t, in.Fire)
	assert.Equal(t, sim.Vec{X: 600, Y: 300}, in.Aim)

	in = steer(sim.Input{}, false, sim.Vec{X: 600, Y: 300}, true, origin, false)
	assert.False(t, in.Fire)
}

func TestSteerAutopilot(t *testing.T) {
	auto := sim.Input{Move: sim.Vec{X: -1}, Fire: true, Aim: sim.Vec{X: 10, Y: 20}}
	in := steer(auto, true, sim.Vec{}, false, sim.Vec{}, false)
	assert.Equal(t, auto, in)
}

func TestPumpEventsStopsWhenDone(t *testing.T) {
	poll := func() tcell.Event {
		return tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
	}
	out := make(chan tcell.Event) // never read
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		pumpEvents(poll, out, done)
		close(finished)
	}()

	close(done)
	select {
	case <-finished:
	case <-time.After(time.Second):
		require.Fail(t, "pump stayed blocked after done closed")
	}
}

func TestPumpEventsStopsOnNil(t *testing.T) {
	events := []tcell.Event{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), nil}
	poll := func() tcell.Event {
		ev := events[0]
		events = events[1:]
		return ev
	}
	out := make(chan tcell.Event, 4)
	pumpEvents(poll, out, make(chan struct{}))
	assert.Len(t, out, 1)
}
