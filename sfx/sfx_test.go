package sfx

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voidvanguard/sim"
)

const testRate = beep.SampleRate(22050)

// drain reads s to the end and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = max(peak, smp[0], -smp[0])
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer did not end")
	return 0, 0
}

func TestEveryCueIsFiniteAndBounded(t *testing.T) {
	for c := Cue(0); c < cueCount; c++ {
		t.Run(c.String(), func(t *testing.T) {
			n, peak := drain(t, Streamer(c, testRate))
			assert.Positive(t, n)
			assert.LessOrEqual(t, n, testRate.N(time.Second))
			assert.Positive(t, peak)
			assert.LessOrEqual(t, peak, 1.0)
		})
	}
}

func TestWithVolumeScales(t *testing.T) {
	full := make([][2]float64, 256)
	half := make([][2]float64, 256)

	_, ok := withVolume(Streamer(CueHit, testRate), MaxVolume).Stream(full)
	require.True(t, ok)
	_, ok = withVolume(Streamer(CueHit, testRate), MaxVolume/2).Stream(half)
	require.True(t, ok)

	for i := range full {
		assert.InDelta(t, full[i][0]/2, half[i][0], 1e-9)
	}

	silent := make([][2]float64, 64)
	withVolume(Streamer(CueHit, testRate), 0).Stream(silent)
	for _, smp := range silent {
		assert.Zero(t, smp[0])
	}
}

func TestPlayerQueuesCues(t *testing.T) {
	p := NewPlayer(int(testRate), 64, true, nil)
	p.Play(CueShot)
	assert.Equal(t, 1, p.Pending())

	p.PlayReport(sim.Report{ShotsFired: 3, Explosions: 1, ContactDamage: 15})
	assert.Equal(t, 4, p.Pending())

	p.PlayReport(sim.Report{ContactDamage: 15, PlayerDead: true})
	assert.Equal(t, 5, p.Pending(), "death plays the game over cue instead of the hit")
}

func TestPlayerMutedOrDisabled(t *testing.T) {
	muted := NewPlayer(int(testRate), 0, true, nil)
	muted.Play(CueShot)
	assert.Zero(t, muted.Pending())

	disabled := NewPlayer(int(testRate), 64, false, nil)
	require.NoError(t, disabled.Init())
	disabled.Play(CueShot)
	assert.Zero(t, disabled.Pending())
	disabled.Close()
}

func TestPlayerVolumeClamp(t *testing.T) {
	p := NewPlayer(int(testRate), 500, true, nil)
	assert.Equal(t, MaxVolume, p.Volume())
	p.SetVolume(-8)
	assert.Zero(t, p.Volume())
}
