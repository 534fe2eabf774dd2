package sfx

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// Cue identifies a sound effect
type Cue uint8

const (
	CueShot Cue = iota
	CueExplosion
	CueHit
	CueGameOver
	CuePurchase
	CueMenu
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueShot:
		return "shot"
	case CueExplosion:
		return "explosion"
	case CueHit:
		return "hit"
	case CueGameOver:
		return "game over"
	case CuePurchase:
		return "purchase"
	case CueMenu:
		return "menu"
	default:
		return "unknown"
	}
}

// Streamer synthesizes a finite streamer for cue at the given sample rate
func Streamer(cue Cue, sr beep.SampleRate) beep.Streamer {
	switch cue {
	case CueShot:
		return tone(sr, 880, 60*time.Millisecond, 30)
	case CueExplosion:
		return beep.Take(sr.N(300*time.Millisecond), newNoiseBurst(sr))
	case CueHit:
		return tone(sr, 150, 120*time.Millisecond, 12)
	case CueGameOver:
		return beep.Seq(
			tone(sr, 440, 180*time.Millisecond, 6),
			tone(sr, 330, 180*time.Millisecond, 6),
			tone(sr, 220, 400*time.Millisecond, 4),
		)
	case CuePurchase:
		return beep.Seq(
			tone(sr, 988, 80*time.Millisecond, 10),
			tone(sr, 1319, 160*time.Millisecond, 8),
		)
	default:
		return tone(sr, 1200, 30*time.Millisecond, 40)
	}
}

// tone is a sine at freq cut to d with an exponential decay of rate per second
func tone(sr beep.SampleRate, freq float64, d time.Duration, rate float64) beep.Streamer {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		// Only happens for freq above Nyquist
		return beep.Silence(sr.N(d))
	}
	return beep.Take(sr.N(d), &decay{Streamer: sine, sr: sr, rate: rate})
}

// decay fades a streamer out exponentially
type decay struct {
	beep.Streamer
	sr   beep.SampleRate
	rate float64
	pos  int
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(d.pos) / float64(d.sr)
		env := 0.3 * math.Exp(-t*d.rate)
		samples[i][0] *= env
		samples[i][1] *= env
		d.pos++
	}
	return n, ok
}

// noiseBurst is crackling noise over a low rumble with a fast decay
type noiseBurst struct {
	sr  beep.SampleRate
	rng *rand.Rand
	pos int
}

func newNoiseBurst(sr beep.SampleRate) *noiseBurst {
	return &noiseBurst{
		sr:  sr,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (g *noiseBurst) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 10)
		noise := g.rng.Float64()*2 - 1
		rumble := 0.3 * math.Sin(2*math.Pi*70*t)

		sample := envelope * (0.3*noise + rumble)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *noiseBurst) Err() error {
	return nil
}
