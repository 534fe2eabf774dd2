package sfx

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"voidvanguard/sim"
)

// MaxVolume is the top of the volume scale
const MaxVolume = 128

// Player mixes cues onto the speaker
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	sr          beep.SampleRate
	volume      int
	enabled     bool
	initialized bool
	log         *zap.Logger
}

// NewPlayer creates a player. Nothing is audible until Init succeeds.
func NewPlayer(sampleRate, volume int, enabled bool, log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Player{
		mixer:   &beep.Mixer{},
		sr:      beep.SampleRate(sampleRate),
		enabled: enabled,
		log:     log,
	}
	p.SetVolume(volume)
	return p
}

// Init opens the speaker. Disabled players skip it.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.initialized {
		return nil
	}
	if err := speaker.Init(p.sr, p.sr.N(100*time.Millisecond)); err != nil {
		// Nothing would ever drain the mixer
		p.enabled = false
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops playback
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// Volume returns the volume on the 0..MaxVolume scale
func (p *Player) Volume() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// SetVolume sets the volume, clamped to 0..MaxVolume
func (p *Player) SetVolume(v int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = min(MaxVolume, max(0, v))
}

// Play queues a cue
func (p *Player) Play(cue Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.volume == 0 {
		return
	}
	s := withVolume(Streamer(cue, p.sr), p.volume)
	if p.initialized {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	} else {
		p.mixer.Add(s)
	}
}

// PlayReport plays the cues for what happened in one simulation step
func (p *Player) PlayReport(r sim.Report) {
	if r.ShotsFired > 0 {
		p.Play(CueShot)
	}
	if r.Explosions > 0 {
		p.Play(CueExplosion)
	}
	if r.Damage() > 0 && !r.PlayerDead {
		p.Play(CueHit)
	}
	if r.PlayerDead {
		p.Play(CueGameOver)
	}
}

// Pending returns the number of cues still playing
func (p *Player) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return p.mixer.Len()
}

// withVolume scales s by volume/MaxVolume
func withVolume(s beep.Streamer, volume int) beep.Streamer {
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	gain := float64(volume) / MaxVolume
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain), Silent: false}
}
