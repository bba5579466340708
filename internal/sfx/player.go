package sfx

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-tank/internal/core"
)

// Master volume in log2 steps: 0 plays cues at full scale, -1 at half.
const (
	DefaultVolume = 0.0
	MuteVolume    = -10.0 // At or below this nothing is heard
)

// Player plays cues on the system speaker. Until Init succeeds every call
// is a no-op, so a game can run without an audio device.
type Player struct {
	mu     sync.Mutex
	volume float64
	ready  bool
}

// NewPlayer creates a player with a master volume in log2 steps.
func NewPlayer(volume float64) *Player {
	return &Player{volume: volume}
}

// Init opens the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return err
	}
	p.ready = true
	return nil
}

// Play starts the given cues. Repeated cues of one tick play once.
func (p *Player) Play(cues []core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready || len(cues) == 0 {
		return
	}

	seen := make(map[core.Cue]bool, len(cues))
	for _, c := range cues {
		if seen[c] {
			continue
		}
		seen[c] = true
		if s := p.stream(c); s != nil {
			speaker.Play(s)
		}
	}
}

// stream returns the cue scaled by the master volume, or nil for unknown cues.
func (p *Player) stream(c core.Cue) beep.Streamer {
	s := Sound(c, SampleRate)
	if s == nil {
		return nil
	}
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   p.volume,
		Silent:   p.volume <= MuteVolume,
	}
}

// Close stops playback and releases the audio device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.ready = false
}
