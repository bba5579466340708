// Package sfx synthesizes short sound cues for game events and plays them
// through the system speaker.
package sfx

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-tank/internal/core"
)

// SampleRate is the rate all cues are synthesized at.
const SampleRate = beep.SampleRate(44100)

// Cue timings
const (
	fireDuration      = 40 * time.Millisecond
	explosionDuration = 250 * time.Millisecond
	hitDuration       = 150 * time.Millisecond
	noteDuration      = 90 * time.Millisecond
	gameOverNote      = 220 * time.Millisecond
	attack            = 5 * time.Millisecond
)

// Sound returns a finite streamer for the cue, or nil for unknown cues.
func Sound(cue core.Cue, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case core.CueFire:
		return tone(1320, fireDuration, rate)
	case core.CueExplosion:
		rumble := tone(70, explosionDuration, rate)
		crackle := newEnvelope(newNoise(explosionDuration, rate), explosionDuration, attack, explosionDuration-attack, rate)
		return beep.Mix(newVolume(rumble, 0.5), newVolume(crackle, 0.45))
	case core.CueHit:
		return newEnvelope(newBuzz(120, hitDuration, rate), hitDuration, attack, hitDuration/2, rate)
	case core.CueHeal:
		return beep.Seq(tone(660, noteDuration, rate), tone(990, noteDuration, rate))
	case core.CueLevelUp:
		return beep.Seq(tone(523.25, noteDuration, rate), tone(659.25, noteDuration, rate), tone(783.99, 2*noteDuration, rate))
	case core.CueGameOver:
		return beep.Seq(tone(440, gameOverNote, rate), tone(330, gameOverNote, rate), tone(220, 2*gameOverNote, rate))
	default:
		return nil
	}
}

// tone is a sine note with attack/release shaping. Frequencies the rate
// can't represent yield silence of the same length.
func tone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return generators.Silence(rate.N(d))
	}
	return newEnvelope(beep.Take(rate.N(d), sine), d, attack, d/2, rate)
}

// newVolume scales a stream linearly. math.Log2(0) is -Inf, so 0 is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// envelope applies a linear attack and release to a finite stream.
type envelope struct {
	streamer beep.Streamer
	position int
	total    int
	attack   int
	release  int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		total:    rate.N(d),
		attack:   rate.N(attack),
		release:  rate.N(release),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := range n {
		if e.position >= e.total {
			return i, false
		}

		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; remaining < e.release {
			vol = min(vol, float64(remaining)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// noise is white noise of fixed length. The seed is fixed so cues sound
// the same every time.
type noise struct {
	rng       *rand.Rand
	remaining int
}

func newNoise(d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &noise{rng: rand.New(rand.NewSource(7)), remaining: rate.N(d)}
}

func (g *noise) Stream(samples [][2]float64) (n int, ok bool) {
	if g.remaining <= 0 {
		return 0, false
	}
	n = min(len(samples), g.remaining)
	for i := range n {
		v := g.rng.Float64()*2 - 1
		samples[i][0] = v
		samples[i][1] = v
	}
	g.remaining -= n
	return n, true
}

func (g *noise) Err() error { return nil }

// buzz is a harsh tone made of a fundamental and two harmonics.
type buzz struct {
	rate      beep.SampleRate
	freq      float64
	pos       int
	remaining int
}

func newBuzz(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &buzz{rate: rate, freq: freq, remaining: rate.N(d)}
}

func (g *buzz) Stream(samples [][2]float64) (n int, ok bool) {
	if g.remaining <= 0 {
		return 0, false
	}
	n = min(len(samples), g.remaining)
	for i := range n {
		t := float64(g.pos) / float64(g.rate)
		v := 0.5*math.Sin(2*math.Pi*g.freq*t) +
			0.25*math.Sin(2*math.Pi*g.freq*2*t) +
			0.125*math.Sin(2*math.Pi*g.freq*3*t)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	g.remaining -= n
	return n, true
}

func (g *buzz) Err() error { return nil }
