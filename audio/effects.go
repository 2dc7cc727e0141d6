package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/term-invaders/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	return &oscillator{
		freq:     freq,
		phase:    0,
		duration: samples,
		position: 0,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an ADSR envelope (simplified to just attack/release)
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		position:       0,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0

		// Attack phase
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		// Release phase
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// CreateShootSound generates a short pew for the player cannon
func CreateShootSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(1245.0, constants.ShootSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constants.ShootSoundDuration, constants.ShootSoundAttack, constants.ShootSoundRelease, rate)

	return newVolume(shaped, constants.ShootVolume*constants.MasterVolume)
}

// CreateInvaderDownSound generates a noise burst for an invader kill
func CreateInvaderDownSound(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, constants.InvaderDownDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, constants.InvaderDownDuration, constants.InvaderDownAttack, constants.InvaderDownRelease, rate)

	// Low saw underneath gives the pop some body
	body := NewOscillator(150.0, constants.InvaderDownDuration, WaveSaw, rate)
	bodyShaped := NewEnvelope(body, constants.InvaderDownDuration, constants.InvaderDownAttack, constants.InvaderDownRelease, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.6),
		newVolume(bodyShaped, 0.4),
	)

	return newVolume(mixed, constants.InvaderDownVolume*constants.MasterVolume)
}

// CreatePlayerDownSound generates a long low rumble for losing a life
func CreatePlayerDownSound(rate beep.SampleRate) beep.Streamer {
	low := NewOscillator(75.0, constants.PlayerDownDuration, WaveSaw, rate)
	lowShaped := NewEnvelope(low, constants.PlayerDownDuration, constants.PlayerDownAttack, constants.PlayerDownRelease, rate)

	noise := NewOscillator(0, constants.PlayerDownDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, constants.PlayerDownDuration, constants.PlayerDownAttack, constants.PlayerDownRelease, rate)

	mixed := beep.Mix(
		newVolume(lowShaped, 0.7),
		newVolume(noiseShaped, 0.3),
	)

	return newVolume(mixed, constants.PlayerDownVolume*constants.MasterVolume)
}

// CreateLevelClearSound generates a rising three-note fanfare
func CreateLevelClearSound(rate beep.SampleRate) beep.Streamer {
	note := func(freq float64) beep.Streamer {
		osc := NewOscillator(freq, constants.LevelClearNoteDuration, WaveSquare, rate)
		return NewEnvelope(osc, constants.LevelClearNoteDuration, constants.LevelClearAttack, constants.LevelClearRelease, rate)
	}

	// C5, E5, G5
	sequence := beep.Seq(note(523.25), note(659.25), note(783.99))

	return newVolume(sequence, constants.LevelClearVolume*constants.MasterVolume)
}

// CreateLifeBonusSound generates a bright two-note chime
func CreateLifeBonusSound(rate beep.SampleRate) beep.Streamer {
	note := func(freq float64) beep.Streamer {
		osc := NewOscillator(freq, constants.LifeBonusNoteDuration, WaveSine, rate)
		return NewEnvelope(osc, constants.LifeBonusNoteDuration, constants.LifeBonusAttack, constants.LifeBonusRelease, rate)
	}

	// A5, A6
	sequence := beep.Seq(note(880.0), note(1760.0))

	return newVolume(sequence, constants.LifeBonusVolume*constants.MasterVolume)
}

// CreateMarchSound generates one step of the alternating march beat
func CreateMarchSound(beat int, rate beep.SampleRate) beep.Streamer {
	// Two low tones a whole step apart, like the original cabinet thump
	freq := 110.0
	if beat != 0 {
		freq = 98.0
	}

	osc := NewOscillator(freq, constants.MarchSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constants.MarchSoundDuration, constants.MarchSoundAttack, constants.MarchSoundRelease, rate)

	return newVolume(shaped, constants.MarchVolume*constants.MasterVolume)
}
