package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// MusicGenerator produces the looping background track: a slow kick
// pulse over an alternating bass drone. It streams indefinitely,
// wrapping at the bar boundary; playback is stopped through the
// beep.Ctrl that owns it.
type MusicGenerator struct {
	sr      beep.SampleRate
	pos     int
	beatLen int
	barLen  int
}

// NewMusicGenerator creates the background track generator
func NewMusicGenerator(sr beep.SampleRate) *MusicGenerator {
	beatLen := sr.N(time.Millisecond * 600) // 100 BPM
	return &MusicGenerator{
		sr:      sr,
		beatLen: beatLen,
		barLen:  beatLen * 4,
	}
}

func (g *MusicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		barPos := g.pos % g.barLen
		beatPos := barPos % g.beatLen
		t := float64(beatPos) / float64(g.sr)

		// Kick on every beat: pitch and amplitude decay together
		kick := 0.0
		kickLen := g.sr.N(time.Millisecond * 100)
		if beatPos < kickLen {
			kickEnv := 1.0 - float64(beatPos)/float64(kickLen)
			kickFreq := 60 * (1 + 2*kickEnv)
			kick = 0.4 * kickEnv * math.Sin(2*math.Pi*kickFreq*t)
		}

		// Bass drone alternates between two notes per half bar
		bassFreq := 110.0
		if (barPos/g.beatLen)%4 >= 2 {
			bassFreq = 82.41 // E2
		}
		bass := 0.15 * math.Sin(2*math.Pi*bassFreq*float64(barPos)/float64(g.sr))

		sample := kick + bass
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *MusicGenerator) Err() error {
	return nil
}
