package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/term-invaders/constants"
)

const sampleRate = beep.SampleRate(constants.SampleRate)

// SoundManager manages all game audio: one-shot cues, the march beat
// and the looping background track. Every method is safe to call when
// the speaker failed to initialize; the game then runs silently. It
// satisfies the simulation's Sounder contract.
type SoundManager struct {
	mu            sync.Mutex
	mixer         *beep.Mixer
	musicStreamer *beep.Ctrl
	initialized   bool

	// March beat state; self-throttled so the simulation can report
	// every tick
	marchBeat     int
	lastMarchTime time.Time
	marchInterval time.Duration
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:         &beep.Mixer{},
		marchInterval: constants.MarchIntervalMax,
	}
}

// Initialize sets up the audio system. Failure is not fatal to the
// game; all playback methods become no-ops.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*constants.SpeakerBufferMs))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and shuts the audio system down. It is
// idempotent and safe to call from signal handlers concurrently with
// normal shutdown.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if sm.musicStreamer != nil {
		sm.musicStreamer.Paused = true
	}

	sm.mixer.Clear()
	sm.initialized = false
}

// StartMusic begins the looping background track. Starting twice keeps
// the existing loop.
func (sm *SoundManager) StartMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if sm.musicStreamer != nil && !sm.musicStreamer.Paused {
		return
	}

	track := newVolume(NewMusicGenerator(sampleRate), constants.MusicVolume*constants.MasterVolume)
	ctrl := &beep.Ctrl{Streamer: track, Paused: false}
	sm.musicStreamer = ctrl
	sm.mixer.Add(ctrl)
}

// StopMusic pauses the background track
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.musicStreamer != nil {
		sm.musicStreamer.Paused = true
	}
}

// PlayShoot plays the player cannon cue
func (sm *SoundManager) PlayShoot() {
	sm.playCue(CreateShootSound(sampleRate))
}

// PlayInvaderDown plays the invader destruction cue
func (sm *SoundManager) PlayInvaderDown() {
	sm.playCue(CreateInvaderDownSound(sampleRate))
}

// PlayPlayerDown plays the life-loss cue
func (sm *SoundManager) PlayPlayerDown() {
	sm.playCue(CreatePlayerDownSound(sampleRate))
}

// PlayLevelComplete plays the level-clear fanfare
func (sm *SoundManager) PlayLevelComplete() {
	sm.playCue(CreateLevelClearSound(sampleRate))
}

// PlayLifeBonus plays the extra-life chime
func (sm *SoundManager) PlayLifeBonus() {
	sm.playCue(CreateLifeBonusSound(sampleRate))
}

// UpdateMarch advances the marching beat. The simulation calls this
// every tick; the manager derives a cadence from the live ratio (fewer
// invaders, faster beat) and decides internally when to emit a step.
func (sm *SoundManager) UpdateMarch(remaining, total int) {
	if remaining <= 0 || total <= 0 {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	ratio := float64(remaining) / float64(total)
	spread := constants.MarchIntervalMax - constants.MarchIntervalMin
	sm.marchInterval = constants.MarchIntervalMin + time.Duration(ratio*float64(spread))

	if !sm.initialized {
		return
	}

	now := time.Now()
	if now.Sub(sm.lastMarchTime) >= sm.marchInterval {
		sm.mixer.Add(CreateMarchSound(sm.marchBeat, sampleRate))
		sm.marchBeat = 1 - sm.marchBeat
		sm.lastMarchTime = now
	}
}

// MarchInterval returns the current march cadence
func (sm *SoundManager) MarchInterval() time.Duration {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.marchInterval
}

func (sm *SoundManager) playCue(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.mixer.Add(s)
}
