package constants

import "time"

// Audio engine configuration
const (
	SampleRate      = 48000
	SpeakerBufferMs = 100
)

// Sound effect envelopes
const (
	ShootSoundDuration = 90 * time.Millisecond
	ShootSoundAttack   = 2 * time.Millisecond
	ShootSoundRelease  = 60 * time.Millisecond

	InvaderDownDuration = 150 * time.Millisecond
	InvaderDownAttack   = 2 * time.Millisecond
	InvaderDownRelease  = 120 * time.Millisecond

	PlayerDownDuration = 400 * time.Millisecond
	PlayerDownAttack   = 5 * time.Millisecond
	PlayerDownRelease  = 300 * time.Millisecond

	LevelClearNoteDuration = 120 * time.Millisecond
	LevelClearAttack       = 3 * time.Millisecond
	LevelClearRelease      = 90 * time.Millisecond

	LifeBonusNoteDuration = 150 * time.Millisecond
	LifeBonusAttack       = 3 * time.Millisecond
	LifeBonusRelease      = 110 * time.Millisecond

	MarchSoundDuration = 70 * time.Millisecond
	MarchSoundAttack   = 2 * time.Millisecond
	MarchSoundRelease  = 50 * time.Millisecond
)

// March beat cadence: interval shrinks from MarchIntervalMax toward
// MarchIntervalMin as the formation thins out
const (
	MarchIntervalMin = 100 * time.Millisecond
	MarchIntervalMax = 500 * time.Millisecond
)

// Mix volumes
const (
	MasterVolume      = 0.8
	ShootVolume       = 0.3
	InvaderDownVolume = 0.4
	PlayerDownVolume  = 0.6
	LevelClearVolume  = 0.5
	LifeBonusVolume   = 0.5
	MarchVolume       = 0.2
	MusicVolume       = 0.35
)
