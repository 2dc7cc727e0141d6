package constants

import "time"

// Game Loop Timing Constants
const (
	// TargetFPS is the fixed simulation and render rate
	TargetFPS = 60

	// FrameTime is the per-frame budget at TargetFPS
	FrameTime = time.Second / TargetFPS
)

// Player Configuration
const (
	PlayerStartLives = 5
	MaxLives         = 9
	PlayerSpeed      = 1
	PlayerWidth      = 3

	// MaxPlayerShots caps concurrently active player projectiles
	MaxPlayerShots = 3
)

// Invader Grid Configuration
const (
	InvaderRows     = 5
	InvaderCols     = 11
	InvaderSpacingX = 4
	InvaderSpacingY = 2
	InvaderStartY   = 3

	// InvaderTiers is the number of distinct invader types
	InvaderTiers = 3
)

// Formation Movement
const (
	// MoveInterval is the starting delay between formation steps
	MoveInterval = 500 * time.Millisecond

	// MoveIntervalStep is subtracted from the interval at each level advance
	MoveIntervalStep = 50 * time.Millisecond

	// MoveIntervalFloor is the fastest allowed formation cadence
	MoveIntervalFloor = 100 * time.Millisecond

	// EdgeMarginRight and EdgeMarginLeft are the columns at which the
	// formation reverses and descends (right margin measured from width)
	EdgeMarginRight = 4
	EdgeMarginLeft  = 2
)

// Projectile Speeds (cells per tick; player shots are faster so firing
// feels responsive while invader shots stay dodgeable)
const (
	PlayerShotSpeed  = 1.0
	InvaderShotSpeed = 0.4
)

// Invader Firing Probabilities (per invader, per tick)
const (
	BaseFireProbability = 0.00133
	MaxFireProbability  = 0.0133
)

// Scoring
const (
	// ScorePerTier yields 10 * (InvaderTiers - tier) points per kill
	ScorePerTier = 10
)

// Effect Timing
const (
	// FlashDuration is how long the damage flash inverts the screen
	FlashDuration = 200 * time.Millisecond

	// AnimationInterval toggles the two-frame invader sprites
	AnimationInterval = 500 * time.Millisecond
)
