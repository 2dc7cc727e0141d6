package game

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/term-invaders/constants"
)

// Sounder is the narrow contract the simulation has with the audio
// collaborator. Every call is fire-and-forget; implementations must
// never block the caller.
type Sounder interface {
	PlayShoot()
	PlayInvaderDown()
	PlayPlayerDown()
	PlayLevelComplete()
	PlayLifeBonus()
	StartMusic()
	UpdateMarch(remaining, total int)
}

// TotalInvaders is the full-grid invader count used as the frenzy
// baseline.
const TotalInvaders = constants.InvaderRows * constants.InvaderCols

// Game is the session aggregate: phase machine, entity collections and
// the per-session difficulty state. All mutation happens on the frame
// loop goroutine; renderers read it between updates.
type Game struct {
	Phase Phase
	Score int
	Level int

	Width, Height int

	Player       Player
	Invaders     []Invader
	Bunkers      []Bunker
	PlayerShots  []Projectile
	InvaderShots []Projectile

	// SweepDir is the shared horizontal movement sign of the formation
	SweepDir int

	// AnimFrame toggles between the two sprite frames
	AnimFrame int

	// LivesAwarded is the bonus granted at the last level completion,
	// kept for the transition screen
	LivesAwarded int

	// FlashActive inverts the whole screen until flashEnd
	FlashActive bool
	flashEnd    time.Time

	// moveInterval is per-session so concurrent sessions (tests) do not
	// share difficulty progression
	moveInterval time.Duration
	lastMove     time.Time
	lastAnim     time.Time

	spawnX int

	clock  Clock
	rng    *rand.Rand
	sounds Sounder
}

// New creates a session for the given playfield, starting at the menu.
// A nil sounds collaborator runs the session silently.
func New(width, height int, clock Clock, rng *rand.Rand, sounds Sounder) *Game {
	g := &Game{
		Phase:        PhaseMenu,
		Level:        1,
		Width:        width,
		Height:       height,
		SweepDir:     1,
		moveInterval: constants.MoveInterval,
		clock:        clock,
		rng:          rng,
		sounds:       sounds,
	}

	now := clock.Now()
	g.lastMove = now
	g.lastAnim = now

	g.initPlayer()
	g.Invaders = NewInvaderGrid(width)
	g.Bunkers = NewBunkers(width, height)
	return g
}

// NewHeadless creates a session that starts directly in PhasePlaying,
// for driving the simulation without a terminal.
func NewHeadless(width, height int, clock Clock, rng *rand.Rand) *Game {
	g := New(width, height, clock, rng, nil)
	g.Phase = PhasePlaying
	return g
}

func (g *Game) initPlayer() {
	g.spawnX = g.Width/2 - 1
	g.Player = Player{
		X:     g.spawnX,
		Y:     g.Height - 2,
		Lives: constants.PlayerStartLives,
		Width: constants.PlayerWidth,
	}
}

// MoveInterval returns the current formation step cadence
func (g *Game) MoveInterval() time.Duration {
	return g.moveInterval
}

// SpawnX returns the player spawn column
func (g *Game) SpawnX() int {
	return g.spawnX
}

// FireProbability is the per-invader, per-tick Bernoulli probability.
// It rises linearly from the base toward the ceiling as the formation
// thins out, producing the frenzy difficulty curve.
func (g *Game) FireProbability() float64 {
	if len(g.Invaders) == 0 {
		return 0
	}

	destroyedRatio := 1 - float64(len(g.Invaders))/float64(TotalInvaders)
	p := constants.BaseFireProbability + destroyedRatio*(constants.MaxFireProbability-constants.BaseFireProbability)
	return min(p, constants.MaxFireProbability)
}

// HandleDamage applies one enemy-projectile hit to the player. Lives
// exhausted forces the terminal phase; otherwise the screen flashes,
// in-flight shots are cleared and the ship returns to its spawn column.
func (g *Game) HandleDamage() {
	g.Player.TakeDamage()

	if g.sounds != nil {
		g.sounds.PlayPlayerDown()
	}

	if g.Player.Lives <= 0 {
		g.Phase = PhaseGameOver
		return
	}

	g.FlashActive = true
	g.flashEnd = g.clock.Now().Add(constants.FlashDuration)
	g.PlayerShots = g.PlayerShots[:0]
	g.InvaderShots = g.InvaderShots[:0]
	g.Player.X = g.spawnX
}

// Reset performs the hard restart from game over: score, player,
// projectiles, invaders and bunkers return to spawn state. The level
// counter and the tightened formation cadence deliberately survive.
func (g *Game) Reset() {
	g.Score = 0
	g.Player.Lives = constants.PlayerStartLives
	g.Player.X = g.spawnX
	g.PlayerShots = g.PlayerShots[:0]
	g.InvaderShots = g.InvaderShots[:0]
	g.Invaders = NewInvaderGrid(g.Width)
	g.Bunkers = NewBunkers(g.Width, g.Height)
	g.SweepDir = 1
	g.lastMove = g.clock.Now()
	g.FlashActive = false
	g.Phase = PhasePlaying
}
