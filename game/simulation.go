package game

import (
	"github.com/lixenwraith/term-invaders/constants"
)

// Update advances the world by one frame tick. Outside PhasePlaying it
// is a no-op. The step order matters: later checks observe the results
// of earlier ones within the same tick.
func (g *Game) Update() {
	if g.Phase != PhasePlaying {
		return
	}

	now := g.clock.Now()

	// Flash expiry
	if g.FlashActive && !now.Before(g.flashEnd) {
		g.FlashActive = false
	}

	// Sprite animation, independent of movement cadence
	if now.Sub(g.lastAnim) >= constants.AnimationInterval {
		g.AnimFrame = 1 - g.AnimFrame
		g.lastAnim = now
	}

	// Formation step
	if now.Sub(g.lastMove) >= g.moveInterval {
		g.moveFormation()
		g.lastMove = now
	}

	g.advanceShots()
	g.invaderFire()
	g.resolveCollisions()
	g.checkInvasion()

	// March telemetry is advisory; the collaborator throttles itself
	if g.sounds != nil && len(g.Invaders) > 0 {
		g.sounds.UpdateMarch(len(g.Invaders), TotalInvaders)
	}

	if len(g.Invaders) == 0 {
		g.nextLevel()
	}
}

// moveFormation sweeps every invader one cell sideways, or reverses the
// sweep and drops the whole formation one row when its bounding box
// touches an edge threshold.
func (g *Game) moveFormation() {
	if len(g.Invaders) == 0 {
		return
	}

	minX := g.Invaders[0].X
	maxX := g.Invaders[0].X
	for i := range g.Invaders {
		minX = min(minX, g.Invaders[i].X)
		maxX = max(maxX, g.Invaders[i].X)
	}

	switch {
	case maxX >= g.Width-constants.EdgeMarginRight && g.SweepDir > 0:
		g.SweepDir = -1
		for i := range g.Invaders {
			g.Invaders[i].Y++
		}
	case minX <= constants.EdgeMarginLeft && g.SweepDir < 0:
		g.SweepDir = 1
		for i := range g.Invaders {
			g.Invaders[i].Y++
		}
	default:
		for i := range g.Invaders {
			g.Invaders[i].X += g.SweepDir
		}
	}
}

// advanceShots moves projectiles by their per-tick speeds and drops any
// that leave the playfield vertically.
func (g *Game) advanceShots() {
	kept := g.PlayerShots[:0]
	for _, shot := range g.PlayerShots {
		shot.Y -= constants.PlayerShotSpeed
		if shot.Y >= 0 {
			kept = append(kept, shot)
		}
	}
	g.PlayerShots = kept

	kept = g.InvaderShots[:0]
	for _, shot := range g.InvaderShots {
		shot.Y += constants.InvaderShotSpeed
		if shot.Y < float64(g.Height) {
			kept = append(kept, shot)
		}
	}
	g.InvaderShots = kept
}

// invaderFire draws one Bernoulli trial per live invader per tick
func (g *Game) invaderFire() {
	if len(g.Invaders) == 0 {
		return
	}

	p := g.FireProbability()
	for i := range g.Invaders {
		if g.rng.Float64() < p {
			g.InvaderShots = append(g.InvaderShots, Projectile{
				X:   g.Invaders[i].X + 1,
				Y:   float64(g.Invaders[i].Y + 1),
				Dir: 1,
			})
		}
	}
}

// checkInvasion forces the terminal phase the moment any invader
// reaches the player's row, bypassing the life-loss path.
func (g *Game) checkInvasion() {
	for i := range g.Invaders {
		if g.Invaders[i].Y >= g.Player.Y {
			g.Phase = PhaseGameOver
			return
		}
	}
}

// nextLevel awards bonus lives for the completed level, regenerates the
// field and tightens the formation cadence, then parks the session in
// the transition phase until the player continues.
func (g *Game) nextLevel() {
	completed := g.Level
	g.LivesAwarded = completed

	grant := min(completed, constants.MaxLives-g.Player.Lives)
	if grant < 0 {
		grant = 0
	}
	g.Player.Lives = min(g.Player.Lives+grant, constants.MaxLives)

	if g.sounds != nil {
		g.sounds.PlayLevelComplete()
		if grant > 0 {
			g.sounds.PlayLifeBonus()
		}
	}

	g.Level++
	g.Phase = PhaseLevelTransition
	g.Invaders = NewInvaderGrid(g.Width)
	g.Bunkers = NewBunkers(g.Width, g.Height)
	g.moveInterval = max(constants.MoveIntervalFloor, g.moveInterval-constants.MoveIntervalStep)
}
