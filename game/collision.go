package game

import (
	"math"

	"github.com/lixenwraith/term-invaders/constants"
)

// resolveCollisions runs the four collision passes in fixed order.
// Each pass scans first and applies removals after, so no slice is
// mutated while it is being iterated. A projectile consumed by one
// pass is gone before the next pass runs.
func (g *Game) resolveCollisions() {
	g.collidePlayerShotsInvaders()
	g.collideInvaderShotsPlayer()
	g.PlayerShots = g.collideShotsBunkers(g.PlayerShots)
	g.InvaderShots = g.collideShotsBunkers(g.InvaderShots)
}

// collidePlayerShotsInvaders credits at most one invader per shot.
// A hit is both coordinate deltas within one cell.
func (g *Game) collidePlayerShotsInvaders() {
	var deadShots, deadInvaders map[int]struct{}

	for si := range g.PlayerShots {
		shot := &g.PlayerShots[si]
		for ii := range g.Invaders {
			if _, gone := deadInvaders[ii]; gone {
				continue
			}
			inv := &g.Invaders[ii]
			if intAbs(shot.X-inv.X) <= 1 && math.Abs(shot.Y-float64(inv.Y)) <= 1 {
				if deadShots == nil {
					deadShots = make(map[int]struct{})
					deadInvaders = make(map[int]struct{})
				}
				deadShots[si] = struct{}{}
				deadInvaders[ii] = struct{}{}
				g.Score += constants.ScorePerTier * (constants.InvaderTiers - inv.Tier)
				if g.sounds != nil {
					g.sounds.PlayInvaderDown()
				}
				break
			}
		}
	}

	if deadShots != nil {
		g.PlayerShots = dropProjectiles(g.PlayerShots, deadShots)
		g.Invaders = dropInvaders(g.Invaders, deadInvaders)
	}
}

// collideInvaderShotsPlayer applies at most one damage event per tick.
// The hit test matches the ship's center column with a one-cell slack
// and triggers once the shot reaches the player's row.
func (g *Game) collideInvaderShotsPlayer() {
	for si := range g.InvaderShots {
		shot := &g.InvaderShots[si]
		if intAbs(shot.X-(g.Player.X+1)) <= 1 && shot.Y >= float64(g.Player.Y) {
			g.InvaderShots = append(g.InvaderShots[:si], g.InvaderShots[si+1:]...)
			// HandleDamage may clear both projectile lists; stop scanning
			g.HandleDamage()
			return
		}
	}
}

// collideShotsBunkers erodes intact segments on exact cell hits and
// consumes the shot. Destroyed segments stay in the slice but are inert.
func (g *Game) collideShotsBunkers(shots []Projectile) []Projectile {
	var deadShots map[int]struct{}

	for si := range shots {
		x, y := shots[si].Cell()
		for bi := range g.Bunkers {
			b := &g.Bunkers[bi]
			if b.Intact() && x == b.X && y == b.Y {
				if deadShots == nil {
					deadShots = make(map[int]struct{})
				}
				deadShots[si] = struct{}{}
				b.Hit()
				break
			}
		}
	}

	if deadShots == nil {
		return shots
	}
	return dropProjectiles(shots, deadShots)
}

func dropProjectiles(shots []Projectile, dead map[int]struct{}) []Projectile {
	kept := shots[:0]
	for i := range shots {
		if _, gone := dead[i]; !gone {
			kept = append(kept, shots[i])
		}
	}
	return kept
}

func dropInvaders(invaders []Invader, dead map[int]struct{}) []Invader {
	kept := invaders[:0]
	for i := range invaders {
		if _, gone := dead[i]; !gone {
			kept = append(kept, invaders[i])
		}
	}
	return kept
}

func intAbs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
