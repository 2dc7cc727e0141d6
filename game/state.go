package game

import (
	"github.com/lixenwraith/term-invaders/constants"
)

// Phase is the session lifecycle state
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseLevelTransition
	PhaseGameOver
)

// String returns the phase name for status display
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseLevelTransition:
		return "level-transition"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Action is an abstract input event. The input adapter maps raw key
// codes to actions; the core never sees key codes.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionFire
	ActionStart
	ActionContinue
	ActionRestart
	ActionQuit
)

// HandleAction applies one input action to the session. Actions outside
// the accepting phase are silently ignored. Returns false when the
// session should terminate.
func (g *Game) HandleAction(a Action) bool {
	if a == ActionQuit {
		return false
	}

	switch g.Phase {
	case PhaseMenu:
		if a == ActionStart {
			g.Phase = PhasePlaying
			if g.sounds != nil {
				g.sounds.StartMusic()
			}
		}

	case PhasePlaying:
		switch a {
		case ActionMoveLeft:
			g.Player.X = max(0, g.Player.X-constants.PlayerSpeed)
		case ActionMoveRight:
			g.Player.X = min(g.Width-constants.PlayerWidth, g.Player.X+constants.PlayerSpeed)
		case ActionFire:
			g.fire()
		}

	case PhaseLevelTransition:
		if a == ActionContinue {
			g.Phase = PhasePlaying
		}

	case PhaseGameOver:
		if a == ActionRestart {
			g.Reset()
		}
	}

	return true
}

func (g *Game) fire() {
	if len(g.PlayerShots) >= constants.MaxPlayerShots {
		return
	}

	g.PlayerShots = append(g.PlayerShots, Projectile{
		X:   g.Player.X + 1,
		Y:   float64(g.Player.Y - 1),
		Dir: -1,
	})

	if g.sounds != nil {
		g.sounds.PlayShoot()
	}
}
