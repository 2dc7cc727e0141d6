package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/term-invaders/game"
)

// KeyEntry describes a key binding without function pointers. Confirm
// keys (space, enter) are overloaded across phases: start in the menu,
// continue at the level transition, and fire mid-game when the binding
// also carries Fire.
type KeyEntry struct {
	Action  game.Action
	Confirm bool
	Fire    bool
}

// KeyTable maps raw terminal keys to abstract game actions. The game
// core only ever sees game.Action values.
type KeyTable struct {
	SpecialKeys map[tcell.Key]KeyEntry
	Runes       map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyLeft:  {Action: game.ActionMoveLeft},
			tcell.KeyRight: {Action: game.ActionMoveRight},
			tcell.KeyEnter: {Confirm: true},
			tcell.KeyCtrlC: {Action: game.ActionQuit},
		},

		Runes: map[rune]KeyEntry{
			'a': {Action: game.ActionMoveLeft},
			'A': {Action: game.ActionMoveLeft},
			'd': {Action: game.ActionMoveRight},
			'D': {Action: game.ActionMoveRight},
			'q': {Action: game.ActionQuit},
			'Q': {Action: game.ActionQuit},
			'r': {Action: game.ActionRestart},
			'R': {Action: game.ActionRestart},
			' ': {Confirm: true, Fire: true},
		},
	}
}

// Translate resolves a key event to an action for the given phase.
// Unbound keys yield ActionNone.
func (t *KeyTable) Translate(ev *tcell.EventKey, phase game.Phase) game.Action {
	var entry KeyEntry
	var ok bool

	if ev.Key() == tcell.KeyRune {
		entry, ok = t.Runes[ev.Rune()]
	} else {
		entry, ok = t.SpecialKeys[ev.Key()]
	}
	if !ok {
		return game.ActionNone
	}

	if entry.Confirm || entry.Fire {
		switch phase {
		case game.PhaseMenu:
			if entry.Confirm {
				return game.ActionStart
			}
		case game.PhasePlaying:
			if entry.Fire {
				return game.ActionFire
			}
		case game.PhaseLevelTransition:
			if entry.Confirm {
				return game.ActionContinue
			}
		}
		return game.ActionNone
	}

	return entry.Action
}
