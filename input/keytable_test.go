package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/term-invaders/game"
)

func keyEvent(key tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(key, r, tcell.ModNone)
}

// TestMovementBindings verifies arrows and a/d translate to movement
// while playing
func TestMovementBindings(t *testing.T) {
	keys := DefaultKeyTable()

	cases := []struct {
		ev   *tcell.EventKey
		want game.Action
	}{
		{keyEvent(tcell.KeyLeft, 0), game.ActionMoveLeft},
		{keyEvent(tcell.KeyRight, 0), game.ActionMoveRight},
		{keyEvent(tcell.KeyRune, 'a'), game.ActionMoveLeft},
		{keyEvent(tcell.KeyRune, 'd'), game.ActionMoveRight},
		{keyEvent(tcell.KeyRune, 'A'), game.ActionMoveLeft},
		{keyEvent(tcell.KeyRune, 'D'), game.ActionMoveRight},
	}

	for _, tc := range cases {
		if got := keys.Translate(tc.ev, game.PhasePlaying); got != tc.want {
			t.Errorf("Translate(%v) = %v, want %v", tc.ev, got, tc.want)
		}
	}
}

// TestSpaceOverloadedByPhase verifies space starts, fires and continues
// depending on the phase, and is dropped at game over
func TestSpaceOverloadedByPhase(t *testing.T) {
	keys := DefaultKeyTable()
	space := keyEvent(tcell.KeyRune, ' ')

	cases := []struct {
		phase game.Phase
		want  game.Action
	}{
		{game.PhaseMenu, game.ActionStart},
		{game.PhasePlaying, game.ActionFire},
		{game.PhaseLevelTransition, game.ActionContinue},
		{game.PhaseGameOver, game.ActionNone},
	}

	for _, tc := range cases {
		if got := keys.Translate(space, tc.phase); got != tc.want {
			t.Errorf("phase %v: space = %v, want %v", tc.phase, got, tc.want)
		}
	}
}

// TestEnterConfirmsButNeverFires verifies enter starts and continues
// but does not fire mid-game
func TestEnterConfirmsButNeverFires(t *testing.T) {
	keys := DefaultKeyTable()
	enter := keyEvent(tcell.KeyEnter, 0)

	if got := keys.Translate(enter, game.PhaseMenu); got != game.ActionStart {
		t.Errorf("menu: enter = %v, want ActionStart", got)
	}
	if got := keys.Translate(enter, game.PhaseLevelTransition); got != game.ActionContinue {
		t.Errorf("transition: enter = %v, want ActionContinue", got)
	}
	if got := keys.Translate(enter, game.PhasePlaying); got != game.ActionNone {
		t.Errorf("playing: enter = %v, want ActionNone", got)
	}
}

// TestQuitAndRestartBindings verifies the session control keys
func TestQuitAndRestartBindings(t *testing.T) {
	keys := DefaultKeyTable()

	for _, phase := range []game.Phase{game.PhaseMenu, game.PhasePlaying, game.PhaseGameOver} {
		if got := keys.Translate(keyEvent(tcell.KeyRune, 'q'), phase); got != game.ActionQuit {
			t.Errorf("phase %v: q = %v, want ActionQuit", phase, got)
		}
	}
	if got := keys.Translate(keyEvent(tcell.KeyCtrlC, 0), game.PhasePlaying); got != game.ActionQuit {
		t.Errorf("ctrl+c = %v, want ActionQuit", got)
	}
	if got := keys.Translate(keyEvent(tcell.KeyRune, 'r'), game.PhaseGameOver); got != game.ActionRestart {
		t.Errorf("r = %v, want ActionRestart", got)
	}
}

// TestUnboundKeysIgnored verifies unmapped keys yield no action
func TestUnboundKeysIgnored(t *testing.T) {
	keys := DefaultKeyTable()

	if got := keys.Translate(keyEvent(tcell.KeyRune, 'z'), game.PhasePlaying); got != game.ActionNone {
		t.Errorf("z = %v, want ActionNone", got)
	}
	if got := keys.Translate(keyEvent(tcell.KeyF1, 0), game.PhasePlaying); got != game.ActionNone {
		t.Errorf("F1 = %v, want ActionNone", got)
	}
}
