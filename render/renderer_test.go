package render

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/term-invaders/constants"
	"github.com/lixenwraith/term-invaders/game"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("simulation screen init: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func newTestSession() *game.Game {
	clock := game.NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return game.NewHeadless(80, 24, clock, rand.New(rand.NewSource(1)))
}

// screenText flattens the simulation screen into newline-joined rows
func screenText(screen tcell.SimulationScreen) string {
	cells, width, height := screen.GetContents()
	var sb strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := cells[y*width+x]
			if len(c.Runes) > 0 {
				sb.WriteRune(c.Runes[0])
			} else {
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

// TestMenuLayout verifies the menu screen shows the title and prompt
func TestMenuLayout(t *testing.T) {
	screen := newSimScreen(t)
	r := NewRenderer(screen)
	g := newTestSession()
	g.Phase = game.PhaseMenu

	r.Draw(g)

	text := screenText(screen)
	if !strings.Contains(text, "SPACE INVADERS") {
		t.Error("menu missing title")
	}
	if !strings.Contains(text, "Press SPACE to Start") {
		t.Error("menu missing start prompt")
	}
}

// TestPlayingLayout verifies the header and all entity classes are drawn
func TestPlayingLayout(t *testing.T) {
	screen := newSimScreen(t)
	r := NewRenderer(screen)
	g := newTestSession()
	g.Score = 120
	g.PlayerShots = append(g.PlayerShots, game.Projectile{X: 40, Y: 12, Dir: -1})
	g.InvaderShots = append(g.InvaderShots, game.Projectile{X: 41, Y: 13, Dir: 1})

	r.Draw(g)

	text := screenText(screen)
	if !strings.Contains(text, "Score: 120") {
		t.Error("header missing score")
	}
	if !strings.Contains(text, "Level: 1") {
		t.Error("header missing level")
	}
	if !strings.Contains(text, constants.PlayerGlyph) {
		t.Error("player ship not drawn")
	}
	if !strings.Contains(text, constants.InvaderGlyphs[0][0]) {
		t.Error("invaders not drawn")
	}
	if !strings.Contains(text, constants.PlayerShotGlyph) {
		t.Error("player shot not drawn")
	}
	if !strings.Contains(text, constants.InvaderShotGlyph) {
		t.Error("invader shot not drawn")
	}
	if !strings.Contains(text, string(constants.BunkerGlyphs[0])) {
		t.Error("bunkers not drawn")
	}
}

// TestAnimationFrameSelectsGlyph verifies the second sprite frame is
// used when the animation index is set
func TestAnimationFrameSelectsGlyph(t *testing.T) {
	screen := newSimScreen(t)
	r := NewRenderer(screen)
	g := newTestSession()
	g.AnimFrame = 1

	r.Draw(g)

	if !strings.Contains(screenText(screen), constants.InvaderGlyphs[0][1]) {
		t.Error("animation frame 1 glyph not drawn")
	}
}

// TestGameOverLayout verifies the banner overlays the final field
func TestGameOverLayout(t *testing.T) {
	screen := newSimScreen(t)
	r := NewRenderer(screen)
	g := newTestSession()
	g.Score = 340
	g.Phase = game.PhaseGameOver

	r.Draw(g)

	text := screenText(screen)
	if !strings.Contains(text, "GAME OVER - Score: 340") {
		t.Error("game over banner missing")
	}
	if !strings.Contains(text, constants.PlayerGlyph) {
		t.Error("final field not shown under the banner")
	}
}

// TestTransitionLayout verifies the bonus summary screen
func TestTransitionLayout(t *testing.T) {
	screen := newSimScreen(t)
	r := NewRenderer(screen)
	g := newTestSession()
	g.Phase = game.PhaseLevelTransition
	g.Level = 2
	g.LivesAwarded = 1

	r.Draw(g)

	text := screenText(screen)
	if !strings.Contains(text, "LEVEL 2") {
		t.Error("transition missing level banner")
	}
	if !strings.Contains(text, "+1 LIFE BONUS!") {
		t.Error("transition missing bonus line")
	}
	if !strings.Contains(text, "Press SPACE to Continue") {
		t.Error("transition missing continue prompt")
	}
}

// TestOutOfBoundsDrawsDropped verifies entities outside the playfield
// are clipped instead of wrapping or panicking
func TestOutOfBoundsDrawsDropped(t *testing.T) {
	screen := newSimScreen(t)
	r := NewRenderer(screen)
	g := newTestSession()
	g.Invaders = append(g.Invaders, game.Invader{X: 300, Y: 5, Tier: 0})
	g.Invaders = append(g.Invaders, game.Invader{X: 5, Y: -7, Tier: 0})
	g.PlayerShots = append(g.PlayerShots, game.Projectile{X: -3, Y: 500, Dir: -1})

	r.Draw(g) // must not panic
}

// TestTooSmallNotice verifies the undersized-terminal message
func TestTooSmallNotice(t *testing.T) {
	screen := newSimScreen(t)
	r := NewRenderer(screen)

	r.DrawTooSmall()

	if !strings.Contains(screenText(screen), "Terminal too small!") {
		t.Error("too-small notice missing")
	}
}
