package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/term-invaders/constants"
	"github.com/lixenwraith/term-invaders/game"
)

// Renderer draws one of four screen layouts from a read-only session
// snapshot. All draw operations are clipped to the playfield; anything
// out of bounds is silently dropped.
type Renderer struct {
	screen        tcell.Screen
	width, height int
}

// styleSet carries the per-frame styles. During the damage flash every
// style is derived from a reversed base so the whole screen inverts.
type styleSet struct {
	base    tcell.Style
	player  tcell.Style
	invader tcell.Style
	bunker  tcell.Style
	text    tcell.Style
	shot    tcell.Style
	alert   tcell.Style
}

func newStyleSet(flash bool) styleSet {
	base := tcell.StyleDefault
	if flash {
		base = base.Reverse(true)
	}
	return styleSet{
		base:    base,
		player:  base.Foreground(tcell.ColorGreen),
		invader: base.Foreground(tcell.ColorPurple),
		bunker:  base.Foreground(tcell.ColorTeal),
		text:    base.Foreground(tcell.ColorYellow),
		shot:    base.Foreground(tcell.ColorWhite),
		alert:   base.Foreground(tcell.ColorRed),
	}
}

// NewRenderer creates a renderer for the given screen
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen}
	r.width, r.height = screen.Size()
	return r
}

// Resize updates the clipping bounds after a terminal resize
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Draw renders one frame for the session's current phase
func (r *Renderer) Draw(g *game.Game) {
	r.screen.Clear()

	set := newStyleSet(g.FlashActive)
	if g.FlashActive {
		r.screen.Fill(' ', set.base)
	}

	switch g.Phase {
	case game.PhaseMenu:
		r.drawMenu(set)
	case game.PhasePlaying:
		r.drawPlaying(g, set)
	case game.PhaseGameOver:
		r.drawGameOver(g, set)
	case game.PhaseLevelTransition:
		r.drawTransition(g, set)
	}

	r.screen.Show()
}

// DrawTooSmall shows the undersized-terminal notice
func (r *Renderer) DrawTooSmall() {
	r.screen.Clear()
	set := newStyleSet(false)
	msg := fmt.Sprintf("Terminal too small! Need %dx%d", constants.MinWidth, constants.MinHeight)
	r.drawText(0, 0, msg, set.alert)
	r.drawText(0, 1, "Press any key to exit", set.text)
	r.screen.Show()
}

func (r *Renderer) drawMenu(set styleSet) {
	title := "SPACE INVADERS"
	subtitle := "Press SPACE to Start"
	controls := "Controls: A/D or Arrow Keys to Move, SPACE to Fire, Q to Quit"

	centerY := r.height / 2
	r.drawText((r.width-len(title))/2, centerY-2, title, set.text.Bold(true))
	r.drawText((r.width-len(subtitle))/2, centerY, subtitle, set.text)
	r.drawText((r.width-len(controls))/2, centerY+2, controls, set.text)
}

func (r *Renderer) drawPlaying(g *game.Game, set styleSet) {
	scoreText := fmt.Sprintf("Score: %d", g.Score)
	levelText := fmt.Sprintf("Level: %d", g.Level)
	livesText := "Lives: " + strings.Repeat(constants.LifeGlyph, g.Player.Lives)

	r.drawText(2, 0, scoreText, set.text)
	r.drawText(r.width/2-len(levelText)/2, 0, levelText, set.text)
	r.drawText(r.width-len(livesText)-2, 0, livesText, set.text)

	for i := range g.Invaders {
		inv := &g.Invaders[i]
		glyph := constants.InvaderGlyphs[inv.Tier][g.AnimFrame]
		r.drawText(inv.X, inv.Y, glyph, set.invader)
	}

	for i := range g.Bunkers {
		b := &g.Bunkers[i]
		if b.Intact() {
			glyph := constants.BunkerGlyphs[constants.BunkerStartHP-b.Health]
			r.drawText(b.X, b.Y, string(glyph), set.bunker)
		}
	}

	r.drawText(g.Player.X, g.Player.Y, constants.PlayerGlyph, set.player)

	for i := range g.PlayerShots {
		x, y := g.PlayerShots[i].Cell()
		r.drawText(x, y, constants.PlayerShotGlyph, set.shot)
	}
	for i := range g.InvaderShots {
		x, y := g.InvaderShots[i].Cell()
		r.drawText(x, y, constants.InvaderShotGlyph, set.alert)
	}
}

// drawGameOver shows the final field under the banner
func (r *Renderer) drawGameOver(g *game.Game, set styleSet) {
	r.drawPlaying(g, set)

	gameOverText := fmt.Sprintf("GAME OVER - Score: %d", g.Score)
	restartText := "Press 'R' to Restart or 'Q' to Quit"

	centerY := r.height / 2
	r.drawText((r.width-len(gameOverText))/2, centerY, gameOverText, set.alert.Bold(true))
	r.drawText((r.width-len(restartText))/2, centerY+2, restartText, set.text)
}

func (r *Renderer) drawTransition(g *game.Game, set styleSet) {
	levelText := fmt.Sprintf("LEVEL %d", g.Level)
	noun := "LIVES"
	if g.LivesAwarded == 1 {
		noun = "LIFE"
	}
	bonusText := fmt.Sprintf("+%d %s BONUS!", g.LivesAwarded, noun)
	livesText := fmt.Sprintf("Lives: %d/%d", g.Player.Lives, constants.MaxLives)
	continueText := "Press SPACE to Continue"

	centerY := r.height / 2
	r.drawText((r.width-len(levelText))/2, centerY-2, levelText, set.text.Bold(true))
	r.drawText((r.width-len(bonusText))/2, centerY, bonusText, set.player.Bold(true))
	r.drawText((r.width-len(livesText))/2, centerY+1, livesText, set.text)
	r.drawText((r.width-len(continueText))/2, centerY+3, continueText, set.text)
}

// drawText writes a string with clipping on all edges. The last column
// is left blank to avoid autowrap artifacts on real terminals.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	if y < 0 || y >= r.height {
		return
	}
	for i, ch := range []rune(text) {
		px := x + i
		if px < 0 {
			continue
		}
		if px >= r.width-1 {
			break
		}
		r.screen.SetContent(px, y, ch, nil, style)
	}
}
