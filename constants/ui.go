package constants

// Minimum playable terminal size; below this the game refuses to start
const (
	MinWidth  = 60
	MinHeight = 24
)

// Sprite glyphs
const (
	PlayerGlyph      = "^A^"
	PlayerShotGlyph  = "|"
	InvaderShotGlyph = "!"
	LifeGlyph        = "<A> "
)

// InvaderGlyphs holds the two animation frames for each invader tier
var InvaderGlyphs = [InvaderTiers][2]string{
	{`/-\`, `\-/`},
	{`<O>`, `<o>`},
	{`/M\`, `\W/`},
}

// BunkerGlyphs indexes erosion state: full, damaged, nearly destroyed
var BunkerGlyphs = [3]rune{'O', 'o', '.'}

// Bunker layout
const (
	BunkerCount     = 4
	BunkerSegsWide  = 3
	BunkerSegsTall  = 2
	BunkerStartHP   = 3
	BunkerRowsAbove = 6 // bunker top row is height - BunkerRowsAbove
)
