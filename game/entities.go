package game

import "github.com/lixenwraith/term-invaders/constants"

// Player is the controllable ship at the bottom of the playfield
type Player struct {
	X, Y  int
	Lives int
	Width int
}

// TakeDamage decrements lives. Lives never go below zero; zero is the
// terminal state and further hits are absorbed.
func (p *Player) TakeDamage() {
	if p.Lives > 0 {
		p.Lives--
	}
}

// Invader is one member of the formation. Tier selects the sprite and
// the score value; it never changes after spawn. Destroyed invaders are
// removed from the slice outright because the live count drives the
// frenzy curve.
type Invader struct {
	X, Y int
	Tier int
}

// Bunker is a single erodible barrier segment. Health counts down
// 3→2→1→0; at zero the segment stops absorbing shots but stays tracked.
type Bunker struct {
	X, Y   int
	Health int
}

// Hit erodes the segment by one step and reports whether it is now
// destroyed.
func (b *Bunker) Hit() bool {
	if b.Health > 0 {
		b.Health--
	}
	return b.Health <= 0
}

// Intact reports whether the segment still participates in collisions
func (b *Bunker) Intact() bool {
	return b.Health > 0
}

// Projectile is a shot in flight. Y is fractional so sub-cell speeds
// accumulate; it is rounded only for collision checks and drawing.
// Dir is -1 for player shots (upward) and +1 for invader shots.
type Projectile struct {
	X   int
	Y   float64
	Dir int
}

// Cell returns the projectile's integer grid position
func (p *Projectile) Cell() (int, int) {
	return p.X, int(p.Y)
}

// NewInvaderGrid builds the full formation centered for the given
// playfield width. Row pairs share a tier, topmost rows first.
func NewInvaderGrid(width int) []Invader {
	invaders := make([]Invader, 0, constants.InvaderRows*constants.InvaderCols)
	startX := (width - constants.InvaderCols*constants.InvaderSpacingX) / 2

	for row := 0; row < constants.InvaderRows; row++ {
		tier := (row / 2) % constants.InvaderTiers
		for col := 0; col < constants.InvaderCols; col++ {
			invaders = append(invaders, Invader{
				X:    startX + col*constants.InvaderSpacingX,
				Y:    constants.InvaderStartY + row*constants.InvaderSpacingY,
				Tier: tier,
			})
		}
	}
	return invaders
}

// NewBunkers builds the defensive bunker clusters. Each bunker is a
// block of independently eroding segments; only spawn geometry links
// them.
func NewBunkers(width, height int) []Bunker {
	bunkers := make([]Bunker, 0, constants.BunkerCount*constants.BunkerSegsWide*constants.BunkerSegsTall)
	bunkerY := height - constants.BunkerRowsAbove
	spacing := width / (constants.BunkerCount + 1)

	for i := 0; i < constants.BunkerCount; i++ {
		bunkerX := spacing*(i+1) - 2
		for dx := -1; dx <= 1; dx++ {
			for dy := 0; dy < constants.BunkerSegsTall; dy++ {
				bunkers = append(bunkers, Bunker{
					X:      bunkerX + dx,
					Y:      bunkerY + dy,
					Health: constants.BunkerStartHP,
				})
			}
		}
	}
	return bunkers
}
