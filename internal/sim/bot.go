package sim

import (
	"gladiator/internal/config"
	"gladiator/internal/sim/lang"
)

// Bot is a single agent: its program, position, vitals and execution state.
// A Bot is always owned by exactly one Arena; nothing outside this package
// mutates a Bot's fields directly once it has been added to an arena.
type Bot struct {
	Name    string
	Program *lang.Program

	X, Y float64

	Health int
	Energy int

	TracksDirection int // [0,360)
	AimDirection    int // [0,360)
	Speed           int // [0,10]

	pc        int
	stack     *stack
	variables map[string]Value

	opsExecuted int
	dead        bool

	cfg         config.BotConfig
	worldWidth  float64
	worldHeight float64
}

// Radius is the bot's fixed collision/scan radius.
func (b *Bot) Radius() float64 { return b.cfg.Radius }

// IsDead reports whether the bot has been removed from play (health <= 0 or
// a fatal fault terminated it).
func (b *Bot) IsDead() bool { return b.dead || b.Health <= 0 }

// newBot constructs a bot at the given spawn position with the given
// program and runtime configuration. It is unexported: bots are created
// through Arena.AddBot so that spawn placement and registration stay in one
// place.
func newBot(name string, program *lang.Program, x, y, worldWidth, worldHeight float64, cfg config.BotConfig) *Bot {
	return &Bot{
		Name:        name,
		Program:     program,
		X:           x,
		Y:           y,
		Health:      cfg.MaxHealth,
		Energy:      cfg.MaxEnergy,
		stack:       newStack(cfg.MaxStackDepth + 1),
		variables:   make(map[string]Value),
		cfg:         cfg,
		worldWidth:  worldWidth,
		worldHeight: worldHeight,
	}
}

// tick runs one bot-turn: energy regen, motion, then up to OpsPerTick
// opcodes. Any fault raised during opcode execution is caught here, marks
// the bot dead, and is reported to obs (which may be nil). Faults never
// propagate past tick.
func (b *Bot) tick(view BotsView, sink BulletSink, obs *observerGate) {
	if b.dead || b.Health <= 0 {
		b.dead = true
		return
	}

	b.Energy += b.cfg.EnergyRegen
	if b.Energy > b.cfg.MaxEnergy {
		b.Energy = b.cfg.MaxEnergy
	}
	if b.Energy < 0 {
		return
	}

	b.move()

	b.opsExecuted = 0
	for b.opsExecuted < b.cfg.OpsPerTick {
		if b.Energy < 0 {
			return
		}
		if f := b.executeOne(view, sink); f != nil {
			b.Health = 0
			b.dead = true
			line := b.Program.FaultLine(b.pc)
			obs.report(b.Name, line, f.kind, f.detail)
			return
		}
	}
}

// move advances position along the tracks direction at the current speed,
// then clamps to the arena bounds. Angle convention: 0 degrees points up,
// increasing clockwise; see directionVector. Position is left unchanged
// when speed is 0.
func (b *Bot) move() {
	if b.Speed <= 0 {
		return
	}
	dx, dy := directionVector(b.TracksDirection, float64(b.Speed))
	b.X += dx
	b.Y += dy

	if b.X < 0 {
		b.X = 0
	} else if b.X > b.worldWidth {
		b.X = b.worldWidth
	}
	if b.Y < 0 {
		b.Y = 0
	} else if b.Y > b.worldHeight {
		b.Y = b.worldHeight
	}
}
