package sim

import (
	"math"
	"math/rand"

	"gladiator/internal/config"
	"gladiator/internal/sim/lang"
	"gladiator/internal/telemetry"
)

// Arena is the world container: it owns all bots and bullets, drives tick
// ordering, and resolves bullet physics and bot lifecycle. Arena is not
// safe for concurrent use — callers drive Tick() synchronously from a
// single goroutine (see SPEC_FULL.md §5 for why no internal mutex is used).
type Arena struct {
	width, height float64

	bots    []*Bot
	bullets []*Bullet

	tickCount int64

	rng *rand.Rand

	botCfg   config.BotConfig
	projCfg  config.ProjectileConfig
	limits   config.ResourceLimits
	observer *observerGate

	metrics *telemetry.ArenaMetrics
}

// Option configures an Arena at construction time.
type Option func(*Arena)

// WithObserver registers a fault Observer. A nil Observer (the default) is
// legal: diagnostics are simply dropped.
func WithObserver(obs Observer) Option {
	return func(a *Arena) { a.observer = newObserverGate(obs, a.limits) }
}

// WithMetrics registers a telemetry sink that receives per-tick gauges and
// counters. Passing nil (the default) disables telemetry entirely.
func WithMetrics(m *telemetry.ArenaMetrics) Option {
	return func(a *Arena) { a.metrics = m }
}

// WithBotConfig overrides the default per-bot runtime configuration.
func WithBotConfig(cfg config.BotConfig) Option {
	return func(a *Arena) { a.botCfg = cfg }
}

// WithProjectileConfig overrides the default projectile configuration.
func WithProjectileConfig(cfg config.ProjectileConfig) Option {
	return func(a *Arena) { a.projCfg = cfg }
}

// WithLimits overrides the default resource limits.
func WithLimits(limits config.ResourceLimits) Option {
	return func(a *Arena) { a.limits = limits }
}

// NewArena creates a world of the given size. rng is injected so callers
// (notably tests) can pin a seed for deterministic spawn placement; passing
// nil falls back to a source with the fixed seed 1.
func NewArena(width, height float64, rng *rand.Rand, opts ...Option) *Arena {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	a := &Arena{
		width:   width,
		height:  height,
		rng:     rng,
		botCfg:  config.DefaultBot(),
		projCfg: config.DefaultProjectile(),
		limits:  config.DefaultLimits(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.observer == nil {
		a.observer = newObserverGate(nil, a.limits)
	}
	a.observer.metrics = a.metrics
	return a
}

// AddBot parses source, instantiates a bot at a uniformly random in-bounds
// integer position, and appends it to the arena in insertion order. Returns
// nil if the arena is already at its bot capacity (see ResourceLimits).
func (a *Arena) AddBot(source, name string) *Bot {
	if len(a.bots) >= a.limits.MaxBots {
		return nil
	}
	program := lang.Parse(source)
	x := float64(a.rng.Intn(int(a.width) + 1))
	y := float64(a.rng.Intn(int(a.height) + 1))
	bot := newBot(name, program, x, y, a.width, a.height, a.botCfg)
	a.bots = append(a.bots, bot)
	return bot
}

// Tick advances the simulation by one step, per spec §4.7:
//  1. increment tick count
//  2. run each bot's turn, in insertion order
//  3. advance every bullet one step
//  4. resolve hits, in bullet order, against bots in insertion order
//  5. prune dead bots
//
// A bot fired by an earlier bot this tick is not observable to later bots
// until the next tick: bullets created during step 2 aren't moved or
// collided against until step 3/4 of this same Tick call, but they are
// visible in step 2's BotsView only as inert (they don't move yet) because
// bullets never appear in BotsView at all — only bots do.
func (a *Arena) Tick() {
	a.tickCount++

	view := BotsView{bots: a.bots}
	for _, b := range a.bots {
		b.tick(view, a, a.observer)
	}

	for _, bl := range a.bullets {
		bl.advance()
	}

	a.resolveHits()
	a.prune()

	if a.metrics != nil {
		a.metrics.Observe(int64(len(a.bots)), int64(len(a.bullets)))
	}
}

// fire implements BulletSink: it's the only way an executing bot can add a
// bullet to the arena, and it only ever appends.
func (a *Arena) fire(owner *Bot, x, y float64, direction, power int) {
	if len(a.bullets) >= a.limits.MaxBullets {
		return
	}
	speed := a.projCfg.SpeedBase + float64(power)
	a.bullets = append(a.bullets, newBullet(owner, x, y, direction, power, speed, a.projCfg.MaxRange))
}

// resolveHits applies damage for bullets that now overlap a live bot
// (excluding the owner), in bullet order; the first qualifying bot in
// insertion order takes the hit. Expired bullets are dropped without
// effect. Bullets that neither hit nor expire survive to the next tick.
func (a *Arena) resolveHits() {
	kept := a.bullets[:0]
	for _, bl := range a.bullets {
		if bl.expired() {
			continue
		}
		hitSomeone := false
		for _, b := range a.bots {
			if bl.hits(b) {
				b.Health -= int(math.Round(bl.damageAt()))
				hitSomeone = true
				break
			}
		}
		if hitSomeone {
			continue
		}
		kept = append(kept, bl)
	}
	a.bullets = kept
}

// prune removes bots whose health has dropped to zero or below. Removed
// bots are never iterated again in a subsequent Tick.
func (a *Arena) prune() {
	alive := a.bots[:0]
	for _, b := range a.bots {
		if b.Health > 0 && !b.dead {
			alive = append(alive, b)
		}
	}
	a.bots = alive
}

// IsBattleOver reports whether one or zero bots remain.
func (a *Arena) IsBattleOver() bool {
	return len(a.bots) <= 1
}

// GetWinner returns the sole remaining bot, or nil if the battle isn't
// decisively over (zero or more than one bot remain).
func (a *Arena) GetWinner() *Bot {
	if len(a.bots) == 1 {
		return a.bots[0]
	}
	return nil
}

// IsDraw reports whether the battle ended with no bots remaining.
func (a *Arena) IsDraw() bool {
	return len(a.bots) == 0
}

// TickCount returns the number of ticks elapsed so far.
func (a *Arena) TickCount() int64 { return a.tickCount }

// Bots returns a read-only snapshot of the current bot list, in insertion
// order, for collaborators (status printers, visualisers) to render.
func (a *Arena) Bots() []*Bot {
	out := make([]*Bot, len(a.bots))
	copy(out, a.bots)
	return out
}

// BulletView describes a bullet's externally-visible state.
type BulletView struct {
	X, Y  float64
	Power int
}

// Bullets returns a read-only snapshot of live bullets for rendering.
func (a *Arena) Bullets() []BulletView {
	out := make([]BulletView, len(a.bullets))
	for i, bl := range a.bullets {
		out[i] = BulletView{X: bl.X, Y: bl.Y, Power: bl.Power}
	}
	return out
}

// BotView describes a bot's externally-visible state, matching the fields
// spec §6.2 says collaborators need: name, position, health, energy,
// tracks/aim direction, radius.
type BotView struct {
	Name            string
	X, Y            float64
	Health, Energy  int
	TracksDirection int
	AimDirection    int
	Radius          float64
}

// View returns the externally-visible snapshot of a single bot.
func (b *Bot) View() BotView {
	return BotView{
		Name:            b.Name,
		X:               b.X,
		Y:               b.Y,
		Health:          b.Health,
		Energy:          b.Energy,
		TracksDirection: b.TracksDirection,
		AimDirection:    b.AimDirection,
		Radius:          b.Radius(),
	}
}
