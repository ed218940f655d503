package sim

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"gladiator/internal/config"
	"gladiator/internal/telemetry"
)

// Observer receives diagnostics when a bot terminates due to a fault. It is
// the core's only path for surfacing a fault to external collaborators
// (§7): the arena never prints or panics on a bot's behalf.
type Observer interface {
	BotFaulted(botName, line string, kind FaultKind, detail string)
}

// observerGate wraps an Observer with a per-bot rate limiter so a program
// that faults every tick (for example, a label loop that always divides by
// zero) cannot flood a slow external sink. Modeled on the per-player rate
// limiter in the teacher's event log.
type observerGate struct {
	obs       Observer
	metrics   *telemetry.ArenaMetrics
	limiters  sync.Map // map[string]*rate.Limiter
	perSecond float64
	burst     int
}

func newObserverGate(obs Observer, limits config.ResourceLimits) *observerGate {
	return &observerGate{
		obs:       obs,
		perSecond: float64(limits.FaultLogsPerSec),
		burst:     limits.FaultLogsBurst,
	}
}

// report notifies the Observer (subject to per-bot rate limiting) and
// unconditionally records the fault in telemetry: metrics must stay
// accurate even when diagnostic spam is being throttled.
func (g *observerGate) report(botName, line string, kind FaultKind, detail string) {
	if g == nil {
		return
	}
	g.metrics.RecordFault(kind.String())
	if g.obs == nil || !g.allow(botName) {
		return
	}
	g.obs.BotFaulted(botName, line, kind, detail)
}

func (g *observerGate) allow(botName string) bool {
	v, _ := g.limiters.LoadOrStore(botName, rate.NewLimiter(rate.Limit(g.perSecond), g.burst))
	limiter := v.(*rate.Limiter)
	return limiter.AllowN(time.Now(), 1)
}
