package sim

import (
	"testing"

	"gladiator/internal/config"
	"gladiator/internal/sim/lang"
)

func newScanBot(name string, x, y float64, aim int) *Bot {
	b := newBot(name, lang.Parse(""), x, y, 400, 400, config.DefaultBot())
	b.AimDirection = aim
	return b
}

func TestScanAloneYieldsZero(t *testing.T) {
	self := newScanBot("solo", 0, 0, 0)
	if got := scan(self, []*Bot{self}); got != 0 {
		t.Errorf("scan with no other bots = %d, want 0", got)
	}
}

func TestScanDirectHitAhead(t *testing.T) {
	self := newScanBot("a", 0, 0, 0) // aiming up: dy = -1
	other := newScanBot("b", 0, -50, 0)
	if got := scan(self, []*Bot{self, other}); got != 40 {
		t.Errorf("scan hit distance = %d, want 40", got)
	}
}

func TestScanIgnoresTargetBehindScanner(t *testing.T) {
	self := newScanBot("a", 0, 0, 0) // aiming up
	other := newScanBot("b", 0, 50, 0) // below: behind the ray
	if got := scan(self, []*Bot{self, other}); got != 0 {
		t.Errorf("scan behind scanner = %d, want 0", got)
	}
}

func TestScanIgnoresDeadBots(t *testing.T) {
	self := newScanBot("a", 0, 0, 0)
	other := newScanBot("b", 0, -50, 0)
	other.dead = true
	if got := scan(self, []*Bot{self, other}); got != 0 {
		t.Errorf("scan should skip dead bots, got %d", got)
	}
}

func TestScanMissesWhenRayPassesOutsideRadius(t *testing.T) {
	self := newScanBot("a", 0, 0, 0) // aiming up
	other := newScanBot("b", 50, -50, 0) // far to the side
	if got := scan(self, []*Bot{self, other}); got != 0 {
		t.Errorf("scan should miss, got %d", got)
	}
}

func TestScanPicksNearestHit(t *testing.T) {
	self := newScanBot("a", 0, 0, 0)
	near := newScanBot("near", 0, -30, 0)
	far := newScanBot("far", 0, -80, 0)
	if got := scan(self, []*Bot{self, near, far}); got != 20 {
		t.Errorf("scan nearest hit = %d, want 20", got)
	}
}
