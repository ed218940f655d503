package sim

import (
	"testing"

	"gladiator/internal/config"
	"gladiator/internal/sim/lang"
)

func newBulletTestBot(name string, x, y float64) *Bot {
	return newBot(name, lang.Parse(""), x, y, 400, 400, config.DefaultBot())
}

func TestBulletAdvanceAccumulatesDistance(t *testing.T) {
	owner := newBulletTestBot("owner", 0, 0)
	bl := newBullet(owner, 0, 0, 180, 5, 10, 1000) // aiming down, dy=+speed
	bl.advance()
	if bl.Y != 10 {
		t.Errorf("Y after one advance = %v, want 10", bl.Y)
	}
	if bl.distanceTraveled != 10 {
		t.Errorf("distanceTraveled = %v, want 10", bl.distanceTraveled)
	}
}

func TestBulletExpiresAtMaxRange(t *testing.T) {
	owner := newBulletTestBot("owner", 0, 0)
	bl := newBullet(owner, 0, 0, 180, 5, 100, 100)
	if bl.expired() {
		t.Fatal("fresh bullet should not be expired")
	}
	bl.advance()
	if !bl.expired() {
		t.Fatal("bullet traveling its entire max range in one step should be expired")
	}
}

func TestBulletDamageScalesDownWithRange(t *testing.T) {
	owner := newBulletTestBot("owner", 0, 0)
	bl := newBullet(owner, 0, 0, 0, 5, 1, 1000)
	bl.distanceTraveled = 210
	if got := bl.damageAt(); got != 3.95 {
		t.Errorf("damageAt() = %v, want 3.95", got)
	}
}

func TestBulletNeverHitsOwner(t *testing.T) {
	owner := newBulletTestBot("owner", 0, 0)
	bl := newBullet(owner, 0, 0, 0, 5, 10, 1000)
	if bl.hits(owner) {
		t.Error("bullet should never hit its owner")
	}
}

func TestBulletDoesNotHitDeadBots(t *testing.T) {
	owner := newBulletTestBot("owner", 0, 0)
	target := newBulletTestBot("target", 0, 0)
	target.dead = true
	bl := newBullet(owner, 0, 0, 0, 5, 10, 1000)
	if bl.hits(target) {
		t.Error("bullet should not hit a dead bot")
	}
}

func TestBulletHitsWithinRadius(t *testing.T) {
	owner := newBulletTestBot("owner", 0, 0)
	target := newBulletTestBot("target", 5, 0)
	bl := newBullet(owner, 0, 0, 0, 5, 10, 1000)
	if !bl.hits(target) {
		t.Error("bullet within target radius should hit")
	}
}

func TestBulletMissesOutsideRadius(t *testing.T) {
	owner := newBulletTestBot("owner", 0, 0)
	target := newBulletTestBot("target", 50, 0)
	bl := newBullet(owner, 0, 0, 0, 5, 10, 1000)
	if bl.hits(target) {
		t.Error("bullet far outside target radius should not hit")
	}
}
