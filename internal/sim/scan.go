package sim

import "math"

// scan performs the raycast line-of-sight test described by spec §4.6: a
// ray from the scanning bot along its aim direction, testing every other
// live bot in view for intersection with that bot's radius.
//
// Returns the distance to the nearest hit, or 0 if the ray hits nothing.
// Callers branch on "SCAN 0 >", so "no target" and "target exactly at the
// scanner" are intentionally indistinguishable.
func scan(self *Bot, others []*Bot) int64 {
	ax, ay := aimUnitVector(self.AimDirection)

	minHit := math.Inf(1)
	for _, other := range others {
		if other == self || other.dead {
			continue
		}

		dx := other.X - self.X
		dy := other.Y - self.Y

		t := dx*ax + dy*ay
		if t < 0 {
			continue // behind the scanner
		}

		closestX := self.X + ax*t
		closestY := self.Y + ay*t
		perpDX := closestX - other.X
		perpDY := closestY - other.Y
		perp := math.Sqrt(perpDX*perpDX + perpDY*perpDY)

		r := other.Radius()
		if perp > r {
			continue
		}

		hit := t - math.Sqrt(r*r-perp*perp)
		if hit > 0 && hit < minHit {
			minHit = hit
		}
	}

	if math.IsInf(minHit, 1) {
		return 0
	}
	return int64(minHit)
}

// aimUnitVector returns the unit vector along a direction in degrees using
// the same 0-is-up, clockwise convention as directionVector.
func aimUnitVector(degrees int) (x, y float64) {
	return directionVector(degrees, 1)
}
