package sim

import "github.com/vovakirdan/arcade-hub/internal/core"

// DefaultTolerance is the number of pixels shaved off each side of both
// hitboxes before testing overlap.
const DefaultTolerance = 4.0

// Overlaps tests two boxes after shrinking each by tolerance on every side.
// Boxes that only touch do not overlap.
func Overlaps(a, b core.RectF, tolerance float64) bool {
	return a.Inset(tolerance).Intersects(b.Inset(tolerance))
}

// HazardFunc applies a hazard hit and reports whether it ended the run.
type HazardFunc func(e *Entity) (fatal bool)

// PickupFunc applies a pickup effect.
type PickupFunc func(e *Entity)

// Resolve checks the player box against every live entity. Hazards resolve
// first, in slice order; if one is fatal the scan stops and no pickups from
// this tick apply. Hit entities are marked consumed.
func Resolve(player core.RectF, entities []Entity, tolerance float64, onHazard HazardFunc, onPickup PickupFunc) (fatal bool) {
	for i := range entities {
		e := &entities[i]
		if e.Consumed || e.Kind != KindHazard || !Overlaps(player, e.Box, tolerance) {
			continue
		}
		e.Consumed = true
		if onHazard != nil && onHazard(e) {
			return true
		}
	}
	for i := range entities {
		e := &entities[i]
		if e.Consumed || e.Kind != KindPickup || !Overlaps(player, e.Box, tolerance) {
			continue
		}
		e.Consumed = true
		if onPickup != nil {
			onPickup(e)
		}
	}
	return false
}
