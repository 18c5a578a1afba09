package sim

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/arcade-hub/internal/core"
)

// EntityID identifies a spawned entity by its world birth time and a random
// nonce drawn from the session RNG, so ids are reproducible per seed.
type EntityID struct {
	Born  time.Duration
	Nonce uuid.UUID
}

// NewEntityID draws a nonce from r. A failing reader yields the nil nonce.
func NewEntityID(r io.Reader, born time.Duration) EntityID {
	nonce, err := uuid.NewRandomFromReader(r)
	if err != nil {
		nonce = uuid.Nil
	}
	return EntityID{Born: born, Nonce: nonce}
}

func (id EntityID) String() string {
	return fmt.Sprintf("%s@%s", id.Nonce.String()[:8], id.Born)
}

// Kind splits entities into hazards and pickups.
type Kind int

const (
	KindHazard Kind = iota
	KindPickup
)

// PickupKind is the effect a pickup grants.
type PickupKind int

const (
	PickupShield PickupKind = iota // Temporary invulnerability
	PickupHeart                    // One extra life
	PickupSlow                     // Temporary scroll slow-down
)

func (p PickupKind) String() string {
	switch p {
	case PickupShield:
		return "shield"
	case PickupHeart:
		return "heart"
	case PickupSlow:
		return "slow"
	default:
		return fmt.Sprintf("pickup(%d)", int(p))
	}
}

// Entity is an obstacle or pickup moving through the world.
type Entity struct {
	ID       EntityID
	Kind     Kind
	Pickup   PickupKind
	Box      core.RectF
	Color    core.Color
	Lane     int
	Consumed bool
}

// IsHazard reports whether the entity costs a life on contact.
func (e Entity) IsHazard() bool {
	return e.Kind == KindHazard
}
